package hookmapper

import (
	"context"
	"log/slog"

	"fundrik/internal/event"
	"fundrik/internal/platform"
	"fundrik/internal/platform/hook"
)

// DeletePostMapper binds the post-delete hook. Expected arguments: post
// id (integer) and the post being deleted. Posts of other types are
// skipped silently.
type DeletePostMapper struct {
	events  *event.Dispatcher
	context platform.ContextProvider
	logger  *slog.Logger
}

// NewDeletePostMapper builds the mapper.
func NewDeletePostMapper(events *event.Dispatcher, ctx platform.ContextProvider, logger *slog.Logger) *DeletePostMapper {
	return &DeletePostMapper{events: events, context: ctx, logger: logger}
}

// Register binds the mapper to the post-delete hook.
func (m *DeletePostMapper) Register(h *hook.Dispatcher) {
	h.AddAction(HookDeletePost, hook.DefaultPriority, 2, m.handle)
}

func (m *DeletePostMapper) handle(args []any) {
	postID, ok := asInt64(args[0])
	if !ok {
		warnPayload(m.logger, HookDeletePost, "DeletePostMapper", args[0])
		return
	}
	post, ok := asPost(args[1])
	if !ok {
		warnPayload(m.logger, HookDeletePost, "DeletePostMapper", args[1])
		return
	}
	if post.Type != platform.CampaignPostType {
		return
	}
	ev := &event.CampaignPostDeleted{
		PostID:  postID,
		Post:    post,
		Context: m.context.Snapshot(),
	}
	if err := m.events.Dispatch(context.Background(), ev); err != nil {
		m.logger.Error("campaign post delete failed",
			slog.String("hook", HookDeletePost),
			slog.Int64("post_id", postID),
			slog.Any("error", err),
		)
	}
}
