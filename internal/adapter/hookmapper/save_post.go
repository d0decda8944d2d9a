package hookmapper

import (
	"context"
	"log/slog"

	"fundrik/internal/event"
	"fundrik/internal/platform"
	"fundrik/internal/platform/hook"
)

// SavePostMapper binds the post-save hook fired after the platform
// persisted a post. Expected arguments: post id (integer), the post,
// an update flag (boolean) and the previous post snapshot or nil.
// Posts of other types are skipped silently; malformed arguments are
// logged and dispatch is skipped.
type SavePostMapper struct {
	events  *event.Dispatcher
	context platform.ContextProvider
	logger  *slog.Logger
}

// NewSavePostMapper builds the mapper.
func NewSavePostMapper(events *event.Dispatcher, ctx platform.ContextProvider, logger *slog.Logger) *SavePostMapper {
	return &SavePostMapper{events: events, context: ctx, logger: logger}
}

// Register binds the mapper to the post-save hook with its four
// declared arguments.
func (m *SavePostMapper) Register(h *hook.Dispatcher) {
	h.AddAction(HookAfterInsertPost, hook.DefaultPriority, 4, m.handle)
}

func (m *SavePostMapper) handle(args []any) {
	postID, ok := asInt64(args[0])
	if !ok {
		warnPayload(m.logger, HookAfterInsertPost, "SavePostMapper", args[0])
		return
	}
	post, ok := asPost(args[1])
	if !ok {
		warnPayload(m.logger, HookAfterInsertPost, "SavePostMapper", args[1])
		return
	}
	if post.Type != platform.CampaignPostType {
		// other post types are none of our business
		return
	}
	update, ok := args[2].(bool)
	if !ok {
		warnPayload(m.logger, HookAfterInsertPost, "SavePostMapper", args[2])
		return
	}
	var before *platform.Post
	if args[3] != nil {
		prev, ok := asPost(args[3])
		if !ok {
			warnPayload(m.logger, HookAfterInsertPost, "SavePostMapper", args[3])
			return
		}
		before = &prev
	}
	ev := &event.CampaignPostSynced{
		PostID:  postID,
		Post:    post,
		Update:  update,
		Before:  before,
		Context: m.context.Snapshot(),
	}
	if err := m.events.Dispatch(context.Background(), ev); err != nil {
		m.logger.Error("campaign post sync failed",
			slog.String("hook", HookAfterInsertPost),
			slog.Int64("post_id", postID),
			slog.Any("error", err),
		)
	}
}
