package hookmapper

import (
	"context"
	"log/slog"

	"fundrik/internal/event"
	"fundrik/internal/platform"
	"fundrik/internal/platform/hook"
)

// PreInsertMapper binds the REST pre-insert filter for the campaign
// post type. The filtered value is the prepared post; the extra
// argument is the REST request. The filter contract requires returning
// a prepared post no matter what, so on a malformed payload or a
// rejecting listener the original value passes through unchanged.
type PreInsertMapper struct {
	events  *event.Dispatcher
	context platform.ContextProvider
	logger  *slog.Logger
}

// NewPreInsertMapper builds the mapper.
func NewPreInsertMapper(events *event.Dispatcher, ctx platform.ContextProvider, logger *slog.Logger) *PreInsertMapper {
	return &PreInsertMapper{events: events, context: ctx, logger: logger}
}

// Register binds the mapper to the REST pre-insert filter.
func (m *PreInsertMapper) Register(h *hook.Dispatcher) {
	h.AddFilter(HookRestPreInsert, hook.DefaultPriority, 1, m.handle)
}

func (m *PreInsertMapper) handle(value any, args []any) any {
	post, ok := value.(*platform.Post)
	if !ok || post == nil {
		warnPayload(m.logger, HookRestPreInsert, "PreInsertMapper", value)
		return value
	}
	request, ok := args[0].(*platform.RESTRequest)
	if !ok || request == nil {
		warnPayload(m.logger, HookRestPreInsert, "PreInsertMapper", args[0])
		return value
	}
	ev := &event.PreInsertCampaignFilter{
		Post:    post,
		Request: request,
		Context: m.context.Snapshot(),
	}
	if err := m.events.Dispatch(context.Background(), ev); err != nil {
		m.logger.Warn("pre-insert listeners rejected the payload",
			slog.String("hook", HookRestPreInsert),
			slog.String("request_id", request.ID),
			slog.Any("error", err),
		)
		return value
	}
	return ev.Post
}
