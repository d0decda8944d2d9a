package hookmapper

import (
	"context"
	"log/slog"

	"fundrik/internal/event"
	"fundrik/internal/platform"
	"fundrik/internal/platform/hook"
)

// InitMapper binds the platform's init lifecycle hook. The hook carries
// no payload, so there is no shape to validate; it always dispatches
// PlatformInitialized.
type InitMapper struct {
	events  *event.Dispatcher
	context platform.ContextProvider
	logger  *slog.Logger
}

// NewInitMapper builds the mapper.
func NewInitMapper(events *event.Dispatcher, ctx platform.ContextProvider, logger *slog.Logger) *InitMapper {
	return &InitMapper{events: events, context: ctx, logger: logger}
}

// Register binds the mapper to the init hook.
func (m *InitMapper) Register(h *hook.Dispatcher) {
	h.AddAction(HookInit, hook.DefaultPriority, 0, m.handle)
}

func (m *InitMapper) handle([]any) {
	ev := &event.PlatformInitialized{Context: m.context.Snapshot()}
	if err := m.events.Dispatch(context.Background(), ev); err != nil {
		m.logger.Error("init listeners failed",
			slog.String("hook", HookInit),
			slog.Any("error", err),
		)
	}
}
