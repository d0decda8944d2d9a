package hookmapper

import (
	"context"
	"log/slog"
	"slices"

	"fundrik/internal/event"
	"fundrik/internal/platform"
	"fundrik/internal/platform/hook"
)

// AllowedBlockTypesMapper binds the editor's allowed-block-types
// filter. The filtered value is either a boolean (allow all or none)
// or a list of block type names; the extra argument is the editor
// context. Any unexpected shape, including a list with a non-string
// element, logs one warning and returns the original value unchanged
// without dispatching. A value no listener modifies also passes
// through exactly as it arrived.
type AllowedBlockTypesMapper struct {
	events  *event.Dispatcher
	context platform.ContextProvider
	logger  *slog.Logger
}

// NewAllowedBlockTypesMapper builds the mapper.
func NewAllowedBlockTypesMapper(events *event.Dispatcher, ctx platform.ContextProvider, logger *slog.Logger) *AllowedBlockTypesMapper {
	return &AllowedBlockTypesMapper{events: events, context: ctx, logger: logger}
}

// Register binds the mapper to the allowed-block-types filter.
func (m *AllowedBlockTypesMapper) Register(h *hook.Dispatcher) {
	h.AddFilter(HookAllowedBlockTypes, hook.DefaultPriority, 1, m.handle)
}

func (m *AllowedBlockTypesMapper) handle(value any, args []any) any {
	allowAll, allowed, ok := parseAllowedValue(value)
	if !ok {
		warnPayload(m.logger, HookAllowedBlockTypes, "AllowedBlockTypesMapper", value)
		return value
	}
	editor, ok := asEditorContext(args[0])
	if !ok {
		warnPayload(m.logger, HookAllowedBlockTypes, "AllowedBlockTypesMapper", args[0])
		return value
	}
	ev := &event.AllowedBlockTypesFilter{
		AllowAll: allowAll,
		Allowed:  allowed,
		Editor:   editor,
		Context:  m.context.Snapshot(),
	}
	if err := m.events.Dispatch(context.Background(), ev); err != nil {
		m.logger.Warn("allowed-block-types listeners failed",
			slog.String("hook", HookAllowedBlockTypes),
			slog.Any("error", err),
		)
		return value
	}
	if ev.AllowAll == allowAll && slices.Equal(ev.Allowed, allowed) {
		// untouched by every listener, keep the caller's representation
		return value
	}
	if ev.AllowAll {
		return true
	}
	return ev.Allowed
}

// parseAllowedValue normalises the boolean-or-list filter value. A
// false boolean maps to an empty list.
func parseAllowedValue(value any) (allowAll bool, allowed []string, ok bool) {
	switch v := value.(type) {
	case bool:
		return v, nil, true
	case []string:
		return false, v, true
	case []any:
		allowed = make([]string, len(v))
		for i, elem := range v {
			name, isString := elem.(string)
			if !isString {
				return false, nil, false
			}
			allowed[i] = name
		}
		return false, allowed, true
	default:
		return false, nil, false
	}
}

func asEditorContext(v any) (platform.EditorContext, bool) {
	switch e := v.(type) {
	case platform.EditorContext:
		return e, true
	case *platform.EditorContext:
		if e == nil {
			return platform.EditorContext{}, false
		}
		return *e, true
	default:
		return platform.EditorContext{}, false
	}
}
