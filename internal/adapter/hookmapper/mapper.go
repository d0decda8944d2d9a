// Package hookmapper bridges the host platform's hook bus to typed
// internal events. Each mapper binds exactly one hook, validates the
// raw arguments the platform passes at invocation time and either
// dispatches a typed event or degrades to a logged no-op (actions) or
// passthrough (filters). A malformed hook payload must never break the
// platform's request flow, so nothing in this package panics or returns
// an error into the bus.
package hookmapper

import (
	"fmt"
	"log/slog"

	"fundrik/internal/platform"
	"fundrik/internal/platform/hook"
)

// Host hook names the mappers bind to.
const (
	HookInit              = "init"
	HookAfterInsertPost   = "after_insert_post"
	HookDeletePost        = "delete_post"
	HookRestPreInsert     = "rest_pre_insert_" + platform.CampaignPostType
	HookAllowedBlockTypes = "allowed_block_types_all"
)

// Mapper registers itself on the hook bus. Register must be called at
// most once per mapper.
type Mapper interface {
	Register(h *hook.Dispatcher)
}

// Registry holds the mapper set assembled at startup and registers each
// mapper exactly once.
type Registry struct {
	mappers    []Mapper
	registered bool
}

// NewRegistry builds a registry from explicitly constructed mappers.
func NewRegistry(mappers ...Mapper) *Registry {
	return &Registry{mappers: mappers}
}

// RegisterAll registers every mapper on the bus. Subsequent calls are
// no-ops so callbacks cannot be bound twice.
func (r *Registry) RegisterAll(h *hook.Dispatcher) {
	if r.registered {
		return
	}
	r.registered = true
	for _, m := range r.mappers {
		m.Register(h)
	}
}

// warnPayload logs the structured warning every mapper emits when the
// platform hands over arguments of an unexpected shape.
func warnPayload(logger *slog.Logger, hookName, mapper string, value any) {
	logger.Warn("unexpected hook payload",
		slog.String("hook", hookName),
		slog.String("mapper", mapper),
		slog.String("value", fmt.Sprintf("%.120v", value)),
	)
}

// asInt64 accepts the integer representations the platform passes for
// post ids.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}

// asPost accepts a post argument passed by value or by pointer.
func asPost(v any) (platform.Post, bool) {
	switch p := v.(type) {
	case platform.Post:
		return p, true
	case *platform.Post:
		if p == nil {
			return platform.Post{}, false
		}
		return *p, true
	default:
		return platform.Post{}, false
	}
}
