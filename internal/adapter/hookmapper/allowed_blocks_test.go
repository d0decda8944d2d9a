package hookmapper

import (
	"context"
	"log/slog"
	"reflect"
	"testing"

	"fundrik/internal/event"
	"fundrik/internal/platform"
	"fundrik/internal/platform/hook"
)

// TestAllowedBlocksMalformedElement ensures a list with a non-string
// element logs one warning, dispatches nothing and passes the original
// value through unchanged.
func TestAllowedBlocksMalformedElement(t *testing.T) {
	logger, records := newCaptureLogger()
	events := event.NewDispatcher()
	listener := &recordingListener{}
	events.Listen(event.NameAllowedBlockTypesFilter, listener)

	hooks := hook.NewDispatcher()
	NewAllowedBlockTypesMapper(events, stubContext{}, logger).Register(hooks)

	original := []any{"fundrik/donation-form", 7}
	got := hooks.ApplyFilters(HookAllowedBlockTypes, original, platform.EditorContext{PostType: platform.CampaignPostType})

	if !reflect.DeepEqual(got, original) {
		t.Fatalf("filter must return the original value, got %v", got)
	}
	if len(listener.events) != 0 {
		t.Fatalf("no event must be dispatched, got %d", len(listener.events))
	}
	warns := 0
	for _, r := range *records {
		if r.Level == slog.LevelWarn {
			warns++
		}
	}
	if warns != 1 {
		t.Fatalf("expected exactly one warning, got %d", warns)
	}
}

// TestAllowedBlocksListenerNarrowsSet ensures a listener can replace
// the allowed set and the mapper returns the result.
func TestAllowedBlocksListenerNarrowsSet(t *testing.T) {
	logger, _ := newCaptureLogger()
	events := event.NewDispatcher()
	events.Listen(event.NameAllowedBlockTypesFilter, event.ListenerFunc(func(_ context.Context, ev event.Event) error {
		filter := ev.(*event.AllowedBlockTypesFilter)
		filter.AllowAll = false
		filter.Allowed = []string{"fundrik/donation-form"}
		return nil
	}))

	hooks := hook.NewDispatcher()
	NewAllowedBlockTypesMapper(events, stubContext{}, logger).Register(hooks)

	got := hooks.ApplyFilters(HookAllowedBlockTypes, true, platform.EditorContext{PostType: platform.CampaignPostType})
	allowed, ok := got.([]string)
	if !ok || len(allowed) != 1 || allowed[0] != "fundrik/donation-form" {
		t.Fatalf("unexpected filtered value: %v", got)
	}
}

// TestAllowedBlocksBooleanPassthrough ensures an untouched boolean
// value survives the round trip.
func TestAllowedBlocksBooleanPassthrough(t *testing.T) {
	logger, _ := newCaptureLogger()
	events := event.NewDispatcher()

	hooks := hook.NewDispatcher()
	NewAllowedBlockTypesMapper(events, stubContext{}, logger).Register(hooks)

	got := hooks.ApplyFilters(HookAllowedBlockTypes, true, platform.EditorContext{PostType: "post"})
	if got != true {
		t.Fatalf("expected true, got %v", got)
	}
}

// TestAllowedBlocksUntouchedValuePassesThrough ensures a value no
// listener modifies comes back exactly as it arrived: false stays a
// boolean and a []any list keeps its representation.
func TestAllowedBlocksUntouchedValuePassesThrough(t *testing.T) {
	logger, _ := newCaptureLogger()
	events := event.NewDispatcher()
	events.Listen(event.NameAllowedBlockTypesFilter, &recordingListener{})

	hooks := hook.NewDispatcher()
	NewAllowedBlockTypesMapper(events, stubContext{}, logger).Register(hooks)

	got := hooks.ApplyFilters(HookAllowedBlockTypes, false, platform.EditorContext{PostType: "page"})
	if got != false {
		t.Fatalf("untouched false must pass through, got %v", got)
	}

	original := []any{"core/paragraph", "core/image"}
	got = hooks.ApplyFilters(HookAllowedBlockTypes, original, platform.EditorContext{PostType: "page"})
	if !reflect.DeepEqual(got, original) {
		t.Fatalf("untouched list must keep its representation, got %v", got)
	}
}
