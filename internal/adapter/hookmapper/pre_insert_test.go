package hookmapper

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"fundrik/internal/event"
	"fundrik/internal/platform"
	"fundrik/internal/platform/hook"
)

// TestPreInsertDispatches ensures a well-shaped invocation reaches the
// listeners and the (possibly modified) post is returned.
func TestPreInsertDispatches(t *testing.T) {
	logger, _ := newCaptureLogger()
	events := event.NewDispatcher()
	events.Listen(event.NamePreInsertCampaignFilter, event.ListenerFunc(func(_ context.Context, ev event.Event) error {
		filter := ev.(*event.PreInsertCampaignFilter)
		filter.Post.Title = "Adjusted"
		return nil
	}))

	hooks := hook.NewDispatcher()
	NewPreInsertMapper(events, stubContext{}, logger).Register(hooks)

	post := campaignPost()
	request := platform.NewRESTRequest("POST", "/fundrik/v1/campaigns", map[string]any{"title": "X"})
	got := hooks.ApplyFilters(HookRestPreInsert, &post, request)

	result, ok := got.(*platform.Post)
	if !ok || result.Title != "Adjusted" {
		t.Fatalf("unexpected filtered post: %v", got)
	}
}

// TestPreInsertRejectionPassesThrough ensures a rejecting listener
// keeps the filter contract: one warning, original post returned.
func TestPreInsertRejectionPassesThrough(t *testing.T) {
	logger, records := newCaptureLogger()
	events := event.NewDispatcher()
	events.Listen(event.NamePreInsertCampaignFilter, event.ListenerFunc(func(context.Context, event.Event) error {
		return errors.New("invalid payload")
	}))

	hooks := hook.NewDispatcher()
	NewPreInsertMapper(events, stubContext{}, logger).Register(hooks)

	post := campaignPost()
	request := platform.NewRESTRequest("POST", "/fundrik/v1/campaigns", nil)
	got := hooks.ApplyFilters(HookRestPreInsert, &post, request)

	if got != &post {
		t.Fatalf("expected the original post back, got %v", got)
	}
	warns := 0
	for _, r := range *records {
		if r.Level == slog.LevelWarn {
			warns++
		}
	}
	if warns != 1 {
		t.Fatalf("expected one warning, got %d", warns)
	}
}

// TestPreInsertMalformedValue ensures a non-post value passes through
// with a warning and no dispatch.
func TestPreInsertMalformedValue(t *testing.T) {
	logger, records := newCaptureLogger()
	events := event.NewDispatcher()
	listener := &recordingListener{}
	events.Listen(event.NamePreInsertCampaignFilter, listener)

	hooks := hook.NewDispatcher()
	NewPreInsertMapper(events, stubContext{}, logger).Register(hooks)

	got := hooks.ApplyFilters(HookRestPreInsert, "not a post", platform.NewRESTRequest("POST", "/", nil))
	if got != "not a post" {
		t.Fatalf("expected passthrough, got %v", got)
	}
	if len(listener.events) != 0 {
		t.Fatalf("no event expected")
	}
	if len(*records) != 1 {
		t.Fatalf("expected one log record, got %d", len(*records))
	}
}
