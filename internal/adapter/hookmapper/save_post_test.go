package hookmapper

import (
	"log/slog"
	"testing"

	"fundrik/internal/event"
	"fundrik/internal/platform"
	"fundrik/internal/platform/hook"
)

func campaignPost() platform.Post {
	return platform.Post{
		ID:     1,
		Type:   platform.CampaignPostType,
		Status: platform.PostStatusPublish,
		Title:  "Save The Planet",
		Slug:   "save-the-planet",
		Meta: map[string]any{
			platform.MetaIsOpen:       "1",
			platform.MetaHasTarget:    "1",
			platform.MetaTargetAmount: "100000",
		},
	}
}

// TestSavePostDispatches ensures a well-shaped invocation produces one
// typed event carrying the validated arguments and a context snapshot.
func TestSavePostDispatches(t *testing.T) {
	logger, records := newCaptureLogger()
	events := event.NewDispatcher()
	listener := &recordingListener{}
	events.Listen(event.NameCampaignPostSynced, listener)

	hooks := hook.NewDispatcher()
	NewSavePostMapper(events, stubContext{}, logger).Register(hooks)

	before := campaignPost()
	hooks.DoAction(HookAfterInsertPost, int64(1), campaignPost(), true, &before)

	if len(listener.events) != 1 {
		t.Fatalf("expected one event, got %d", len(listener.events))
	}
	synced := listener.events[0].(*event.CampaignPostSynced)
	if synced.PostID != 1 || !synced.Update || synced.Before == nil {
		t.Fatalf("unexpected event: %+v", synced)
	}
	if len(synced.Context.EntityPostTypes) == 0 {
		t.Fatalf("event must carry a platform context snapshot")
	}
	if len(*records) != 0 {
		t.Fatalf("no log output expected, got %d records", len(*records))
	}
}

// TestSavePostSkipsOtherTypes ensures posts of other types are ignored
// without a warning.
func TestSavePostSkipsOtherTypes(t *testing.T) {
	logger, records := newCaptureLogger()
	events := event.NewDispatcher()
	listener := &recordingListener{}
	events.Listen(event.NameCampaignPostSynced, listener)

	hooks := hook.NewDispatcher()
	NewSavePostMapper(events, stubContext{}, logger).Register(hooks)

	post := campaignPost()
	post.Type = "page"
	hooks.DoAction(HookAfterInsertPost, int64(2), post, false, nil)

	if len(listener.events) != 0 {
		t.Fatalf("no event expected for foreign post types")
	}
	if len(*records) != 0 {
		t.Fatalf("foreign post types are not a payload problem")
	}
}

// TestSavePostMalformedID ensures a non-integer post id degrades to a
// logged no-op.
func TestSavePostMalformedID(t *testing.T) {
	logger, records := newCaptureLogger()
	events := event.NewDispatcher()
	listener := &recordingListener{}
	events.Listen(event.NameCampaignPostSynced, listener)

	hooks := hook.NewDispatcher()
	NewSavePostMapper(events, stubContext{}, logger).Register(hooks)

	hooks.DoAction(HookAfterInsertPost, "not-an-id", campaignPost(), true, nil)

	if len(listener.events) != 0 {
		t.Fatalf("no event expected for malformed arguments")
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

// TestDeletePostDispatches covers the delete hook's happy path.
func TestDeletePostDispatches(t *testing.T) {
	logger, _ := newCaptureLogger()
	events := event.NewDispatcher()
	listener := &recordingListener{}
	events.Listen(event.NameCampaignPostDeleted, listener)

	hooks := hook.NewDispatcher()
	NewDeletePostMapper(events, stubContext{}, logger).Register(hooks)

	hooks.DoAction(HookDeletePost, int64(1), campaignPost())

	if len(listener.events) != 1 {
		t.Fatalf("expected one event, got %d", len(listener.events))
	}
	deleted := listener.events[0].(*event.CampaignPostDeleted)
	if deleted.PostID != 1 || deleted.Post.Slug != "save-the-planet" {
		t.Fatalf("unexpected event: %+v", deleted)
	}
}
