package hookmapper

import (
	"context"
	"log/slog"

	"fundrik/internal/event"
	"fundrik/internal/platform"
)

// captureHandler is a slog handler collecting records for assertions.
type captureHandler struct {
	records *[]slog.Record
}

func newCaptureLogger() (*slog.Logger, *[]slog.Record) {
	records := &[]slog.Record{}
	return slog.New(&captureHandler{records: records}), records
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	*h.records = append(*h.records, r)
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *captureHandler) WithGroup(string) slog.Handler { return h }

// stubContext is a fixed-snapshot provider for mapper tests.
type stubContext struct{}

func (stubContext) Snapshot() platform.Snapshot {
	return platform.Snapshot{
		EntityPostTypes:      []string{platform.CampaignPostType},
		RegisteredPostTypes:  []string{platform.CampaignPostType},
		RegisteredBlockTypes: []string{"fundrik/donation-form"},
	}
}

// recordingListener captures dispatched events.
type recordingListener struct {
	events []event.Event
}

func (l *recordingListener) Handle(_ context.Context, ev event.Event) error {
	l.events = append(l.events, ev)
	return nil
}
