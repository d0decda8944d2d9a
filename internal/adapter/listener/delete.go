package listener

import (
	"context"
	"fmt"
	"log/slog"

	"fundrik/internal/core/port"
	"fundrik/internal/event"
)

// DeleteListener removes the campaign row when its backing post is
// deleted on the platform.
type DeleteListener struct {
	svc    port.CampaignService
	logger *slog.Logger
}

// NewDeleteListener builds the listener.
func NewDeleteListener(svc port.CampaignService, logger *slog.Logger) *DeleteListener {
	return &DeleteListener{svc: svc, logger: logger}
}

// Handle deletes the campaign keyed by the deleted post's id.
func (l *DeleteListener) Handle(ctx context.Context, ev event.Event) error {
	deleted, ok := ev.(*event.CampaignPostDeleted)
	if !ok {
		return fmt.Errorf("delete listener received %s", ev.Name())
	}
	if err := l.svc.DeleteCampaign(ctx, deleted.PostID); err != nil {
		return fmt.Errorf("delete campaign %d: %w", deleted.PostID, err)
	}
	l.logger.Info("campaign deleted", slog.Int64("post_id", deleted.PostID))
	return nil
}
