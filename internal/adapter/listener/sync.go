package listener

import (
	"context"
	"fmt"
	"log/slog"

	"fundrik/internal/core/input"
	"fundrik/internal/core/port"
	"fundrik/internal/event"
	"fundrik/internal/platform"
)

// SyncListener keeps the campaign table in step with campaign posts.
// On every CampaignPostSynced it rebuilds the admin input from the post
// snapshot and saves it through the service, which decides between
// insert and update.
type SyncListener struct {
	svc    port.CampaignService
	logger *slog.Logger
}

// NewSyncListener builds the listener.
func NewSyncListener(svc port.CampaignService, logger *slog.Logger) *SyncListener {
	return &SyncListener{svc: svc, logger: logger}
}

// Handle persists the synced post. Validation failures are reported
// back to the dispatcher so the mapper can log them; they are not
// retried.
func (l *SyncListener) Handle(ctx context.Context, ev event.Event) error {
	synced, ok := ev.(*event.CampaignPostSynced)
	if !ok {
		return fmt.Errorf("sync listener received %s", ev.Name())
	}
	in := inputFromPost(synced.PostID, synced.Post)
	if err := l.svc.SaveCampaign(ctx, in); err != nil {
		return fmt.Errorf("sync campaign %d: %w", synced.PostID, err)
	}
	l.logger.Info("campaign synced",
		slog.Int64("post_id", synced.PostID),
		slog.Bool("update", synced.Update),
	)
	return nil
}

// inputFromPost maps a post snapshot to full admin input. Enablement is
// derived from the post status; the remaining campaign fields live in
// post meta.
func inputFromPost(postID int64, post platform.Post) input.Campaign {
	return input.Campaign{
		ID:           postID,
		Title:        post.Title,
		Slug:         post.Slug,
		IsEnabled:    post.Status == platform.PostStatusPublish,
		IsOpen:       boolMeta(post, platform.MetaIsOpen),
		HasTarget:    boolMeta(post, platform.MetaHasTarget),
		TargetAmount: intMeta(post, platform.MetaTargetAmount),
	}
}
