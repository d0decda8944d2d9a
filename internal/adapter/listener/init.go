package listener

import (
	"context"
	"fmt"
	"log/slog"

	"fundrik/internal/event"
	"fundrik/internal/platform"
)

// InitListener registers the campaign post type and its editor blocks
// once the platform announces it finished initializing.
type InitListener struct {
	registry *platform.Registry
	logger   *slog.Logger
}

// NewInitListener builds the listener.
func NewInitListener(registry *platform.Registry, logger *slog.Logger) *InitListener {
	return &InitListener{registry: registry, logger: logger}
}

// Handle registers the campaign post type and block types.
func (l *InitListener) Handle(_ context.Context, ev event.Event) error {
	if _, ok := ev.(*event.PlatformInitialized); !ok {
		return fmt.Errorf("init listener received %s", ev.Name())
	}
	l.registry.RegisterPostType(platform.CampaignPostType)
	for _, block := range CampaignBlockTypes {
		l.registry.RegisterBlockType(block)
	}
	l.logger.Info("campaign post type registered",
		slog.String("post_type", platform.CampaignPostType),
		slog.Int("block_types", len(CampaignBlockTypes)),
	)
	return nil
}
