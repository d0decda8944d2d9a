package listener

import (
	"context"
	"fmt"

	"fundrik/internal/event"
	"fundrik/internal/platform"
)

// BlockTypesListener narrows the editor's allowed blocks to the
// campaign block set when the editor is working on a campaign post.
// Other post types pass through untouched.
type BlockTypesListener struct{}

// NewBlockTypesListener builds the listener.
func NewBlockTypesListener() *BlockTypesListener {
	return &BlockTypesListener{}
}

// Handle replaces the allowed set for campaign editor surfaces.
func (l *BlockTypesListener) Handle(_ context.Context, ev event.Event) error {
	filter, ok := ev.(*event.AllowedBlockTypesFilter)
	if !ok {
		return fmt.Errorf("block types listener received %s", ev.Name())
	}
	if filter.Editor.PostType != platform.CampaignPostType {
		return nil
	}
	filter.AllowAll = false
	filter.Allowed = append([]string(nil), CampaignBlockTypes...)
	return nil
}
