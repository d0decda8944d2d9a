package listener

import (
	"context"
	"fmt"

	"fundrik/internal/core/input"
	"fundrik/internal/core/port"
	"fundrik/internal/event"
	"fundrik/internal/platform"
)

// PreInsertListener validates an incoming REST campaign payload before
// the platform persists the post. The payload is a partial input: the
// editor may send only the fields it changed, so absent title and slug
// are accepted while present-but-invalid fields reject the insert.
type PreInsertListener struct {
	svc port.CampaignService
}

// NewPreInsertListener builds the listener.
func NewPreInsertListener(svc port.CampaignService) *PreInsertListener {
	return &PreInsertListener{svc: svc}
}

// Handle validates the prepared post against the partial input rules.
// A validation error propagates to the mapper, which keeps the filter
// contract by returning the original value.
func (l *PreInsertListener) Handle(_ context.Context, ev event.Event) error {
	filter, ok := ev.(*event.PreInsertCampaignFilter)
	if !ok {
		return fmt.Errorf("pre-insert listener received %s", ev.Name())
	}
	return l.svc.ValidateInput(partialFromRequest(filter.Post, filter.Request))
}

// partialFromRequest assembles partial input from the prepared post and
// the REST parameters that accompanied it.
func partialFromRequest(post *platform.Post, req *platform.RESTRequest) input.PartialCampaign {
	partial := input.PartialCampaign{
		ID:           post.ID,
		IsEnabled:    post.Status == platform.PostStatusPublish,
		IsOpen:       boolMeta(*post, platform.MetaIsOpen),
		HasTarget:    boolMeta(*post, platform.MetaHasTarget),
		TargetAmount: intMeta(*post, platform.MetaTargetAmount),
	}
	if title, ok := req.Params["title"].(string); ok {
		partial.Title = &title
	}
	if slug, ok := req.Params["slug"].(string); ok {
		partial.Slug = &slug
	}
	return partial
}
