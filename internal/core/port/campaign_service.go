package port

import (
	"context"

	"fundrik/internal/core/domain"
	"fundrik/internal/core/input"
	"fundrik/internal/core/validation"
)

// CampaignService is the inbound application port. Hook listeners and
// the admin HTTP adapter both drive campaign persistence through it.
type CampaignService interface {
	// GetCampaignByID returns the campaign for id, or (nil, nil) when
	// no campaign exists.
	GetCampaignByID(ctx context.Context, id any) (*domain.Campaign, error)

	// GetAllCampaigns returns every stored campaign.
	GetAllCampaigns(ctx context.Context) ([]*domain.Campaign, error)

	// SaveCampaign validates the input, converts it to an entity and
	// inserts or updates depending on whether the identity already
	// exists. The existence check and the write are not one
	// transaction: concurrent saves of the same identity can race, and
	// the database is the only backstop. Returns ErrSlugTaken when the
	// slug belongs to a different campaign, or a *validation.Error when
	// the input is rejected.
	SaveCampaign(ctx context.Context, in input.Campaign) error

	// DeleteCampaign removes the campaign keyed by id.
	DeleteCampaign(ctx context.Context, id any) error

	// ValidateInput runs the campaign rule set against either input
	// variant. It returns a *validation.Error carrying the full
	// violation set when any rule fails, never a boolean.
	ValidateInput(in validation.CampaignFields) error
}
