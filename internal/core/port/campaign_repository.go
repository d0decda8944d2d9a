package port

import (
	"context"
	"errors"

	"fundrik/internal/core/domain"
	"fundrik/internal/core/dto"
)

// ErrSlugTaken is returned when a save would duplicate the slug of
// another campaign.
var ErrSlugTaken = errors.New("campaign slug is already taken")

// CampaignRepository is the outbound persistence port for campaigns.
// Reads return DTOs hydrated from rows; absent rows come back as
// (nil, nil), never as an error. Write methods return a nil error on
// success; an update that touches zero rows is still a success. Only
// an explicit failure from the database layer reports an error, so
// callers cannot distinguish a no-op update from an effective one.
type CampaignRepository interface {
	// GetByID fetches a single campaign row by primary key.
	GetByID(ctx context.Context, id any) (*dto.Campaign, error)
	// GetAll returns every campaign row in storage order.
	GetAll(ctx context.Context) ([]dto.Campaign, error)
	// Exists checks existence by primary key.
	Exists(ctx context.Context, campaign *domain.Campaign) (bool, error)
	// ExistsBySlug checks existence by the indexed slug column.
	ExistsBySlug(ctx context.Context, slug domain.CampaignSlug) (bool, error)
	// Insert persists a new campaign.
	Insert(ctx context.Context, campaign *domain.Campaign) error
	// Update rewrites the row keyed by the campaign's identity.
	Update(ctx context.Context, campaign *domain.Campaign) error
	// Delete removes the row keyed by id.
	Delete(ctx context.Context, id any) error
}

// QueryExecutor is the only component allowed to construct SQL text.
// Table and column names always come from internal constants; every
// user-controlled value is passed as a query parameter. The identity
// value may be a numeric id or an opaque string; implementations must
// bind it with the type it arrives in.
type QueryExecutor interface {
	// GetByID returns the row keyed by id as a column→value map, or
	// nil when no row matches.
	GetByID(ctx context.Context, table string, id any) (map[string]any, error)
	// GetAll returns all rows of the table in index-scan order.
	GetAll(ctx context.Context, table string) ([]map[string]any, error)
	// Exists reports whether a row with the given primary key exists.
	Exists(ctx context.Context, table string, id any) (bool, error)
	// ExistsByColumn reports whether any row matches column = value.
	ExistsByColumn(ctx context.Context, table, column string, value any) (bool, error)
	// Insert issues a parameterized insert of the column→value map.
	Insert(ctx context.Context, table string, data map[string]any) error
	// Update issues a parameterized update keyed by primary key.
	Update(ctx context.Context, table string, data map[string]any, id any) error
	// Delete issues a parameterized delete by primary key.
	Delete(ctx context.Context, table string, id any) error
	// Query executes a raw statement. Migration and maintenance use only.
	Query(ctx context.Context, sql string) error
}
