package postgres

import (
	"context"
	"fmt"

	"fundrik/internal/core/domain"
	"fundrik/internal/core/dto"
	"fundrik/internal/core/port"
)

// CampaignsTable is the campaign storage table. It is the only place
// the name is spelled; the executor receives it from here, never from
// user input.
const CampaignsTable = "fundrik_campaigns"

// CampaignRepository implements port.CampaignRepository on top of the
// query executor. It owns the entity↔row mapping and nothing else; all
// SQL stays inside the executor.
type CampaignRepository struct {
	exec    port.QueryExecutor
	factory *dto.Factory
}

// NewCampaignRepository returns a repository over the given executor.
func NewCampaignRepository(exec port.QueryExecutor, factory *dto.Factory) *CampaignRepository {
	return &CampaignRepository{exec: exec, factory: factory}
}

// GetByID fetches a single campaign row by primary key. Absent rows
// return (nil, nil).
func (r *CampaignRepository) GetByID(ctx context.Context, id any) (*dto.Campaign, error) {
	row, err := r.exec.GetByID(ctx, CampaignsTable, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	d, err := r.factory.FromRow(row)
	if err != nil {
		return nil, fmt.Errorf("campaign row %v is malformed: %w", id, err)
	}
	return &d, nil
}

// GetAll returns every campaign row in storage order.
func (r *CampaignRepository) GetAll(ctx context.Context) ([]dto.Campaign, error) {
	rows, err := r.exec.GetAll(ctx, CampaignsTable)
	if err != nil {
		return nil, err
	}
	campaigns := make([]dto.Campaign, 0, len(rows))
	for _, row := range rows {
		d, err := r.factory.FromRow(row)
		if err != nil {
			return nil, fmt.Errorf("campaign row is malformed: %w", err)
		}
		campaigns = append(campaigns, d)
	}
	return campaigns, nil
}

// Exists checks existence by the campaign's primary key.
func (r *CampaignRepository) Exists(ctx context.Context, campaign *domain.Campaign) (bool, error) {
	return r.exec.Exists(ctx, CampaignsTable, campaign.RawID().Raw())
}

// ExistsBySlug checks existence by the indexed slug column.
func (r *CampaignRepository) ExistsBySlug(ctx context.Context, slug domain.CampaignSlug) (bool, error) {
	return r.exec.ExistsByColumn(ctx, CampaignsTable, dto.FieldSlug, slug.String())
}

// Insert persists a new campaign. The identity is platform-assigned,
// so the id column is written explicitly.
func (r *CampaignRepository) Insert(ctx context.Context, campaign *domain.Campaign) error {
	return r.exec.Insert(ctx, CampaignsTable, r.rowData(campaign, true))
}

// Update rewrites the row keyed by the campaign's identity. Touching
// zero rows is treated as success, matching the executor contract.
func (r *CampaignRepository) Update(ctx context.Context, campaign *domain.Campaign) error {
	return r.exec.Update(ctx, CampaignsTable, r.rowData(campaign, false), campaign.RawID().Raw())
}

// Delete removes the row keyed by id.
func (r *CampaignRepository) Delete(ctx context.Context, id any) error {
	return r.exec.Delete(ctx, CampaignsTable, id)
}

// rowData flattens the entity into a column→value map via the DTO.
func (r *CampaignRepository) rowData(campaign *domain.Campaign, includeID bool) map[string]any {
	d := r.factory.FromEntity(campaign)
	data := map[string]any{
		dto.FieldTitle:        d.Title,
		dto.FieldSlug:         d.Slug,
		dto.FieldIsEnabled:    d.IsEnabled,
		dto.FieldIsOpen:       d.IsOpen,
		dto.FieldHasTarget:    d.HasTarget,
		dto.FieldTargetAmount: d.TargetAmount,
	}
	if includeID {
		data[dto.FieldID] = d.ID
	}
	return data
}
