package usecase

import (
	"context"
	"fmt"

	"fundrik/internal/core/domain"
	"fundrik/internal/core/dto"
	"fundrik/internal/core/input"
	"fundrik/internal/core/port"
	"fundrik/internal/core/validation"
)

// CampaignService orchestrates campaign persistence: validate the
// input, translate it through the DTO into the entity, then insert or
// update depending on whether the identity already exists. It
// implements port.CampaignService.
type CampaignService struct {
	repo    port.CampaignRepository
	factory *dto.Factory
	rules   []validation.Rule
}

// NewCampaignService creates a service over the given repository with
// the standard campaign rule set.
func NewCampaignService(repo port.CampaignRepository, factory *dto.Factory) *CampaignService {
	return &CampaignService{
		repo:    repo,
		factory: factory,
		rules:   validation.CampaignRules(),
	}
}

// GetCampaignByID returns the campaign for id, or (nil, nil) when no
// campaign exists.
func (s *CampaignService) GetCampaignByID(ctx context.Context, id any) (*domain.Campaign, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return s.factory.ToEntity(*d)
}

// GetAllCampaigns returns every stored campaign.
func (s *CampaignService) GetAllCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	dtos, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	campaigns := make([]*domain.Campaign, 0, len(dtos))
	for _, d := range dtos {
		campaign, err := s.factory.ToEntity(d)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, nil
}

// SaveCampaign validates input, builds the entity and dispatches to
// insert or update by existence check. The check and the write are not
// one transaction; concurrent saves of the same identity can race and
// the database's row-level locking is the only backstop.
func (s *CampaignService) SaveCampaign(ctx context.Context, in input.Campaign) error {
	if err := s.ValidateInput(in); err != nil {
		return err
	}
	campaign, err := s.factory.ToEntity(s.factory.FromInput(in))
	if err != nil {
		return err
	}
	exists, err := s.repo.Exists(ctx, campaign)
	if err != nil {
		return err
	}
	if err := s.checkSlugConflict(ctx, campaign, exists); err != nil {
		return err
	}
	if exists {
		return s.repo.Update(ctx, campaign)
	}
	return s.repo.Insert(ctx, campaign)
}

// DeleteCampaign removes the campaign keyed by id.
func (s *CampaignService) DeleteCampaign(ctx context.Context, id any) error {
	return s.repo.Delete(ctx, id)
}

// ValidateInput runs the campaign rule set and returns a structured
// *validation.Error carrying every violation when any rule fails.
func (s *CampaignService) ValidateInput(in validation.CampaignFields) error {
	violations := validation.Run(in, s.rules...)
	if len(violations) > 0 {
		return &validation.Error{Violations: violations}
	}
	return nil
}

// checkSlugConflict enforces slug uniqueness. For inserts any existing
// row with the slug is a conflict. For updates the slug only conflicts
// when it changed and another row already carries the new value.
func (s *CampaignService) checkSlugConflict(ctx context.Context, campaign *domain.Campaign, exists bool) error {
	slug := campaign.Slug()
	if exists {
		current, err := s.repo.GetByID(ctx, campaign.RawID().Raw())
		if err != nil {
			return err
		}
		if current != nil && current.Slug == slug.String() {
			return nil
		}
	}
	taken, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("slug %q: %w", slug.String(), port.ErrSlugTaken)
	}
	return nil
}
