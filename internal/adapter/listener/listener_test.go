package listener

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"fundrik/internal/core/domain"
	"fundrik/internal/core/input"
	"fundrik/internal/core/validation"
	"fundrik/internal/platform"
)

type mockCampaignService struct {
	mock.Mock
}

func (m *mockCampaignService) GetCampaignByID(ctx context.Context, id any) (*domain.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campaign), args.Error(1)
}

func (m *mockCampaignService) GetAllCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Campaign), args.Error(1)
}

func (m *mockCampaignService) SaveCampaign(ctx context.Context, in input.Campaign) error {
	return m.Called(ctx, in).Error(0)
}

func (m *mockCampaignService) DeleteCampaign(ctx context.Context, id any) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCampaignService) ValidateInput(in validation.CampaignFields) error {
	return m.Called(in).Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func syncedPost() platform.Post {
	return platform.Post{
		ID:     7,
		Type:   platform.CampaignPostType,
		Status: platform.PostStatusPublish,
		Title:  "Clean Water",
		Slug:   "clean-water",
		Meta: map[string]any{
			platform.MetaIsOpen:       "1",
			platform.MetaHasTarget:    true,
			platform.MetaTargetAmount: "250000",
		},
	}
}
