package dto

import (
	"errors"
	"fmt"

	"fundrik/internal/core/domain"
	"fundrik/internal/core/input"
)

// Row column names, matching the fundrik_campaigns table.
const (
	FieldID           = "id"
	FieldTitle        = "title"
	FieldSlug         = "slug"
	FieldIsEnabled    = "is_enabled"
	FieldIsOpen       = "is_open"
	FieldHasTarget    = "has_target"
	FieldTargetAmount = "target_amount"
)

// InvalidCampaignDtoError is returned when a raw row cannot be turned
// into a Campaign DTO: a required field is missing or mistyped. The
// underlying extraction failure is preserved as the cause.
type InvalidCampaignDtoError struct {
	Field string
	Err   error
}

func (e *InvalidCampaignDtoError) Error() string {
	return fmt.Sprintf("invalid campaign dto: field %q: %v", e.Field, e.Err)
}

func (e *InvalidCampaignDtoError) Unwrap() error {
	return e.Err
}

var (
	errFieldMissing = errors.New("field is missing")
	errFieldType    = errors.New("field has unexpected type")
)

// Factory translates between raw rows, admin input, entities and the
// Campaign DTO. It is stateless; one instance is shared freely.
type Factory struct{}

// NewFactory returns a campaign DTO factory.
func NewFactory() *Factory {
	return &Factory{}
}

// FromRow hydrates a DTO from a raw storage row, type-checking each
// required field individually. Any missing or mistyped field fails with
// InvalidCampaignDtoError naming the field.
func (f *Factory) FromRow(row map[string]any) (Campaign, error) {
	id, err := idField(row, FieldID)
	if err != nil {
		return Campaign{}, &InvalidCampaignDtoError{Field: FieldID, Err: err}
	}
	title, err := stringField(row, FieldTitle)
	if err != nil {
		return Campaign{}, &InvalidCampaignDtoError{Field: FieldTitle, Err: err}
	}
	slug, err := stringField(row, FieldSlug)
	if err != nil {
		return Campaign{}, &InvalidCampaignDtoError{Field: FieldSlug, Err: err}
	}
	isEnabled, err := boolField(row, FieldIsEnabled)
	if err != nil {
		return Campaign{}, &InvalidCampaignDtoError{Field: FieldIsEnabled, Err: err}
	}
	isOpen, err := boolField(row, FieldIsOpen)
	if err != nil {
		return Campaign{}, &InvalidCampaignDtoError{Field: FieldIsOpen, Err: err}
	}
	hasTarget, err := boolField(row, FieldHasTarget)
	if err != nil {
		return Campaign{}, &InvalidCampaignDtoError{Field: FieldHasTarget, Err: err}
	}
	targetAmount, err := intField(row, FieldTargetAmount)
	if err != nil {
		return Campaign{}, &InvalidCampaignDtoError{Field: FieldTargetAmount, Err: err}
	}
	return Campaign{
		ID:           id,
		Title:        title,
		Slug:         slug,
		IsEnabled:    isEnabled,
		IsOpen:       isOpen,
		HasTarget:    hasTarget,
		TargetAmount: targetAmount,
	}, nil
}

// FromEntity maps an entity to a DTO. Pure mapping, no failure path:
// the raw identity is carried over without the integer guard.
func (f *Factory) FromEntity(c *domain.Campaign) Campaign {
	return Campaign{
		ID:           c.RawID().Raw(),
		Title:        c.Title(),
		Slug:         c.Slug().String(),
		IsEnabled:    c.IsEnabled(),
		IsOpen:       c.IsOpen(),
		HasTarget:    c.HasTarget(),
		TargetAmount: c.TargetAmount(),
	}
}

// FromInput maps validated admin input to a DTO. It must only be called
// after validation succeeds; no checks are repeated here.
func (f *Factory) FromInput(in input.Campaign) Campaign {
	return Campaign{
		ID:           in.ID,
		Title:        in.Title,
		Slug:         in.Slug,
		IsEnabled:    in.IsEnabled,
		IsOpen:       in.IsOpen,
		HasTarget:    in.HasTarget,
		TargetAmount: in.TargetAmount,
	}
}

// ToEntity builds the domain entity from a DTO, wrapping slug and
// entity invariant failures with the field that caused them. This is
// the boundary where domain errors pick up DTO context.
func (f *Factory) ToEntity(d Campaign) (*domain.Campaign, error) {
	slug, err := domain.NewCampaignSlug(d.Slug)
	if err != nil {
		return nil, &InvalidCampaignDtoError{Field: FieldSlug, Err: err}
	}
	campaign, err := domain.NewCampaign(
		domain.NewCampaignID(d.ID),
		d.Title,
		slug,
		d.IsEnabled,
		d.IsOpen,
		d.HasTarget,
		d.TargetAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("campaign dto does not satisfy entity invariants: %w", err)
	}
	return campaign, nil
}

func idField(row map[string]any, key string) (any, error) {
	raw, ok := row[key]
	if !ok {
		return nil, errFieldMissing
	}
	switch raw.(type) {
	case int64, int, int32, string:
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: %T", errFieldType, raw)
	}
}

func stringField(row map[string]any, key string) (string, error) {
	raw, ok := row[key]
	if !ok {
		return "", errFieldMissing
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %T", errFieldType, raw)
	}
	return value, nil
}

func boolField(row map[string]any, key string) (bool, error) {
	raw, ok := row[key]
	if !ok {
		return false, errFieldMissing
	}
	switch v := raw.(type) {
	case bool:
		return v, nil
	case int64:
		// boolean columns stored as 0/1
		return v != 0, nil
	default:
		return false, fmt.Errorf("%w: %T", errFieldType, raw)
	}
}

func intField(row map[string]any, key string) (int64, error) {
	raw, ok := row[key]
	if !ok {
		return 0, errFieldMissing
	}
	switch v := raw.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("%w: %T", errFieldType, raw)
	}
}
