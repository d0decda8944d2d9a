package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidCampaignSlugError is returned when a slug value violates the
// slug invariant (non-empty after trimming surrounding whitespace).
type InvalidCampaignSlugError struct {
	Value string
}

func (e *InvalidCampaignSlugError) Error() string {
	return fmt.Sprintf("invalid campaign slug: %q is empty after trimming", e.Value)
}

// InvalidCampaignError is returned when a campaign invariant is violated.
// Value carries the offending input for diagnostics.
type InvalidCampaignError struct {
	Reason string
	Value  any
}

func (e *InvalidCampaignError) Error() string {
	return fmt.Sprintf("invalid campaign: %s (value: %v)", e.Reason, e.Value)
}

// CampaignSlug is the URL-safe identifier of a campaign, distinct from
// its numeric identity. It is a value object: equality is by value and
// a constructed slug is always valid.
type CampaignSlug struct {
	value string
}

// NewCampaignSlug trims surrounding whitespace and wraps the result.
// It fails with InvalidCampaignSlugError when nothing remains.
func NewCampaignSlug(value string) (CampaignSlug, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return CampaignSlug{}, &InvalidCampaignSlugError{Value: value}
	}
	return CampaignSlug{value: trimmed}, nil
}

// String returns the slug value.
func (s CampaignSlug) String() string {
	return s.value
}

// CampaignID wraps the campaign identity. The identity originates from
// the host platform and may be a numeric id or an opaque string (for
// example when the underlying aggregate is keyed by a UUID). The raw
// value is kept as-is; callers that need an integer go through Int64,
// which converts identity ambiguity into a typed domain failure instead
// of a silent coercion.
type CampaignID struct {
	raw any
}

// NewCampaignID wraps a raw identity value.
func NewCampaignID(raw any) CampaignID {
	return CampaignID{raw: raw}
}

// Raw returns the identity exactly as it was supplied.
func (id CampaignID) Raw() any {
	return id.raw
}

// IsZero reports whether the identity is unset.
func (id CampaignID) IsZero() bool {
	return id.raw == nil
}

// Int64 returns the identity as an integer. Identities that are not
// integer-castable fail with InvalidCampaignError carrying the original
// value.
func (id CampaignID) Int64() (int64, error) {
	switch v := id.raw.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, &InvalidCampaignError{Reason: "identity is not integer-castable", Value: id.raw}
		}
		return n, nil
	default:
		return 0, &InvalidCampaignError{Reason: "identity is not integer-castable", Value: id.raw}
	}
}

// campaignCore is the primitive aggregate a Campaign is built around.
// The entity composes it with the platform-specific slug rather than
// extending it.
type campaignCore struct {
	id           CampaignID
	title        string
	isEnabled    bool
	isOpen       bool
	hasTarget    bool
	targetAmount int64
}

// Campaign is the fundraising domain entity. It is immutable: every
// accessor is read-only and any change produces a new instance built
// from new input.
type Campaign struct {
	core campaignCore
	slug CampaignSlug
}

// NewCampaign constructs a campaign, enforcing the entity invariants:
// the title must not be blank and the target amount must be zero when
// targeting is disabled and strictly positive when it is enabled.
func NewCampaign(
	id CampaignID,
	title string,
	slug CampaignSlug,
	isEnabled, isOpen, hasTarget bool,
	targetAmount int64,
) (*Campaign, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &InvalidCampaignError{Reason: "title must not be blank", Value: title}
	}
	if hasTarget && targetAmount <= 0 {
		return nil, &InvalidCampaignError{Reason: "target amount must be positive when targeting is enabled", Value: targetAmount}
	}
	if !hasTarget && targetAmount != 0 {
		return nil, &InvalidCampaignError{Reason: "target amount must be zero when targeting is disabled", Value: targetAmount}
	}
	return &Campaign{
		core: campaignCore{
			id:           id,
			title:        title,
			isEnabled:    isEnabled,
			isOpen:       isOpen,
			hasTarget:    hasTarget,
			targetAmount: targetAmount,
		},
		slug: slug,
	}, nil
}

// ID returns the integer identity, guarding against identities that are
// not integer-castable.
func (c *Campaign) ID() (int64, error) {
	return c.core.id.Int64()
}

// RawID returns the identity value object without the integer guard.
func (c *Campaign) RawID() CampaignID {
	return c.core.id
}

// Title returns the campaign title.
func (c *Campaign) Title() string {
	return c.core.title
}

// IsEnabled reports whether the campaign is active on the platform.
func (c *Campaign) IsEnabled() bool {
	return c.core.isEnabled
}

// IsOpen reports whether the campaign currently accepts donations.
func (c *Campaign) IsOpen() bool {
	return c.core.isOpen
}

// HasTarget reports whether a fundraising target is set.
func (c *Campaign) HasTarget() bool {
	return c.core.hasTarget
}

// TargetAmount returns the fundraising target in minor currency units.
// It is zero when HasTarget is false.
func (c *Campaign) TargetAmount() int64 {
	return c.core.targetAmount
}

// Slug returns the campaign slug value object.
func (c *Campaign) Slug() CampaignSlug {
	return c.slug
}
