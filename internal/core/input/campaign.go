// Package input defines the admin-facing input shapes for campaigns.
// Inputs are plain data: validation happens in the validation package
// and conversion to a DTO happens in the dto package, both before any
// persistence is attempted.
package input

// Campaign is the full admin input variant. Title and Slug are required
// to be non-blank; the validation rules enforce that.
type Campaign struct {
	ID           any
	Title        string
	Slug         string
	IsEnabled    bool
	IsOpen       bool
	HasTarget    bool
	TargetAmount int64
}

// TitleField reports the title value; the full variant always carries it.
func (c Campaign) TitleField() (string, bool) { return c.Title, true }

// SlugField reports the slug value; the full variant always carries it.
func (c Campaign) SlugField() (string, bool) { return c.Slug, true }

// TargetFields reports the target flag and amount pair.
func (c Campaign) TargetFields() (bool, int64) { return c.HasTarget, c.TargetAmount }

// PartialCampaign is the incremental update variant used by editor
// autosaves and REST pre-insert payloads, where title and slug may be
// absent. Absent fields are exempt from the non-blank rules.
type PartialCampaign struct {
	ID           any
	Title        *string
	Slug         *string
	IsEnabled    bool
	IsOpen       bool
	HasTarget    bool
	TargetAmount int64
}

// TitleField reports the title value and whether it is present.
func (c PartialCampaign) TitleField() (string, bool) {
	if c.Title == nil {
		return "", false
	}
	return *c.Title, true
}

// SlugField reports the slug value and whether it is present.
func (c PartialCampaign) SlugField() (string, bool) {
	if c.Slug == nil {
		return "", false
	}
	return *c.Slug, true
}

// TargetFields reports the target flag and amount pair.
func (c PartialCampaign) TargetFields() (bool, int64) { return c.HasTarget, c.TargetAmount }
