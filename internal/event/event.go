// Package event defines the typed events the hook mapper layer emits
// and the synchronous dispatcher that fans them out to listeners.
// Events decouple application logic from raw platform hook arguments:
// each one carries validated arguments plus a platform context
// snapshot.
package event

import "fundrik/internal/platform"

// Event names.
const (
	NamePlatformInitialized     = "platform.initialized"
	NameCampaignPostSynced      = "campaign.post_synced"
	NameCampaignPostDeleted     = "campaign.post_deleted"
	NamePreInsertCampaignFilter = "campaign.rest_pre_insert"
	NameAllowedBlockTypesFilter = "editor.allowed_block_types"
)

// Event is implemented by every typed event. Name identifies the exact
// event type listeners subscribe to.
type Event interface {
	Name() string
}

// PlatformInitialized fires once the platform finished its init
// lifecycle and entity types may be registered.
type PlatformInitialized struct {
	Context platform.Snapshot
}

func (*PlatformInitialized) Name() string { return NamePlatformInitialized }

// CampaignPostSynced fires after the platform persisted a campaign
// post. Update distinguishes updates from first inserts; Before is the
// previous post snapshot when the platform supplied one.
type CampaignPostSynced struct {
	PostID  int64
	Post    platform.Post
	Update  bool
	Before  *platform.Post
	Context platform.Snapshot
}

func (*CampaignPostSynced) Name() string { return NameCampaignPostSynced }

// CampaignPostDeleted fires after the platform deleted a campaign post.
type CampaignPostDeleted struct {
	PostID  int64
	Post    platform.Post
	Context platform.Snapshot
}

func (*CampaignPostDeleted) Name() string { return NameCampaignPostDeleted }

// PreInsertCampaignFilter fires while the platform prepares a REST
// insert. Listeners may adjust Post before the platform persists it;
// the mapper feeds the (possibly modified) post back to the filter
// caller.
type PreInsertCampaignFilter struct {
	Post    *platform.Post
	Request *platform.RESTRequest
	Context platform.Snapshot
}

func (*PreInsertCampaignFilter) Name() string { return NamePreInsertCampaignFilter }

// AllowedBlockTypesFilter fires when the editor asks which block types
// are allowed. Listeners may replace Allowed or clear AllowAll; the
// mapper translates the result back into the filter's return value.
type AllowedBlockTypesFilter struct {
	AllowAll bool
	Allowed  []string
	Editor   platform.EditorContext
	Context  platform.Snapshot
}

func (*AllowedBlockTypesFilter) Name() string { return NameAllowedBlockTypesFilter }
