// Package platform models the host content platform the campaign
// service is embedded in: posts, REST requests, editor context and a
// snapshot of the platform's registered metadata. The hook bus lives in
// the hook subpackage; nothing outside the mapper layer should touch
// raw hook arguments directly.
package platform

import "github.com/google/uuid"

// CampaignPostType is the post type backing campaign entities.
const CampaignPostType = "fundrik_campaign"

// Post status values the sync layer cares about.
const (
	PostStatusPublish = "publish"
	PostStatusDraft   = "draft"
)

// Campaign post meta keys.
const (
	MetaIsOpen       = "fundrik_is_open"
	MetaHasTarget    = "fundrik_has_target"
	MetaTargetAmount = "fundrik_target_amount"
)

// Post is a snapshot of a platform post at hook time. Meta holds the
// post's meta fields as loosely typed values, exactly as the platform
// hands them over.
type Post struct {
	ID     int64
	Type   string
	Status string
	Title  string
	Slug   string
	Meta   map[string]any
}

// RESTRequest captures the REST request that accompanies a pre-insert
// filter invocation. ID is assigned at construction so log lines from
// different layers can be correlated.
type RESTRequest struct {
	ID     string
	Method string
	Route  string
	Params map[string]any
}

// NewRESTRequest builds a request snapshot with a fresh correlation id.
func NewRESTRequest(method, route string, params map[string]any) *RESTRequest {
	return &RESTRequest{
		ID:     uuid.NewString(),
		Method: method,
		Route:  route,
		Params: params,
	}
}

// EditorContext describes the block editor surface a filter fires for.
type EditorContext struct {
	PostType string
	Post     *Post
}
