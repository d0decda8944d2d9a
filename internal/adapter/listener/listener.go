// Package listener contains the application listeners that react to
// the typed events the hook mappers dispatch. Listeners are the only
// bridge between platform events and the campaign service; they never
// touch raw hook arguments.
package listener

import (
	"strconv"

	"fundrik/internal/event"
	"fundrik/internal/platform"
)

// CampaignBlockTypes are the editor blocks available on the campaign
// post type.
var CampaignBlockTypes = []string{
	"fundrik/campaign-settings",
	"fundrik/target-amount",
	"fundrik/donation-form",
}

// Registry wires a fixed listener list onto the event dispatcher in
// declaration order. The list is assembled once at startup with plain
// constructor injection.
type Registry struct {
	entries []entry
}

type entry struct {
	name     string
	listener event.Listener
}

// NewRegistry builds an empty listener registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a listener for the named event type.
func (r *Registry) Add(name string, l event.Listener) *Registry {
	r.entries = append(r.entries, entry{name: name, listener: l})
	return r
}

// RegisterAll subscribes every listener in declaration order.
func (r *Registry) RegisterAll(d *event.Dispatcher) {
	for _, e := range r.entries {
		d.Listen(e.name, e.listener)
	}
}

// boolMeta reads a boolean post meta value, tolerating the string and
// numeric encodings the platform stores booleans as.
func boolMeta(post platform.Post, key string) bool {
	switch v := post.Meta[key].(type) {
	case bool:
		return v
	case string:
		return v == "1" || v == "true"
	case int:
		return v != 0
	case int64:
		return v != 0
	default:
		return false
	}
}

// intMeta reads an integer post meta value, tolerating string-encoded
// numbers.
func intMeta(post platform.Post, key string) int64 {
	switch v := post.Meta[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
