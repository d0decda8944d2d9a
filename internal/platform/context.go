package platform

import (
	"slices"
	"sync"
)

// Snapshot is the read-only view of platform metadata attached to every
// dispatched event: which post types are entity-backed, and what the
// platform has registered so far.
type Snapshot struct {
	EntityPostTypes      []string
	RegisteredPostTypes  []string
	RegisteredBlockTypes []string
}

// ContextProvider produces platform snapshots for event payloads.
type ContextProvider interface {
	Snapshot() Snapshot
}

// Registry is the mutable platform state: post types and block types
// registered during the init lifecycle. It only holds read-mostly
// metadata; campaign rows are never cached here.
type Registry struct {
	mu         sync.RWMutex
	postTypes  []string
	blockTypes []string
}

// NewRegistry returns an empty platform registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterPostType records a post type, ignoring duplicates.
func (r *Registry) RegisterPostType(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !slices.Contains(r.postTypes, name) {
		r.postTypes = append(r.postTypes, name)
	}
}

// RegisterBlockType records a block type, ignoring duplicates.
func (r *Registry) RegisterBlockType(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !slices.Contains(r.blockTypes, name) {
		r.blockTypes = append(r.blockTypes, name)
	}
}

// Snapshot returns a copy of the current platform metadata.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Snapshot{
		EntityPostTypes:      []string{CampaignPostType},
		RegisteredPostTypes:  slices.Clone(r.postTypes),
		RegisteredBlockTypes: slices.Clone(r.blockTypes),
	}
}

// CachedContextProvider memoizes the first snapshot it takes. It is
// scoped to a single request: callers create one per request or call
// Reset between requests. Registrations made after the first snapshot
// are not visible until then.
type CachedContextProvider struct {
	source ContextProvider

	mu     sync.Mutex
	cached *Snapshot
}

// NewCachedContextProvider wraps a provider with request-scoped caching.
func NewCachedContextProvider(source ContextProvider) *CachedContextProvider {
	return &CachedContextProvider{source: source}
}

// Snapshot returns the cached snapshot, taking one on first use.
func (p *CachedContextProvider) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cached == nil {
		snapshot := p.source.Snapshot()
		p.cached = &snapshot
	}
	return *p.cached
}

// Reset drops the cached snapshot at a request boundary.
func (p *CachedContextProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cached = nil
}
