// Package hook implements the host platform's extension bus: named
// actions and filters invoked synchronously during request handling.
// Callbacks declare a priority and an argument count at registration;
// lower priorities run first and registration order breaks ties.
package hook

import (
	"sort"
	"sync"
)

// DefaultPriority matches the platform's usual callback priority.
const DefaultPriority = 10

// ActionFunc receives the hook arguments, padded or truncated to the
// declared count. Actions produce no value.
type ActionFunc func(args []any)

// FilterFunc receives the value under filtration plus extra arguments
// and returns the (possibly unmodified) value. A filter must always
// return something usable by the caller.
type FilterFunc func(value any, args []any) any

type actionEntry struct {
	priority int
	seq      int
	argc     int
	fn       ActionFunc
}

type filterEntry struct {
	priority int
	seq      int
	argc     int
	fn       FilterFunc
}

// Dispatcher is the hook bus. It is safe for concurrent registration
// and invocation, although the platform model is single-threaded per
// request.
type Dispatcher struct {
	mu      sync.RWMutex
	seq     int
	actions map[string][]actionEntry
	filters map[string][]filterEntry
}

// NewDispatcher returns an empty hook bus.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		actions: make(map[string][]actionEntry),
		filters: make(map[string][]filterEntry),
	}
}

// AddAction registers an action callback for name with the given
// priority and declared argument count.
func (d *Dispatcher) AddAction(name string, priority, argc int, fn ActionFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	entries := append(d.actions[name], actionEntry{priority: priority, seq: d.seq, argc: argc, fn: fn})
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority < entries[j].priority
		}
		return entries[i].seq < entries[j].seq
	})
	d.actions[name] = entries
}

// AddFilter registers a filter callback for name. The declared argc
// counts the extra arguments, not the filtered value itself.
func (d *Dispatcher) AddFilter(name string, priority, argc int, fn FilterFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	entries := append(d.filters[name], filterEntry{priority: priority, seq: d.seq, argc: argc, fn: fn})
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority < entries[j].priority
		}
		return entries[i].seq < entries[j].seq
	})
	d.filters[name] = entries
}

// DoAction fires every action registered for name in priority order.
func (d *Dispatcher) DoAction(name string, args ...any) {
	d.mu.RLock()
	entries := d.actions[name]
	d.mu.RUnlock()
	for _, entry := range entries {
		entry.fn(fitArgs(args, entry.argc))
	}
}

// ApplyFilters threads value through every filter registered for name
// in priority order and returns the final value.
func (d *Dispatcher) ApplyFilters(name string, value any, args ...any) any {
	d.mu.RLock()
	entries := d.filters[name]
	d.mu.RUnlock()
	for _, entry := range entries {
		value = entry.fn(value, fitArgs(args, entry.argc))
	}
	return value
}

// fitArgs pads with nil or truncates so a callback always sees exactly
// the argument count it declared.
func fitArgs(args []any, argc int) []any {
	if len(args) == argc {
		return args
	}
	fitted := make([]any, argc)
	copy(fitted, args)
	return fitted
}
