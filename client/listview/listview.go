// Package listview implements the fetch-filter-render-refetch cycle every
// dashboard repeats: load a collection, derive status counts, and narrow it
// with a client-side search and status filter.
package listview

import (
	"context"
	"strconv"
	"strings"
	"sync"
)

// State is the lifecycle of the backing fetch, a single tagged value rather
// than parallel loading/error booleans.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

// EmptyReason distinguishes "nothing on the server" from "nothing matching
// the current filter" so views can word their empty state correctly.
type EmptyReason int

const (
	NotEmpty EmptyReason = iota
	NoData
	NoMatch
)

// Item is what the view needs to know about an entity to search and count it.
type Item interface {
	ItemID() int
	ItemTitle() string
	ItemDescription() string
	ItemStatus() string
}

// View owns one fetched collection and its filters. Fetch results replace
// the data wholesale; a failed fetch empties the list instead of keeping
// stale records around.
type View[T Item] struct {
	fetch func(ctx context.Context) ([]T, error)

	mu           sync.Mutex
	state        State
	err          error
	items        []T
	search       string
	statusFilter string
}

func New[T Item](fetch func(ctx context.Context) ([]T, error)) *View[T] {
	return &View[T]{fetch: fetch, statusFilter: "all"}
}

// Load fetches the collection. A Load while another one is in flight is a
// no-op, so a double-clicked refresh issues one request, not two.
func (v *View[T]) Load(ctx context.Context) error {
	v.mu.Lock()
	if v.state == StateLoading {
		v.mu.Unlock()
		return nil
	}
	v.state = StateLoading
	v.mu.Unlock()

	items, err := v.fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state = StateError
		v.err = err
		v.items = nil
		return err
	}
	v.state = StateSuccess
	v.err = nil
	v.items = items
	return nil
}

func (v *View[T]) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *View[T]) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// SetSearch sets the case-insensitive substring filter over title,
// description and id.
func (v *View[T]) SetSearch(q string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.search = strings.ToLower(strings.TrimSpace(q))
}

// SetStatusFilter sets the single-select status filter; "all" or the empty
// string disables it.
func (v *View[T]) SetStatusFilter(status string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if status == "" {
		status = "all"
	}
	v.statusFilter = status
}

// Visible returns the items passing both filters, the intersection of the
// search and status predicates.
func (v *View[T]) Visible() []T {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]T, 0, len(v.items))
	for _, item := range v.items {
		if v.matches(item) {
			out = append(out, item)
		}
	}
	return out
}

func (v *View[T]) matches(item T) bool {
	if v.statusFilter != "all" && item.ItemStatus() != v.statusFilter {
		return false
	}
	if v.search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.ItemTitle()), v.search) {
		return true
	}
	if strings.Contains(strings.ToLower(item.ItemDescription()), v.search) {
		return true
	}
	return strings.Contains(strconv.Itoa(item.ItemID()), v.search)
}

// CountsByStatus tallies the full collection, not just the visible slice,
// so summary cards keep showing totals while a filter is active.
func (v *View[T]) CountsByStatus() map[string]int {
	v.mu.Lock()
	defer v.mu.Unlock()

	counts := make(map[string]int)
	for _, item := range v.items {
		counts[item.ItemStatus()]++
	}
	return counts
}

// Empty reports why the visible list is empty, if it is.
func (v *View[T]) Empty() EmptyReason {
	visible := v.Visible()
	if len(visible) > 0 {
		return NotEmpty
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.items) == 0 {
		return NoData
	}
	return NoMatch
}

// Len returns the size of the unfiltered collection.
func (v *View[T]) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.items)
}
