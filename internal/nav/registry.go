package nav

import (
	"errors"
	"fmt"
)

// ErrUnknownPage is returned when a page identifier is not registered
var ErrUnknownPage = errors.New("unknown page")

// PageID identifies a page of the control panel
type PageID string

// Known page identifiers
const (
	PageWelcome            PageID = "welcome"
	PageSettingsMenu       PageID = "settings_menu"
	PageData               PageID = "data"
	PageWater              PageID = "water"
	PageLED                PageID = "led"
	PageFan                PageID = "fan"
	PageCamera             PageID = "camera"
	PageSensor             PageID = "sensor"
	PageAbout              PageID = "about"
	PageStorage            PageID = "storage"
	PageSchedule           PageID = "schedule"
	PageSettingsComparison PageID = "settings_comparison"
)

// AllPageIDs returns every known identifier in display order
func AllPageIDs() []PageID {
	return []PageID{
		PageWelcome, PageSettingsMenu, PageData, PageWater, PageLED, PageFan,
		PageCamera, PageSensor, PageAbout, PageStorage, PageSchedule, PageSettingsComparison,
	}
}

// IsKnown reports whether id belongs to the closed set of page identifiers
func IsKnown(id PageID) bool {
	for _, known := range AllPageIDs() {
		if known == id {
			return true
		}
	}
	return false
}

// Page is a named, independently addressable screen.
// Content rendering is opaque to navigation.
type Page interface {
	ID() PageID
	Title() string
	OnEnter()
	OnLeave()
}

// Registry maps page identifiers to pages. It is immutable once built.
type Registry struct {
	pages []Page
	index map[PageID]int
}

// NewRegistry builds a registry; pages keep their registration order as index
func NewRegistry(pages ...Page) (*Registry, error) {
	r := &Registry{
		pages: make([]Page, 0, len(pages)),
		index: make(map[PageID]int, len(pages)),
	}
	for _, p := range pages {
		if p == nil {
			return nil, fmt.Errorf("nil page at position %d", len(r.pages))
		}
		if _, dup := r.index[p.ID()]; dup {
			return nil, fmt.Errorf("duplicate page %q", p.ID())
		}
		r.index[p.ID()] = len(r.pages)
		r.pages = append(r.pages, p)
	}
	return r, nil
}

// Lookup returns the index of id
func (r *Registry) Lookup(id PageID) (int, error) {
	idx, ok := r.index[id]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownPage, id)
	}
	return idx, nil
}

// Page returns the page at index, or nil when out of range
func (r *Registry) Page(index int) Page {
	if index < 0 || index >= len(r.pages) {
		return nil
	}
	return r.pages[index]
}

// Len returns the number of registered pages
func (r *Registry) Len() int {
	return len(r.pages)
}

// IDs returns registered identifiers in index order
func (r *Registry) IDs() []PageID {
	ids := make([]PageID, len(r.pages))
	for i, p := range r.pages {
		ids[i] = p.ID()
	}
	return ids
}
