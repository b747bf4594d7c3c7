package nav

import (
	"fmt"

	"github.com/yildizm/NanoLab/internal/logger"
)

// Navigator tracks the current page with back and forward stacks of
// previously visited indices.
//
// Entries pushed by GoBack and GoForward are not checked against the stack
// top, so alternating back/forward can leave repeated entries. Only
// SwitchTo suppresses consecutive duplicates.
type Navigator struct {
	registry *Registry
	history  []int
	forward  []int
	current  int
	log      *logger.Logger
}

// NewNavigator creates a navigator positioned on the first registered page
// and enters it
func NewNavigator(registry *Registry, log *logger.Logger) (*Navigator, error) {
	if registry == nil || registry.Len() == 0 {
		return nil, fmt.Errorf("navigator requires at least one page")
	}
	if log == nil {
		log = logger.Nop()
	}
	n := &Navigator{
		registry: registry,
		log:      log.WithComponent("nav"),
	}
	registry.Page(0).OnEnter()
	return n, nil
}

// SwitchTo makes id the current page. With record set, the previous page
// is pushed onto history (unless it already tops it) and the forward stack
// is cleared.
func (n *Navigator) SwitchTo(id PageID, record bool) error {
	idx, err := n.registry.Lookup(id)
	if err != nil {
		n.log.Warn("switch rejected: %v", err)
		return err
	}

	if record {
		if len(n.history) == 0 || n.history[len(n.history)-1] != n.current {
			n.history = append(n.history, n.current)
		}
		n.forward = n.forward[:0]
	}

	n.setCurrent(idx)
	n.log.DebugWithFields("switched", []logger.Field{
		logger.F("page", id),
		logger.F("record", record),
		logger.F("history", len(n.history)),
	})
	return nil
}

// GoBack returns to the most recent history entry. It reports false and
// changes nothing when history is empty.
func (n *Navigator) GoBack() bool {
	if len(n.history) == 0 {
		return false
	}
	idx := n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	n.forward = append(n.forward, n.current)
	n.setCurrent(idx)
	return true
}

// GoForward undoes the most recent GoBack. It reports false and changes
// nothing when the forward stack is empty.
func (n *Navigator) GoForward() bool {
	if len(n.forward) == 0 {
		return false
	}
	idx := n.forward[len(n.forward)-1]
	n.forward = n.forward[:len(n.forward)-1]
	n.history = append(n.history, n.current)
	n.setCurrent(idx)
	return true
}

func (n *Navigator) setCurrent(idx int) {
	if idx == n.current {
		return
	}
	if prev := n.registry.Page(n.current); prev != nil {
		prev.OnLeave()
	}
	n.current = idx
	if next := n.registry.Page(idx); next != nil {
		next.OnEnter()
	}
}

// CurrentIndex returns the index of the displayed page
func (n *Navigator) CurrentIndex() int {
	return n.current
}

// Current returns the displayed page
func (n *Navigator) Current() Page {
	return n.registry.Page(n.current)
}

// CurrentID returns the identifier of the displayed page
func (n *Navigator) CurrentID() PageID {
	return n.Current().ID()
}

// History returns a copy of the back stack, oldest first
func (n *Navigator) History() []int {
	return append([]int(nil), n.history...)
}

// Forward returns a copy of the forward stack, oldest first
func (n *Navigator) Forward() []int {
	return append([]int(nil), n.forward...)
}

// CanGoBack reports whether GoBack would move
func (n *Navigator) CanGoBack() bool { return len(n.history) > 0 }

// CanGoForward reports whether GoForward would move
func (n *Navigator) CanGoForward() bool { return len(n.forward) > 0 }

// Registry returns the underlying page registry
func (n *Navigator) Registry() *Registry { return n.registry }
