package render

import (
	"errors"

	"github.com/google/uuid"
)

// ErrHandleReleased reports a double release of an interaction handle.
var ErrHandleReleased = errors.New("render: handle already released")

// Handle binds a tap gesture to the link-tap callback for one link instance.
// Handles are exclusively owned by the lifecycle controller through their
// HandleSet and must be released before the sequence that references them is
// replaced, and on teardown.
type Handle struct {
	id       uuid.UUID
	href     string
	onTap    func(href string)
	released bool
}

// ID returns the handle's unique identity.
func (h *Handle) ID() uuid.UUID {
	return h.id
}

// Href returns the raw link target the handle was acquired for.
func (h *Handle) Href() string {
	return h.href
}

// Released reports whether the handle has been released.
func (h *Handle) Released() bool {
	return h.released
}

// Tap invokes the link-tap callback with the raw href, unmodified. Taps on
// released handles are dropped so superseded sequences cannot fire dangling
// callbacks.
func (h *Handle) Tap() {
	if h.released || h.onTap == nil {
		return
	}
	h.onTap(h.href)
}

// Release detaches the handle. Releasing twice is an error so ownership bugs
// surface instead of hiding.
func (h *Handle) Release() error {
	if h.released {
		return ErrHandleReleased
	}
	h.released = true
	return nil
}

// HandleAcquirer hands out fresh handles during a build pass. The builder
// requests one per link element encountered.
type HandleAcquirer interface {
	Acquire(href string) *Handle
}

// HandleSet owns the handles created during one build pass. The set is
// confined to the lifecycle controller's thread and never accessed
// concurrently.
type HandleSet struct {
	onTap   func(href string)
	handles []*Handle
}

// NewHandleSet returns an empty set whose handles invoke onTap.
func NewHandleSet(onTap func(href string)) *HandleSet {
	return &HandleSet{onTap: onTap}
}

// Acquire creates a live handle keyed by href and records it in the set.
func (s *HandleSet) Acquire(href string) *Handle {
	handle := &Handle{id: uuid.New(), href: href, onTap: s.onTap}
	s.handles = append(s.handles, handle)
	return handle
}

// Len returns the number of handles the set holds, released or not.
func (s *HandleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.handles)
}

// Handles returns the held handles in acquisition order.
func (s *HandleSet) Handles() []*Handle {
	if s == nil {
		return nil
	}
	return append([]*Handle(nil), s.handles...)
}

// ReleaseAll releases every handle exactly once and empties the set. A
// double release anywhere is reported but does not stop the remaining
// handles from being released.
func (s *HandleSet) ReleaseAll() error {
	if s == nil {
		return nil
	}
	var errs []error
	for _, handle := range s.handles {
		if err := handle.Release(); err != nil {
			errs = append(errs, err)
		}
	}
	s.handles = nil
	return errors.Join(errs...)
}
