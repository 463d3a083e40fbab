package render

import (
	"errors"
	"testing"
)

func TestHandle_TapInvokesCallbackWithRawHref(t *testing.T) {
	var got []string
	set := NewHandleSet(func(href string) { got = append(got, href) })

	handle := set.Acquire("https://example.com/a?b=1#frag")
	handle.Tap()
	handle.Tap()

	if len(got) != 2 || got[0] != "https://example.com/a?b=1#frag" {
		t.Fatalf("tap callback mismatch: %#v", got)
	}
}

func TestHandle_TapAfterReleaseIsDropped(t *testing.T) {
	taps := 0
	set := NewHandleSet(func(string) { taps++ })

	handle := set.Acquire("/docs")
	if err := handle.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	handle.Tap()

	if taps != 0 {
		t.Fatalf("released handle must not fire the callback, got %d taps", taps)
	}
	if !handle.Released() {
		t.Fatalf("handle must report released")
	}
}

func TestHandle_DoubleReleaseFails(t *testing.T) {
	set := NewHandleSet(nil)
	handle := set.Acquire("/docs")

	if err := handle.Release(); err != nil {
		t.Fatalf("first release: %v", err)
	}
	if err := handle.Release(); !errors.Is(err, ErrHandleReleased) {
		t.Fatalf("second release must fail with ErrHandleReleased, got %v", err)
	}
}

func TestHandleSet_AcquireAssignsDistinctIDs(t *testing.T) {
	set := NewHandleSet(nil)

	a := set.Acquire("/a")
	b := set.Acquire("/a")

	if a.ID() == b.ID() {
		t.Fatalf("handles for the same href must still get distinct identities")
	}
	if set.Len() != 2 {
		t.Fatalf("expected two handles, got %d", set.Len())
	}
}

func TestHandleSet_ReleaseAll(t *testing.T) {
	set := NewHandleSet(nil)
	a := set.Acquire("/a")
	b := set.Acquire("/b")

	if err := set.ReleaseAll(); err != nil {
		t.Fatalf("ReleaseAll: %v", err)
	}
	if !a.Released() || !b.Released() {
		t.Fatalf("all handles must be released")
	}
	if set.Len() != 0 {
		t.Fatalf("set must be empty after ReleaseAll, got %d", set.Len())
	}
	if err := set.ReleaseAll(); err != nil {
		t.Fatalf("ReleaseAll on an empty set must be a no-op, got %v", err)
	}
}

func TestHandleSet_ReleaseAllReportsDoubleRelease(t *testing.T) {
	set := NewHandleSet(nil)
	a := set.Acquire("/a")
	b := set.Acquire("/b")

	if err := a.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}

	err := set.ReleaseAll()
	if !errors.Is(err, ErrHandleReleased) {
		t.Fatalf("expected ErrHandleReleased, got %v", err)
	}
	if !b.Released() {
		t.Fatalf("remaining handles must still be released")
	}
}

func TestHandleSet_NilSafe(t *testing.T) {
	var set *HandleSet
	if set.Len() != 0 {
		t.Fatalf("nil set must report zero length")
	}
	if set.Handles() != nil {
		t.Fatalf("nil set must report no handles")
	}
	if err := set.ReleaseAll(); err != nil {
		t.Fatalf("nil set release must be a no-op, got %v", err)
	}
}
