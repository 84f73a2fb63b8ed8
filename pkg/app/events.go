// Package app is the bubbletea program for the bird page. It defines the
// event types, the root model, the key map and focus navigation.
//
// The root model owns the scroll viewport. Every scroll or resize feeds
// the scroll monitor (which drives the header style) and the page's
// reveal observer; reveal transitions are animated by frame ticks that run
// only while something is mid-transition.
package app

import (
	"time"

	"github.com/birdcapital/bird/pkg/content"
)

// CatalogEvent carries a reloaded catalog into the update loop. On error
// Catalog is nil and the current page stays.
type CatalogEvent struct {
	Catalog   *content.Catalog
	Err       error
	Timestamp time.Time
}

// FrameEvent is sent by the frame ticker while a reveal is animating.
type FrameEvent struct {
	Time time.Time
}

// FocusEvent requests that focus move to a specific zone.
type FocusEvent struct {
	Zone string
}

// ScrollToEvent scrolls the page to a section anchor.
type ScrollToEvent struct {
	Anchor string
}

// ThemeChangeEvent switches the active color theme.
type ThemeChangeEvent struct {
	Theme string
}
