// Package header implements the page header: a scroll-driven style switch
// and the full-screen navigation panel used on narrow terminals.
//
// The two are independent. Scrolling never opens or closes the panel and
// the panel never changes the style.
package header

import (
	"fmt"

	"github.com/birdcapital/bird/pkg/scroll"
)

// DefaultThreshold is the scroll position, in px, past which the header
// turns compact.
const DefaultThreshold = 50

// Style is the header presentation.
type Style int

const (
	// Tall is the transparent, padded header shown at the top of the page.
	Tall Style = iota
	// Compact is the opaque single-row header shown once scrolled.
	Compact
)

// String returns "tall" or "compact".
func (s Style) String() string {
	if s == Compact {
		return "compact"
	}
	return "tall"
}

// Link is one navigation entry.
type Link struct {
	Label string
	Href  string
}

// NavPanel is the open/closed state of the navigation overlay.
type NavPanel struct {
	Open bool
}

// Controller owns the header state.
type Controller struct {
	sub      *scroll.Subscription
	nav      NavPanel
	links    []Link
	cta      Link
	disposed bool
	onNav    []func(NavPanel)
}

// New subscribes to m with threshold and returns a controller with the
// panel closed. A threshold <= 0 uses DefaultThreshold.
func New(m *scroll.Monitor, threshold int, links []Link, cta Link) *Controller {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Controller{
		sub:   m.Subscribe(threshold),
		links: append([]Link(nil), links...),
		cta:   cta,
	}
}

// Style returns the current presentation.
func (c *Controller) Style() Style {
	if c.sub.Scrolled() {
		return Compact
	}
	return Tall
}

// Threshold returns the scroll threshold in px.
func (c *Controller) Threshold() int { return c.sub.Threshold() }

// OnStyleChange registers fn to run whenever the style flips.
func (c *Controller) OnStyleChange(fn func(Style)) {
	if fn == nil {
		return
	}
	c.sub.OnChange(func(scrolled bool) {
		if scrolled {
			fn(Compact)
		} else {
			fn(Tall)
		}
	})
}

// OnNavChange registers fn to run whenever the panel opens or closes.
func (c *Controller) OnNavChange(fn func(NavPanel)) {
	if fn != nil {
		c.onNav = append(c.onNav, fn)
	}
}

// Nav returns the panel state.
func (c *Controller) Nav() NavPanel { return c.nav }

// NavOpen reports whether the panel is open.
func (c *Controller) NavOpen() bool { return c.nav.Open }

// Links returns the navigation entries.
func (c *Controller) Links() []Link { return c.links }

// CTA returns the call-to-action button link.
func (c *Controller) CTA() Link { return c.cta }

// ToggleNav flips the panel.
func (c *Controller) ToggleNav() {
	if c.disposed {
		return
	}
	c.setNav(!c.nav.Open)
}

// CloseNav closes the panel. Closing a closed panel does nothing.
func (c *Controller) CloseNav() {
	if c.disposed {
		return
	}
	c.setNav(false)
}

// SelectLink closes the panel and returns link i. i must be a valid
// index; anything else panics.
func (c *Controller) SelectLink(i int) Link {
	if i < 0 || i >= len(c.links) {
		panic(fmt.Sprintf("header: SelectLink(%d) out of range [0,%d)", i, len(c.links)))
	}
	c.CloseNav()
	return c.links[i]
}

// Dispose releases the scroll subscription. The controller keeps its last
// state and ignores further input. Dispose is idempotent.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.onNav = nil
	c.sub.Dispose()
}

// Disposed reports whether Dispose has been called.
func (c *Controller) Disposed() bool { return c.disposed }

func (c *Controller) setNav(open bool) {
	if c.nav.Open == open {
		return
	}
	c.nav.Open = open
	for _, fn := range c.onNav {
		fn(c.nav)
	}
}
