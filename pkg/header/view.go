package header

import (
	"fmt"
	"strings"

	"github.com/birdcapital/bird/pkg/components"
	"github.com/birdcapital/bird/pkg/theme"
)

// Zone ids for the clickable header regions.
const (
	ZoneToggle = "nav-toggle"
	ZoneClose  = "nav-close"
	ZoneApply  = "nav-apply"
	ZoneBrand  = "nav-brand"
)

// ZoneLink names the click zone of link i.
func ZoneLink(i int) string { return fmt.Sprintf("nav-%d", i) }

const (
	glyphMenu  = "☰"
	glyphClose = "✕"
	brandMark  = "◆"
)

// View holds what the header needs to draw besides the controller state.
type View struct {
	Brand       string // fund name shown after the mark; empty shows "bird"
	Width       int
	NarrowWidth int // below this, links collapse behind the menu glyph
	Focus       int // focused link index, -1 for none
	Styles      theme.Styles
	Mark        components.Marker
}

// Narrow reports whether the header collapses its links at v.Width.
func (v View) Narrow() bool { return v.Width < v.NarrowWidth }

// Height returns the number of rows the header occupies in style s.
func Height(s Style) int {
	if s == Compact {
		return 2
	}
	return 3
}

// Render draws the header bar. Tall headers get a blank row above and
// below; compact headers sit on the surface color with a rule beneath.
func (c *Controller) Render(v View) []string {
	w := max(v.Width, 1)
	st := v.Styles

	name := v.Brand
	if name == "" {
		name = "bird"
	}
	brand := v.Mark.Mark(ZoneBrand, st.Brand.Render(brandMark+" "+name))

	var right string
	if v.Narrow() {
		glyph := glyphMenu
		if c.nav.Open {
			glyph = glyphClose
		}
		right = v.Mark.Mark(ZoneToggle, st.Heading.Render(glyph))
	} else {
		parts := make([]string, 0, len(c.links)+1)
		for i, l := range c.links {
			label := strings.ToUpper(l.Label)
			if v.Focus == i {
				label = st.LinkFocus.Render(label)
			} else {
				label = st.Link.Render(label)
			}
			parts = append(parts, v.Mark.Mark(ZoneLink(i), label))
		}
		if c.cta.Label != "" {
			parts = append(parts, v.Mark.Mark(ZoneApply, st.Primary.Render(c.cta.Label)))
		}
		right = strings.Join(parts, "   ")
	}

	gap := w - 2 - components.VisibleLen(brand) - components.VisibleLen(right) - 2
	bar := " " + brand + strings.Repeat(" ", max(gap, 1)) + right + " "
	bar = components.PadRight(components.Truncate(bar, w), w)

	if c.Style() == Compact {
		return []string{
			st.Card.Render(bar),
			st.Rule.Render(strings.Repeat("─", w)),
		}
	}
	blank := strings.Repeat(" ", w)
	return []string{blank, bar, blank}
}

// RenderOverlay draws the full-screen navigation panel at width x height.
// It returns nil while the panel is closed.
func (c *Controller) RenderOverlay(v View, height int) []string {
	if !c.nav.Open || height <= 0 {
		return nil
	}
	w := max(v.Width, 1)
	st := v.Styles

	var body []string
	for i, l := range c.links {
		label := st.Title.Italic(true).Render(l.Label)
		if v.Focus == i {
			label = st.LinkFocus.Render(l.Label)
		}
		body = append(body, v.Mark.Mark(ZoneLink(i), label), "")
	}
	if c.cta.Label != "" {
		body = append(body, "", v.Mark.Mark(ZoneApply, st.Primary.Render(c.cta.Label)))
	}

	out := make([]string, height)
	blank := strings.Repeat(" ", w)
	for i := range out {
		out[i] = blank
	}
	out[0] = components.PadLeft(v.Mark.Mark(ZoneClose, st.Heading.Render(glyphClose))+"  ", w)

	top := max((height-len(body))/2, 1)
	for i, line := range body {
		if top+i >= height {
			break
		}
		out[top+i] = components.Place(line, w, components.AlignCenter)
	}
	return out
}
