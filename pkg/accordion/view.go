package accordion

import (
	"fmt"

	"github.com/birdcapital/bird/pkg/components"
	"github.com/birdcapital/bird/pkg/theme"
)

const (
	// GlyphExpand is shown on closed items.
	GlyphExpand = "+"
	// GlyphCollapse is shown on the open item.
	GlyphCollapse = "−"
)

// ZoneID names the clickable region of item i.
func ZoneID(i int) string { return fmt.Sprintf("faq-%d", i) }

// RenderItem draws one item as width-wide rows. Closed items show the
// question on the neutral surface; the open item adds the answer and uses
// the accent background, with the rows from backdrop (drawn at the inner
// width) between question and answer. The first row carries the click zone
// and the expand/collapse glyph.
func RenderItem(v ItemView, width int, st theme.Styles, focused bool, mark components.Marker, backdrop func(w int) []string) []string {
	if width < 8 {
		width = 8
	}
	inner := width - 4

	glyph := GlyphExpand
	bg := st.FAQClosed
	if v.Open {
		glyph = GlyphCollapse
		bg = st.FAQOpen
	}
	text := func(r string) string {
		return bg.Render("  " + components.PadRight(components.Truncate(r, inner), inner) + "  ")
	}

	out := []string{text("")}
	for i, line := range components.Wrap(v.Question, inner-2) {
		if i == 0 {
			line = components.PadRight(line, inner-1) + glyph
		}
		out = append(out, text(line))
	}
	if v.Open {
		out = append(out, text(""))
		var art []string
		if backdrop != nil {
			art = backdrop(inner)
		}
		// Image rows carry their own escapes and are not re-styled.
		for _, r := range art {
			out = append(out, bg.Render("  ")+r+bg.Render("  "))
		}
		if len(art) > 0 {
			out = append(out, text(""))
		}
		for _, line := range components.Wrap(v.Answer, inner-2) {
			out = append(out, text(line))
		}
	}
	out = append(out, text(""))

	if focused {
		out[1] = st.LinkFocus.Render("▌") + components.Truncate(out[1], width-1)
	}
	out[1] = mark.Mark(ZoneID(v.Index), out[1])
	return out
}
