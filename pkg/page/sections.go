package page

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/birdcapital/bird/pkg/accordion"
	"github.com/birdcapital/bird/pkg/components"
	"github.com/birdcapital/bird/pkg/content"
	"github.com/birdcapital/bird/pkg/layout"
	"github.com/birdcapital/bird/pkg/theme"
)

const (
	defaultImageRows = 8
	stripRows        = 3 // decorative background strips
	sideMinWidth     = 50
	swatchWidth      = 4
)

// build creates every block in page order. It runs once per Composer;
// Layout only redraws the blocks it creates.
func (c *Composer) build() {
	c.buildHero()
	c.buildValue()
	c.buildPhilosophy()
	c.buildProcess()
	c.buildFAQ()
	c.buildFooter()
}

func (c *Composer) narrow() bool { return c.width < c.opts.NarrowWidth }

// grid lays out spans in a gridCols grid, collapsing when narrow.
func (c *Composer) grid(spans []layout.Span) func(layout.Rect, int) [][]layout.Rect {
	return func(area layout.Rect, _ int) [][]layout.Rect {
		narrow := 0
		if c.narrow() {
			narrow = area.Width + 1
		}
		return layout.Columns(area, gridCols, columnGap, narrow, spans...)
	}
}

func (c *Composer) buildHero() {
	h := c.cat.Hero
	copyBlock := &block{name: "hero", draw: c.drawHeroCopy}
	g := &group{anchor: h.Anchor, blocks: []*block{copyBlock}, place: single}

	if c.opts.Images != nil && h.Image.Src != "" {
		g.blocks = append(g.blocks, &block{name: "hero-image", draw: c.imageDraw(h.Image)})
		g.place = func(area layout.Rect, _ int) [][]layout.Rect {
			if c.narrow() {
				return [][]layout.Rect{{area}, {area}}
			}
			return [][]layout.Rect{layout.SplitHorizontal(area, columnGap*2, layout.Fill{Weight: 1}, layout.Fill{Weight: 1})}
		}
	}
	c.addGroup(g, true)

	if h.Primary.Label != "" {
		c.targets = append(c.targets, target{zone: ZonePrimary, block: copyBlock, href: h.Primary.Href, faq: -1})
	}
	if h.Secondary.Label != "" {
		c.targets = append(c.targets, target{zone: ZoneSecondary, block: copyBlock, href: h.Secondary.Href, faq: -1})
	}
}

func (c *Composer) drawHeroCopy(w int) []string {
	h := c.cat.Hero
	st := c.st

	var out []string
	out = append(out, styled(components.Wrap(h.Heading, w), st.Heading)...)
	if h.Accent != "" {
		out = append(out, styled(components.Wrap(h.Accent, w), st.Highlight)...)
	}
	if h.Body != "" {
		out = append(out, "")
		out = append(out, styled(components.Wrap(h.Body, w), st.Muted)...)
	}

	var buttons []string
	if h.Primary.Label != "" {
		buttons = append(buttons, c.button(ZonePrimary, h.Primary.Label, st.Primary))
	}
	if h.Secondary.Label != "" {
		buttons = append(buttons, c.button(ZoneSecondary, h.Secondary.Label, st.Secondary))
	}
	if len(buttons) > 0 {
		out = append(out, "")
		row := strings.Join(buttons, "  ")
		if components.VisibleLen(row) > w {
			out = append(out, buttons...)
		} else {
			out = append(out, row)
		}
	}

	if len(h.Stats) > 0 {
		out = append(out, "")
		cons := make([]layout.Constraint, len(h.Stats))
		for i := range cons {
			cons[i] = layout.Fill{Weight: 1}
		}
		rects := layout.SplitHorizontal(layout.Rect{Width: w}, 1, cons...)
		widths := make([]int, len(rects))
		cols := make([][]string, len(rects))
		for i, s := range h.Stats {
			widths[i] = rects[i].Width
			cols[i] = []string{st.Title.Render(s.Value), st.Muted.Render(s.Label)}
		}
		out = append(out, components.JoinColumns(1, widths, cols...)...)
	}
	return out
}

// button renders a call to action, marked for clicks and flagged when
// focused.
func (c *Composer) button(zone, label string, style lipgloss.Style) string {
	s := style.Render(label)
	if c.focus == zone {
		s = c.st.LinkFocus.Render("▸") + s
	}
	return c.opts.Mark.Mark(zone, s)
}

// imageDraw returns a draw func for img at its configured row count.
func (c *Composer) imageDraw(img content.Image) func(int) []string {
	return func(w int) []string {
		return c.imageRows(img, w, 0)
	}
}

func (c *Composer) imageRows(img content.Image, w, rows int) []string {
	if c.opts.Images == nil || img.Src == "" || w <= 0 {
		return nil
	}
	if rows <= 0 {
		rows = img.Rows
	}
	if rows <= 0 {
		rows = defaultImageRows
	}
	return c.opts.Images.Block(c.cat.ImagePath(img), img.Alt, w, rows)
}

// intro is a section heading with an optional lead paragraph.
func (c *Composer) intro(name, anchor, heading, body string, align components.Align) {
	if heading == "" && body == "" {
		return
	}
	b := &block{name: name, draw: func(w int) []string {
		var out []string
		for _, l := range components.Wrap(heading, w) {
			out = append(out, components.Place(c.st.Heading.Render(l), w, align))
		}
		if body != "" {
			out = append(out, "")
			for _, l := range components.Wrap(body, min(w, 72)) {
				out = append(out, components.Place(c.st.Muted.Render(l), w, align))
			}
		}
		return out
	}}
	c.addGroup(&group{anchor: anchor, gap: sectionGap, blocks: []*block{b}, place: single}, true)
}

func (c *Composer) buildValue() {
	v := c.cat.Value
	c.intro("value", v.Anchor, v.Heading, v.Body, components.AlignLeft)
	if len(v.Cards) == 0 {
		return
	}

	g := &group{gap: rowGap + 1}
	if len(c.groups) == 0 || c.groups[len(c.groups)-1].anchor != v.Anchor {
		g.anchor, g.gap = v.Anchor, sectionGap
	}
	spans := make([]layout.Span, len(v.Cards))
	for i, card := range v.Cards {
		spans[i] = layout.Span{Cols: card.Span}
		g.blocks = append(g.blocks, &block{
			name: "card-" + card.Title,
			draw: c.drawValueCard(card),
			fill: cardFill,
		})
	}
	g.place = c.grid(spans)
	c.addGroup(g, true)
}

func (c *Composer) drawValueCard(card content.Card) func(int) []string {
	return func(w int) []string {
		return c.card(w, card.Image, card.Side, func(tw int) []string {
			text := []string{""}
			text = append(text, c.onCard(c.st.Title, components.Wrap(card.Title, tw))...)
			if card.Body != "" {
				text = append(text, "")
				text = append(text, c.onCard(c.st.Muted, components.Wrap(card.Body, tw))...)
			}
			return text
		})
	}
}

// card frames text and an image on the card surface. Side images sit to
// the right of the text on wide layouts and below it otherwise. text is
// called with the width left for the copy.
func (c *Composer) card(w int, img content.Image, side bool, text func(int) []string) []string {
	bg := c.st.Card
	inner := max(w-2, 1)
	pad := func(s string, width int) string {
		return s + bg.Render(strings.Repeat(" ", max(width-components.VisibleLen(s), 0)))
	}
	edge := bg.Render(" ")

	if side && !c.narrow() && w >= sideMinWidth && c.opts.Images != nil && img.Src != "" {
		rects := layout.SplitHorizontal(layout.Rect{Width: inner}, columnGap, layout.Fill{Weight: 1}, layout.Fill{Weight: 1})
		tw, iw := rects[0].Width, rects[1].Width
		copyRows := text(tw)
		pic := c.imageRows(img, iw, 0)
		h := max(len(copyRows), len(pic)+2)
		out := make([]string, h)
		for i := range out {
			left := ""
			if i < len(copyRows) {
				left = copyRows[i]
			}
			right := bg.Render(strings.Repeat(" ", iw))
			if i >= 1 && i-1 < len(pic) {
				right = pic[i-1]
			}
			out[i] = edge + pad(left, tw) + bg.Render(strings.Repeat(" ", columnGap)) + right + edge
		}
		return out
	}

	copyRows := text(inner)
	out := make([]string, 0, len(copyRows)+img.Rows+2)
	for _, l := range copyRows {
		out = append(out, edge+pad(l, inner)+edge)
	}
	if pic := c.imageRows(img, inner, 0); len(pic) > 0 {
		out = append(out, edge+pad("", inner)+edge)
		for _, l := range pic {
			out = append(out, edge+l+edge)
		}
	}
	out = append(out, edge+pad("", inner)+edge)
	return out
}

// onCard renders lines in style on the card surface.
func (c *Composer) onCard(style lipgloss.Style, lines []string) []string {
	return styled(lines, style.Background(c.st.Card.GetBackground()))
}

func (c *Composer) buildPhilosophy() {
	p := c.cat.Philosophy
	if p.Heading == "" && p.Body == "" {
		return
	}
	yellow, red := p.Yellow, p.Red
	if yellow == "" {
		yellow = c.opts.Theme.Yellow
	}
	if red == "" {
		red = c.opts.Theme.Red
	}

	b := &block{name: "philosophy", draw: func(w int) []string {
		bar := theme.Swatch(yellow, swatchWidth)
		out := []string{
			components.Place(bar, w, components.AlignLeft),
			components.Place(bar, w, components.AlignLeft),
			"",
		}
		for _, l := range components.Wrap(p.Heading, min(w, 60)) {
			out = append(out, components.Place(c.st.Heading.Render(l), w, components.AlignCenter))
		}
		if p.Body != "" {
			out = append(out, "")
			for _, l := range components.Wrap(p.Body, min(w, 64)) {
				out = append(out, components.Place(c.st.Muted.Render(l), w, components.AlignCenter))
			}
		}
		bar = theme.Swatch(red, swatchWidth)
		out = append(out, "",
			components.Place(bar, w, components.AlignRight),
			components.Place(bar, w, components.AlignRight),
		)
		return out
	}}
	c.addGroup(&group{anchor: p.Anchor, gap: sectionGap, blocks: []*block{b}, place: single}, true)
}

func (c *Composer) buildProcess() {
	p := c.cat.Process
	c.intro("process", p.Anchor, p.Heading, p.Body, components.AlignCenter)
	if len(p.Cards) == 0 {
		return
	}

	g := &group{gap: rowGap + 1}
	if len(c.groups) == 0 || c.groups[len(c.groups)-1].anchor != p.Anchor {
		g.anchor, g.gap = p.Anchor, sectionGap
	}
	spans := make([]layout.Span, len(p.Cards))
	for i, pc := range p.Cards {
		spans[i] = layout.Span{Cols: pc.Span}
		g.blocks = append(g.blocks, &block{
			name: "process-" + pc.Steps[0].Number,
			draw: c.drawProcessCard(pc),
			fill: cardFill,
		})
	}
	g.place = c.grid(spans)
	c.addGroup(g, true)
}

func (c *Composer) drawProcessCard(pc content.ProcessCard) func(int) []string {
	return func(w int) []string {
		return c.card(w, pc.Image, pc.Side, func(tw int) []string {
			text := []string{""}
			if pc.Kicker != "" {
				text = append(text, c.onCard(c.st.Kicker, []string{pc.Kicker})...)
				text = append(text, "")
			}
			for i, s := range pc.Steps {
				if i > 0 {
					text = append(text, "")
				}
				num := c.st.Highlight.Background(c.st.Card.GetBackground()).Render(s.Number)
				title := c.st.Title.Background(c.st.Card.GetBackground()).Render(s.Title)
				text = append(text, num+c.st.Card.Render("  ")+title)
				text = append(text, c.onCard(c.st.Muted, components.Wrap(s.Body, tw))...)
			}
			return text
		})
	}
}

func (c *Composer) buildFAQ() {
	f := c.cat.FAQ
	head := &block{name: "faq", draw: func(w int) []string {
		var out []string
		for _, l := range components.Wrap(f.Heading, w) {
			out = append(out, components.Place(c.st.Heading.Render(l), w, components.AlignCenter))
		}
		if f.Body != "" {
			for _, l := range components.Wrap(f.Body, min(w, 72)) {
				out = append(out, components.Place(c.st.Muted.Render(l), w, components.AlignCenter))
			}
		}
		return out
	}}
	c.addGroup(&group{anchor: f.Anchor, gap: sectionGap, blocks: []*block{head}, place: single}, true)

	if c.faq.Len() == 0 {
		return
	}
	backdrop := func(w int) []string { return c.imageRows(f.Background, w, stripRows) }
	g := &group{gap: rowGap + 1, place: stacked(c.faq.Len())}
	for i := range c.faq.Len() {
		b := &block{name: accordion.ZoneID(i), draw: func(w int) []string {
			w = min(w, 96)
			v := c.faq.Views()[i]
			return accordion.RenderItem(v, w, c.st, c.focus == accordion.ZoneID(i), c.opts.Mark, backdrop)
		}}
		g.blocks = append(g.blocks, b)
		c.targets = append(c.targets, target{zone: accordion.ZoneID(i), block: b, faq: i})
	}
	c.addGroup(g, true)
}

func (c *Composer) buildFooter() {
	f := c.cat.Footer
	b := &block{name: "footer", fill: footerFill, draw: c.drawFooter}
	c.addGroup(&group{anchor: f.Anchor, gap: sectionGap, blocks: []*block{b}, place: fullWidth}, false)
}

func (c *Composer) drawFooter(w int) []string {
	f := c.cat.Footer
	st := c.st
	margin := 2
	if w > c.opts.MaxWidth && c.opts.MaxWidth > 0 {
		margin = (w-c.opts.MaxWidth)/2 + 2
	}
	inner := max(w-2*margin, 1)
	line := func(s string) string {
		lead := st.Footer.Render(strings.Repeat(" ", margin))
		rest := max(w-margin-components.VisibleLen(s), 0)
		return lead + s + st.Footer.Render(strings.Repeat(" ", rest))
	}
	blank := st.Footer.Render(strings.Repeat(" ", w))

	var out []string
	if strip := c.imageRows(f.Background, w, stripRows); len(strip) > 0 {
		out = append(out, strip...)
	}
	out = append(out, blank)
	out = append(out, line(st.Footer.Bold(true).Render("◆ "+c.cat.Brand.Name)))
	for _, l := range components.Wrap(f.Blurb, min(inner, 56)) {
		out = append(out, line(st.FooterDim.Render(l)))
	}

	if len(f.Columns) > 0 {
		out = append(out, blank)
		colW := max((inner-columnGap*(len(f.Columns)-1))/len(f.Columns), 1)
		if c.narrow() {
			for _, col := range f.Columns {
				out = append(out, line(st.Footer.Bold(true).Render(col.Title)))
				for _, l := range col.Links {
					out = append(out, line(st.FooterDim.Render(l.Label)))
				}
				out = append(out, blank)
			}
		} else {
			rows := 0
			for _, col := range f.Columns {
				rows = max(rows, len(col.Links)+1)
			}
			sep := st.Footer.Render(strings.Repeat(" ", columnGap))
			for r := range rows {
				cells := make([]string, len(f.Columns))
				for i, col := range f.Columns {
					text, style := "", st.FooterDim
					switch {
					case r == 0:
						text, style = col.Title, st.Footer.Bold(true)
					case r-1 < len(col.Links):
						text = col.Links[r-1].Label
					}
					cells[i] = style.Render(components.PadRight(components.Truncate(text, colW), colW))
				}
				out = append(out, line(strings.Join(cells, sep)))
			}
			out = append(out, blank)
		}
	}

	out = append(out, line(st.FooterDim.Render(strings.Repeat("─", inner))))
	out = append(out, line(st.FooterDim.Render(f.CopyrightLine(c.opts.Year))))
	out = append(out, blank)
	return out
}

func cardFill(st theme.Styles) lipgloss.Style   { return st.Card }
func footerFill(st theme.Styles) lipgloss.Style { return st.Footer }

// styled renders every line with s.
func styled(lines []string, s lipgloss.Style) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = s.Render(l)
	}
	return out
}
