// Package page composes the scrolling document from the content catalog.
//
// The document is a list of groups laid out top to bottom. A group is one
// or more blocks sharing a row band, like the cards of one grid row. Every
// content block except the footer is wrapped in a reveal container whose
// tracker is attached to the composer's observer, so blocks fade in the
// first time they scroll into view.
package page

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/birdcapital/bird/pkg/accordion"
	"github.com/birdcapital/bird/pkg/components"
	"github.com/birdcapital/bird/pkg/content"
	"github.com/birdcapital/bird/pkg/image"
	"github.com/birdcapital/bird/pkg/layout"
	"github.com/birdcapital/bird/pkg/reveal"
	"github.com/birdcapital/bird/pkg/theme"
)

// Zone ids of the hero call-to-action buttons.
const (
	ZonePrimary   = "hero-primary"
	ZoneSecondary = "hero-secondary"
)

const (
	columnGap  = 2 // cells between grid columns
	rowGap     = 1 // rows between wrapped grid rows and stacked blocks
	sectionGap = 3 // rows between sections
	gridCols   = 3
)

// Options configures a Composer.
type Options struct {
	Catalog *content.Catalog
	Theme   theme.Theme
	Styles  theme.Styles

	// Images draws image blocks. Nil leaves images out of the page.
	Images *image.Renderer

	// Threshold is the visible fraction that reveals a block.
	Threshold float64
	// Duration and Offset shape the reveal transition.
	Duration time.Duration
	Offset   int

	// NarrowWidth is the width below which grids collapse to one column.
	NarrowWidth int
	// MaxWidth caps the content column; wider terminals get side margins.
	MaxWidth int

	// Year is printed in the copyright line. Zero means the current year.
	Year int

	Mark   components.Marker
	Logger *slog.Logger
}

// block is one rectangular piece of the document.
type block struct {
	name string
	draw func(width int) []string
	fill func(theme.Styles) lipgloss.Style // paints rows added to match the group height

	rect      layout.Rect
	lines     []string
	container reveal.Container // zero Tracker means always visible
}

// group is a band of blocks sharing the same rows.
type group struct {
	anchor string
	gap    int // blank rows above the group
	y      int
	height int
	blocks []*block

	// place splits the content column into rows of block rects, one rect
	// per block in order. Y is ignored: rows stack at their drawn height.
	place func(area layout.Rect, width int) [][]layout.Rect
}

// Composer owns the page blocks, their reveal trackers and the FAQ
// accordion. All methods run on the UI goroutine.
type Composer struct {
	opts     Options
	cat      *content.Catalog
	st       theme.Styles
	observer *reveal.Observer
	faq      *accordion.Controller
	groups   []*group
	blocks   []*block
	targets  []target

	width  int
	height int
	focus  string
	dirty  bool
	closed bool
	logger *slog.Logger
}

// target is a focusable element of the page.
type target struct {
	zone  string
	block *block
	href  string // anchor to jump to; empty for FAQ items
	faq   int    // FAQ item index, -1 for links
}

// New builds the page for opts.Catalog. A nil catalog uses the embedded
// default.
func New(opts Options) *Composer {
	if opts.Catalog == nil {
		opts.Catalog = content.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Mark == nil {
		opts.Mark = components.NoMark
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	if opts.Year == 0 {
		opts.Year = time.Now().Year()
	}

	items := make([]accordion.Item, len(opts.Catalog.FAQ.Items))
	for i, qa := range opts.Catalog.FAQ.Items {
		items[i] = accordion.Item{Question: qa.Question, Answer: qa.Answer}
	}

	c := &Composer{
		opts:     opts,
		cat:      opts.Catalog,
		st:       opts.Styles,
		observer: reveal.NewObserver(opts.Threshold),
		faq:      accordion.New(items),
		logger:   opts.Logger,
		dirty:    true,
	}
	c.faq.OnToggle(func(o accordion.Open) {
		c.dirty = true
		c.logger.Debug("faq toggled", "open", o.String())
	})
	c.build()
	return c
}

// addGroup appends a group of blocks. Blocks with reveal set get a tracker
// watching their current rect.
func (c *Composer) addGroup(g *group, reveals bool) {
	for _, b := range g.blocks {
		if reveals {
			t := c.observer.Attach(reveal.ElementFunc(func() layout.Rect { return b.rect }))
			b.container = reveal.Container{Tracker: t, Duration: c.opts.Duration, Offset: c.opts.Offset}
		}
		c.blocks = append(c.blocks, b)
	}
	c.groups = append(c.groups, g)
}

// single places one block across the content column.
func single(area layout.Rect, _ int) [][]layout.Rect {
	return [][]layout.Rect{{area}}
}

// stacked places every block of a group across the content column, one
// per row.
func stacked(n int) func(layout.Rect, int) [][]layout.Rect {
	return func(area layout.Rect, _ int) [][]layout.Rect {
		rows := make([][]layout.Rect, n)
		for i := range rows {
			rows[i] = []layout.Rect{area}
		}
		return rows
	}
}

// fullWidth places one block edge to edge, ignoring the content margins.
func fullWidth(_ layout.Rect, width int) [][]layout.Rect {
	return [][]layout.Rect{{{Width: width}}}
}

// SetTheme restyles the page. Reveal and accordion state are kept.
func (c *Composer) SetTheme(th theme.Theme, st theme.Styles) {
	c.opts.Theme = th
	c.opts.Styles = st
	c.st = st
	c.dirty = true
}

// Observer returns the observer the page's trackers are attached to.
func (c *Composer) Observer() *reveal.Observer { return c.observer }

// FAQ returns the accordion controller of the FAQ section.
func (c *Composer) FAQ() *accordion.Controller { return c.faq }

// Width returns the width of the last layout.
func (c *Composer) Width() int { return c.width }

// Height returns the document height of the last layout.
func (c *Composer) Height() int {
	c.relayout()
	return c.height
}

// Layout positions every block for a document width columns wide.
func (c *Composer) Layout(width int) {
	width = max(width, 1)
	if width == c.width && !c.dirty {
		return
	}
	c.width = width
	c.dirty = false

	maxW := c.opts.MaxWidth
	if maxW <= 0 {
		maxW = width
	}
	cw := min(width, maxW)
	pad := 2
	if cw < 40 {
		pad = 1
	}
	area := layout.Rect{X: (width-cw)/2 + pad, Width: max(cw-2*pad, 1)}

	y := 0
	for i, g := range c.groups {
		if i > 0 {
			y += g.gap
		}
		g.y = y
		g.height = c.layoutGroup(g, g.place(area, width))
		y += g.height
	}
	c.height = y
}

// layoutGroup draws the blocks of g into rows and returns the group
// height. Blocks sharing a row are stretched to the row's tallest block.
func (c *Composer) layoutGroup(g *group, rows [][]layout.Rect) int {
	next := 0
	top := 0
	for r, row := range rows {
		if r > 0 {
			top += rowGap
		}
		bottom := top
		first := next
		for _, rect := range row {
			if next >= len(g.blocks) {
				break
			}
			b := g.blocks[next]
			next++
			b.lines = b.draw(rect.Width)
			b.rect = layout.Rect{X: rect.X, Y: g.y + top, Width: rect.Width}
			bottom = max(bottom, top+len(b.lines))
		}
		for _, b := range g.blocks[first:next] {
			b.rect.Height = bottom - top
			b.lines = c.fit(b, b.rect.Width, b.rect.Height)
		}
		top = bottom
	}
	return top
}

// fit pads a block to w x h, painting extra rows with the block's fill.
func (c *Composer) fit(b *block, w, h int) []string {
	out := components.FitBlock(b.lines, w, h)
	if b.fill != nil {
		blank := b.fill(c.st).Render(strings.Repeat(" ", w))
		for i := len(b.lines); i < len(out); i++ {
			out[i] = blank
		}
	}
	return out
}

func (c *Composer) relayout() {
	if c.dirty && c.width > 0 {
		c.Layout(c.width)
	}
}

// Render returns the whole document, one string per row, with every
// block's reveal presentation at now applied.
func (c *Composer) Render(now time.Time) []string {
	c.relayout()
	doc := make([]string, 0, c.height)
	blank := strings.Repeat(" ", c.width)

	for i, g := range c.groups {
		if i > 0 {
			for range g.gap {
				doc = append(doc, blank)
			}
		}
		rendered := make([][]string, len(g.blocks))
		for j, b := range g.blocks {
			lines := b.lines
			if b.container.Tracker != nil {
				lines = b.container.Render(lines, b.rect.Width, now)
			}
			rendered[j] = lines
		}
		for row := range g.height {
			var sb strings.Builder
			cursor := 0
			for j, b := range g.blocks {
				local := b.rect.Y - g.y
				if row < local || row-local >= len(rendered[j]) {
					continue
				}
				sb.WriteString(strings.Repeat(" ", max(b.rect.X-cursor, 0)))
				sb.WriteString(rendered[j][row-local])
				cursor = b.rect.Right()
			}
			doc = append(doc, components.PadRight(sb.String(), c.width))
		}
	}
	return doc
}

// Observe runs one intersection pass for viewport and returns the number
// of blocks revealed by it.
func (c *Composer) Observe(viewport layout.Rect, now time.Time) int {
	if c.closed {
		return 0
	}
	c.relayout()
	n := c.observer.Observe(viewport, now)
	if n > 0 {
		c.logger.Debug("blocks revealed", "count", n, "viewport", viewport.Y, "pending", c.observer.Watching())
	}
	return n
}

// Animating reports whether any block is mid-transition at now.
func (c *Composer) Animating(now time.Time) bool {
	for _, b := range c.blocks {
		if b.container.Animating(now) {
			return true
		}
	}
	return false
}

// Anchor returns the document row of the section with the given anchor.
// A leading '#' is accepted.
func (c *Composer) Anchor(id string) (int, bool) {
	id = strings.TrimPrefix(id, "#")
	if id == "" {
		return 0, false
	}
	c.relayout()
	for _, g := range c.groups {
		if g.anchor == id {
			return g.y, true
		}
	}
	return 0, false
}

// Targets returns the focusable zone ids in page order.
func (c *Composer) Targets() []string {
	out := make([]string, len(c.targets))
	for i, t := range c.targets {
		out[i] = t.zone
	}
	return out
}

// TargetRect returns the document rect of the block holding zone.
func (c *Composer) TargetRect(zone string) (layout.Rect, bool) {
	c.relayout()
	for _, t := range c.targets {
		if t.zone == zone {
			return t.block.rect, true
		}
	}
	return layout.Rect{}, false
}

// Focus returns the focused zone, or "".
func (c *Composer) Focus() string { return c.focus }

// SetFocus highlights zone. Unknown zones clear the focus.
func (c *Composer) SetFocus(zone string) {
	if !c.owns(zone) {
		zone = ""
	}
	if zone != c.focus {
		c.focus = zone
		c.dirty = true
	}
}

// owns reports whether zone is one of the page's targets.
func (c *Composer) owns(zone string) bool {
	for _, t := range c.targets {
		if t.zone == zone {
			return true
		}
	}
	return false
}

// Activate performs the action bound to zone. Links return the anchor to
// scroll to; FAQ questions toggle their item and return "". ok is false
// for zones the page does not own.
func (c *Composer) Activate(zone string) (anchor string, ok bool) {
	if c.closed {
		return "", false
	}
	for _, t := range c.targets {
		if t.zone != zone {
			continue
		}
		if t.faq >= 0 {
			c.faq.Toggle(t.faq)
			return "", true
		}
		return strings.TrimPrefix(t.href, "#"), true
	}
	return "", false
}

// Close releases every reveal tracker. The page keeps rendering its last
// state but no longer reveals or reacts to activation. Close is
// idempotent.
func (c *Composer) Close() {
	if c.closed {
		return
	}
	c.closed = true
	for _, b := range c.blocks {
		if b.container.Tracker != nil {
			b.container.Tracker.Release()
		}
	}
	c.observer.Disconnect()
}

// Closed reports whether Close has been called.
func (c *Composer) Closed() bool { return c.closed }
