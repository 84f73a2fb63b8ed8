package app

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/birdcapital/bird/pkg/components"
	"github.com/birdcapital/bird/pkg/config"
	"github.com/birdcapital/bird/pkg/content"
	"github.com/birdcapital/bird/pkg/header"
	"github.com/birdcapital/bird/pkg/image"
	"github.com/birdcapital/bird/pkg/layout"
	"github.com/birdcapital/bird/pkg/page"
	"github.com/birdcapital/bird/pkg/scroll"
	"github.com/birdcapital/bird/pkg/terminal"
	"github.com/birdcapital/bird/pkg/theme"
)

// Options configures the root model.
type Options struct {
	Config  config.Config
	Catalog *content.Catalog // nil uses the embedded catalog
	Theme   theme.Theme

	// Images draws image blocks. Nil leaves images out of the page.
	Images *image.Renderer
	// CellHeight is the pixel height of one row, used to express the
	// scroll offset in pixels. Zero means terminal.DefaultCellHeight.
	CellHeight int
	// Zones tracks clickable regions. Nil disables mouse activation.
	Zones *zone.Manager
	// Themes is the cycle order of the theme key. Empty means all
	// registered themes.
	Themes []string

	Logger *slog.Logger
	Now    func() time.Time
}

// Model is the root bubbletea model.
type Model struct {
	cfg    config.Config
	th     theme.Theme
	st     theme.Styles
	cat    *content.Catalog
	images *image.Renderer
	zones  *zone.Manager
	themes []string
	cellH  int

	monitor *scroll.Monitor
	header  *header.Controller
	page    *page.Composer

	vp       viewport.Model
	doc      []string
	keys     KeyMap
	help     help.Model
	showHelp bool

	width   int
	height  int
	focus   string
	ticking bool
	status  string
	now     func() time.Time
	logger  *slog.Logger
}

// New creates the root model and mounts the page for opts.Catalog.
func New(opts Options) Model {
	if opts.Catalog == nil {
		opts.Catalog = content.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = terminal.DefaultCellHeight
	}
	if opts.Theme.Name == "" {
		opts.Theme = theme.Get(opts.Config.Theme.Name)
	}
	if len(opts.Themes) == 0 {
		opts.Themes = theme.Names()
	}

	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	m := Model{
		cfg:     opts.Config,
		th:      opts.Theme,
		st:      theme.NewStyles(opts.Theme),
		images:  opts.Images,
		zones:   opts.Zones,
		themes:  opts.Themes,
		cellH:   opts.CellHeight,
		monitor: scroll.NewMonitor(),
		vp:      vp,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		now:     opts.Now,
		logger:  opts.Logger,
	}
	if m.images != nil {
		m.images.SetPalette(paletteFor(m.th))
	}
	m.mount(opts.Catalog)
	return m
}

// mount builds the header and page for cat.
func (m *Model) mount(cat *content.Catalog) {
	m.cat = cat

	links := make([]header.Link, len(cat.Nav.Links))
	for i, l := range cat.Nav.Links {
		links[i] = header.Link{Label: l.Label, Href: l.Href}
	}
	cta := header.Link{Label: cat.Nav.CTA.Label, Href: cat.Nav.CTA.Href}
	m.header = header.New(m.monitor, m.cfg.Header.ScrollThreshold, links, cta)

	logger := m.logger
	m.header.OnStyleChange(func(s header.Style) {
		logger.Debug("header style changed", "style", s.String())
	})
	m.header.OnNavChange(func(n header.NavPanel) {
		logger.Debug("nav panel changed", "open", n.Open)
	})

	m.page = page.New(page.Options{
		Catalog:     cat,
		Theme:       m.th,
		Styles:      m.st,
		Images:      m.images,
		Threshold:   m.cfg.Reveal.Threshold,
		Duration:    m.cfg.Reveal.Duration.Duration,
		Offset:      m.cfg.Reveal.OffsetRows,
		NarrowWidth: m.cfg.General.NarrowWidth,
		MaxWidth:    m.cfg.General.MaxWidth,
		Mark:        m.mark(),
		Logger:      m.logger,
	})
}

func (m *Model) mark() components.Marker {
	if m.zones == nil {
		return components.NoMark
	}
	return m.zones.Mark
}

// Init sets the window title.
func (m Model) Init() tea.Cmd {
	title := m.cat.Brand.Name
	if m.cat.Brand.Tagline != "" {
		title += " · " + m.cat.Brand.Tagline
	}
	return tea.SetWindowTitle(title)
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		cmd := m.sync()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case FrameEvent:
		m.ticking = false
		cmd := m.sync()
		return m, cmd

	case CatalogEvent:
		m.reload(msg)
		cmd := m.sync()
		return m, cmd

	case ThemeChangeEvent:
		m.setTheme(msg.Theme)
		cmd := m.sync()
		return m, cmd

	case FocusEvent:
		m.FocusZone(msg.Zone)
		cmd := m.sync()
		return m, cmd

	case ScrollToEvent:
		m.jump(msg.Anchor)
		cmd := m.sync()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	navOpen := m.header.NavOpen()
	m.status = ""

	switch {
	case key.Matches(msg, k.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, k.Back):
		switch {
		case navOpen:
			m.header.CloseNav()
			m.setFocus("")
		case m.showHelp:
			m.showHelp = false
			m.help.ShowAll = false
		default:
			m.setFocus("")
		}

	case key.Matches(msg, k.Menu):
		m.header.ToggleNav()
		m.setFocus("")

	case key.Matches(msg, k.Next):
		m.CycleFocusForward()

	case key.Matches(msg, k.Prev):
		m.CycleFocusBackward()

	case key.Matches(msg, k.Activate):
		m.activate(m.focus)

	case key.Matches(msg, k.Theme):
		m.setTheme(m.nextTheme())

	case key.Matches(msg, k.Reload):
		if m.cfg.Content.Path != "" {
			return m, LoadCatalogCmd(m.cfg.Content.Path)
		}
		m.status = "embedded catalog; nothing to reload"

	case navOpen:
		// The panel covers the page; scrolling keys do nothing.

	case key.Matches(msg, k.Up):
		m.vp.ScrollUp(1)
	case key.Matches(msg, k.Down):
		m.vp.ScrollDown(1)
	case key.Matches(msg, k.PageUp):
		m.vp.PageUp()
	case key.Matches(msg, k.PageDown):
		m.vp.PageDown()
	case key.Matches(msg, k.Top):
		m.vp.GotoTop()
	case key.Matches(msg, k.Bottom):
		m.vp.GotoBottom()
	}
	cmd := m.sync()
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		if id := m.zoneAt(msg); id != "" {
			m.logger.Debug("click", "zone", id)
			m.activate(id)
		}
		cmd := m.sync()
		return m, cmd
	}
	if m.header.NavOpen() {
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	sync := m.sync()
	return m, tea.Batch(cmd, sync)
}

// zoneAt returns the clickable zone under a mouse event, or "".
func (m *Model) zoneAt(msg tea.MouseMsg) string {
	if m.zones == nil {
		return ""
	}
	for _, id := range m.clickZones() {
		if z := m.zones.Get(id); z != nil && z.InBounds(msg) {
			return id
		}
	}
	return ""
}

func (m *Model) clickZones() []string {
	var ids []string
	if m.header.NavOpen() {
		ids = append(ids, header.ZoneClose)
	} else {
		ids = append(ids, header.ZoneToggle, header.ZoneBrand)
		ids = append(ids, m.page.Targets()...)
	}
	for i := range m.header.Links() {
		ids = append(ids, header.ZoneLink(i))
	}
	return append(ids, header.ZoneApply)
}

// activate performs the action bound to zone.
func (m *Model) activate(id string) {
	switch id {
	case "":
		return
	case header.ZoneToggle:
		m.header.ToggleNav()
		m.setFocus("")
	case header.ZoneClose:
		m.header.CloseNav()
		m.setFocus("")
	case header.ZoneBrand:
		m.header.CloseNav()
		m.vp.GotoTop()
	case header.ZoneApply:
		cta := m.header.CTA()
		m.header.CloseNav()
		m.setFocus("")
		m.jump(cta.Href)
	default:
		if i, ok := m.headerLink(id); ok {
			l := m.header.SelectLink(i)
			m.setFocus("")
			m.jump(l.Href)
			return
		}
		if anchor, ok := m.page.Activate(id); ok && anchor != "" {
			m.jump(anchor)
		}
	}
}

// headerLink parses a header link zone id.
func (m *Model) headerLink(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "nav-")
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(rest)
	if err != nil || i < 0 || i >= len(m.header.Links()) {
		return 0, false
	}
	return i, true
}

// jump scrolls the page so the section anchor is at the top.
func (m *Model) jump(anchor string) {
	row, ok := m.page.Anchor(anchor)
	if !ok {
		m.logger.Debug("no such anchor", "anchor", anchor)
		return
	}
	m.vp.SetYOffset(row)
}

// sync brings everything derived from the scroll offset up to date: the
// scroll monitor, the viewport height (the header shrinks once scrolled),
// the reveal observer and the rendered document. It returns a frame tick
// while a reveal is animating.
func (m *Model) sync() tea.Cmd {
	if m.width <= 0 || m.height <= 0 {
		return nil
	}
	now := m.now()

	m.page.Layout(m.width)
	m.vp.Width = m.width
	m.vp.Height = m.bodyHeight()
	off := clamp(m.vp.YOffset, 0, max(m.page.Height()-m.vp.Height, 0))

	m.monitor.Update(off * m.cellH)
	if h := m.bodyHeight(); h != m.vp.Height {
		m.vp.Height = h
		off = clamp(off, 0, max(m.page.Height()-h, 0))
	}

	m.page.Observe(layout.Rect{Y: off, Width: m.width, Height: m.vp.Height}, now)
	m.doc = m.page.Render(now)
	m.vp.SetContent(strings.Join(m.doc, "\n"))
	m.vp.SetYOffset(off)

	if !m.ticking && m.page.Animating(now) {
		m.ticking = true
		return FrameCmd(m.cfg.Reveal.FrameInterval.Duration)
	}
	return nil
}

func (m *Model) bodyHeight() int {
	return max(m.height-header.Height(m.header.Style())-lipgloss.Height(m.statusView()), 1)
}

// reload swaps in a new catalog, keeping the open FAQ item when it still
// exists. A failed reload keeps the current page.
func (m *Model) reload(ev CatalogEvent) {
	if ev.Err != nil {
		m.status = "catalog: " + ev.Err.Error()
		m.logger.Warn("catalog reload rejected", "err", ev.Err)
		return
	}
	if ev.Catalog == nil {
		return
	}
	open := m.page.FAQ().Open()

	m.header.Dispose()
	m.page.Close()
	if m.images != nil {
		m.images.Loader().Forget()
		m.images.Cache().Invalidate()
	}
	m.mount(ev.Catalog)
	m.focus = ""

	faq := m.page.FAQ()
	if i, ok := open.Index(); ok && i > 0 && i < faq.Len() {
		faq.Toggle(i)
	} else if open.IsNone() && faq.Len() > 0 {
		faq.Toggle(0)
	}
	m.status = "catalog reloaded"
	m.logger.Info("catalog reloaded", "faq", faq.Len(), "open", faq.Open().String())
}

func (m *Model) setTheme(name string) {
	th, ok := theme.Lookup(name)
	if !ok {
		m.status = fmt.Sprintf("unknown theme %q", name)
		return
	}
	m.th = th
	m.st = theme.NewStyles(th)
	m.page.SetTheme(th, m.st)
	if m.images != nil {
		m.images.SetPalette(paletteFor(th))
	}
	m.status = "theme: " + th.Name
}

func (m *Model) nextTheme() string {
	if len(m.themes) == 0 {
		return m.th.Name
	}
	for i, n := range m.themes {
		if n == m.th.Name {
			return m.themes[(i+1)%len(m.themes)]
		}
	}
	return m.themes[0]
}

// paletteFor colors image placeholders to match th.
func paletteFor(th theme.Theme) image.Palette {
	return image.Palette{From: th.SurfaceAlt, To: th.Overlay, Text: th.AccentText}
}

// View renders the header, the visible slice of the page and the status
// bar. The navigation panel replaces header and page while open.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	status := m.statusView()
	bodyH := max(m.height-lipgloss.Height(status), 0)

	hv := header.View{
		Brand:       m.cat.Brand.Name,
		Width:       m.width,
		NarrowWidth: m.cfg.General.NarrowWidth,
		Focus:       -1,
		Styles:      m.st,
		Mark:        m.mark(),
	}
	if i, ok := m.headerLink(m.focus); ok {
		hv.Focus = i
	}

	var rows []string
	if m.header.NavOpen() {
		rows = m.header.RenderOverlay(hv, bodyH)
	} else {
		rows = append(m.header.Render(hv), m.visibleLines()...)
	}
	rows = components.FitBlock(rows, m.width, bodyH)

	out := strings.Join(append(rows, status), "\n")
	if m.zones != nil {
		out = m.zones.Scan(out)
	}
	return out
}

// visibleLines returns the rows of the document inside the viewport.
func (m *Model) visibleLines() []string {
	off := clamp(m.vp.YOffset, 0, len(m.doc))
	end := min(off+m.vp.Height, len(m.doc))
	return m.doc[off:end]
}

func (m *Model) statusView() string {
	if m.showHelp {
		return m.help.View(m.keys)
	}
	right := fmt.Sprintf(" %3.0f%%", m.vp.ScrollPercent()*100)
	left := m.status
	if left == "" {
		left = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	w := max(m.width-components.VisibleLen(right), 0)
	return m.st.StatusBar.Render(components.PadRight(components.Truncate(left, w), w) + right)
}

// Close disposes the header and releases the page's trackers. It is safe
// to call more than once.
func (m *Model) Close() {
	m.header.Dispose()
	m.page.Close()
}

// Width returns the terminal width.
func (m Model) Width() int { return m.width }

// Height returns the terminal height.
func (m Model) Height() int { return m.height }

// YOffset returns the scroll offset in rows.
func (m Model) YOffset() int { return m.vp.YOffset }

// Focus returns the focused zone id, or "".
func (m Model) Focus() string { return m.focus }

// Status returns the current status bar message.
func (m Model) Status() string { return m.status }

// Theme returns the active theme.
func (m Model) Theme() theme.Theme { return m.th }

// Header returns the header controller.
func (m Model) Header() *header.Controller { return m.header }

// Page returns the page composer.
func (m Model) Page() *page.Composer { return m.page }

// Monitor returns the scroll monitor.
func (m Model) Monitor() *scroll.Monitor { return m.monitor }

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
