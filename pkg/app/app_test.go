package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birdcapital/bird/pkg/config"
	"github.com/birdcapital/bird/pkg/content"
	"github.com/birdcapital/bird/pkg/header"
	"github.com/birdcapital/bird/pkg/page"
)

// testClock is a settable clock shared by a test model.
type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

// helper to create a model with the embedded catalog and a fixed clock.
func newTestModel() (Model, *testClock) {
	clock := &testClock{now: time.Date(2031, 5, 1, 12, 0, 0, 0, time.UTC)}
	m := New(Options{Config: *config.DefaultConfig(), Now: clock.Now})
	return m, clock
}

// helper to send a message through Update and return the updated model.
func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func sized(w, h int) (Model, *testClock) {
	m, clock := newTestModel()
	m, _ = update(m, tea.WindowSizeMsg{Width: w, Height: h})
	return m, clock
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitReturnsCmd(t *testing.T) {
	m, _ := newTestModel()
	assert.NotNil(t, m.Init(), "expected a window title command")
}

func TestWindowSizeMsgUpdatesDimensions(t *testing.T) {
	m, _ := sized(120, 40)
	assert.Equal(t, 120, m.Width())
	assert.Equal(t, 40, m.Height())
	assert.Len(t, strings.Split(m.View(), "\n"), 40)
}

func TestResizeRevealsVisibleBlocks(t *testing.T) {
	m, _ := newTestModel()
	pending := m.Page().Observer().Watching()

	m, cmd := update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Less(t, m.Page().Observer().Watching(), pending, "blocks in the first screen should be revealed")
	assert.NotNil(t, cmd, "expected a frame tick while the reveal animates")
}

func TestFramesStopWhenSettled(t *testing.T) {
	m, clock := sized(120, 40)

	m, cmd := update(m, FrameEvent{Time: clock.now})
	require.NotNil(t, cmd, "expected another frame mid-transition")

	clock.now = clock.now.Add(2 * time.Second)
	m, cmd = update(m, FrameEvent{Time: clock.now})
	assert.Nil(t, cmd, "frames stop once every reveal settled")
	assert.False(t, m.Page().Animating(clock.now))
}

func TestScrollingCompactsHeader(t *testing.T) {
	m, _ := sized(120, 40)
	require.Equal(t, header.Tall, m.Header().Style())

	// Three rows is 48px, still under the 50px threshold.
	for range 3 {
		m, _ = update(m, runes("j"))
	}
	assert.Equal(t, header.Tall, m.Header().Style(), "at %dpx", m.Monitor().Position())

	m, _ = update(m, runes("j"))
	assert.Equal(t, header.Compact, m.Header().Style(), "at %dpx", m.Monitor().Position())

	m, _ = update(m, runes("g"))
	assert.Equal(t, header.Tall, m.Header().Style())
	assert.Zero(t, m.YOffset())
}

func TestTabCyclesFocusForward(t *testing.T) {
	m, _ := sized(120, 40)

	want := []string{header.ZoneLink(0), header.ZoneLink(1), header.ZoneLink(2), header.ZoneApply, page.ZonePrimary}
	for i, w := range want {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
		require.Equal(t, w, m.Focus(), "after Tab %d", i+1)
	}
}

func TestShiftTabWrapsToLastTarget(t *testing.T) {
	m, _ := sized(120, 40)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, "faq-4", m.Focus())

	r, _ := m.Page().TargetRect("faq-4")
	assert.GreaterOrEqual(t, r.Y, m.YOffset(), "focused item is scrolled into view")
}

func TestNarrowFocusSkipsHiddenLinks(t *testing.T) {
	m, _ := sized(60, 30)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, page.ZonePrimary, m.Focus())
}

func TestEnterOnNavLinkScrollsToAnchor(t *testing.T) {
	m, _ := sized(120, 40)
	m, _ = update(m, FocusEvent{Zone: header.ZoneLink(0)})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	row, _ := m.Page().Anchor("programs")
	assert.Equal(t, row, m.YOffset())
	assert.Empty(t, m.Focus(), "focus is cleared after navigation")
}

func TestMenuKeyTogglesPanel(t *testing.T) {
	m, _ := sized(60, 30)

	m, _ = update(m, runes("m"))
	require.True(t, m.Header().NavOpen())
	assert.Contains(t, m.View(), "Programs", "panel lists the nav links")

	// Scroll keys are ignored behind the panel.
	m, _ = update(m, runes("j"))
	assert.Zero(t, m.YOffset())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Header().NavOpen(), "esc closes the panel")
}

func TestPanelLinkClosesAndNavigates(t *testing.T) {
	m, _ := sized(60, 30)
	m, _ = update(m, runes("m"))
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, header.ZoneLink(1), m.Focus())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Header().NavOpen(), "selecting a link closes the panel")
	assert.NotZero(t, m.YOffset(), "page scrolls toward the footer")
}

func TestEnterTogglesFAQ(t *testing.T) {
	m, _ := sized(120, 40)
	m, _ = update(m, FocusEvent{Zone: "faq-2"})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Page().FAQ().IsOpen(2), "open = %s", m.Page().FAQ().Open())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Page().FAQ().Open().IsNone(), "open = %s", m.Page().FAQ().Open())
}

func TestScrollToEvent(t *testing.T) {
	m, _ := sized(120, 40)
	m, _ = update(m, ScrollToEvent{Anchor: "#faq"})

	row, _ := m.Page().Anchor("faq")
	maxOff := m.Page().Height() - m.vp.Height
	assert.Equal(t, min(row, maxOff), m.YOffset())
	assert.Equal(t, header.Compact, m.Header().Style(), "jumping down the page compacts the header")
}

func TestCatalogEventError(t *testing.T) {
	m, _ := sized(120, 40)
	before := m.Page()

	m, _ = update(m, CatalogEvent{Err: errors.New("bad yaml")})
	assert.Contains(t, m.Status(), "bad yaml")
	assert.Same(t, before, m.Page(), "a failed reload keeps the current page")
	assert.False(t, before.Closed())
}

func TestCatalogEventSwapsPage(t *testing.T) {
	m, _ := sized(120, 40)
	m.Page().FAQ().Toggle(3)
	old := m.Page()
	oldHeader := m.Header()

	cat := content.Default()
	cat.Hero.Heading = "Reloaded heading"
	cat.Brand.Name = "Wren Ventures"
	m, _ = update(m, CatalogEvent{Catalog: cat})

	assert.NotSame(t, old, m.Page())
	assert.True(t, old.Closed(), "old page is closed")
	assert.True(t, oldHeader.Disposed(), "old header is disposed")
	assert.Equal(t, 1, m.Monitor().Listeners())
	assert.True(t, m.Page().FAQ().IsOpen(3), "open = %s, want at(3) carried over", m.Page().FAQ().Open())
	assert.Contains(t, m.View(), "Wren Ventures", "header shows the reloaded brand name")
}

func TestThemeChangeEvent(t *testing.T) {
	m, _ := sized(120, 40)
	m, _ = update(m, ThemeChangeEvent{Theme: "night"})
	assert.Equal(t, "night", m.Theme().Name)

	m, _ = update(m, ThemeChangeEvent{Theme: "neon"})
	assert.Equal(t, "night", m.Theme().Name, "unknown theme keeps the current one")
	assert.Contains(t, m.Status(), "neon")
}

func TestHelpKeyExpandsStatus(t *testing.T) {
	m, _ := sized(120, 40)
	short := m.vp.Height
	m, _ = update(m, runes("?"))
	assert.Less(t, m.vp.Height, short, "full help takes rows from the page")
}

func TestQuitDisposes(t *testing.T) {
	m, _ := sized(120, 40)
	m, cmd := update(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Page().Closed())
	assert.True(t, m.Header().Disposed())
}

func TestSnapshotAtAnchor(t *testing.T) {
	out, err := Snapshot(Options{Config: *config.DefaultConfig()}, Frame{Width: 100, Height: 30, Anchor: "faq", Open: 1})
	require.NoError(t, err)
	assert.Len(t, strings.Split(out, "\n"), 30)
	assert.Contains(t, out, "$100k", "snapshot shows the open FAQ answer")
}

func TestSnapshotRejectsMissingFAQItem(t *testing.T) {
	opts := Options{Config: *config.DefaultConfig()}
	for _, open := range []int{5, 42, -2} {
		_, err := Snapshot(opts, Frame{Width: 100, Height: 30, Open: open})
		assert.Error(t, err, "open %d", open)
	}

	out, err := Snapshot(opts, Frame{Width: 100, Height: 30, Anchor: "faq", Open: -1})
	require.NoError(t, err)
	assert.NotContains(t, out, "first check in", "no answer open")
}
