package image

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birdcapital/bird/pkg/components"
	"github.com/birdcapital/bird/pkg/config"
	"github.com/birdcapital/bird/pkg/terminal"
)

// --- helpers ---------------------------------------------------------------

// makeImage creates a solid-colored NRGBA test image.
func makeImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

// makeStripes creates a w x h image split into red, green and blue
// vertical thirds.
func makeStripes(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			c := color.NRGBA{A: 255}
			switch {
			case x < w/3:
				c.R = 255
			case x < 2*w/3:
				c.G = 255
			default:
				c.B = 255
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func makeCaps(proto terminal.GraphicsProtocol) terminal.Capabilities {
	return terminal.Capabilities{
		Term:     terminal.TermGhostty,
		Protocol: proto,
		Size:     terminal.Size{Cols: 80, Rows: 24, PixelW: 640, PixelH: 384, CellW: 8, CellH: 16},
	}
}

func makeCfg() config.ImageConfig {
	return config.ImageConfig{Enabled: true, Protocol: "auto", MaxCacheSizeMB: 8}
}

// --- Protocol selection ----------------------------------------------------

func TestProtocolFromCapabilities(t *testing.T) {
	for _, proto := range []terminal.GraphicsProtocol{
		terminal.ProtocolKitty, terminal.ProtocolITerm2, terminal.ProtocolSixel, terminal.ProtocolHalfblocks,
	} {
		assert.Equal(t, proto, NewRenderer(makeCaps(proto), makeCfg()).Protocol(), "caps %s", proto)
	}
}

func TestProtocolConfigOverride(t *testing.T) {
	cfg := makeCfg()
	cfg.Protocol = "halfblocks"
	r := NewRenderer(makeCaps(terminal.ProtocolKitty), cfg)
	assert.Equal(t, terminal.ProtocolHalfblocks, r.Protocol(), "config override")
}

func TestDisabledConfigRendersNothing(t *testing.T) {
	cfg := makeCfg()
	cfg.Enabled = false
	r := NewRenderer(makeCaps(terminal.ProtocolKitty), cfg)
	require.Equal(t, terminal.ProtocolNone, r.Protocol())

	_, err := r.Render(makeImage(4, 4, color.White), 10, 10)
	assert.Error(t, err, "ProtocolNone cannot render")
}

func TestTextOnlyDowngradesInline(t *testing.T) {
	r := NewRenderer(makeCaps(terminal.ProtocolKitty), makeCfg()).TextOnly()
	assert.Equal(t, terminal.ProtocolHalfblocks, r.Protocol())

	none := NewRenderer(makeCaps(terminal.ProtocolNone), makeCfg()).TextOnly()
	assert.Equal(t, terminal.ProtocolNone, none.Protocol())
}

func TestCellHeightFallback(t *testing.T) {
	caps := makeCaps(terminal.ProtocolHalfblocks)
	caps.Size.CellH = 0
	cfg := makeCfg()
	cfg.CellHeightPx = 20
	assert.Equal(t, 20, NewRenderer(caps, cfg).CellHeight(), "configured height")
}

// --- Cache -----------------------------------------------------------------

func key(src string, w int) CacheKey {
	return CacheKey{Protocol: "halfblocks", Source: src, Width: w, Height: 1}
}

func TestCachePutGet(t *testing.T) {
	c := NewCache(1)
	_, ok := c.Get(key("a", 1))
	require.False(t, ok, "hit on empty cache")

	c.Put(key("a", 1), []string{"row"})
	rows, ok := c.Get(key("a", 1))
	require.True(t, ok)
	assert.Equal(t, []string{"row"}, rows)

	st := c.Stats()
	assert.Equal(t, uint64(1), st.Hits)
	assert.Equal(t, uint64(1), st.Misses)
	assert.Equal(t, 1, st.Entries)
	assert.Equal(t, int64(3), st.SizeBytes)
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache(1)
	big := strings.Repeat("x", 400<<10) // 400 KiB, two fit in 1 MiB

	c.Put(key("a", 1), []string{big})
	c.Put(key("b", 1), []string{big})
	c.Get(key("a", 1)) // a is now most recent
	c.Put(key("c", 1), []string{big})

	_, ok := c.Get(key("b", 1))
	assert.False(t, ok, "b should have been evicted")
	_, ok = c.Get(key("a", 1))
	assert.True(t, ok, "a should survive")
	assert.Equal(t, uint64(1), c.Stats().Evictions)
}

func TestCacheRejectsOversizedEntry(t *testing.T) {
	c := NewCache(1)
	c.Put(key("huge", 1), []string{strings.Repeat("x", 2<<20)})
	assert.Zero(t, c.Stats().Entries, "entry larger than the cache was stored")
}

func TestCacheUpdateAndInvalidate(t *testing.T) {
	c := NewCache(1)
	c.Put(key("a", 1), []string{"old"})
	c.Put(key("a", 1), []string{"newer"})
	st := c.Stats()
	assert.Equal(t, 1, st.Entries)
	assert.Equal(t, int64(5), st.SizeBytes)

	c.Invalidate()
	st = c.Stats()
	assert.Zero(t, st.Entries)
	assert.Zero(t, st.SizeBytes)
}

func TestCacheConcurrency(t *testing.T) {
	c := NewCache(1)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				c.Put(key("k", (i+j)%5), []string{"v"})
				c.Get(key("k", j%5))
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Stats().Entries, 5)
}

func TestCacheKeyString(t *testing.T) {
	assert.Equal(t, "halfblocks:hero.png:10x1", key("hero.png", 10).String())
}

// --- Cover -----------------------------------------------------------------

func TestCoverExactSize(t *testing.T) {
	for _, tt := range []struct{ sw, sh, w, h int }{
		{300, 100, 20, 20},
		{100, 300, 40, 10},
		{10, 10, 40, 40}, // upscale
	} {
		got := Cover(makeImage(tt.sw, tt.sh, color.White), tt.w, tt.h)
		assert.Equal(t, image.Rect(0, 0, tt.w, tt.h), got.Bounds(), "Cover(%dx%d -> %dx%d)", tt.sw, tt.sh, tt.w, tt.h)
	}
}

func TestCoverCropsAroundCenter(t *testing.T) {
	c := Cover(makeStripes(300, 100), 10, 10).NRGBAAt(5, 5)
	assert.True(t, c.G >= 200 && c.R <= 50 && c.B <= 50, "center pixel = %v, want the green middle stripe", c)
}

func TestCoverNil(t *testing.T) {
	assert.Nil(t, Cover(nil, 10, 10))
	assert.Nil(t, Cover(makeImage(4, 4, color.White), 0, 10), "zero width")
}

func TestImageToNRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	src.Set(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	got := ImageToNRGBA(src)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, got.NRGBAAt(1, 1))

	same := makeImage(2, 2, color.Black)
	assert.Same(t, same, ImageToNRGBA(same), "NRGBA input is returned as is")
}

// --- Rendering -------------------------------------------------------------

func TestRenderHalfblocksSolidColor(t *testing.T) {
	r := NewRenderer(makeCaps(terminal.ProtocolHalfblocks), makeCfg())
	rows, err := r.Render(makeImage(40, 40, color.NRGBA{R: 255, A: 255}), 6, 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, 6, components.VisibleLen(row), "row %d width", i)
		assert.Contains(t, row, "38;2;255;0;0", "row %d has a red foreground", i)
	}
}

func TestRenderNilImage(t *testing.T) {
	r := NewRenderer(makeCaps(terminal.ProtocolHalfblocks), makeCfg())
	_, err := r.Render(nil, 4, 4)
	assert.Error(t, err)
}

func TestBlockMissingFileDrawsPlaceholder(t *testing.T) {
	r := NewRenderer(makeCaps(terminal.ProtocolHalfblocks), makeCfg())
	path := filepath.Join(t.TempDir(), "missing.png")

	rows := r.Block(path, "Big Problems", 30, 5)
	require.Len(t, rows, 5)
	assert.Contains(t, rows[2], "Big Problems", "alt text on the middle row")
	for _, row := range rows {
		assert.Equal(t, 30, components.VisibleLen(row))
	}

	attempted, ok := r.Loader().Loaded(path)
	assert.True(t, attempted)
	assert.False(t, ok)
}

func TestBlockRendersAndCachesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hero.png")
	require.NoError(t, imaging.Save(makeImage(64, 32, color.NRGBA{B: 255, A: 255}), path))

	r := NewRenderer(makeCaps(terminal.ProtocolHalfblocks), makeCfg())
	first := r.Block(path, "Hero", 8, 4)
	second := r.Block(path, "Hero", 8, 4)

	require.Len(t, first, 4)
	assert.Equal(t, first, second, "rows differ between calls")
	assert.Contains(t, first[0], "▀", "half block rows")
	assert.GreaterOrEqual(t, r.Cache().Stats().Hits, uint64(1), "second Block call hits the cache")
}

func TestBlockWithoutProtocolIsPlaceholder(t *testing.T) {
	r := NewRenderer(makeCaps(terminal.ProtocolNone), makeCfg())
	rows := r.Block("whatever.png", "Scale", 12, 3)
	require.Len(t, rows, 3)
	assert.Contains(t, rows[1], "Scale")
	assert.Nil(t, r.Block("x.png", "x", 0, 3), "zero width yields no rows")
}

func TestSetPaletteInvalidatesPlaceholders(t *testing.T) {
	r := NewRenderer(makeCaps(terminal.ProtocolNone), makeCfg())
	r.Placeholder("alt", 10, 2)
	require.Equal(t, 1, r.Cache().Stats().Entries, "placeholder cached")

	r.SetPalette(Palette{From: "#000000", To: "#ffffff", Text: "#ff0000"})
	assert.Zero(t, r.Cache().Stats().Entries, "palette change drops placeholders")
}

// --- Loader ----------------------------------------------------------------

func TestPreloadCountsFailures(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	require.NoError(t, imaging.Save(makeImage(4, 4, color.White), good))
	paths := []string{good, filepath.Join(dir, "a.png"), filepath.Join(dir, "b.jpg")}

	l := NewLoader()
	failed, err := l.Preload(context.Background(), paths, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, failed)

	_, ok := l.Loaded(good)
	assert.True(t, ok, "good image loaded")

	l.Forget()
	attempted, _ := l.Loaded(good)
	assert.False(t, attempted, "Forget drops results")
}

func TestPreloadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLoader().Preload(ctx, []string{"a.png"}, 1)
	assert.Error(t, err)
}
