package image

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"strings"

	"github.com/blacktop/go-termimg"
	"github.com/charmbracelet/lipgloss"

	"github.com/birdcapital/bird/pkg/components"
	"github.com/birdcapital/bird/pkg/config"
	"github.com/birdcapital/bird/pkg/terminal"
)

// Palette colors the placeholder drawn for missing images.
type Palette struct {
	From string // top of the gradient
	To   string // bottom of the gradient
	Text string // alt text
}

// Renderer turns image files into rows of terminal cells.
type Renderer struct {
	protocol terminal.GraphicsProtocol
	cellW    int
	cellH    int
	cache    *Cache
	loader   *Loader
	palette  Palette
	logger   *slog.Logger
}

// NewRenderer creates a Renderer for the detected terminal. A disabled
// image config renders placeholders only. The configured protocol, when
// not "auto", overrides detection.
func NewRenderer(caps terminal.Capabilities, cfg config.ImageConfig) *Renderer {
	proto := caps.Protocol
	if p, ok := terminal.ParseProtocol(cfg.Protocol); ok {
		proto = p
	}
	if !cfg.Enabled {
		proto = terminal.ProtocolNone
	}

	cellH := caps.Size.CellHeight(cfg.CellHeightPx)
	cellW := caps.Size.CellW
	if cellW <= 0 {
		cellW = max(cellH/2, 1)
	}

	return &Renderer{
		protocol: proto,
		cellW:    cellW,
		cellH:    cellH,
		cache:    NewCache(cfg.MaxCacheSizeMB),
		loader:   NewLoader(),
		palette:  Palette{From: "#e5e5e5", To: "#0a0a0a", Text: "#ffffff"},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger used for decode failures.
func (r *Renderer) WithLogger(l *slog.Logger) *Renderer {
	if l != nil {
		r.logger = l
	}
	return r
}

// SetPalette sets the placeholder colors and drops cached placeholders.
func (r *Renderer) SetPalette(p Palette) {
	if r.palette != p {
		r.palette = p
		r.cache.Invalidate()
	}
}

// TextOnly downgrades inline bitmap protocols to half blocks. Bitmaps
// placed by escape sequences do not move when a scrolling view redraws
// its text, so interactive views use characters only.
func (r *Renderer) TextOnly() *Renderer {
	if r.protocol.Inline() {
		r.protocol = terminal.ProtocolHalfblocks
		r.cache.Invalidate()
	}
	return r
}

// Protocol returns the active rendering protocol.
func (r *Renderer) Protocol() terminal.GraphicsProtocol { return r.protocol }

// Cache returns the rendered-rows cache.
func (r *Renderer) Cache() *Cache { return r.cache }

// Loader returns the decoder shared by Block and preloading.
func (r *Renderer) Loader() *Loader { return r.loader }

// CellHeight returns the pixel height of one row.
func (r *Renderer) CellHeight() int { return r.cellH }

// Block returns exactly h rows of w cells showing the image at path, or a
// placeholder labelled alt when the file cannot be drawn.
func (r *Renderer) Block(path, alt string, w, h int) []string {
	if w <= 0 || h <= 0 {
		return nil
	}
	if r.protocol == terminal.ProtocolNone || path == "" {
		return r.Placeholder(alt, w, h)
	}

	key := CacheKey{Protocol: r.protocol.String(), Source: path, Width: w, Height: h}
	if rows, ok := r.cache.Get(key); ok {
		return rows
	}

	img, err := r.loader.Load(path)
	if err != nil {
		r.logger.Debug("image unavailable, drawing placeholder", "path", path, "err", err)
		return r.Placeholder(alt, w, h)
	}
	rows, err := r.Render(img, w, h)
	if err != nil {
		r.logger.Warn("image render failed", "path", path, "protocol", r.protocol, "err", err)
		return r.Placeholder(alt, w, h)
	}
	r.cache.Put(key, rows)
	return rows
}

// Render draws img covering w x h cells with the active protocol.
func (r *Renderer) Render(img image.Image, w, h int) ([]string, error) {
	if img == nil {
		return nil, fmt.Errorf("image: nil image")
	}
	switch r.protocol {
	case terminal.ProtocolKitty:
		return r.renderTermimg(img, termimg.Kitty, w, h)
	case terminal.ProtocolITerm2:
		return r.renderTermimg(img, termimg.ITerm2, w, h)
	case terminal.ProtocolSixel:
		return r.renderTermimg(img, termimg.Sixel, w, h)
	case terminal.ProtocolNone:
		return nil, fmt.Errorf("image: rendering disabled")
	default:
		return renderHalfblocks(Cover(img, w, h*2), w, h), nil
	}
}

// renderTermimg emits one inline image over the block's first row and
// leaves the remaining rows blank for the bitmap to cover.
func (r *Renderer) renderTermimg(img image.Image, proto termimg.Protocol, w, h int) ([]string, error) {
	covered := Cover(img, w*r.cellW, h*r.cellH)
	ti := termimg.New(covered)
	if ti == nil {
		return nil, fmt.Errorf("image: go-termimg: failed to wrap image")
	}
	seq, err := ti.Protocol(proto).Size(w, h).Scale(termimg.ScaleFit).Render()
	if err != nil {
		return nil, fmt.Errorf("image: termimg %v: %w", proto, err)
	}
	rows := make([]string, h)
	blank := strings.Repeat(" ", w)
	for i := range rows {
		rows[i] = blank
	}
	rows[0] = seq + blank
	return rows, nil
}

// renderHalfblocks draws two pixel rows per cell row with U+2580: the top
// pixel is the foreground, the bottom pixel the background. img must be
// w x 2h pixels.
func renderHalfblocks(img *image.NRGBA, w, h int) []string {
	rows := make([]string, h)
	if img == nil {
		return components.FitBlock(nil, w, h)
	}
	b := img.Bounds()
	var sb strings.Builder
	for row := range h {
		sb.Reset()
		sb.Grow(w * 40)
		y := b.Min.Y + row*2
		for x := b.Min.X; x < b.Min.X+w; x++ {
			top := img.NRGBAAt(x, y)
			bot := img.NRGBAAt(x, y+1)
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}
		sb.WriteString("\x1b[0m")
		rows[row] = sb.String()
	}
	return rows
}

// Placeholder draws a vertical gradient with alt centered on the middle
// row.
func (r *Renderer) Placeholder(alt string, w, h int) []string {
	if w <= 0 || h <= 0 {
		return nil
	}
	key := CacheKey{Protocol: "placeholder", Source: alt, Width: w, Height: h}
	if rows, ok := r.cache.Get(key); ok {
		return rows
	}

	rows := make([]string, h)
	mid := h / 2
	for i := range rows {
		t := 0.0
		if h > 1 {
			t = float64(i) / float64(h-1)
		}
		st := lipgloss.NewStyle().
			Background(lipgloss.Color(components.Blend(r.palette.From, r.palette.To, t))).
			Foreground(lipgloss.Color(r.palette.Text))
		text := ""
		if i == mid && alt != "" {
			text = components.TruncateWithTail(alt, max(w-2, 1), "…")
		}
		rows[i] = st.Render(components.Place(text, w, components.AlignCenter))
	}
	r.cache.Put(key, rows)
	return rows
}
