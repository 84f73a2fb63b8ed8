package app

import (
	"fmt"
	"strings"
	"time"
)

// Frame describes one static render of the page.
type Frame struct {
	Width  int
	Height int
	// Scroll is the offset in rows. Anchor, when set, wins over Scroll.
	Scroll int
	Anchor string
	// Open is the FAQ item shown open; -1 closes them all.
	Open int
}

// Snapshot renders a single frame without a running program. Blocks
// visible in the frame are revealed and their transitions completed, so
// the output is what the page settles to after scrolling there. An Open
// index outside the FAQ is an error.
func Snapshot(opts Options, f Frame) (string, error) {
	clock := time.Now()
	opts.Now = func() time.Time { return clock }
	opts.Zones = nil

	m := New(opts)
	defer m.Close()

	faq := m.page.FAQ()
	switch {
	case f.Open < -1 || f.Open >= max(faq.Len(), 1):
		return "", fmt.Errorf("app: snapshot: faq item %d out of range (%d items)", f.Open, faq.Len())
	case f.Open == -1 && faq.Len() > 0:
		faq.Toggle(0)
	case f.Open > 0:
		faq.Toggle(f.Open)
	}

	m.width, m.height = max(f.Width, 1), max(f.Height, 1)
	m.help.Width = m.width
	m.sync()
	if f.Anchor != "" {
		m.jump(f.Anchor)
	} else {
		m.vp.SetYOffset(f.Scroll)
	}
	m.sync()

	clock = clock.Add(m.cfg.Reveal.Duration.Duration + time.Millisecond)
	m.sync()
	return strings.TrimRight(m.View(), "\n"), nil
}
