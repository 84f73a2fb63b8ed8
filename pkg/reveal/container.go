package reveal

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// DefaultDuration is how long the hidden-to-visible transition lasts.
const DefaultDuration = time.Second

// DefaultOffset is the vertical offset, in rows, of a hidden block.
const DefaultOffset = 2

// Presentation is the derived look of a block at one instant.
type Presentation struct {
	Opacity float64 // 0 hidden .. 1 fully visible
	OffsetY int     // rows pushed down from the resting position
	Settled bool    // transition finished; never changes again
}

// Hidden is the presentation of a block that has not been revealed.
func Hidden(offset int) Presentation {
	return Presentation{Opacity: 0, OffsetY: offset}
}

// Container maps a tracker's reveal state onto a presentation. It holds no
// state of its own; everything derives from the tracker and the clock.
type Container struct {
	Tracker  *Tracker
	Duration time.Duration
	Offset   int
}

// NewContainer wraps t with the default duration and offset.
func NewContainer(t *Tracker) Container {
	return Container{Tracker: t, Duration: DefaultDuration, Offset: DefaultOffset}
}

// Presentation returns the block's look at now. Before the reveal it is
// Hidden; afterwards opacity rises and the offset falls linearly over
// Duration, then the presentation settles.
func (c Container) Presentation(now time.Time) Presentation {
	if c.Tracker == nil || !c.Tracker.Revealed() {
		return Hidden(c.Offset)
	}
	if c.Duration <= 0 {
		return Presentation{Opacity: 1, Settled: true}
	}
	elapsed := now.Sub(c.Tracker.RevealedAt())
	if elapsed >= c.Duration {
		return Presentation{Opacity: 1, Settled: true}
	}
	progress := float64(max(elapsed, 0)) / float64(c.Duration)
	return Presentation{
		Opacity: progress,
		OffsetY: int(float64(c.Offset)*(1-progress) + 0.5),
	}
}

// Animating reports whether the block is mid-transition at now.
func (c Container) Animating(now time.Time) bool {
	if c.Tracker == nil || !c.Tracker.Revealed() {
		return false
	}
	return !c.Presentation(now).Settled
}

var faint = lipgloss.NewStyle().Faint(true)

// Render applies the presentation at now to the rows of a block. The
// result always has the same number of rows as lines, so a block's
// footprint in the document never changes while it animates.
//
// Hidden and nearly transparent blocks render blank; blocks in the first
// two thirds of their fade render faint; offset rows push content down
// and the overflow is cut at the block's bottom edge.
func (c Container) Render(lines []string, width int, now time.Time) []string {
	p := c.Presentation(now)
	blank := strings.Repeat(" ", max(width, 0))

	out := make([]string, len(lines))
	if p.Opacity < 1.0/3 {
		for i := range out {
			out[i] = blank
		}
		return out
	}

	for i := range out {
		src := i - p.OffsetY
		switch {
		case src < 0:
			out[i] = blank
		case p.Opacity < 2.0/3:
			out[i] = faint.Render(lines[src])
		default:
			out[i] = lines[src]
		}
	}
	return out
}
