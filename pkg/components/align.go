// Package components provides ANSI-aware text primitives shared by the
// page sections: measuring, fitting, wrapping and aligning styled lines.
package components

// Align controls horizontal text alignment within a block.
type Align int

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Align = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)

// Place pads s to width according to align. Lines wider than width are
// truncated.
func Place(s string, width int, align Align) string {
	if width <= 0 {
		return ""
	}
	s = Truncate(s, width)
	switch align {
	case AlignCenter:
		return PadCenter(s, width)
	case AlignRight:
		return PadLeft(s, width)
	default:
		return PadRight(s, width)
	}
}
