package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the visible character width of s in terminal cells.
// ANSI escape sequences are ignored and wide characters count as 2.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate truncates s to at most maxWidth visible characters, preserving
// any ANSI escape sequences that appear before the cut point.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "")
}

// TruncateWithTail truncates s to at most maxWidth visible characters,
// appending tail (e.g. "…") if truncation occurs. The tail counts toward
// maxWidth.
func TruncateWithTail(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, tail)
}

// PadRight pads s with trailing spaces so that its visible width equals
// width. If s is already wider than width, it is returned unchanged.
func PadRight(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// PadLeft pads s with leading spaces so that its visible width equals
// width. If s is already wider than width, it is returned unchanged.
func PadLeft(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return strings.Repeat(" ", width-vis) + s
}

// PadCenter pads s with spaces on both sides so that it is centered
// within width. If the padding is odd, the extra space goes on the right.
func PadCenter(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	total := width - vis
	left := total / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", total-left)
}

// Wrap word-wraps s at width, respecting ANSI escape sequences and wide
// characters. Words longer than width are broken. Returns the wrapped
// lines without trailing newlines.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}

// Lines splits a rendered block into its rows. An empty block has no rows.
func Lines(block string) []string {
	if block == "" {
		return nil
	}
	return strings.Split(block, "\n")
}

// FitBlock returns exactly height rows of exactly width visible cells:
// long rows are truncated, short rows padded, missing rows blank.
func FitBlock(lines []string, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	out := make([]string, height)
	for i := range out {
		if i < len(lines) {
			out[i] = PadRight(Truncate(lines[i], width), width)
		} else {
			out[i] = strings.Repeat(" ", width)
		}
	}
	return out
}

// JoinColumns places blocks side by side. Each block is fitted to its
// column width and the tallest block's height; gap spaces separate them.
func JoinColumns(gap int, widths []int, blocks ...[]string) []string {
	height := 0
	for _, b := range blocks {
		height = max(height, len(b))
	}
	fitted := make([][]string, len(blocks))
	for i, b := range blocks {
		fitted[i] = FitBlock(b, widths[i], height)
	}
	sep := strings.Repeat(" ", max(gap, 0))
	out := make([]string, height)
	for row := range out {
		parts := make([]string, 0, len(fitted))
		for _, f := range fitted {
			if row < len(f) {
				parts = append(parts, f[row])
			}
		}
		out[row] = strings.Join(parts, sep)
	}
	return out
}
