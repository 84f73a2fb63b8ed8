package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Blend linearly interpolates between two hex colors. t=0 yields from,
// t=1 yields to; t is clamped to [0, 1]. If either color is malformed,
// to is returned unchanged so callers always get a usable color.
func Blend(from, to string, t float64) string {
	fr, fg, fb, ok1 := ParseHex(from)
	tr, tg, tb, ok2 := ParseHex(to)
	if !ok1 || !ok2 {
		return to
	}
	t = math.Max(0, math.Min(1, t))
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return Hex(lerp(fr, tr), lerp(fg, tg), lerp(fb, tb))
}

// Hex formats r, g, b as "#rrggbb".
func Hex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ParseHex parses a hex color string into r, g, b components.
// Accepts "#RRGGBB" or "RRGGBB" formats.
func ParseHex(hex string) (r, g, b uint8, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	rv, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	gv, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	bv, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(rv), uint8(gv), uint8(bv), true
}
