// Package layout places page blocks in document coordinates. A document is
// one column of terminal cells, as wide as the terminal and as tall as its
// content; the viewport is a Rect sliding over it.
//
// Horizontal splits are constraint based:
//   - Length(n): fixed size in cells
//   - Percentage(p): percentage of available space (0-100)
//   - Fill(w): remaining space proportional to weight
//
// Fixed sizes are allocated first, the rest goes to Fill items by weight,
// and the last Fill absorbs rounding so the row always adds up.
package layout

// Rect represents a rectangular area in terminal cells.
type Rect struct {
	X, Y, Width, Height int
}

// Area returns the number of cells in this rectangle.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Empty returns true if this rectangle has zero area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the X coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Contains returns true if the point (px, py) lies within this rectangle.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.Right() && py >= r.Y && py < r.Bottom()
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersect returns the overlapping region of two rectangles.
// If there is no overlap, returns a zero-size Rect.
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// VisibleRatio returns the fraction of r's area that lies inside viewport,
// in [0, 1]. A zero-area r counts as fully visible when its origin is
// inside the viewport, matching how browsers treat empty targets.
func VisibleRatio(r, viewport Rect) float64 {
	if viewport.Empty() {
		return 0
	}
	if r.Empty() {
		if viewport.Contains(r.X, r.Y) {
			return 1
		}
		return 0
	}
	inter := r.Intersect(viewport)
	if inter.Empty() {
		return 0
	}
	return float64(inter.Area()) / float64(r.Area())
}

// Constraint is the interface satisfied by all layout constraint types.
// The marker method prevents external implementations.
type Constraint interface {
	constraint() // sealed marker
}

// Length allocates exactly Value cells.
type Length struct{ Value int }

func (Length) constraint() {}

// Percentage allocates Value percent of the total available space (0-100).
type Percentage struct{ Value int }

func (Percentage) constraint() {}

// Fill distributes remaining space proportional to Weight.
// A Weight of 0 is treated as 1.
type Fill struct{ Weight int }

func (Fill) constraint() {}

// SplitHorizontal divides area left-to-right into len(constraints) columns
// separated by gap cells. Every column keeps the area's Y and Height.
func SplitHorizontal(area Rect, gap int, constraints ...Constraint) []Rect {
	n := len(constraints)
	if n == 0 {
		return nil
	}
	if gap < 0 {
		gap = 0
	}

	available := area.Width - gap*(n-1)
	if available < 0 {
		available = 0
	}

	widths := make([]int, n)
	weights := make([]int, n)
	totalWeight, used := 0, 0
	for i, c := range constraints {
		switch v := c.(type) {
		case Length:
			widths[i] = max(v.Value, 0)
			used += widths[i]
		case Percentage:
			widths[i] = available * clampRange(v.Value, 0, 100) / 100
			used += widths[i]
		case Fill:
			weights[i] = max(v.Weight, 1)
			totalWeight += weights[i]
		}
	}

	if used > available {
		shrinkToFit(widths, available)
		used = available
	}

	if remaining := available - used; totalWeight > 0 && remaining > 0 {
		lastFill := -1
		for i := range weights {
			if weights[i] > 0 {
				lastFill = i
			}
		}
		distributed := 0
		for i := range weights {
			if weights[i] == 0 {
				continue
			}
			if i == lastFill {
				widths[i] = remaining - distributed
				continue
			}
			widths[i] = remaining * weights[i] / totalWeight
			distributed += widths[i]
		}
	}

	rects := make([]Rect, n)
	x := area.X
	for i, w := range widths {
		rects[i] = Rect{X: x, Y: area.Y, Width: w, Height: area.Height}
		x += w + gap
	}
	return rects
}

// shrinkToFit proportionally reduces allocations so they sum to at most target.
func shrinkToFit(allocs []int, target int) {
	total := 0
	for _, a := range allocs {
		total += a
	}
	if total <= target {
		return
	}
	if target <= 0 {
		for i := range allocs {
			allocs[i] = 0
		}
		return
	}
	for i := range allocs {
		allocs[i] = allocs[i] * target / total
	}
}

func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
