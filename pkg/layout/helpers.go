package layout

// Span is one cell of a responsive grid row: a column span out of the
// grid's column count, like `md:col-span-2` in a 3-column grid.
type Span struct {
	Cols int
}

// Columns splits area into the given spans of a grid with total columns,
// wrapping to a new row whenever a span would overflow. It returns one
// row of rects per wrapped row. Spans larger than total are clamped.
//
// When area is narrower than narrowWidth every span takes a full row, the
// way a grid collapses to a single column on small screens.
func Columns(area Rect, total, gap, narrowWidth int, spans ...Span) [][]Rect {
	if len(spans) == 0 || total <= 0 {
		return nil
	}

	var rows [][]Span
	var cur []Span
	used := 0
	for _, s := range spans {
		cols := clampRange(s.Cols, 1, total)
		if area.Width < narrowWidth {
			cols = total
		}
		if used+cols > total && len(cur) > 0 {
			rows = append(rows, cur)
			cur, used = nil, 0
		}
		cur = append(cur, Span{Cols: cols})
		used += cols
	}
	rows = append(rows, cur)

	out := make([][]Rect, 0, len(rows))
	for _, row := range rows {
		constraints := make([]Constraint, 0, len(row)+1)
		used := 0
		for _, s := range row {
			constraints = append(constraints, Fill{Weight: s.Cols})
			used += s.Cols
		}
		rects := SplitHorizontal(area, gap, constraints...)
		if used < total {
			// Leave the unused columns empty instead of stretching the row.
			rects = SplitHorizontal(area, gap, append(constraints, Fill{Weight: total - used})...)
			rects = rects[:len(row)]
		}
		out = append(out, rects)
	}
	return out
}

// Stack places heights top-to-bottom starting at y with gap rows between
// them and returns the rect of each entry together with the total height.
func Stack(x, y, width, gap int, heights ...int) ([]Rect, int) {
	rects := make([]Rect, len(heights))
	cur := y
	for i, h := range heights {
		h = max(h, 0)
		rects[i] = Rect{X: x, Y: cur, Width: width, Height: h}
		cur += h
		if i < len(heights)-1 {
			cur += gap
		}
	}
	return rects, cur - y
}
