package accordion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birdcapital/bird/pkg/components"
	"github.com/birdcapital/bird/pkg/theme"
)

func fiveItems() []Item {
	return []Item{
		{Question: "What stage do you invest in?", Answer: "Pre-seed and seed."},
		{Question: "How much do you invest?", Answer: "$100k - $500k."},
		{Question: "Do you require traction?", Answer: "No."},
		{Question: "Where are you based?", Answer: "San Francisco."},
		{Question: "What is your requirement?", Answer: "Outliers."},
	}
}

func openCount(c *Controller) int {
	n := 0
	for i := range c.Len() {
		if c.IsOpen(i) {
			n++
		}
	}
	return n
}

func TestDefaultOpensFirstItem(t *testing.T) {
	c := New(fiveItems())

	assert.Equal(t, At(0), c.Open())
	assert.True(t, c.IsOpen(0))
	for i := 1; i < 5; i++ {
		assert.False(t, c.IsOpen(i), "item %d", i)
	}
}

func TestEmptyListStartsNone(t *testing.T) {
	c := New(nil)
	assert.True(t, c.Open().IsNone())
	assert.Equal(t, 0, c.Len())
}

func TestToggleScenario(t *testing.T) {
	c := New(fiveItems())

	assert.Equal(t, At(2), c.Toggle(2))
	assert.False(t, c.IsOpen(0), "item 0 re-closed")
	for _, i := range []int{1, 3, 4} {
		assert.False(t, c.IsOpen(i), "item %d", i)
	}

	assert.Equal(t, None(), c.Toggle(2))
	assert.Equal(t, 0, openCount(c))
}

func TestToggleTwiceRestoresState(t *testing.T) {
	for _, start := range []int{-1, 0, 3} {
		for i := range 5 {
			c := New(fiveItems())
			switch start {
			case -1:
				c.Toggle(0)
			case 3:
				c.Toggle(3)
			}
			before := c.Open()
			c.Toggle(i)
			c.Toggle(i)
			assert.Equal(t, before, c.Open(), "start=%d toggle=%d", start, i)
		}
	}
}

func TestAtMostOneOpen(t *testing.T) {
	c := New(fiveItems())
	for _, i := range []int{4, 1, 1, 0, 2, 3, 3, 3, 0, 4} {
		c.Toggle(i)
		assert.LessOrEqual(t, openCount(c), 1)
	}
}

func TestToggleOutOfRangePanics(t *testing.T) {
	c := New(fiveItems())
	assert.Panics(t, func() { c.Toggle(5) })
	assert.Panics(t, func() { c.Toggle(-1) })
	assert.Equal(t, At(0), c.Open(), "state untouched by a rejected toggle")
}

func TestOpenIndex(t *testing.T) {
	i, ok := At(3).Index()
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = None().Index()
	assert.False(t, ok)
	assert.Equal(t, "none", None().String())
	assert.Equal(t, "at(3)", At(3).String())
}

func TestViewsToggleCallback(t *testing.T) {
	c := New(fiveItems())
	var seen []Open
	c.OnToggle(func(o Open) { seen = append(seen, o) })

	views := c.Views()
	require.Len(t, views, 5)
	assert.True(t, views[0].Open)
	assert.Equal(t, "Where are you based?", views[3].Question)

	views[3].Toggle()
	assert.Equal(t, At(3), c.Open())
	assert.Equal(t, []Open{At(3)}, seen)
}

func TestRenderItemGlyphs(t *testing.T) {
	st := theme.NewStyles(theme.Get("bird"))
	c := New(fiveItems())
	views := c.Views()

	open := strings.Join(RenderItem(views[0], 40, st, false, components.NoMark, nil), "\n")
	closed := strings.Join(RenderItem(views[1], 40, st, false, components.NoMark, nil), "\n")

	assert.Contains(t, open, GlyphCollapse)
	assert.Contains(t, open, "Pre-seed and seed.")
	assert.Contains(t, closed, GlyphExpand)
	assert.NotContains(t, closed, "$100k")
}

func TestRenderItemMarksQuestionRow(t *testing.T) {
	st := theme.NewStyles(theme.Get("bird"))
	var ids []string
	mark := components.Marker(func(id, s string) string {
		ids = append(ids, id)
		return s
	})

	c := New(fiveItems())
	var heights []int
	for _, v := range c.Views() {
		rows := RenderItem(v, 40, st, false, mark, nil)
		heights = append(heights, len(rows))
		for _, r := range rows {
			assert.Equal(t, 40, components.VisibleLen(r))
		}
	}

	assert.Equal(t, []string{"faq-0", "faq-1", "faq-2", "faq-3", "faq-4"}, ids)
	require.Len(t, heights, 5)
	// Open item: pad, question, blank, answer, pad.
	assert.Equal(t, 5, heights[0])
	assert.Equal(t, 3, heights[1])
}

func TestRenderItemBackdropOnlyWhenOpen(t *testing.T) {
	st := theme.NewStyles(theme.Get("bird"))
	c := New(fiveItems())
	views := c.Views()

	var widths []int
	backdrop := func(w int) []string {
		widths = append(widths, w)
		return []string{strings.Repeat("#", w), strings.Repeat("#", w)}
	}

	open := RenderItem(views[0], 40, st, false, components.NoMark, backdrop)
	closed := RenderItem(views[1], 40, st, false, components.NoMark, backdrop)

	assert.Equal(t, []int{36}, widths, "backdrop is drawn once, for the open item")
	assert.NotContains(t, strings.Join(closed, "\n"), "#")
	// pad, question, blank, 2 art rows, blank, answer, pad
	require.Len(t, open, 8)
	for _, r := range open {
		assert.Equal(t, 40, components.VisibleLen(r))
	}

	// The art sits between the question and the answer.
	text := strings.Join(open, "\n")
	assert.Contains(t, text, strings.Repeat("#", 36))
	assert.Less(t, strings.Index(text, "What stage"), strings.Index(text, "#"))
	assert.Less(t, strings.Index(text, "#"), strings.Index(text, "Pre-seed"))
}
