// Package accordion implements the FAQ expand/collapse controller: an
// ordered list of question/answer items of which at most one is open.
package accordion

import "fmt"

// Open is either None or At(i). The zero value is None.
type Open struct {
	index int
	set   bool
}

// None is the state with every item closed.
func None() Open { return Open{} }

// At is the state with item i open.
func At(i int) Open { return Open{index: i, set: true} }

// Index returns the open index and true, or 0 and false for None.
func (o Open) Index() (int, bool) { return o.index, o.set }

// IsNone reports whether no item is open.
func (o Open) IsNone() bool { return !o.set }

// String returns "none" or "at(i)".
func (o Open) String() string {
	if !o.set {
		return "none"
	}
	return fmt.Sprintf("at(%d)", o.index)
}

// Item is one question/answer pair.
type Item struct {
	Question string
	Answer   string
}

// Controller owns the open state of an item list.
type Controller struct {
	items    []Item
	open     Open
	onToggle []func(Open)
}

// New creates a controller with the first item open. An empty list starts
// with nothing open.
func New(items []Item) *Controller {
	c := &Controller{items: append([]Item(nil), items...)}
	if len(c.items) > 0 {
		c.open = At(0)
	}
	return c
}

// Len returns the number of items.
func (c *Controller) Len() int { return len(c.items) }

// Item returns item i. It panics if i is out of range.
func (c *Controller) Item(i int) Item {
	c.mustIndex("Item", i)
	return c.items[i]
}

// Open returns the current state.
func (c *Controller) Open() Open { return c.open }

// IsOpen reports whether item i is the open one.
func (c *Controller) IsOpen(i int) bool { return c.open == At(i) }

// Toggle applies open' = (open == At(i)) ? None : At(i). Opening an item
// closes whichever was open; toggling the open item closes it. i must be a
// valid index; anything else is a programming error and panics.
func (c *Controller) Toggle(i int) Open {
	c.mustIndex("Toggle", i)
	if c.open == At(i) {
		c.open = None()
	} else {
		c.open = At(i)
	}
	for _, fn := range c.onToggle {
		fn(c.open)
	}
	return c.open
}

// OnToggle registers fn to run after every Toggle with the new state.
func (c *Controller) OnToggle(fn func(Open)) {
	if fn != nil {
		c.onToggle = append(c.onToggle, fn)
	}
}

// ItemView is the read-only projection handed to each rendered item.
type ItemView struct {
	Index    int
	Question string
	Answer   string
	Open     bool
	Toggle   func()
}

// Views returns one ItemView per item, in order. The views snapshot the
// current state; call Views again after a toggle.
func (c *Controller) Views() []ItemView {
	out := make([]ItemView, len(c.items))
	for i, it := range c.items {
		out[i] = ItemView{
			Index:    i,
			Question: it.Question,
			Answer:   it.Answer,
			Open:     c.IsOpen(i),
			Toggle:   func() { c.Toggle(i) },
		}
	}
	return out
}

func (c *Controller) mustIndex(op string, i int) {
	if i < 0 || i >= len(c.items) {
		panic(fmt.Sprintf("accordion: %s(%d) out of range [0,%d)", op, i, len(c.items)))
	}
}
