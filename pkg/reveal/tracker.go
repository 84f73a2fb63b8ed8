// Package reveal implements scroll-into-view reveal animations.
//
// An Observer plays the role of a viewport intersection watcher: it holds
// a set of Trackers, one per content block, and is fed the current
// viewport after every scroll or resize. A Tracker reveals exactly once,
// the first time at least Threshold of its block is visible, and is then
// dropped from the watch set so the reveal never replays on scroll-back.
//
// All methods run on the UI goroutine; nothing here is safe for
// concurrent use and nothing needs to be.
package reveal

import (
	"fmt"
	"time"

	"github.com/birdcapital/bird/pkg/layout"
)

// DefaultThreshold is the visible fraction that triggers a reveal.
const DefaultThreshold = 0.1

// Element is anything with a position in document coordinates. Bounds is
// called on every intersection pass, so it must reflect the latest layout.
type Element interface {
	Bounds() layout.Rect
}

// ElementFunc adapts a function to the Element interface.
type ElementFunc func() layout.Rect

// Bounds calls f.
func (f ElementFunc) Bounds() layout.Rect { return f() }

// State is a Tracker's position in its one-way lifecycle.
type State int

const (
	// Unobserved trackers have not been attached to an observer yet.
	Unobserved State = iota
	// Observing trackers are waiting for their first qualifying intersection.
	Observing
	// Revealed is terminal.
	Revealed
)

var stateNames = [...]string{
	Unobserved: "unobserved",
	Observing:  "observing",
	Revealed:   "revealed",
}

// String returns the lowercase name of the state.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Tracker is the reveal state of one element.
type Tracker struct {
	id         int
	el         Element
	observer   *Observer
	state      State
	mounted    bool
	revealedAt time.Time
	onReveal   []func(time.Time)
}

// ID returns the tracker's observer-unique id.
func (t *Tracker) ID() int { return t.id }

// State returns the current lifecycle state.
func (t *Tracker) State() State { return t.state }

// Revealed reports whether the element has been revealed. Once true it
// stays true for the tracker's lifetime.
func (t *Tracker) Revealed() bool { return t.state == Revealed }

// RevealedAt returns when the reveal happened, or the zero time.
func (t *Tracker) RevealedAt() time.Time { return t.revealedAt }

// Mounted reports whether the tracker has not been released.
func (t *Tracker) Mounted() bool { return t.mounted }

// OnReveal registers fn to run when the element is revealed. If it is
// already revealed, fn runs immediately with the original reveal time.
func (t *Tracker) OnReveal(fn func(at time.Time)) {
	if fn == nil || !t.mounted {
		return
	}
	if t.state == Revealed {
		fn(t.revealedAt)
		return
	}
	t.onReveal = append(t.onReveal, fn)
}

// Release tears the tracker down: the watch is removed from the observer
// and any later intersection pass ignores it. Release is idempotent and
// never fails. The revealed flag keeps its last value.
func (t *Tracker) Release() {
	if !t.mounted {
		return
	}
	t.mounted = false
	t.onReveal = nil
	if t.observer != nil {
		t.observer.unobserve(t)
	}
}

// reveal performs the Observing -> Revealed transition and reports
// whether it happened.
func (t *Tracker) reveal(now time.Time) bool {
	if !t.mounted || t.state != Observing {
		return false
	}
	t.state = Revealed
	t.revealedAt = now
	callbacks := t.onReveal
	t.onReveal = nil
	for _, fn := range callbacks {
		fn(now)
	}
	return true
}

// Observer watches a set of elements against a viewport.
type Observer struct {
	threshold float64
	nextID    int
	watching  map[int]*Tracker
	order     []int
}

// NewObserver creates an observer that reveals elements once threshold
// (0..1] of their area is visible. Out-of-range thresholds fall back to
// DefaultThreshold.
func NewObserver(threshold float64) *Observer {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Observer{
		threshold: threshold,
		watching:  make(map[int]*Tracker),
	}
}

// Threshold returns the visible fraction that triggers a reveal.
func (o *Observer) Threshold() float64 { return o.threshold }

// Watching returns the number of elements still being observed.
func (o *Observer) Watching() int { return len(o.watching) }

// Attach starts watching el and returns its tracker in the Observing
// state. A nil element is a programming error and panics.
func (o *Observer) Attach(el Element) *Tracker {
	if el == nil {
		panic("reveal: Attach called with a nil element")
	}
	o.nextID++
	t := &Tracker{
		id:       o.nextID,
		el:       el,
		observer: o,
		state:    Observing,
		mounted:  true,
	}
	o.watching[t.id] = t
	o.order = append(o.order, t.id)
	return t
}

// Observe delivers one intersection pass for viewport. Every observed
// element whose visible ratio reaches the threshold is revealed and
// unobserved, in attach order. It returns the number of reveals; a tracker
// released by an earlier reveal's callback is not counted.
func (o *Observer) Observe(viewport layout.Rect, now time.Time) int {
	if len(o.watching) == 0 {
		return 0
	}
	var hits []*Tracker
	for _, id := range o.order {
		t, ok := o.watching[id]
		if !ok {
			continue
		}
		ratio := layout.VisibleRatio(t.el.Bounds(), viewport)
		if ratio > 0 && ratio >= o.threshold {
			hits = append(hits, t)
		}
	}
	revealed := 0
	for _, t := range hits {
		o.unobserve(t)
		if t.reveal(now) {
			revealed++
		}
	}
	return revealed
}

// Disconnect releases every tracker still being observed.
func (o *Observer) Disconnect() {
	for _, id := range append([]int(nil), o.order...) {
		if t, ok := o.watching[id]; ok {
			t.Release()
		}
	}
	o.order = o.order[:0]
}

// unobserve removes t from the watch set.
func (o *Observer) unobserve(t *Tracker) {
	if _, ok := o.watching[t.id]; !ok {
		return
	}
	delete(o.watching, t.id)
	for i, id := range o.order {
		if id == t.id {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
}

// String is used in debug logging.
func (t *Tracker) String() string {
	return fmt.Sprintf("tracker#%d(%s)", t.id, t.state)
}
