// Package scroll tracks the document scroll position and lets components
// subscribe to "scrolled past N" flags.
//
// The monitor is fed every scroll event by its owner and recomputes each
// subscription synchronously, so a subscription always reflects the last
// known position. Subscriptions are explicit objects; whoever subscribes
// must Dispose on teardown.
package scroll

// Monitor holds the latest scroll position and its subscriptions.
type Monitor struct {
	position int
	nextID   int
	subs     map[int]*Subscription
}

// NewMonitor creates a monitor at position 0.
func NewMonitor() *Monitor {
	return &Monitor{subs: make(map[int]*Subscription)}
}

// Position returns the last position passed to Update.
func (m *Monitor) Position() int { return m.position }

// Listeners returns the number of live subscriptions.
func (m *Monitor) Listeners() int { return len(m.subs) }

// Update records a scroll event and recomputes every subscription.
func (m *Monitor) Update(position int) {
	m.position = position
	for id := 1; id <= m.nextID; id++ {
		if s, ok := m.subs[id]; ok {
			s.set(position > s.threshold)
		}
	}
}

// Subscribe returns a subscription whose Scrolled flag is true while the
// position is strictly greater than threshold. The flag is computed from
// the current position immediately.
func (m *Monitor) Subscribe(threshold int) *Subscription {
	m.nextID++
	s := &Subscription{
		id:        m.nextID,
		monitor:   m,
		threshold: threshold,
		scrolled:  m.position > threshold,
	}
	m.subs[s.id] = s
	return s
}

// Subscription is one component's view of the scroll position.
type Subscription struct {
	id        int
	monitor   *Monitor
	threshold int
	scrolled  bool
	disposed  bool
	onChange  []func(bool)
}

// Threshold returns the position the subscription compares against.
func (s *Subscription) Threshold() int { return s.threshold }

// Scrolled reports whether the last known position is past the threshold.
func (s *Subscription) Scrolled() bool { return s.scrolled }

// Disposed reports whether Dispose has been called.
func (s *Subscription) Disposed() bool { return s.disposed }

// OnChange registers fn to run whenever Scrolled flips.
func (s *Subscription) OnChange(fn func(scrolled bool)) {
	if fn == nil || s.disposed {
		return
	}
	s.onChange = append(s.onChange, fn)
}

// Dispose detaches the subscription from its monitor. Afterwards the flag
// is frozen and no callback runs again. Dispose is idempotent.
func (s *Subscription) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.onChange = nil
	delete(s.monitor.subs, s.id)
}

func (s *Subscription) set(scrolled bool) {
	if s.disposed || s.scrolled == scrolled {
		return
	}
	s.scrolled = scrolled
	for _, fn := range s.onChange {
		fn(scrolled)
	}
}
