package app

import "github.com/birdcapital/bird/pkg/header"

// focusOrder lists the zones Tab moves through. While the navigation
// panel is open only its entries are reachable; otherwise the header
// links (when shown inline) come first, then the page targets.
func (m *Model) focusOrder() []string {
	var ids []string
	inline := m.width >= m.cfg.General.NarrowWidth
	if m.header.NavOpen() || inline {
		for i := range m.header.Links() {
			ids = append(ids, header.ZoneLink(i))
		}
		if m.header.CTA().Label != "" {
			ids = append(ids, header.ZoneApply)
		}
	}
	if m.header.NavOpen() {
		return ids
	}
	return append(ids, m.page.Targets()...)
}

// CycleFocusForward moves focus to the next zone in the order list,
// wrapping around to the first zone after the last.
func (m *Model) CycleFocusForward() {
	order := m.focusOrder()
	if len(order) == 0 {
		return
	}
	idx := m.focusedIndex(order)
	if idx < 0 {
		idx = 0
	} else {
		idx = (idx + 1) % len(order)
	}
	m.setFocus(order[idx])
}

// CycleFocusBackward moves focus to the previous zone in the order list,
// wrapping around to the last zone before the first.
func (m *Model) CycleFocusBackward() {
	order := m.focusOrder()
	if len(order) == 0 {
		return
	}
	idx := m.focusedIndex(order)
	if idx < 0 {
		idx = len(order) - 1
	} else {
		idx = (idx - 1 + len(order)) % len(order)
	}
	m.setFocus(order[idx])
}

// FocusZone directly sets focus to the zone with the given id. If the id
// is not in the order list, focus does not change.
func (m *Model) FocusZone(id string) {
	for _, z := range m.focusOrder() {
		if z == id {
			m.setFocus(id)
			return
		}
	}
}

// setFocus moves focus and scrolls page targets into view.
func (m *Model) setFocus(id string) {
	m.focus = id
	m.page.SetFocus(id)
	r, ok := m.page.TargetRect(id)
	if !ok || m.vp.Height <= 0 {
		return
	}
	if r.Y < m.vp.YOffset || r.Y >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(max(r.Y-2, 0))
	}
}

// focusedIndex returns the index of the focused zone in order, or -1.
func (m *Model) focusedIndex(order []string) int {
	for i, id := range order {
		if id == m.focus {
			return i
		}
	}
	return -1
}
