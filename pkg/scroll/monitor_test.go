package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrolledFollowsLatestPosition(t *testing.T) {
	m := NewMonitor()
	s := m.Subscribe(50)

	var got []bool
	for _, pos := range []int{0, 30, 60, 40} {
		m.Update(pos)
		got = append(got, s.Scrolled())
	}
	assert.Equal(t, []bool{false, false, true, false}, got)
}

func TestThresholdIsExclusive(t *testing.T) {
	m := NewMonitor()
	s := m.Subscribe(50)

	m.Update(50)
	assert.False(t, s.Scrolled())
	m.Update(51)
	assert.True(t, s.Scrolled())
}

func TestSubscribeUsesCurrentPosition(t *testing.T) {
	m := NewMonitor()
	m.Update(120)

	s := m.Subscribe(50)
	assert.True(t, s.Scrolled())
	assert.Equal(t, 120, m.Position())
}

func TestOnChangeFiresOnlyOnFlip(t *testing.T) {
	m := NewMonitor()
	s := m.Subscribe(10)

	var flips []bool
	s.OnChange(func(v bool) { flips = append(flips, v) })

	for _, pos := range []int{0, 5, 20, 30, 40, 3, 2, 11} {
		m.Update(pos)
	}
	assert.Equal(t, []bool{true, false, true}, flips)
}

func TestDisposeRemovesListener(t *testing.T) {
	m := NewMonitor()
	a := m.Subscribe(10)
	b := m.Subscribe(100)
	assert.Equal(t, 2, m.Listeners())

	called := false
	a.OnChange(func(bool) { called = true })

	a.Dispose()
	a.Dispose()
	assert.Equal(t, 1, m.Listeners())
	assert.True(t, a.Disposed())

	m.Update(500)
	assert.False(t, called, "disposed subscription must not fire")
	assert.False(t, a.Scrolled(), "disposed subscription is frozen")
	assert.True(t, b.Scrolled())

	b.Dispose()
	assert.Equal(t, 0, m.Listeners())
}

func TestIndependentThresholds(t *testing.T) {
	m := NewMonitor()
	low := m.Subscribe(10)
	high := m.Subscribe(100)

	m.Update(50)
	assert.True(t, low.Scrolled())
	assert.False(t, high.Scrolled())
	assert.Equal(t, 10, low.Threshold())
}
