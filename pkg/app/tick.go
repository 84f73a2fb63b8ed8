package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/birdcapital/bird/pkg/content"
)

// FrameCmd returns a bubbletea Cmd that sends a FrameEvent after d. It
// drives reveal transitions.
func FrameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameEvent{Time: t}
	})
}

// LoadCatalogCmd returns a Cmd that reads the catalog at path in a
// goroutine and delivers the result as a CatalogEvent.
func LoadCatalogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		c, err := content.Load(path)
		return CatalogEvent{
			Catalog:   c,
			Err:       err,
			Timestamp: time.Now(),
		}
	}
}
