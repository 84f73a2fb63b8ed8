// Package theme holds the page color palettes. Themes are plain hex
// strings so they can be loaded from TOML; Styles turns one into the
// lipgloss styles the sections render with.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the complete color palette for the page.
type Theme struct {
	Name string

	// Base colors
	Background string // page background, e.g. "#ffffff"
	Foreground string // headings and body text
	Muted      string // secondary copy
	Subtle     string // captions, kicker labels

	// Surfaces
	Surface    string // cards, closed FAQ items
	SurfaceAlt string // decorative bars, hovered items
	Border     string // hairlines, outline buttons

	// Accent
	Accent     string // primary button and open FAQ background
	AccentText string // text on Accent
	Focus      string // keyboard focus ring

	// Brand
	Pink    string
	Blue    string
	Orange  string
	Yellow  string // philosophy square
	Red     string // philosophy square
	Overlay string // image gradient / footer background
}

// Current holds the active theme (set via SetCurrent).
var Current Theme

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
	Current = thBirdTheme()
}

// Get returns a named theme, falling back to the bird theme if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["bird"]
}

// Lookup returns a named theme and whether it exists.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrent sets the active theme by name.
func SetCurrent(name string) {
	Current = Get(name)
}

// Register adds a theme (typically loaded from TOML) to the registry under
// its lowercase name, replacing any theme of the same name.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thBirdTheme(),
		thNightTheme(),
		thMonoTheme(),
	} {
		Register(t)
	}
}
