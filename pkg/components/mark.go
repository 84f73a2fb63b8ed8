package components

// Marker tags a rendered string as a clickable region named id. The app
// backs it with a bubblezone manager; static renders use NoMark.
type Marker func(id, s string) string

// NoMark returns s untouched.
func NoMark(_ string, s string) string { return s }

// Mark applies m, treating a nil Marker as NoMark.
func (m Marker) Mark(id, s string) string {
	if m == nil {
		return s
	}
	return m(id, s)
}
