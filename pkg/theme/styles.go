package theme

import "github.com/charmbracelet/lipgloss"

// Styles is the set of lipgloss styles the page sections render with.
type Styles struct {
	Page      lipgloss.Style
	Heading   lipgloss.Style
	Title     lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style
	Kicker    lipgloss.Style
	Highlight lipgloss.Style
	Brand     lipgloss.Style
	Link      lipgloss.Style
	LinkFocus lipgloss.Style

	Primary   lipgloss.Style // filled CTA
	Secondary lipgloss.Style // outlined CTA

	Card       lipgloss.Style
	Rule       lipgloss.Style
	FAQClosed  lipgloss.Style
	FAQOpen    lipgloss.Style
	Overlay    lipgloss.Style
	OverlayDim lipgloss.Style
	Footer     lipgloss.Style
	FooterDim  lipgloss.Style
	StatusBar  lipgloss.Style
}

// NewStyles derives the page styles from a theme.
func NewStyles(t Theme) Styles {
	c := func(hex string) lipgloss.Color { return lipgloss.Color(hex) }

	return Styles{
		Page:      lipgloss.NewStyle().Foreground(c(t.Foreground)),
		Heading:   lipgloss.NewStyle().Foreground(c(t.Foreground)).Bold(true),
		Title:     lipgloss.NewStyle().Foreground(c(t.Foreground)).Bold(true),
		Body:      lipgloss.NewStyle().Foreground(c(t.Foreground)),
		Muted:     lipgloss.NewStyle().Foreground(c(t.Muted)),
		Kicker:    lipgloss.NewStyle().Foreground(c(t.Subtle)),
		Highlight: lipgloss.NewStyle().Foreground(c(t.Pink)).Bold(true).Italic(true),
		Brand:     lipgloss.NewStyle().Foreground(c(t.Foreground)).Bold(true),
		Link:      lipgloss.NewStyle().Foreground(c(t.Muted)),
		LinkFocus: lipgloss.NewStyle().Foreground(c(t.Focus)).Underline(true),

		Primary: lipgloss.NewStyle().
			Foreground(c(t.AccentText)).
			Background(c(t.Accent)).
			Padding(0, 2),
		Secondary: lipgloss.NewStyle().
			Foreground(c(t.Foreground)).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(c(t.Border)).
			Padding(0, 1),

		Card:       lipgloss.NewStyle().Foreground(c(t.Foreground)).Background(c(t.Surface)),
		Rule:       lipgloss.NewStyle().Foreground(c(t.Border)),
		FAQClosed:  lipgloss.NewStyle().Foreground(c(t.Foreground)).Background(c(t.Surface)),
		FAQOpen:    lipgloss.NewStyle().Foreground(c(t.AccentText)).Background(c(t.Accent)),
		Overlay:    lipgloss.NewStyle().Foreground(c(t.AccentText)).Background(c(t.Overlay)),
		OverlayDim: lipgloss.NewStyle().Foreground(c(t.Subtle)).Background(c(t.Overlay)),
		Footer:     lipgloss.NewStyle().Foreground(c(t.AccentText)).Background(c(t.Overlay)),
		FooterDim:  lipgloss.NewStyle().Foreground(c(t.Subtle)).Background(c(t.Overlay)),
		StatusBar:  lipgloss.NewStyle().Foreground(c(t.Muted)),
	}
}

// Swatch renders a solid block of color, used for the philosophy squares
// and image placeholders.
func Swatch(hex string, width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Width(width).Render("")
}
