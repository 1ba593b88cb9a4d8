// Package styles defines the color palette and pre-built styles shared
// by the typeahead widget and the demo applications.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the widget.
type Theme struct {
	Primary lipgloss.Color // accent - expanded marker, selection

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgHighlight lipgloss.Color // highlighted result row background

	Error lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common widget patterns.
type Styles struct {
	Base      lipgloss.Style // default text
	Muted     lipgloss.Style // labels, secondary text
	Subtle    lipgloss.Style // hints, empty states, detail columns
	Accent    lipgloss.Style // expanded marker
	Highlight lipgloss.Style // highlighted result row
	Error     lipgloss.Style // inline failure message
}

var defaultTheme = Theme{
	Primary: lipgloss.Color("#7aa2f7"),

	FgBase:   lipgloss.Color("#c0caf5"),
	FgMuted:  lipgloss.Color("#787c99"),
	FgSubtle: lipgloss.Color("#565f89"),

	BgHighlight: lipgloss.Color("#2e3c64"),

	Error: lipgloss.Color("#f7768e"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	return &Styles{
		Base:   lipgloss.NewStyle().Foreground(t.FgBase),
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Accent: lipgloss.NewStyle().Foreground(t.Primary),
		Highlight: lipgloss.NewStyle().
			Background(t.BgHighlight).
			Foreground(t.FgBase).
			Bold(true),
		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}
