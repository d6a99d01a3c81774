// Package styles provides the lipgloss styles shared by the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

var (
	// RegularStyle draws ordinary rows.
	RegularStyle lipgloss.Style
	// HighlightStyle draws the selected row.
	HighlightStyle lipgloss.Style

	StatusOKStyle    lipgloss.Style
	StatusErrorStyle lipgloss.Style
	HelpStyle        lipgloss.Style
)

func init() {
	p, _ := GetPalette(DefaultTheme)
	SetTheme(p)
}

// SetTheme rebuilds every exported style from p.
func SetTheme(p Palette) {
	CurrentPalette = p

	RegularStyle = lipgloss.NewStyle().Foreground(p.Foreground)

	// Without a selection color fall back to swapping foreground and
	// background, the classic curses highlight pair.
	if _, ok := p.Selection.(lipgloss.NoColor); ok {
		HighlightStyle = lipgloss.NewStyle().Reverse(true)
	} else {
		HighlightStyle = lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Selection)
	}

	StatusOKStyle = lipgloss.NewStyle().Foreground(p.Success)
	StatusErrorStyle = lipgloss.NewStyle().Foreground(p.Error).Bold(true)
	HelpStyle = lipgloss.NewStyle().Foreground(p.Muted)
}
