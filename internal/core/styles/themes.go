package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Foreground lipgloss.TerminalColor
	Background lipgloss.TerminalColor
	Selection  lipgloss.TerminalColor
	Muted      lipgloss.TerminalColor
	Success    lipgloss.TerminalColor
	Error      lipgloss.TerminalColor
}

// DefaultTheme is the name of the default theme. It uses the terminal's own
// colors and reverse video for the selected row.
const DefaultTheme = "default"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	DefaultTheme: {
		Foreground: lipgloss.NoColor{},
		Background: lipgloss.NoColor{},
		Selection:  lipgloss.NoColor{},
		Muted:      lipgloss.NoColor{},
		Success:    lipgloss.ANSIColor(2),
		Error:      lipgloss.ANSIColor(1),
	},
	"tokyo-night": {
		Foreground: lipgloss.Color("#c0caf5"),
		Background: lipgloss.Color("#1a1b26"),
		Selection:  lipgloss.Color("#7aa2f7"),
		Muted:      lipgloss.Color("#565f89"),
		Success:    lipgloss.Color("#9ece6a"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Foreground: lipgloss.Color("#ebdbb2"),
		Background: lipgloss.Color("#282828"),
		Selection:  lipgloss.Color("#83a598"),
		Muted:      lipgloss.Color("#665c54"),
		Success:    lipgloss.Color("#b8bb26"),
		Error:      lipgloss.Color("#fb4934"),
	},
	"catppuccin": {
		Foreground: lipgloss.Color("#cdd6f4"), // Text
		Background: lipgloss.Color("#1e1e2e"), // Base
		Selection:  lipgloss.Color("#89b4fa"), // Blue
		Muted:      lipgloss.Color("#6c7086"), // Overlay0
		Success:    lipgloss.Color("#a6e3a1"), // Green
		Error:      lipgloss.Color("#f38ba8"), // Red
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}
