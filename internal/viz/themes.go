package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

var (
	// ThemePaper keeps the gray-on-light look of the structures themselves.
	ThemePaper = Theme{
		Name:      "paper",
		Primary:   lipgloss.Color("#3a3a3a"),
		Secondary: lipgloss.Color("#7a7a7a"),
		Accent:    lipgloss.Color("#1f6feb"),
		Text:      lipgloss.Color("#202020"),
		Muted:     lipgloss.Color("#9a9a9a"),
		Success:   lipgloss.Color("#2da44e"),
		Warning:   lipgloss.Color("#bf8700"),
		Error:     lipgloss.Color("#cf222e"),
	}

	// ThemeInk is paper inverted for dark terminals.
	ThemeInk = Theme{
		Name:      "ink",
		Primary:   lipgloss.Color("#d0d0d0"),
		Secondary: lipgloss.Color("#8c8c8c"),
		Accent:    lipgloss.Color("#58a6ff"),
		Text:      lipgloss.Color("#f0f0f0"),
		Muted:     lipgloss.Color("#5c5c5c"),
		Success:   lipgloss.Color("#3fb950"),
		Warning:   lipgloss.Color("#d29922"),
		Error:     lipgloss.Color("#f85149"),
	}

	ThemeBlueprint = Theme{
		Name:      "blueprint",
		Primary:   lipgloss.Color("#cfe3ff"),
		Secondary: lipgloss.Color("#7fa8d9"),
		Accent:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#e8f1ff"),
		Muted:     lipgloss.Color("#4a6c99"),
		Success:   lipgloss.Color("#9be7c4"),
		Warning:   lipgloss.Color("#ffe08a"),
		Error:     lipgloss.Color("#ff9b9b"),
	}

	Themes = []Theme{
		ThemePaper,
		ThemeInk,
		ThemeBlueprint,
	}
)

// GetTheme returns a theme by name, falling back to paper.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemePaper
}

// NextTheme returns the theme after name in Themes, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
