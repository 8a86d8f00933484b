package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles of the live view, derived from a Theme.
type Styles struct {
	Canvas lipgloss.Style
	Panel  lipgloss.Style
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Dots   lipgloss.Style
	Names  lipgloss.Style
	Graph  lipgloss.Style
	Help   lipgloss.Style

	Running lipgloss.Style
	Paused  lipgloss.Style

	High, Mid, Low lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Canvas: lipgloss.NewStyle().Padding(1, 2),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(1, 2).
			Width(44),
		Title: lipgloss.NewStyle().Foreground(t.Accent).Bold(true).MarginBottom(1),
		Label: lipgloss.NewStyle().Foreground(t.Muted).Width(8),
		Value: lipgloss.NewStyle().Foreground(t.Text),
		Dots:  lipgloss.NewStyle().Foreground(t.Primary),
		Names: lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Graph: lipgloss.NewStyle().Foreground(t.Secondary).Padding(1, 0),
		Help:  lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),

		Running: lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		Paused:  lipgloss.NewStyle().Bold(true).Foreground(t.Warning),

		High: lipgloss.NewStyle().Foreground(t.Error),
		Mid:  lipgloss.NewStyle().Foreground(t.Warning),
		Low:  lipgloss.NewStyle().Foreground(t.Success),
	}
}

// AnimatedSpinner returns frame of animated spinner
func AnimatedSpinner(frame uint64) string {
	spinners := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return spinners[frame%uint64(len(spinners))]
}

// FillBar renders fraction (clamped to [0, 1]) as a bar of width cells. A
// fuller structure is drawn hotter.
func (s Styles) FillBar(fraction float64, width int) string {
	filled := int(fraction*float64(width) + 0.5)
	filled = min(max(filled, 0), width)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	switch {
	case fraction > 0.8:
		return s.High.Render(bar)
	case fraction > 0.4:
		return s.Mid.Render(bar)
	}
	return s.Low.Render(bar)
}

func (s Styles) Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(mid-3, 0))
	right := strings.Repeat("─", max(width-mid-3, 0))
	return s.Help.UnsetMarginTop().Render(left + " ◆ " + right)
}
