package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Launcher builds the live view for a preset chosen in the menu.
type Launcher func(preset string) (Model, error)

// Choice is one menu entry.
type Choice struct {
	Name string
	Info string
}

const (
	stateMenu = iota
	stateLive
)

// Menu lists presets and hands over to the live view of the chosen one.
type Menu struct {
	state, cursor int
	choices       []Choice
	launch        Launcher
	live          Model
	err           error
	theme         Theme
}

func NewMenu(choices []Choice, theme string, launch Launcher) Menu {
	return Menu{choices: choices, launch: launch, theme: GetTheme(theme)}
}

// Chosen returns the entry under the cursor.
func (m Menu) Chosen() Choice { return m.choices[m.cursor] }

// Live reports whether the menu has handed over to a live view.
func (m Menu) Live() bool { return m.state == stateLive }

func (m Menu) Err() error { return m.err }

func (m Menu) Init() tea.Cmd { return nil }

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateLive {
		next, cmd := m.live.Update(msg)
		m.live = next.(Model)
		return m, cmd
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.choices) == 0 {
			return m, nil
		}
		live, err := m.launch(m.Chosen().Name)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.live, m.state, m.err = live, stateLive, nil
		return m, m.live.Init()
	}
	return m, nil
}

func (m Menu) View() string {
	if m.state == stateLive {
		return m.live.View()
	}
	t := m.theme
	h := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	sub := lipgloss.NewStyle().Foreground(t.Muted)
	cursor := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	active := lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	info := lipgloss.NewStyle().Foreground(t.Primary)
	key := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder
	b.WriteString("\n\n    " + h.Render("DSANIM") + "\n    " + sub.Render("animated data structures") + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, c := range m.choices {
		desc := c.Info
		if len(desc) > 32 {
			desc = desc[:29] + "..."
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", cursor.Render("▸"), active.Render(fmt.Sprintf("%-10s", c.Name)), info.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", sub.Render(fmt.Sprintf("  %-10s", c.Name)), sub.Render(desc)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(t.Error).Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + key.Render("j/k") + sub.Render(" navigate  ") + key.Render("enter") + sub.Render(" start  ") + key.Render("q") + sub.Render(" quit") + "\n")
	return b.String()
}
