package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/dsanim/internal/metrics"
	"github.com/san-kum/dsanim/internal/sim"
)

const (
	width           = 80
	height          = 40
	historyCapacity = 300
	gaugeWidth      = 14
)

// Options configure the live view.
type Options struct {
	// Width and Height are the canvas size in terminal cells.
	Width, Height int
	// Side is the world side length the canvas is fitted to.
	Side  float64
	FPS   int
	Theme string
	Title string
}

type TickMsg time.Time

// Model drives a sim.Runner from the terminal clock and renders it.
type Model struct {
	runner    *sim.Runner
	occupancy *metrics.Occupancy
	canvas    *Canvas
	gauges    gauges
	history   []float64
	theme     Theme
	styles    Styles
	fps       int
	title     string
	showHelp  bool
}

// NewModel wraps r. When occ is nil an occupancy metric is created and
// attached to r.
func NewModel(r *sim.Runner, occ *metrics.Occupancy, opts Options) Model {
	if occ == nil {
		occ = metrics.NewOccupancy()
		r.AddMetric(occ)
	}
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = width
	}
	if h <= 0 {
		h = height
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = sim.DefaultTickRate
	}
	side := opts.Side
	if side <= 0 {
		side = sim.ReferenceSide
	}
	c := NewCanvas(w, h)
	c.Fit(side)

	theme := GetTheme(opts.Theme)
	return Model{
		runner:    r,
		occupancy: occ,
		canvas:    c,
		gauges:    newGauges(fps, len(r.Visualizers())),
		history:   make([]float64, 0, historyCapacity),
		theme:     theme,
		styles:    NewStyles(theme),
		fps:       fps,
		title:     opts.Title,
	}
}

func (m Model) Runner() *sim.Runner { return m.runner }
func (m Model) Theme() Theme        { return m.theme }
func (m Model) Canvas() *Canvas     { return m.canvas }
func (m Model) History() []float64  { return m.history }

// Gauge returns the smoothed fill fraction of the i-th visualizer.
func (m Model) Gauge(i int) float64 { return m.gauges.value(i) }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles input events and delivers clock ticks to the runner.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "p":
			m.runner.Toggle()
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = NewStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		m.advance()
		return m, m.tick()
	}
	return m, nil
}

// advance clears the canvas and delivers one tick. A paused runner only
// redraws, so the history and gauges hold still.
func (m *Model) advance() {
	m.canvas.Clear()
	if !m.runner.Tick(m.canvas) {
		return
	}
	vs := m.runner.Visualizers()
	var sum float64
	for i, v := range vs {
		f := fill(v)
		sum += f
		m.gauges.step(i, f)
	}
	if len(vs) > 0 {
		m.history = append(m.history, sum/float64(len(vs)))
	}
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func fill(v sim.Visualizer) float64 {
	if v.Capacity() <= 0 {
		return 0
	}
	return float64(v.Settled()) / float64(v.Capacity())
}

// View renders the canvas beside the stats panel.
func (m Model) View() string {
	st := m.styles
	canvasView := st.Canvas.Render(m.canvas.Render(st.Dots, st.Names))

	var s strings.Builder
	title := "DSANIM"
	if m.title != "" {
		title += " · " + m.title
	}
	s.WriteString(st.Title.Render(title) + "\n")

	frame := m.runner.Frame()
	if m.runner.Paused() {
		s.WriteString(st.Paused.Render("PAUSED") + "\n\n")
	} else {
		s.WriteString(st.Running.Render(AnimatedSpinner(frame)+" RUNNING") + "\n\n")
	}
	s.WriteString(st.Label.Render("Frame") + st.Value.Render(fmt.Sprintf("%d", frame)) + "\n")
	s.WriteString(st.Label.Render("Time") + st.Value.Render(fmt.Sprintf("%.1fs", float64(frame)/float64(m.fps))) + "\n")
	s.WriteString(st.Label.Render("Mean") + st.Value.Render(fmt.Sprintf("%.0f%%", 100*m.occupancy.Value())) + "\n")
	s.WriteString(st.Label.Render("Theme") + st.Value.Render(m.theme.Name) + "\n\n")

	for i, v := range m.runner.Visualizers() {
		s.WriteString(st.Label.Render(v.Name()) + st.FillBar(m.gauges.value(i), gaugeWidth) +
			st.Value.Render(fmt.Sprintf(" %2d/%-2d", v.Settled(), v.Capacity())) + "\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(4), asciigraph.Width(30),
			asciigraph.LowerBound(0), asciigraph.UpperBound(1),
			asciigraph.Caption("occupancy"))
		s.WriteString(st.Graph.Render(chart) + "\n")
	}
	s.WriteString(st.Help.Render(st.Separator(30) + "\nSP/P:Pause T:Theme\n?:Help     Q:Quit"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.Panel.Render(s.String()))
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space/P  - Pause/Resume the clock   ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run shows m full screen until the user quits or ctx is done.
func Run(ctx context.Context, m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
