package sim

import (
	"context"

	"github.com/san-kum/dsanim/internal/render"
)

// Runner drives a fixed, ordered list of visualizers from a single clock.
type Runner struct {
	ctx       *Context
	vis       []Visualizer
	metrics   []Metric
	observers []Observer

	frame  uint64
	paused bool
}

func NewRunner(ctx *Context, vis ...Visualizer) *Runner {
	return &Runner{ctx: ctx, vis: vis}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Context() *Context         { return r.ctx }
func (r *Runner) Visualizers() []Visualizer { return r.vis }
func (r *Runner) Frame() uint64             { return r.frame }

// Pause freezes tick delivery; frames are still drawn.
func (r *Runner) Pause()       { r.paused = true }
func (r *Runner) Resume()      { r.paused = false }
func (r *Runner) Paused() bool { return r.paused }
func (r *Runner) Toggle()      { r.paused = !r.paused }

// Tick steps every visualizer once, in order, then draws them. While paused it
// only draws and reports false.
func (r *Runner) Tick(s render.Surface) bool {
	if s == nil {
		s = render.Discard{}
	}
	if r.paused {
		r.Draw(s)
		return false
	}

	for _, v := range r.vis {
		v.Step()
	}
	r.Draw(s)
	r.frame++

	for _, m := range r.metrics {
		m.Observe(r.frame, r.vis)
	}
	for _, o := range r.observers {
		o.OnTick(r.frame, r.vis)
	}
	return true
}

func (r *Runner) Draw(s render.Surface) {
	for _, v := range r.vis {
		v.Draw(s)
	}
}

// Run delivers cfg.Ticks ticks, checking ctx between ticks. A paused runner is
// resumed first since nothing else could resume it.
func (r *Runner) Run(ctx context.Context, cfg Config, s render.Surface) (*Result, error) {
	if err := r.validate(cfg); err != nil {
		return nil, err
	}

	for _, m := range r.metrics {
		m.Reset()
	}
	r.Resume()

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			return r.result(), &RunError{Frame: r.frame, Wrapped: ctx.Err()}
		default:
		}
		r.Tick(s)
	}

	r.ctx.Logger.Debug("run finished", "frames", r.frame)
	return r.result(), nil
}

func (r *Runner) validate(cfg Config) error {
	if len(r.vis) == 0 {
		return ErrNoVisualizers
	}
	if cfg.Ticks <= 0 {
		return ErrInvalidTicks
	}
	return nil
}

func (r *Runner) result() *Result {
	res := &Result{
		Frames:  r.frame,
		Settled: make(map[string]int, len(r.vis)),
		Metrics: make(map[string]float64, len(r.metrics)),
	}
	for _, v := range r.vis {
		res.Settled[v.Name()] = v.Settled()
	}
	for _, m := range r.metrics {
		res.Metrics[m.Name()] = m.Value()
	}
	return res
}
