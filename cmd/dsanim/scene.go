package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/dsanim/internal/config"
	"github.com/san-kum/dsanim/internal/metrics"
	"github.com/san-kum/dsanim/internal/sim"
	"github.com/san-kum/dsanim/internal/visualizer"
)

// scene is a runner with the metrics every command reads back.
type scene struct {
	cfg       *config.Config
	runner    *sim.Runner
	occupancy *metrics.Occupancy
	mutations *metrics.Mutations
}

// loadConfig resolves --config and --preset, then applies the flags the user
// set explicitly on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Resolve(configFile, preset)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("only") {
		cfg.Only = only
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newScene(cfg *config.Config, seed uint64, logger *log.Logger) (*scene, error) {
	ctx := sim.NewSeeded(cfg.Canvas, cfg.FPS, seed, logger)
	vs, err := visualizer.NewScene(ctx, cfg.Canvas, cfg.Options())
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	s := &scene{
		cfg:       cfg,
		runner:    sim.NewRunner(ctx, vs...),
		occupancy: metrics.NewOccupancy(),
		mutations: metrics.NewMutations(cfg.FPS),
	}
	s.runner.AddMetric(s.occupancy)
	s.runner.AddMetric(s.mutations)
	visualizer.ObserveAll(vs, s.mutations)
	return s, nil
}

func (s *scene) names() []string {
	vs := s.runner.Visualizers()
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Name()
	}
	return out
}

// graph returns the scene's graph visualizer, if it has one.
func (s *scene) graph() (*visualizer.Graph, bool) {
	for _, v := range s.runner.Visualizers() {
		if g, ok := v.(*visualizer.Graph); ok {
			return g, true
		}
	}
	return nil, false
}
