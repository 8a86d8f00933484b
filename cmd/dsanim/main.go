package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"

	charmlog "github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/dsanim/internal/config"
	"github.com/san-kum/dsanim/internal/export"
	"github.com/san-kum/dsanim/internal/render"
	"github.com/san-kum/dsanim/internal/sim"
	"github.com/san-kum/dsanim/internal/storage"
	"github.com/san-kum/dsanim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       uint64
	fps        float64
	only       []string
	theme      string
	verbose    bool

	ticks     int
	save      bool
	numRuns   int
	outFile   string
	graphFile string
	dotsFile  string
	svgFile   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "dsanim",
		Short:        "animated data structures in the terminal",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: runMenu,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".dsanim", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	sceneFlags(rootCmd)
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the scene with live visualization",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	sceneFlags(liveCmd)
	liveCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the scene headless and summarize it",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	sceneFlags(runCmd)
	runCmd.Flags().IntVar(&ticks, "ticks", 3600, "number of ticks")
	runCmd.Flags().BoolVar(&save, "save", false, "store the run under --data")
	runCmd.Flags().IntVar(&numRuns, "runs", 1, "independent runs with consecutive seeds")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot occupancy of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&svgFile, "svg", "", "also write the plot as SVG")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(args[0], cmd.OutOrStdout())
		},
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "run headless and export the final frame",
		Args:  cobra.NoArgs,
		RunE:  runSnapshot,
	}
	sceneFlags(snapshotCmd)
	snapshotCmd.Flags().IntVar(&ticks, "ticks", 600, "number of ticks before the snapshot")
	snapshotCmd.Flags().StringVar(&outFile, "out", "frame.svg", "SVG file for the frame")
	snapshotCmd.Flags().StringVar(&graphFile, "graph", "", "write the graph layout (.dot or .svg)")
	snapshotCmd.Flags().StringVar(&dotsFile, "dots", "", "write the terminal rendition of the frame as SVG")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, p := range config.ListPresets() {
				fmt.Fprintf(w, "%s\t%s\n", p, config.PresetInfo[p])
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(liveCmd, runCmd, listCmd, plotCmd, exportCmd, snapshotCmd, presetsCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// sceneFlags registers the flags every scene-building command shares.
func sceneFlags(c *cobra.Command) {
	c.Flags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	c.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	c.Flags().Uint64Var(&seed, "seed", config.DefaultSeed, "random seed")
	c.Flags().Float64Var(&fps, "fps", config.DefaultFPS, "ticks per second")
	c.Flags().StringSliceVar(&only, "only", nil, "structures to show (stack,set,table,graph)")
}

// liveModel builds the live view for cfg. The simulation logs nowhere while
// the terminal is in the alternate screen.
func liveModel(cfg *config.Config, title string) (viz.Model, error) {
	s, err := newScene(cfg, cfg.Seed, nil)
	if err != nil {
		return viz.Model{}, err
	}
	return viz.NewModel(s.runner, s.occupancy, viz.Options{
		Side:  cfg.Canvas,
		FPS:   int(cfg.FPS),
		Theme: cfg.Theme,
		Title: title,
	}), nil
}

// runMenu opens the preset picker, or goes straight to the live view when
// a config or preset was given.
func runMenu(cmd *cobra.Command, args []string) error {
	if configFile != "" || preset != "" {
		return runLive(cmd, args)
	}
	base, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	choices := []viz.Choice{{Name: "default", Info: "all structures, default pacing"}}
	for _, p := range config.ListPresets() {
		choices = append(choices, viz.Choice{Name: p, Info: config.PresetInfo[p]})
	}
	menu := viz.NewMenu(choices, base.Theme, func(name string) (viz.Model, error) {
		cfg := base.Clone()
		if apply, ok := config.Presets[name]; ok {
			apply(cfg)
		}
		if err := cfg.Validate(); err != nil {
			return viz.Model{}, err
		}
		return liveModel(cfg, name)
	})
	return viz.Run(cmd.Context(), menu)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := liveModel(cfg, preset)
	if err != nil {
		return err
	}
	return viz.Run(cmd.Context(), m)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if numRuns > 1 {
		return runEnsemble(cmd, cfg)
	}

	s, err := newScene(cfg, cfg.Seed, logger)
	if err != nil {
		return err
	}

	logger.Info("running scene", "ticks", ticks, "seed", cfg.Seed, "structures", strings.Join(s.names(), ","))
	p := newProgress(logger)
	res, err := s.runner.Run(ctx, sim.Config{Ticks: ticks, Seed: cfg.Seed}, nil)
	if err != nil {
		return err
	}
	p.done("run finished", "frames", res.Frames)

	if err := printSummary(cmd.OutOrStdout(), s, res); err != nil {
		return err
	}
	if !save {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(&storage.Run{
		Meta: storage.RunMetadata{
			Seed:       cfg.Seed,
			FPS:        cfg.FPS,
			Ticks:      ticks,
			Preset:     preset,
			Structures: s.names(),
			Settled:    res.Settled,
			Metrics:    res.Metrics,
			Events:     s.mutations.Counts(),
		},
		Frames: s.occupancy.Frames(),
		Series: s.occupancy.All(),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nrun id: %s\n", runID)
	return nil
}

func printSummary(out io.Writer, s *scene, res *sim.Result) error {
	counts := s.mutations.Counts()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STRUCTURE\tSETTLED\tCAP\tMEAN\tPEAK\tSPAWNED\tCOMMITTED\tEVICTED")
	for _, v := range s.runner.Visualizers() {
		name := v.Name()
		c := counts[name]
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\t%.0f\t%d\t%d\t%d\n",
			name, res.Settled[name], v.Capacity(),
			s.occupancy.Mean(name), s.occupancy.Peak(name),
			c.Spawned, c.Committed, c.Evicted)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nmetrics:")
	for _, name := range slices.Sorted(maps.Keys(res.Metrics)) {
		fmt.Fprintf(out, "  %s: %.4f\n", name, res.Metrics[name])
	}
	return nil
}

func runEnsemble(cmd *cobra.Command, cfg *config.Config) error {
	logger := loggerFromContext(cmd.Context())
	ens := sim.NewEnsemble(func(seed uint64) (*sim.Runner, error) {
		s, err := newScene(cfg, seed, logger)
		if err != nil {
			return nil, err
		}
		return s.runner, nil
	}, numRuns, cfg.Seed)

	p := newProgress(logger)
	results, err := ens.Run(cmd.Context(), sim.Config{Ticks: ticks})
	if err != nil {
		return err
	}
	p.done("ensemble finished", "runs", numRuns)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tFRAMES\tOCCUPANCY\tMUTATIONS/S\tSETTLED")
	for i, res := range results {
		settled := make([]string, 0, len(res.Settled))
		for _, name := range slices.Sorted(maps.Keys(res.Settled)) {
			settled = append(settled, fmt.Sprintf("%s=%d", name, res.Settled[name]))
		}
		fmt.Fprintf(w, "%d\t%d\t%.3f\t%.2f\t%s\n",
			cfg.Seed+uint64(i), res.Frames, res.Metrics["occupancy"], res.Metrics["mutations_per_sec"], strings.Join(settled, " "))
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSEED\tTICKS\tPRESET\tSTRUCTURES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Seed,
			run.Ticks,
			run.Preset,
			strings.Join(run.Structures, ","),
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	out := cmd.OutOrStdout()

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	frames, series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "samples: %d\n\n", len(frames))

	names := slices.Sorted(maps.Keys(series))
	ymax := 0.0
	for _, name := range names {
		ymax = max(ymax, slices.Max(series[name]))
		graph := asciigraph.Plot(series[name],
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.LowerBound(0),
			asciigraph.Caption(name+" settled"),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	if svgFile == "" {
		return nil
	}
	colors := []string{"#1f6feb", "#cf222e", "#2da44e", "#bf8700"}
	svg := export.SeriesToSVG(series, names, ymax, 640, 240, colors)
	return os.WriteFile(svgFile, []byte(svg), 0644)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newScene(cfg, cfg.Seed, logger)
	if err != nil {
		return err
	}
	if _, err := s.runner.Run(ctx, sim.Config{Ticks: ticks, Seed: cfg.Seed}, nil); err != nil {
		return err
	}

	frame := export.NewSVG(cfg.Canvas, render.Gray(255))
	s.runner.Draw(frame)
	if err := writeFile(outFile, []byte(frame.String())); err != nil {
		return err
	}
	logger.Info("wrote frame", "path", outFile, "frame", s.runner.Frame())

	if dotsFile != "" {
		c := viz.NewCanvas(80, 40)
		c.Fit(cfg.Canvas)
		s.runner.Draw(c)
		dots := export.CanvasToSVG(c, 4, render.Gray(32), render.Gray(255))
		if err := writeFile(dotsFile, []byte(dots)); err != nil {
			return err
		}
		logger.Info("wrote terminal frame", "path", dotsFile)
	}

	if graphFile == "" {
		return nil
	}
	g, ok := s.graph()
	if !ok {
		return fmt.Errorf("--graph: scene has no graph structure")
	}
	var data []byte
	if strings.EqualFold(filepath.Ext(graphFile), ".dot") {
		data = []byte(export.DOT(g.Layout(), 1))
	} else if data, err = export.GraphSVG(ctx, g.Layout(), 1); err != nil {
		return err
	}
	if err := writeFile(graphFile, data); err != nil {
		return err
	}
	logger.Info("wrote graph", "path", graphFile, "nodes", g.Settled())
	return nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
