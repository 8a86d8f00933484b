package visualizer

import (
	"fmt"
	"strings"

	"github.com/san-kum/dsanim/internal/sim"
	"github.com/san-kum/dsanim/internal/vmath"
)

// Options configures a full scene. Only, when non-empty, selects structures by
// case-insensitive name.
type Options struct {
	Stack StackOptions
	Table TableOptions
	Set   SetOptions
	Graph GraphOptions
	Only  []string
}

func DefaultOptions() Options {
	return Options{
		Stack: DefaultStackOptions(),
		Table: DefaultTableOptions(),
		Set:   DefaultSetOptions(),
		Graph: DefaultGraphOptions(),
	}
}

// Names lists the structures in scene order.
var Names = []string{"Stack", "Set", "Table", "Graph"}

// Quadrant returns the center of quadrant (col, row) of a square canvas.
func Quadrant(side float64, col, row int) vmath.Vec2 {
	return vmath.V((0.25+0.5*float64(col))*side, (0.25+0.5*float64(row))*side)
}

// NewScene lays the four visualizers out on a square canvas: stack top left, set
// top right, table bottom left and graph bottom right.
func NewScene(ctx *sim.Context, side float64, opts Options) ([]sim.Visualizer, error) {
	want, err := selection(opts.Only)
	if err != nil {
		return nil, err
	}

	var out []sim.Visualizer
	if want["stack"] {
		out = append(out, NewStack(ctx, Quadrant(side, 0, 0), opts.Stack))
	}
	if want["set"] {
		out = append(out, NewSet(ctx, Quadrant(side, 1, 0), opts.Set))
	}
	if want["table"] {
		out = append(out, NewTable(ctx, Quadrant(side, 0, 1), opts.Table))
	}
	if want["graph"] {
		out = append(out, NewGraph(ctx, Quadrant(side, 1, 1), opts.Graph))
	}
	if len(out) == 0 {
		return nil, ErrEmptyScene
	}
	return out, nil
}

func selection(only []string) (map[string]bool, error) {
	want := make(map[string]bool, len(Names))
	if len(only) == 0 {
		for _, n := range Names {
			want[strings.ToLower(n)] = true
		}
		return want, nil
	}
	for _, n := range only {
		key := strings.ToLower(strings.TrimSpace(n))
		if key == "" {
			continue
		}
		if !known(key) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStructure, n)
		}
		want[key] = true
	}
	return want, nil
}

func known(key string) bool {
	for _, n := range Names {
		if strings.ToLower(n) == key {
			return true
		}
	}
	return false
}

// ObserveAll attaches o to every visualizer that publishes events.
func ObserveAll(vs []sim.Visualizer, o Observer) {
	for _, v := range vs {
		if ob, ok := v.(Observable); ok {
			ob.AddObserver(o)
		}
	}
}
