package visualizer

import (
	"errors"
	"testing"

	"github.com/san-kum/dsanim/internal/vmath"
)

func TestNewScene(t *testing.T) {
	tests := []struct {
		name    string
		only    []string
		want    []string
		wantErr error
	}{
		{"all", nil, []string{"Stack", "Set", "Table", "Graph"}, nil},
		{"filtered", []string{"graph", "STACK"}, []string{"Stack", "Graph"}, nil},
		{"unknown", []string{"queue"}, nil, ErrUnknownStructure},
		{"blank", []string{" "}, nil, ErrEmptyScene},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Only = tt.only
			vs, err := NewScene(testContext(fixedRand{}), 640, opts)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if len(vs) != len(tt.want) {
				t.Fatalf("got %d visualizers, want %d", len(vs), len(tt.want))
			}
			for i, v := range vs {
				if v.Name() != tt.want[i] {
					t.Errorf("visualizer %d = %s, want %s", i, v.Name(), tt.want[i])
				}
			}
		})
	}
}

func TestQuadrant(t *testing.T) {
	tests := []struct {
		col, row int
		want     vmath.Vec2
	}{
		{0, 0, vmath.V(160, 160)},
		{1, 0, vmath.V(480, 160)},
		{0, 1, vmath.V(160, 480)},
		{1, 1, vmath.V(480, 480)},
	}
	for _, tt := range tests {
		if got := Quadrant(640, tt.col, tt.row); got != tt.want {
			t.Errorf("Quadrant(%d, %d) = %v, want %v", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestObserveAll(t *testing.T) {
	vs, err := NewScene(testContext(fixedRand{}), 640, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	log := &eventLog{}
	ObserveAll(vs, log)
	for i := 0; i < 2; i++ {
		for _, v := range vs {
			v.Step()
		}
	}

	seen := map[string]bool{}
	for _, e := range log.events {
		if e.Kind == Spawned {
			seen[e.Structure] = true
		}
	}
	for _, name := range Names {
		if !seen[name] {
			t.Errorf("no spawn observed for %s", name)
		}
	}
}
