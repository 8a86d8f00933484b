package config

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPreset indicates a preset name that is not in Presets.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// ValidationError reports one invalid field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, field, reason string) {
		if !ok {
			errs = append(errs, &ValidationError{Field: field, Reason: reason})
		}
	}

	check(c.FPS > 0, "fps", "must be positive")
	check(c.Canvas > 0, "canvas", "must be positive")
	check(c.Cadence > 0, "cadence", "must be positive")

	check(c.Stack.Capacity > 0, "stack.capacity", "must be positive")
	check(c.Stack.Interval > 0, "stack.interval", "must be positive")
	check(c.Stack.PushTicks > 0, "stack.push_ticks", "must be positive")
	check(c.Stack.DisappearTicks > 0, "stack.disappear_ticks", "must be positive")

	check(c.Table.Capacity > 0, "table.capacity", "must be positive")
	check(c.Table.Fields > 0, "table.fields", "must be positive")
	check(c.Table.InsertTicks > 0, "table.insert_ticks", "must be positive")
	check(c.Table.DisappearTicks > 0, "table.disappear_ticks", "must be positive")
	check(probability(c.Table.DeleteChance), "table.delete_chance", "must be in [0, 1]")

	check(c.Set.Capacity > 0, "set.capacity", "must be positive")
	check(c.Set.AddTicks > 0, "set.add_ticks", "must be positive")
	check(c.Set.DisappearTicks > 0, "set.disappear_ticks", "must be positive")
	check(probability(c.Set.RemovalChance), "set.removal_chance", "must be in [0, 1]")

	check(c.Graph.Capacity > 0, "graph.capacity", "must be positive")
	check(c.Graph.Degree >= 0, "graph.degree", "must not be negative")
	check(c.Graph.AddTicks > 0, "graph.add_ticks", "must be positive")
	check(c.Graph.DisappearTicks > 0, "graph.disappear_ticks", "must be positive")
	check(probability(c.Graph.RemovalChance), "graph.removal_chance", "must be in [0, 1]")
	check(c.Graph.InitialNodes >= 0 && c.Graph.InitialNodes <= c.Graph.Capacity,
		"graph.initial_nodes", "must be between 0 and graph.capacity")
	check(c.Graph.Repulsion <= 0, "graph.repulsion", "must not be positive")
	check(c.Graph.Stiffness >= 0, "graph.stiffness", "must not be negative")

	return errors.Join(errs...)
}

func probability(p float64) bool { return p >= 0 && p <= 1 }
