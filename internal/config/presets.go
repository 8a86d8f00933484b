package config

import (
	"fmt"
	"slices"
)

// Presets are named tweaks over DefaultConfig.
var Presets = map[string]func(*Config){
	"calm": func(c *Config) {
		c.Cadence = 30
		c.Set.RemovalChance = 0.3
		c.Graph.RemovalChance = 0.15
	},
	"busy": func(c *Config) {
		c.Cadence = 8
		c.Stack.PushTicks = 20
		c.Table.InsertTicks = 20
		c.Set.AddTicks = 20
		c.Graph.AddTicks = 20
	},
	"dense": func(c *Config) {
		c.Stack.Capacity = 14
		c.Stack.Interval = 14
		c.Table.Capacity = 8
		c.Set.Capacity = 28
		c.Graph.Capacity = 12
		c.Graph.InitialNodes = 4
		c.Graph.Stiffness = 0.008
	},
}

// PresetInfo holds a one-line description per preset.
var PresetInfo = map[string]string{
	"calm":  "slow cadence, rare removals",
	"busy":  "fast cadence, short flights",
	"dense": "larger capacities, seeded graph",
}

// GetPreset returns a fresh config for the named preset, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve picks the base config: a file when path is set, else a preset when
// named, else the defaults. A preset given with a file is applied on top of it.
func Resolve(path, preset string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}
	if preset != "" {
		apply, ok := Presets[preset]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
		}
		apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
