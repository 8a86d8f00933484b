package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/dsanim/internal/visualizer"
)

const (
	DefaultFPS     = 60.0
	DefaultCanvas  = 640.0
	DefaultCadence = 15
	DefaultTheme   = "paper"
	DefaultSeed    = 1
)

// Config is the on-disk description of a scene. Durations are in ticks, lengths
// in world units (1/640 of the canvas side).
type Config struct {
	Seed    uint64   `yaml:"seed" toml:"seed"`
	FPS     float64  `yaml:"fps" toml:"fps"`
	Canvas  float64  `yaml:"canvas" toml:"canvas"`
	Cadence uint     `yaml:"cadence" toml:"cadence"`
	Theme   string   `yaml:"theme" toml:"theme"`
	Only    []string `yaml:"only,omitempty" toml:"only,omitempty"`

	Stack StackConfig `yaml:"stack" toml:"stack"`
	Table TableConfig `yaml:"table" toml:"table"`
	Set   SetConfig   `yaml:"set" toml:"set"`
	Graph GraphConfig `yaml:"graph" toml:"graph"`
}

type StackConfig struct {
	Capacity       int     `yaml:"capacity" toml:"capacity"`
	Interval       float64 `yaml:"interval" toml:"interval"`
	PushTicks      uint    `yaml:"push_ticks" toml:"push_ticks"`
	DisappearTicks uint    `yaml:"disappear_ticks" toml:"disappear_ticks"`
}

type TableConfig struct {
	Capacity       int     `yaml:"capacity" toml:"capacity"`
	Fields         int     `yaml:"fields" toml:"fields"`
	InsertTicks    uint    `yaml:"insert_ticks" toml:"insert_ticks"`
	DisappearTicks uint    `yaml:"disappear_ticks" toml:"disappear_ticks"`
	DeleteChance   float64 `yaml:"delete_chance" toml:"delete_chance"`
}

type SetConfig struct {
	Capacity       int     `yaml:"capacity" toml:"capacity"`
	AddTicks       uint    `yaml:"add_ticks" toml:"add_ticks"`
	DisappearTicks uint    `yaml:"disappear_ticks" toml:"disappear_ticks"`
	RemovalChance  float64 `yaml:"removal_chance" toml:"removal_chance"`
}

type GraphConfig struct {
	Capacity       int     `yaml:"capacity" toml:"capacity"`
	Degree         int     `yaml:"degree" toml:"degree"`
	AddTicks       uint    `yaml:"add_ticks" toml:"add_ticks"`
	DisappearTicks uint    `yaml:"disappear_ticks" toml:"disappear_ticks"`
	RemovalChance  float64 `yaml:"removal_chance" toml:"removal_chance"`
	InitialNodes   int     `yaml:"initial_nodes" toml:"initial_nodes"`
	Repulsion      float64 `yaml:"repulsion" toml:"repulsion"`
	Stiffness      float64 `yaml:"stiffness" toml:"stiffness"`
}

func DefaultConfig() *Config {
	st := visualizer.DefaultStackOptions()
	tb := visualizer.DefaultTableOptions()
	se := visualizer.DefaultSetOptions()
	gr := visualizer.DefaultGraphOptions()
	return &Config{
		Seed:    DefaultSeed,
		FPS:     DefaultFPS,
		Canvas:  DefaultCanvas,
		Cadence: DefaultCadence,
		Theme:   DefaultTheme,
		Stack: StackConfig{
			Capacity:       st.Capacity,
			Interval:       st.Interval,
			PushTicks:      st.PushTicks,
			DisappearTicks: st.DisappearTicks,
		},
		Table: TableConfig{
			Capacity:       tb.Capacity,
			Fields:         tb.Fields,
			InsertTicks:    tb.InsertTicks,
			DisappearTicks: tb.DisappearTicks,
			DeleteChance:   tb.DeleteChance,
		},
		Set: SetConfig{
			Capacity:       se.Capacity,
			AddTicks:       se.AddTicks,
			DisappearTicks: se.DisappearTicks,
			RemovalChance:  se.RemovalChance,
		},
		Graph: GraphConfig{
			Capacity:       gr.Capacity,
			Degree:         gr.Degree,
			AddTicks:       gr.AddTicks,
			DisappearTicks: gr.DisappearTicks,
			RemovalChance:  gr.RemovalChance,
			InitialNodes:   gr.InitialNodes,
			Repulsion:      gr.Repulsion,
			Stiffness:      gr.Stiffness,
		},
	}
}

// Load reads a yaml or, for a .toml extension, toml file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return fmt.Errorf("config: encode: %w", err)
		}
		data = buf.Bytes()
	} else {
		var err error
		if data, err = yaml.Marshal(cfg); err != nil {
			return fmt.Errorf("config: encode: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Only = append([]string(nil), c.Only...)
	return &cp
}

// Options maps the config onto visualizer options. Settings the file cannot
// express keep their visualizer defaults.
func (c *Config) Options() visualizer.Options {
	o := visualizer.DefaultOptions()
	o.Only = c.Only

	o.Stack.Cadence = c.Cadence
	o.Stack.Capacity = c.Stack.Capacity
	o.Stack.Interval = c.Stack.Interval
	o.Stack.PushTicks = c.Stack.PushTicks
	o.Stack.AppearTicks = c.Stack.PushTicks
	o.Stack.DisappearTicks = c.Stack.DisappearTicks

	o.Table.Cadence = c.Cadence
	o.Table.Capacity = c.Table.Capacity
	o.Table.Fields = c.Table.Fields
	o.Table.InsertTicks = c.Table.InsertTicks
	o.Table.AppearTicks = c.Table.InsertTicks
	o.Table.DisappearTicks = c.Table.DisappearTicks
	o.Table.DeleteChance = c.Table.DeleteChance

	o.Set.Cadence = c.Cadence
	o.Set.Capacity = c.Set.Capacity
	o.Set.AddTicks = c.Set.AddTicks
	o.Set.AppearTicks = c.Set.AddTicks
	o.Set.DisappearTicks = c.Set.DisappearTicks
	o.Set.RemovalChance = c.Set.RemovalChance

	o.Graph.Cadence = c.Cadence
	o.Graph.Capacity = c.Graph.Capacity
	o.Graph.Degree = c.Graph.Degree
	o.Graph.AddTicks = c.Graph.AddTicks
	o.Graph.AppearTicks = c.Graph.AddTicks
	o.Graph.DisappearTicks = c.Graph.DisappearTicks
	o.Graph.RemovalChance = c.Graph.RemovalChance
	o.Graph.InitialNodes = c.Graph.InitialNodes
	o.Graph.Repulsion = c.Graph.Repulsion
	o.Graph.Stiffness = c.Graph.Stiffness
	return o
}
