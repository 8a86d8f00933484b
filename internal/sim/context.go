package sim

import (
	"io"
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/san-kum/dsanim/internal/vmath"
)

// DefaultTickRate is the nominal host clock in ticks per second.
const DefaultTickRate = 60

// ReferenceSide is the canvas side length that maps to 640 world units.
const ReferenceSide = 640

// Rand is the random source every visualizer draws from.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Scale converts the world's abstract units to canvas units.
type Scale struct {
	UnitLength float64
	UnitSpeed  float64
}

// NewScale derives the scale from the canvas side length and tick rate.
func NewScale(side, tickRate float64) Scale {
	unit := side / ReferenceSide
	return Scale{UnitLength: unit, UnitSpeed: unit / tickRate}
}

// Context is the explicit simulation environment shared by every visualizer.
type Context struct {
	Scale    Scale
	TickRate float64
	Rand     Rand
	Logger   *log.Logger

	nextID uint64
}

func NewContext(side, tickRate float64, r Rand, logger *log.Logger) *Context {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Context{
		Scale:    NewScale(side, tickRate),
		TickRate: tickRate,
		Rand:     r,
		Logger:   logger,
	}
}

// NewSeeded returns a context with a deterministic PCG source.
func NewSeeded(side, tickRate float64, seed uint64, logger *log.Logger) *Context {
	return NewContext(side, tickRate, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), logger)
}

// NextID hands out element IDs starting at 1.
func (c *Context) NextID() uint64 {
	c.nextID++
	return c.nextID
}

// Units converts a length in world units to canvas units.
func (c *Context) Units(n float64) float64 { return n * c.Scale.UnitLength }

// Speed converts a speed in world units per second to canvas units per tick.
func (c *Context) Speed(n float64) float64 { return n * c.Scale.UnitSpeed }

// Ticks converts seconds to whole ticks, rounding down.
func (c *Context) Ticks(seconds float64) uint { return uint(math.Floor(seconds * c.TickRate)) }

// Gravity is the constant downward velocity bias added per tick.
func (c *Context) Gravity() vmath.Vec2 {
	return vmath.V(0, 500*c.Scale.UnitSpeed/c.TickRate)
}

// Between returns a uniform value in [lo, hi).
func (c *Context) Between(lo, hi float64) float64 {
	return lo + (hi-lo)*c.Rand.Float64()
}

// Direction returns a uniformly distributed unit vector.
func (c *Context) Direction() vmath.Vec2 {
	return vmath.FromAngle(c.Rand.Float64()*2*math.Pi, 1)
}
