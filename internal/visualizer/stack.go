package visualizer

import (
	"math"

	"github.com/san-kum/dsanim/internal/element"
	"github.com/san-kum/dsanim/internal/render"
	"github.com/san-kum/dsanim/internal/sim"
	"github.com/san-kum/dsanim/internal/sprite"
	"github.com/san-kum/dsanim/internal/vmath"
)

// StackOptions holds the stack's tuning. Lengths are in world units, speeds in
// world units per second and durations in ticks.
type StackOptions struct {
	Capacity       int
	Cadence        uint
	Interval       float64
	ElementSize    float64
	PushTicks      uint
	AppearTicks    uint
	DisappearTicks uint
	PopSpeedMin    float64
	PopSpeedMax    float64
	// DrawOffset shifts the column down so the label stays clear of the bottom slot.
	DrawOffset float64
}

func DefaultStackOptions() StackOptions {
	return StackOptions{
		Capacity:       10,
		Cadence:        15,
		Interval:       20,
		ElementSize:    14,
		PushTicks:      30,
		AppearTicks:    30,
		DisappearTicks: 30,
		PopSpeedMin:    100,
		PopSpeedMax:    200,
		DrawOffset:     60,
	}
}

// Stack is a LIFO column. Slot i sits Interval above slot i-1; pushes never race
// pops.
type Stack struct {
	base
	opts StackOptions

	settled *sprite.List[*element.Leaf]
	pushing *sprite.List[*element.Leaf]
	popping *sprite.List[*element.Leaf]
}

func NewStack(ctx *sim.Context, pos vmath.Vec2, opts StackOptions) *Stack {
	return &Stack{
		base: newBase(ctx, "Stack", pos, Policy{
			Capacity:      opts.Capacity,
			Cadence:       opts.Cadence,
			RemovalChance: 1,
			Exclusive:     true,
		}),
		opts:    opts,
		settled: sprite.NewList[*element.Leaf](),
		pushing: sprite.NewList[*element.Leaf](),
		popping: sprite.NewList[*element.Leaf](),
	}
}

func (s *Stack) Settled() int   { return s.settled.Len() }
func (s *Stack) Inserting() int { return s.pushing.Len() }
func (s *Stack) Removing() int  { return s.popping.Len() }

// Elements returns the settled elements from bottom to top.
func (s *Stack) Elements() []*element.Leaf {
	out := make([]*element.Leaf, 0, s.settled.Len())
	for _, l := range s.settled.All() {
		out = append(out, l)
	}
	return out
}

// SlotY is the height of slot i in the stack's local frame.
func (s *Stack) SlotY(i int) float64 { return -float64(i) * s.ctx.Units(s.opts.Interval) }

func (s *Stack) Step() {
	s.frame++
	s.settled.Step()
	s.pushing.Step()
	s.popping.Step()

	g := s.ctx.Gravity()
	fall(s.pushing, g)
	land(s.pushing, s.opts.PushTicks, s.commit)
	fall(s.popping, g)

	s.sched.Tick(s, s.ctx.Rand)
}

func (s *Stack) Draw(surface render.Surface) {
	s.draw(surface, func(surface render.Surface) {
		offset := vmath.V(0, s.ctx.Units(s.opts.DrawOffset))
		surface.Translate(offset)
		s.settled.Draw(surface)
		s.pushing.Draw(surface)
		s.popping.Draw(surface)
		surface.Translate(offset.Neg())
	})
}

func (s *Stack) insert() {
	ctx := s.ctx
	l := element.NewLeaf(ctx.NextID(), ctx.Units(s.opts.ElementSize))
	l.Body.SetPosition(ctx.Units(ctx.Between(-100, -20)), ctx.Units(ctx.Between(-200, -100)))
	target := vmath.V(0, s.SlotY(s.settled.Len()+s.pushing.Len()))
	l.Body.Launch(target, s.opts.PushTicks, ctx.Gravity())
	l.BeginAppear(s.opts.AppearTicks)
	s.pushing.Push(l)
	s.emit(Spawned, l.ID)
}

func (s *Stack) commit(l *element.Leaf) {
	l.Body.SetPosition(0, s.SlotY(s.settled.Len()))
	l.Body.SetVelocity(0, 0)
	s.settled.Push(l)
	s.emit(Committed, l.ID)
}

func (s *Stack) remove() bool {
	l, ok := s.settled.Pop()
	if !ok {
		return false
	}
	ctx := s.ctx
	speed := ctx.Speed(ctx.Between(s.opts.PopSpeedMin, s.opts.PopSpeedMax))
	angle := -math.Pi/4 + ctx.Between(-math.Pi/8, math.Pi/8)
	l.Body.Velocity = vmath.FromAngle(angle, speed)
	l.BeginDisappear(s.opts.DisappearTicks)
	s.popping.Push(l)
	s.emit(Evicted, l.ID)
	return true
}
