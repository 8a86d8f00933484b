package visualizer

import (
	"math"

	"github.com/san-kum/dsanim/internal/element"
	"github.com/san-kum/dsanim/internal/render"
	"github.com/san-kum/dsanim/internal/sim"
	"github.com/san-kum/dsanim/internal/sprite"
	"github.com/san-kum/dsanim/internal/vmath"
)

type SetOptions struct {
	Capacity    int
	Cadence     uint
	DisplaySize float64
	// Offset separates the two region centers along both axes.
	Offset  float64
	CenterY float64
	// TargetOffset places the exclusive landing targets, as a fraction of DisplaySize.
	TargetOffset   float64
	ElementSize    float64
	AddTicks       uint
	AppearTicks    uint
	DisappearTicks uint
	RemovalChance  float64
	LandingSpeed   float64
	EjectSpeed     float64
}

func DefaultSetOptions() SetOptions {
	return SetOptions{
		Capacity:       16,
		Cadence:        15,
		DisplaySize:    130,
		Offset:         20,
		CenterY:        -10,
		TargetOffset:   0.2,
		ElementSize:    12,
		AddTicks:       30,
		AppearTicks:    30,
		DisappearTicks: 30,
		RemovalChance:  0.5,
		LandingSpeed:   50,
		EjectSpeed:     200,
	}
}

// Set animates membership in two overlapping regions. Elements land in A only,
// B only or the lens, then drift while the regions hold them in or keep them out.
type Set struct {
	base
	opts SetOptions

	A, B    *Region
	targets []vmath.Vec2

	members  *sprite.Set[*element.Leaf]
	adding   *sprite.List[*element.Leaf]
	deleting *sprite.List[*element.Leaf]
	aim      map[*element.Leaf]vmath.Vec2
}

func NewSet(ctx *sim.Context, pos vmath.Vec2, opts SetOptions) *Set {
	size := ctx.Units(opts.DisplaySize)
	off := ctx.Units(opts.Offset)
	y := ctx.Units(opts.CenterY)

	s := &Set{
		base: newBase(ctx, "Set", pos, Policy{
			Capacity:      opts.Capacity,
			Cadence:       opts.Cadence,
			RemovalChance: opts.RemovalChance,
			Alternate:     true,
		}),
		opts:     opts,
		A:        NewRegion("A", vmath.V(-off, y+off), size),
		B:        NewRegion("B", vmath.V(off, y-off), size),
		members:  sprite.NewSet[*element.Leaf](),
		adding:   sprite.NewList[*element.Leaf](),
		deleting: sprite.NewList[*element.Leaf](),
		aim:      make(map[*element.Leaf]vmath.Vec2),
	}

	d := opts.TargetOffset * size
	a, b := s.A.Area.Center, s.B.Area.Center
	s.targets = []vmath.Vec2{
		vmath.V(a.X-d, a.Y+d),
		vmath.V(b.X+d, b.Y-d),
		a.Lerp(b, 0.5),
	}
	return s
}

func (s *Set) Settled() int   { return s.members.Len() }
func (s *Set) Inserting() int { return s.adding.Len() }
func (s *Set) Removing() int  { return s.deleting.Len() }

// Targets returns the landing points: A only, B only, then the lens.
func (s *Set) Targets() []vmath.Vec2 { return s.targets }

func (s *Set) Members() []*element.Leaf { return s.members.Members() }

func (s *Set) Step() {
	s.frame++
	s.members.Step()
	s.adding.Step()
	s.deleting.Step()

	g := s.ctx.Gravity()
	fall(s.adding, g)
	land(s.adding, s.opts.AddTicks, s.commit)
	fall(s.deleting, g)

	members := s.members.Members()
	s.A.Constrain(members)
	s.B.Constrain(members)

	s.sched.Tick(s, s.ctx.Rand)
}

func (s *Set) Draw(surface render.Surface) {
	s.draw(surface, func(surface render.Surface) {
		s.A.Draw(surface)
		s.B.Draw(surface)
		s.members.Draw(surface)
		s.adding.Draw(surface)
		s.deleting.Draw(surface)
	})
}

func (s *Set) insert() {
	ctx := s.ctx
	l := element.NewLeaf(ctx.NextID(), ctx.Units(s.opts.ElementSize))
	l.Body.SetPosition(ctx.Units(ctx.Between(-100, 0)), ctx.Units(ctx.Between(-170, -100)))
	target := s.targets[ctx.Rand.IntN(len(s.targets))]
	l.Body.Launch(target, s.opts.AddTicks, ctx.Gravity())
	l.BeginAppear(s.opts.AppearTicks)
	s.aim[l] = target
	s.adding.Push(l)
	s.emit(Spawned, l.ID)
}

func (s *Set) commit(l *element.Leaf) {
	if target, ok := s.aim[l]; ok {
		l.Body.Position = target
		delete(s.aim, l)
	}
	l.Body.Velocity = s.ctx.Direction().Scale(s.ctx.Speed(s.opts.LandingSpeed))
	s.A.Join(l)
	s.B.Join(l)
	s.members.Add(l)
	s.emit(Committed, l.ID)
}

func (s *Set) remove() bool {
	l, ok := s.members.PopRandom(s.ctx.Rand)
	if !ok {
		return false
	}
	s.A.Delete(l)
	s.B.Delete(l)
	angle := s.ctx.Between(math.Pi+math.Pi/4, math.Pi+3*math.Pi/4)
	l.Body.Velocity = l.Body.Velocity.Add(vmath.FromAngle(angle, s.ctx.Speed(s.opts.EjectSpeed)))
	l.BeginDisappear(s.opts.DisappearTicks)
	s.deleting.Push(l)
	s.emit(Evicted, l.ID)
	return true
}
