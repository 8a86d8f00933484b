package visualizer

import (
	"github.com/san-kum/dsanim/internal/element"
	"github.com/san-kum/dsanim/internal/render"
	"github.com/san-kum/dsanim/internal/sim"
	"github.com/san-kum/dsanim/internal/sprite"
	"github.com/san-kum/dsanim/internal/vmath"
)

// NamePaint is used for the structure label under each visualizer.
var NamePaint = render.FillOnly(render.Gray(0))

// base carries what every visualizer shares: identity, placement, the cadence
// scheduler and observer fan-out.
type base struct {
	name string
	ctx  *sim.Context

	// Position is the visualizer origin on the canvas.
	Position vmath.Vec2

	sched     *Scheduler
	observers []Observer
	frame     uint64
}

func newBase(ctx *sim.Context, name string, pos vmath.Vec2, p Policy) base {
	return base{name: name, ctx: ctx, Position: pos, sched: NewScheduler(p)}
}

func (b *base) Name() string           { return b.name }
func (b *base) Capacity() int          { return b.sched.Capacity }
func (b *base) Policy() Policy         { return b.sched.Policy }
func (b *base) Frame() uint64          { return b.frame }
func (b *base) AddObserver(o Observer) { b.observers = append(b.observers, o) }

func (b *base) emit(kind EventKind, id uint64) {
	b.ctx.Logger.Debug(kind.String(), "structure", b.name, "id", id, "frame", b.frame)
	e := Event{Kind: kind, Structure: b.name, ID: id, Frame: b.frame}
	for _, o := range b.observers {
		o.OnEvent(e)
	}
}

// draw renders body in the visualizer's frame followed by its name label.
func (b *base) draw(s render.Surface, body func(render.Surface)) {
	s.Translate(b.Position)
	defer s.Translate(b.Position.Neg())

	body(s)
	if style, ok := NamePaint.Apply(255); ok {
		s.SetStyle(style)
	}
	s.Text(vmath.V(0, b.ctx.Units(120)), b.name)
}

// fall adds the downward bias to every leaf in l.
func fall(l *sprite.List[*element.Leaf], g vmath.Vec2) {
	for _, x := range l.All() {
		x.Body.Accelerate(g.X, g.Y)
	}
}

// land commits, oldest first, every in-flight element whose flight time has elapsed.
func land[T element.Element](l *sprite.List[T], ticks uint, commit func(T)) {
	for i := 0; i < l.Len(); {
		x := l.At(i)
		if x.ProperFrames() < ticks {
			i++
			continue
		}
		l.RemoveAt(i)
		commit(x)
	}
}
