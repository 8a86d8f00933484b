package visualizer

import (
	"github.com/san-kum/dsanim/internal/element"
	"github.com/san-kum/dsanim/internal/render"
	"github.com/san-kum/dsanim/internal/sim"
	"github.com/san-kum/dsanim/internal/sprite"
	"github.com/san-kum/dsanim/internal/vmath"
)

var (
	// TupleFramePaint outlines the cells of a committed tuple.
	TupleFramePaint = render.StrokeOnly(render.Gray(160))
	// HeaderPaint is used for the static header row.
	HeaderPaint = render.StrokeAndFill(render.Gray(160), render.GrayA(160, 32))
)

type TableOptions struct {
	Capacity int
	Cadence  uint
	Fields   int
	// TupleInterval is the row pitch, ElementInterval the cell width.
	TupleInterval   float64
	ElementInterval float64
	ElementSize     float64
	// CreatingY is where tuples assemble; Top is the offset of row 0 from there.
	CreatingY      float64
	Top            float64
	InsertTicks    uint
	AppearTicks    uint
	DisappearTicks uint
	DeleteChance   float64
	SlideSpeed     float64
	// RiseLimit excludes tuples still moving up faster than this from deletion.
	RiseLimit float64
	Easing    float64
}

func DefaultTableOptions() TableOptions {
	return TableOptions{
		Capacity:        6,
		Cadence:         15,
		Fields:          5,
		TupleInterval:   32,
		ElementInterval: 24,
		ElementSize:     12,
		CreatingY:       80,
		Top:             -170,
		InsertTicks:     30,
		AppearTicks:     30,
		DisappearTicks:  15,
		DeleteChance:    0.2,
		SlideSpeed:      100,
		RiseLimit:       10,
		Easing:          0.1,
	}
}

// Table animates rows of fixed-width tuples. A tuple's fields fly in separately,
// snap into a framed row at the assembly line and the row then eases up under
// the one before it.
type Table struct {
	base
	opts TableOptions

	offsets []float64
	header  *element.Leaf

	flying   *sprite.List[*element.Composite]
	tuples   *sprite.List[*element.Composite]
	deleting *sprite.List[*element.Composite]
}

func NewTable(ctx *sim.Context, pos vmath.Vec2, opts TableOptions) *Table {
	t := &Table{
		base: newBase(ctx, "Table", pos, Policy{
			Capacity:      opts.Capacity,
			Cadence:       opts.Cadence,
			RemovalChance: 1,
			Exclusive:     true,
		}),
		opts:     opts,
		flying:   sprite.NewList[*element.Composite](),
		tuples:   sprite.NewList[*element.Composite](),
		deleting: sprite.NewList[*element.Composite](),
	}

	cell := ctx.Units(opts.ElementInterval)
	t.offsets = make([]float64, opts.Fields)
	for i := range t.offsets {
		t.offsets[i] = (-0.5*float64(opts.Fields-1) + float64(i)) * cell
	}

	t.header = element.NewLeaf(ctx.NextID(), 0)
	t.header.Shape = render.RectGrid(t.cells(), cell, 0.3*cell)
	t.header.Paint = HeaderPaint
	t.header.Body.SetPosition(0, ctx.Units(opts.CreatingY+opts.Top-0.7*opts.TupleInterval))
	return t
}

func (t *Table) Settled() int   { return t.tuples.Len() }
func (t *Table) Inserting() int { return t.flying.Len() }
func (t *Table) Removing() int  { return t.deleting.Len() }

// Tuples returns the committed tuples from the top row down.
func (t *Table) Tuples() []*element.Composite {
	out := make([]*element.Composite, 0, t.tuples.Len())
	for _, c := range t.tuples.All() {
		out = append(out, c)
	}
	return out
}

// Header returns the static header row.
func (t *Table) Header() *element.Leaf { return t.header }

// RowY is the resting offset of row i when every row above it is at rest.
func (t *Table) RowY(i int) float64 {
	return t.ctx.Units(t.opts.Top + float64(i)*t.opts.TupleInterval)
}

func (t *Table) Step() {
	t.frame++
	t.flying.Step()
	t.tuples.Step()
	t.deleting.Step()

	g := t.ctx.Gravity()
	for _, c := range t.flying.All() {
		for _, l := range c.Leaves() {
			l.Body.Accelerate(g.X, g.Y)
		}
	}
	land(t.flying, t.opts.InsertTicks, t.commit)
	t.ease()

	t.sched.Tick(t, t.ctx.Rand)
}

func (t *Table) Draw(surface render.Surface) {
	t.draw(surface, func(surface render.Surface) {
		t.header.Draw(surface)
		t.flying.Draw(surface)
		t.tuples.Draw(surface)
		t.deleting.Draw(surface)
	})
}

func (t *Table) cells() []vmath.Vec2 {
	cells := make([]vmath.Vec2, len(t.offsets))
	for i, x := range t.offsets {
		cells[i] = vmath.V(x, 0)
	}
	return cells
}

// ease sets each row's vertical speed proportional to its distance from the slot
// directly under the previous row.
func (t *Table) ease() {
	var prev *element.Composite
	top := t.ctx.Units(t.opts.Top)
	pitch := t.ctx.Units(t.opts.TupleInterval)
	for _, c := range t.tuples.All() {
		target := top
		if prev != nil {
			target = prev.Body.Position.Y + pitch
		}
		c.Body.Velocity.Y = t.opts.Easing * (target - c.Body.Position.Y)
		prev = c
	}
}

func (t *Table) insert() {
	ctx := t.ctx
	c := element.NewComposite(ctx.NextID())
	y := ctx.Units(t.opts.CreatingY)
	for _, x := range t.offsets {
		l := element.NewLeaf(ctx.NextID(), ctx.Units(t.opts.ElementSize))
		l.Body.SetPosition(ctx.Units(ctx.Between(-100, 100)), ctx.Units(ctx.Between(-150, 0)))
		l.Body.Launch(vmath.V(x, y), t.opts.InsertTicks, ctx.Gravity())
		c.Add(l)
	}
	c.BeginAppear(t.opts.AppearTicks)
	t.flying.Push(c)
	t.emit(Spawned, c.ID)
}

func (t *Table) commit(c *element.Composite) {
	y := t.ctx.Units(t.opts.CreatingY)
	for i, l := range c.Leaves() {
		l.Body.SetPosition(t.offsets[i], y)
		l.Body.SetVelocity(0, 0)
	}

	frame := element.NewLeaf(t.ctx.NextID(), 0)
	frame.Shape = render.RectGrid(t.cells(), t.ctx.Units(t.opts.ElementInterval), t.ctx.Units(t.opts.ElementInterval))
	frame.Paint = TupleFramePaint
	frame.Body.SetPosition(0, y)
	c.Add(frame)
	c.Movable = true

	t.tuples.Push(c)
	t.emit(Committed, c.ID)
}

// remove scans from the top row, skipping rows still rising fast, and picks each
// candidate with DeleteChance. It may pick nothing.
func (t *Table) remove() bool {
	rise := -t.ctx.Speed(t.opts.RiseLimit)
	for i, c := range t.tuples.All() {
		if c.Body.Velocity.Y < rise {
			continue
		}
		if t.ctx.Rand.Float64() >= t.opts.DeleteChance {
			continue
		}
		t.tuples.RemoveAt(i)
		c.BeginDisappear(t.opts.DisappearTicks)
		c.Body.SetVelocity(t.ctx.Speed(t.opts.SlideSpeed), 0)
		t.deleting.Push(c)
		t.emit(Evicted, c.ID)
		return true
	}
	return false
}
