package render

import "github.com/san-kum/dsanim/internal/vmath"

type OpKind uint8

const (
	OpCircle OpKind = iota
	OpRect
	OpLine
	OpText
)

// Op is one primitive captured by a Recorder, in absolute coordinates.
type Op struct {
	Kind  OpKind
	Pos   vmath.Vec2
	End   vmath.Vec2
	W, H  float64
	Text  string
	Style Style
}

// Recorder is a Surface that keeps every primitive it receives.
type Recorder struct {
	Ops    []Op
	style  Style
	origin vmath.Vec2
}

func (r *Recorder) SetStyle(s Style)       { r.style = s }
func (r *Recorder) Translate(d vmath.Vec2) { r.origin = r.origin.Add(d) }

func (r *Recorder) Circle(center vmath.Vec2, diameter float64) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Pos: r.origin.Add(center), W: diameter, H: diameter, Style: r.style})
}

func (r *Recorder) Rect(center vmath.Vec2, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Pos: r.origin.Add(center), W: w, H: h, Style: r.style})
}

func (r *Recorder) Line(a, b vmath.Vec2) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Pos: r.origin.Add(a), End: r.origin.Add(b), Style: r.style})
}

func (r *Recorder) Text(at vmath.Vec2, s string) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Pos: r.origin.Add(at), Text: s, Style: r.style})
}

func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.origin = vmath.Vec2{}
}

// Count returns how many recorded ops are of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Discard is a Surface that drops everything.
type Discard struct{}

func (Discard) SetStyle(Style)                    {}
func (Discard) Circle(vmath.Vec2, float64)        {}
func (Discard) Rect(vmath.Vec2, float64, float64) {}
func (Discard) Line(vmath.Vec2, vmath.Vec2)       {}
func (Discard) Text(vmath.Vec2, string)           {}
func (Discard) Translate(vmath.Vec2)              {}
