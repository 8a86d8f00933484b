// Package element implements the visual elements animated by every structure visualizer.
//
// An [Element] is either a [Leaf] (one particle body with a shape) or a [Composite]
// (an ordered group of elements that can also move as a rigid unit). Each element owns
// its own lifecycle; a composite's opacity multiplies into every descendant when drawn.
package element

import (
	"github.com/san-kum/dsanim/internal/anim"
	"github.com/san-kum/dsanim/internal/render"
	"github.com/san-kum/dsanim/internal/sprite"
)

type Element interface {
	sprite.Sprite
	BeginAppear(duration uint)
	BeginDisappear(duration uint)
	State() anim.State
	ProperFrames() uint
	Alpha() float64

	drawWithAlpha(s render.Surface, parentAlpha float64)
}

// lifecycle is embedded by both element kinds.
type lifecycle struct {
	life anim.Lifecycle
}

func (l *lifecycle) BeginAppear(d uint)    { l.life.BeginAppear(d) }
func (l *lifecycle) BeginDisappear(d uint) { l.life.BeginDisappear(d) }
func (l *lifecycle) State() anim.State     { return l.life.State() }
func (l *lifecycle) ProperFrames() uint    { return l.life.ProperFrames() }
func (l *lifecycle) Removed() bool         { return l.life.Removed() }
func (l *lifecycle) Alpha() float64        { return l.life.Alpha() }

func compose(alpha, parent float64) float64 { return alpha * parent / anim.MaxAlpha }
