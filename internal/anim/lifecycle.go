package anim

import "fmt"

type State uint8

const (
	Dormant State = iota
	Appearing
	Steady
	Disappearing
	Removed
)

func (s State) String() string {
	switch s {
	case Dormant:
		return "dormant"
	case Appearing:
		return "appearing"
	case Steady:
		return "steady"
	case Disappearing:
		return "disappearing"
	case Removed:
		return "removed"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// MaxAlpha is the opacity of a fully visible element.
const MaxAlpha = 255.0

// Lifecycle tracks the appear/disappear animation of one visual element.
// Removed is terminal. An animation, once begun, always runs to completion.
type Lifecycle struct {
	appearing    FrameCounter
	disappearing FrameCounter
	started      bool
	removed      bool
	frames       uint
}

// BeginAppear starts the appear animation. Ignored while it is already running or after removal.
// Durations below one tick run for one tick.
func (l *Lifecycle) BeginAppear(duration uint) {
	if l.appearing.Active() || l.removed {
		return
	}
	l.started = true
	l.appearing.On(max(duration, 1))
}

// BeginDisappear starts the disappear animation. Ignored while it is already running or after removal.
// Durations below one tick run for one tick.
func (l *Lifecycle) BeginDisappear(duration uint) {
	if l.disappearing.Active() || l.removed {
		return
	}
	l.started = true
	l.disappearing.On(max(duration, 1))
}

func (l *Lifecycle) Step() {
	l.appearing.Step()
	l.disappearing.Step()
	if l.disappearing.Completed() {
		l.removed = true
	}
	l.frames++
}

func (l *Lifecycle) State() State {
	switch {
	case l.removed:
		return Removed
	case l.disappearing.Active():
		return Disappearing
	case l.appearing.Active():
		return Appearing
	case l.started:
		return Steady
	}
	return Dormant
}

func (l *Lifecycle) Removed() bool { return l.removed }

// ProperFrames is the number of ticks stepped since creation.
func (l *Lifecycle) ProperFrames() uint { return l.frames }

func (l *Lifecycle) AppearingRatio() float64    { return l.appearing.ProgressRatio() }
func (l *Lifecycle) DisappearingRatio() float64 { return l.disappearing.ProgressRatio() }

// Alpha returns the opacity in [0, 255] for the current tick: ease-in while appearing,
// ease-out while disappearing, fully opaque otherwise.
func (l *Lifecycle) Alpha() float64 {
	switch {
	case l.appearing.Active():
		r := l.appearing.ProgressRatio() - 1
		return MaxAlpha * (1 - r*r)
	case l.disappearing.Active():
		r := l.disappearing.ProgressRatio()
		return MaxAlpha * (1 - r*r)
	}
	return MaxAlpha
}
