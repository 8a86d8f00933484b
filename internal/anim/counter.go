package anim

import "github.com/san-kum/dsanim/internal/vmath"

// FrameCounter counts ticks while active. A zero duration means unbounded.
type FrameCounter struct {
	active   bool
	count    uint
	duration uint
}

// On activates the counter from zero with the given duration (0 for none).
func (c *FrameCounter) On(duration uint) {
	c.active = true
	c.count = 0
	c.duration = duration
}

// Off deactivates the counter without touching its count.
func (c *FrameCounter) Off()   { c.active = false }
func (c *FrameCounter) Reset() { c.count = 0 }

func (c *FrameCounter) Active() bool   { return c.active }
func (c *FrameCounter) Count() uint    { return c.count }
func (c *FrameCounter) Duration() uint { return c.duration }

// Step advances an active counter and switches it off once count exceeds the duration.
func (c *FrameCounter) Step() {
	if !c.active {
		return
	}
	c.count++
	if c.Completed() {
		c.active = false
	}
}

// ProgressRatio returns count/duration clamped to [0, 1], or 0 without a duration.
func (c *FrameCounter) ProgressRatio() float64 {
	if c.duration == 0 {
		return 0
	}
	return vmath.Clamp(float64(c.count)/float64(c.duration), 0, 1)
}

func (c *FrameCounter) Completed() bool {
	return c.duration > 0 && c.count > c.duration
}

// Mod returns count % n; it is independent of the on/off state. Mod(0) is 0.
func (c *FrameCounter) Mod(n uint) uint {
	if n == 0 {
		return 0
	}
	return c.count % n
}
