package visualizer

import (
	"github.com/san-kum/dsanim/internal/anim"
	"github.com/san-kum/dsanim/internal/sim"
)

// Policy configures the scheduling protocol of one structure.
type Policy struct {
	Capacity int
	// Cadence is the number of ticks between mutation decisions.
	Cadence uint
	// RemovalChance is the probability of attempting a removal once the removal
	// gate is open. 1 makes removal unconditional.
	RemovalChance float64
	// Exclusive blocks removal while any insertion is in flight.
	Exclusive bool
	// Alternate skips removal on a cadence tick that already started an insertion.
	Alternate bool
}

// Decision is the set of mutations started on one tick.
type Decision uint8

const (
	Inserted Decision = 1 << iota
	Removed

	Idle Decision = 0
)

func (d Decision) Has(o Decision) bool { return d&o != 0 }

// mutator is the structure side of the protocol.
type mutator interface {
	Settled() int
	Inserting() int
	insert()
	// remove starts removing one settled member and reports whether a victim was found.
	remove() bool
}

// Scheduler owns the cadence clock of one structure.
type Scheduler struct {
	Policy
	clock anim.FrameCounter
}

func NewScheduler(p Policy) *Scheduler {
	s := &Scheduler{Policy: p}
	s.clock.On(0)
	return s
}

// Due reports whether the current tick is a cadence tick.
func (s *Scheduler) Due() bool { return s.clock.Mod(s.Cadence) == 0 }

// Tick makes at most one mutation decision and advances the clock.
func (s *Scheduler) Tick(m mutator, r sim.Rand) Decision {
	due := s.Due()
	s.clock.Step()
	if !due {
		return Idle
	}
	return s.decide(m, r)
}

func (s *Scheduler) decide(m mutator, r sim.Rand) Decision {
	var d Decision

	if s.admits(m, r) {
		m.insert()
		d |= Inserted
		if s.Alternate {
			return d
		}
	}

	if m.Settled() == 0 || (s.Exclusive && m.Inserting() > 0) {
		return d
	}
	if s.RemovalChance < 1 && r.Float64() >= s.RemovalChance {
		return d
	}
	if m.remove() {
		d |= Removed
	}
	return d
}

// admits applies the capacity gate and the occupancy-weighted admission trial.
func (s *Scheduler) admits(m mutator, r sim.Rand) bool {
	if s.Capacity <= 0 {
		return false
	}
	settled := m.Settled()
	if settled+m.Inserting() >= s.Capacity {
		return false
	}
	return r.Float64() < 1-float64(settled)/float64(s.Capacity)
}
