// Package physics provides the particle bodies behind every visual element.
//
//   - [Kinematic]: position and velocity integrated with a unit timestep
//   - [Body]: a sized kinematic particle with optional friction and pairwise attraction
//   - [CircularArea]: containment tests and corrections against a circular boundary
//
// Time is measured in ticks and every "force" is a direct velocity increment, so
// Step is a plain explicit Euler update: position += velocity.
//
// # Example
//
//	area := physics.NewCircularArea(vmath.V(0, 0), 100)
//	b := physics.NewBody(12)
//	b.SetVelocity(3, 0)
//	for range 60 {
//	    b.Step()
//	    area.KeepIn(b, 1)
//	}
package physics
