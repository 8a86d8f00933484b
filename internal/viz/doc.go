// Package viz renders a running scene in the terminal.
//
//   - [Canvas]: braille sub-pixel grid that implements render.Surface
//   - [Model]: Bubble Tea live view ticking a sim.Runner at the configured rate
//   - [Menu]: preset picker that hands over to a [Model]
//   - [Theme]: color schemes, cycled at runtime
//
// # Key Bindings
//
//	Space/P - Pause/Resume the clock
//	T       - Cycle color themes
//	?       - Show help overlay
//	Q       - Quit
//
// Pausing stops tick delivery to the runner; the scene keeps being redrawn
// in place.
package viz
