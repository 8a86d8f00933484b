// Package anim provides tick-based timing primitives for visual elements.
//
//   - [FrameCounter]: on/off counter with an optional duration and a bounded progress ratio
//   - [Lifecycle]: appear/steady/disappear/removed state machine driving an opacity curve
//
// Both advance only when their owner calls Step, once per simulation tick.
package anim
