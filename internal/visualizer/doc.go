// Package visualizer animates four data structures as particle systems: a stack,
// a table, a pair of overlapping sets and a force-directed graph.
//
// Every visualizer follows the same scheduling protocol. A [Scheduler] gates
// mutations to one decision per cadence tick. Insertions spawn an element off to
// the side and launch it ballistically so that it lands exactly on its slot after
// a fixed flight time; only then is it committed. Removals give the victim an
// outward impulse and let it fade out under the same downward bias.
//
// Observers receive [Event] values for spawns, commits and evictions.
package visualizer
