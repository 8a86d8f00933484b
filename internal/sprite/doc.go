// Package sprite provides self-pruning collections of simulation members.
//
// A member is anything that can be stepped, drawn and asked whether it is gone:
//
//   - [List]: ordered; Step walks in reverse index order so removals never skip a survivor
//   - [Set]: unordered with unique identity, backed by an arena with an occupancy bitmap
//     so deletion is O(1); supports uniform random pick, pop and subset
//
// Members leave a collection only during that collection's own Step, once Removed
// reports true, or when the owner deletes them explicitly.
package sprite

import "github.com/san-kum/dsanim/internal/render"

type Sprite interface {
	Step()
	Draw(s render.Surface)
	Removed() bool
}

// Member is a Sprite with identity, required by Set.
type Member interface {
	comparable
	Sprite
}

// Source is the randomness used for picks; *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}
