package sprite

import (
	"iter"
	"math/bits"

	"github.com/san-kum/dsanim/internal/render"
)

// Set is an unordered collection with unique members. Members live in arena slots;
// the used bitmap marks occupied slots and freed slots are recycled.
type Set[T Member] struct {
	slots []T
	used  []uint64
	free  []int
	index map[T]int
}

func NewSet[T Member]() *Set[T] {
	return &Set[T]{index: make(map[T]int)}
}

func (s *Set[T]) Len() int     { return len(s.index) }
func (s *Set[T]) Has(x T) bool { _, ok := s.index[x]; return ok }

// Add inserts x and reports whether it was not already a member.
func (s *Set[T]) Add(x T) bool {
	if s.index == nil {
		s.index = make(map[T]int)
	}
	if _, ok := s.index[x]; ok {
		return false
	}
	var i int
	if n := len(s.free); n > 0 {
		i = s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[i] = x
	} else {
		i = len(s.slots)
		s.slots = append(s.slots, x)
		if i/64 >= len(s.used) {
			s.used = append(s.used, 0)
		}
	}
	s.used[i/64] |= 1 << (i % 64)
	s.index[x] = i
	return true
}

// Delete removes x and reports whether it was a member.
func (s *Set[T]) Delete(x T) bool {
	i, ok := s.index[x]
	if !ok {
		return false
	}
	var zero T
	s.slots[i] = zero
	s.used[i/64] &^= 1 << (i % 64)
	s.free = append(s.free, i)
	delete(s.index, x)
	return true
}

// Members returns a snapshot in slot order.
func (s *Set[T]) Members() []T {
	out := make([]T, 0, s.Len())
	for x := range s.All() {
		out = append(out, x)
	}
	return out
}

// All iterates members in slot order. The set must not be modified during iteration;
// take a Members snapshot for that.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for w, word := range s.used {
			for word != 0 {
				i := w*64 + bits.TrailingZeros64(word)
				word &= word - 1
				if !yield(s.slots[i]) {
					return
				}
			}
		}
	}
}

// Step snapshots the membership, steps each member and drops the removed ones.
func (s *Set[T]) Step() {
	for _, x := range s.Members() {
		if !s.Has(x) {
			continue
		}
		x.Step()
		if x.Removed() {
			s.Delete(x)
		}
	}
}

func (s *Set[T]) Draw(surface render.Surface) {
	for x := range s.All() {
		x.Draw(surface)
	}
}

// Random returns a uniformly chosen member.
func (s *Set[T]) Random(r Source) (T, bool) {
	var zero T
	if s.Len() == 0 {
		return zero, false
	}
	return s.slots[s.nth(r.IntN(s.Len()))], true
}

// PopRandom removes and returns a uniformly chosen member.
func (s *Set[T]) PopRandom(r Source) (T, bool) {
	x, ok := s.Random(r)
	if ok {
		s.Delete(x)
	}
	return x, ok
}

// RandomSubset picks min(k, Len) distinct members without replacement.
func (s *Set[T]) RandomSubset(r Source, k int) []T {
	pool := s.Members()
	k = min(k, len(pool))
	if k <= 0 {
		return nil
	}
	for i := 0; i < k; i++ {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// nth returns the slot index of the member with the given rank in slot order.
func (s *Set[T]) nth(rank int) int {
	for w, word := range s.used {
		c := bits.OnesCount64(word)
		if rank >= c {
			rank -= c
			continue
		}
		for ; rank > 0; rank-- {
			word &= word - 1
		}
		return w*64 + bits.TrailingZeros64(word)
	}
	return -1
}
