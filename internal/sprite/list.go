package sprite

import (
	"iter"
	"slices"

	"github.com/san-kum/dsanim/internal/render"
)

// List is an ordered collection. Index 0 is the oldest member.
type List[T Sprite] struct {
	items []T
}

func NewList[T Sprite]() *List[T] { return &List[T]{} }

func (l *List[T]) Len() int    { return len(l.items) }
func (l *List[T]) At(i int) T  { return l.items[i] }
func (l *List[T]) Push(x T)    { l.items = append(l.items, x) }
func (l *List[T]) Empty() bool { return len(l.items) == 0 }

func (l *List[T]) Pop() (T, bool) {
	var zero T
	if len(l.items) == 0 {
		return zero, false
	}
	x := l.items[len(l.items)-1]
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	return x, true
}

func (l *List[T]) Last() (T, bool) {
	var zero T
	if len(l.items) == 0 {
		return zero, false
	}
	return l.items[len(l.items)-1], true
}

// RemoveAt deletes and returns the member at i, keeping the order of the rest.
func (l *List[T]) RemoveAt(i int) T {
	x := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return x
}

// Step steps every member from the back, dropping each one as soon as it reports removal.
func (l *List[T]) Step() {
	for i := len(l.items) - 1; i >= 0; i-- {
		x := l.items[i]
		x.Step()
		if x.Removed() {
			l.items = slices.Delete(l.items, i, i+1)
		}
	}
}

// Draw renders back to front: the newest member first, the oldest on top.
func (l *List[T]) Draw(s render.Surface) {
	for i := len(l.items) - 1; i >= 0; i-- {
		l.items[i].Draw(s)
	}
}

func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range l.items {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Backward iterates from the newest member to the oldest.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(l.items) - 1; i >= 0; i-- {
			if !yield(i, l.items[i]) {
				return
			}
		}
	}
}
