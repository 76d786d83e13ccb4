package deque

import "iter"

// Iter owns the nodes of a deque and hands its values out from either end.
// Once both ends meet, every further call from either side returns false.
type Iter[T any] struct {
	deque Deque[T]
}

func newIter[T any](deque Deque[T]) *Iter[T] {
	return &Iter[T]{deque: deque}
}

func (it *Iter[T]) Next() (T, bool) {
	return it.deque.PopFront()
}

func (it *Iter[T]) NextBack() (T, bool) {
	return it.deque.PopBack()
}

// Number of values not yet handed out
func (it *Iter[T]) Len() int {
	return it.deque.Len()
}

// All yields the remaining values front to back, consuming them.
func (it *Iter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, ok := it.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}

// Backward yields the remaining values back to front, consuming them.
func (it *Iter[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, ok := it.NextBack()
			if !ok || !yield(value) {
				return
			}
		}
	}
}
