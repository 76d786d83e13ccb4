// Package deque provides a linked double-ended queue in two flavours that
// share one contract.
//
// Shared keeps explicit owner counts on every node and arbitrates access to
// payloads at run time: a conflicting borrow panics with ErrAliasingViolation.
// Unchecked keeps its nodes in an arena addressed by index, with one owning
// forward chain and backward links that are only ever used to find a slot.
//
// Neither type is safe for concurrent use.
package deque

type Deque[T any] interface {
	PushFront(value T)
	PushBack(value T)

	// Returns false when the deque is empty
	PopFront() (T, bool)
	PopBack() (T, bool)

	// Return nil when the deque is empty
	PeekFront() *Ref[T]
	PeekBack() *Ref[T]
	PeekFrontMut() *RefMut[T]
	PeekBackMut() *RefMut[T]

	Len() int

	// Moves every value into the returned iterator, leaving the deque empty
	IntoIter() *Iter[T]

	// Releases nodes one at a time from the front, returns how many were
	// released
	Close() int
}

var (
	_ Deque[int] = (*Shared[int])(nil)
	_ Deque[int] = (*Unchecked[int])(nil)
)

// side names an end of the deque. A node's link[front] is its predecessor
// and link[back] its successor, so every operation is written once and run
// from either end.
type side int

const (
	front side = iota
	back
)

func (s side) other() side {
	return s ^ 1
}

func (s side) String() string {
	if s == front {
		return "front"
	}
	return "back"
}
