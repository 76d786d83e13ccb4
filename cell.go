package deque

import "github.com/juju/loggo"

const (
	free      = 0
	exclusive = -1
)

// cell holds a node's payload together with its access state:
// free (0), n outstanding shared borrows (n > 0) or one exclusive borrow (-1).
type cell[T any] struct {
	value T
	state int
}

func (c *cell[T]) borrow(log loggo.Logger) *Ref[T] {
	if c.state == exclusive {
		fault(log, ErrAliasingViolation, "shared borrow of an exclusively borrowed node")
	}
	c.state++
	return &Ref[T]{log: log, load: c.ptr, release: c.unborrow}
}

func (c *cell[T]) borrowMut(log loggo.Logger) *RefMut[T] {
	c.claim(log, "exclusive borrow")
	c.state = exclusive
	return &RefMut[T]{Ref[T]{log: log, load: c.ptr, release: c.unborrow}}
}

// claim faults unless nothing else is looking at the cell. Used by borrowMut
// and by pops, which take the payload out of the node for good.
func (c *cell[T]) claim(log loggo.Logger, op string) {
	switch {
	case c.state == exclusive:
		fault(log, ErrAliasingViolation, "%s of an exclusively borrowed node", op)
	case c.state > 0:
		fault(log, ErrAliasingViolation, "%s of a node with %d shared borrows", op, c.state)
	}
}

func (c *cell[T]) borrowed() bool {
	return c.state != free
}

func (c *cell[T]) ptr() *T {
	return &c.value
}

func (c *cell[T]) unborrow() {
	if c.state == exclusive {
		c.state = free
	} else if c.state > 0 {
		c.state--
	}
}

// Ref is a read view of a value still stored in a deque. Release it once
// done, usually with defer. Releasing twice is a no-op.
type Ref[T any] struct {
	log     loggo.Logger
	load    func() *T
	release func()
	done    bool
}

func (r *Ref[T]) Value() T {
	return *r.get()
}

func (r *Ref[T]) Release() {
	if r.done {
		return
	}
	r.done = true
	if r.release != nil {
		r.release()
	}
}

func (r *Ref[T]) get() *T {
	if r.done {
		fault(r.log, ErrReleasedBorrow, "access through a released handle")
	}
	return r.load()
}

// RefMut is a read-write view of a value still stored in a deque.
type RefMut[T any] struct {
	Ref[T]
}

func (r *RefMut[T]) Set(value T) {
	*r.get() = value
}

// Update runs fn on a copy of the stored value and writes the copy back.
// The slot is looked up again after fn returns, so fn may push to the deque.
func (r *RefMut[T]) Update(fn func(*T)) {
	value := *r.get()
	fn(&value)
	*r.get() = value
}
