package deque

import "github.com/juju/loggo"

type sharedNode[T any] struct {
	cell[T]
	link [2]*sharedNode[T]
	refs int
}

// retain hands out one more owning reference to n.
func retain[T any](n *sharedNode[T]) *sharedNode[T] {
	if n != nil {
		n.refs++
	}
	return n
}

// take moves the reference held by link to the caller. The count doesn't
// change, the caller now owns what link owned.
func take[T any](link **sharedNode[T]) *sharedNode[T] {
	n := *link
	*link = nil
	return n
}

// Shared is a deque whose nodes are owned by every link pointing at them.
// Owner counts are tracked on each node and payload access is arbitrated at
// run time: asking for a view that conflicts with an outstanding one panics
// with ErrAliasingViolation.
type Shared[T any] struct {
	config *Configuration
	ends   [2]*sharedNode[T]
	length int
}

func NewShared[T any](config *Configuration) *Shared[T] {
	return &Shared[T]{config: orDefault(config)}
}

func (l *Shared[T]) Len() int {
	return l.length
}

func (l *Shared[T]) PushFront(value T) {
	l.push(front, value)
}

func (l *Shared[T]) PushBack(value T) {
	l.push(back, value)
}

func (l *Shared[T]) PopFront() (T, bool) {
	return l.pop(front)
}

func (l *Shared[T]) PopBack() (T, bool) {
	return l.pop(back)
}

func (l *Shared[T]) PeekFront() *Ref[T] {
	if n := l.ends[front]; n != nil {
		return n.borrow(l.log())
	}
	return nil
}

func (l *Shared[T]) PeekBack() *Ref[T] {
	if n := l.ends[back]; n != nil {
		return n.borrow(l.log())
	}
	return nil
}

func (l *Shared[T]) PeekFrontMut() *RefMut[T] {
	if n := l.ends[front]; n != nil {
		return n.borrowMut(l.log())
	}
	return nil
}

func (l *Shared[T]) PeekBackMut() *RefMut[T] {
	if n := l.ends[back]; n != nil {
		return n.borrowMut(l.log())
	}
	return nil
}

func (l *Shared[T]) IntoIter() *Iter[T] {
	moved := &Shared[T]{config: l.config, ends: l.ends, length: l.length}
	l.ends = [2]*sharedNode[T]{}
	l.length = 0
	return newIter[T](moved)
}

// Close releases nodes from the front until the list is empty or it reaches
// a node that is still referenced from outside the list (an outstanding
// borrow). That node and everything behind it stay in place, a later Close
// picks up from there.
func (l *Shared[T]) Close() int {
	released := 0
	for n := l.ends[front]; n != nil; n = l.ends[front] {
		if n.borrowed() || n.refs > 2 {
			l.log().Debugf("teardown stopped after %d nodes, %d still referenced", released, l.length)
			return released
		}
		l.pop(front)
		released++
	}
	l.log().Tracef("teardown released %d nodes", released)
	return released
}

// push gives the new node exactly two owners, every other count is unchanged
func (l *Shared[T]) push(s side, value T) {
	node := &sharedNode[T]{cell: cell[T]{value: value}}
	if old := take(&l.ends[s]); old != nil {
		old.link[s] = retain(node)
		node.link[s.other()] = old
		l.ends[s] = retain(node)
	} else {
		l.ends[s.other()] = retain(node)
		l.ends[s] = retain(node)
	}
	l.length++
	l.verify()
}

// pop takes both references to the outgoing node away from the list. The
// node must come out of it with only the caller's reference left.
func (l *Shared[T]) pop(s side) (T, bool) {
	old := l.ends[s]
	if old == nil {
		var zero T
		return zero, false
	}
	old.claim(l.log(), "pop "+s.String())

	take(&l.ends[s])
	if next := take(&old.link[s.other()]); next != nil {
		l.drop(take(&next.link[s]))
		l.ends[s] = next
	} else {
		l.drop(take(&l.ends[s.other()]))
	}
	l.length--
	value := l.unwrap(old)
	l.verify()
	return value, true
}

func (l *Shared[T]) drop(n *sharedNode[T]) {
	if n == nil {
		return
	}
	if n.refs--; n.refs < 0 {
		fault(l.log(), ErrInvariantViolation, "node released more times than it was retained")
	}
}

func (l *Shared[T]) unwrap(n *sharedNode[T]) T {
	if n.refs != 1 {
		fault(l.log(), ErrInvariantViolation, "popped node still has %d other owners", n.refs-1)
	}
	n.refs = 0
	value := n.value
	var zero T
	n.value = zero
	return value
}

func (l *Shared[T]) log() loggo.Logger {
	return l.config.logger
}
