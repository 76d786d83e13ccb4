package deque

import "github.com/juju/errors"

func (l *Shared[T]) verify() {
	if !l.config.instrument {
		return
	}
	if err := l.check(); err != nil {
		fault(l.log(), ErrInvariantViolation, "%v", err)
	}
}

// check walks the whole list. Each node's owner count has to match the links
// that point at it, and that is always 2: a neighbour on each side, with the
// list itself standing in for the missing neighbour at either end.
func (l *Shared[T]) check() error {
	head, tail := l.ends[front], l.ends[back]
	if head == nil || tail == nil {
		if head != tail {
			return errors.Errorf("only one end is set (head: %t, tail: %t)", head != nil, tail != nil)
		}
		if l.length != 0 {
			return errors.Errorf("empty list has length %d", l.length)
		}
		return nil
	}

	var prev *sharedNode[T]
	n := head
	for i := 0; i < l.length; i++ {
		if n == nil {
			return errors.Errorf("chain ends after %d of %d nodes", i, l.length)
		}
		if n.link[front] != prev {
			return errors.Errorf("node %d: prev does not point at its predecessor", i)
		}
		owners := 0
		for _, s := range []side{front, back} {
			if n.link[s] != nil || l.ends[s] == n {
				owners++
			}
		}
		if n.refs != owners || n.refs != 2 {
			return errors.Errorf("node %d: %d owners counted, %d recorded, expected 2", i, owners, n.refs)
		}
		prev, n = n, n.link[back]
	}
	if prev != tail || n != nil {
		return errors.Errorf("walking %d nodes from head does not end at tail", l.length)
	}
	return nil
}

func (l *Unchecked[T]) verify() {
	if !l.config.instrument {
		return
	}
	if err := l.check(); err != nil {
		fault(l.log(), ErrInvariantViolation, "%v", err)
	}
}

// check walks the forward chain. Every live slot must be owned exactly once,
// by the list's head or by its predecessor's next, and its prev key must name
// that predecessor. Dead slots must all sit on the free list.
func (l *Unchecked[T]) check() error {
	head, tail := l.ends[front], l.ends[back]
	if head == nilIndex || tail == nilIndex {
		if head != tail {
			return errors.Errorf("only one end is set (head: %d, tail: %d)", head, tail)
		}
		if l.length != 0 {
			return errors.Errorf("empty list has length %d", l.length)
		}
	}

	owners := make([]int, len(l.slots))
	prev, i := nilIndex, head
	for n := 0; n < l.length; n++ {
		if i == nilIndex {
			return errors.Errorf("chain ends after %d of %d nodes", n, l.length)
		}
		if i < 0 || i >= len(l.slots) {
			return errors.Errorf("node %d: slot %d is outside the arena", n, i)
		}
		s := &l.slots[i]
		if !s.live {
			return errors.Errorf("node %d: slot %d is reachable but free", n, i)
		}
		if s.link[front] != prev {
			return errors.Errorf("node %d: prev key %d, predecessor is %d", n, s.link[front], prev)
		}
		owners[i]++
		prev, i = i, s.link[back]
	}
	if prev != tail || i != nilIndex {
		return errors.Errorf("walking %d nodes from head does not end at tail", l.length)
	}

	live := 0
	for idx := range l.slots {
		if !l.slots[idx].live {
			continue
		}
		live++
		if owners[idx] != 1 {
			return errors.Errorf("slot %d has %d owners, expected 1", idx, owners[idx])
		}
	}
	if live != l.length {
		return errors.Errorf("%d live slots for a list of length %d", live, l.length)
	}

	reclaimed := 0
	for f := l.free; f != nilIndex; f = l.slots[f].link[back] {
		if f < 0 || f >= len(l.slots) || l.slots[f].live || reclaimed == len(l.slots) {
			return errors.Errorf("free list is corrupt at slot %d", f)
		}
		reclaimed++
	}
	if live+reclaimed != len(l.slots) {
		return errors.Errorf("%d live and %d free slots in an arena of %d", live, reclaimed, len(l.slots))
	}
	return nil
}
