package deque

import "github.com/juju/loggo"

const nilIndex = -1

// slot is one arena entry. link[back] owns the successor; link[front] is
// only a key used to find the predecessor and never counts as an owner.
// Dead slots reuse link[back] to chain the free list.
type slot[T any] struct {
	value T
	link  [2]int
	gen   uint32
	live  bool
}

// Unchecked is a deque that does no owner counting and no borrow
// arbitration. Nodes live in an arena and refer to each other by index, so
// every read and write goes through the arena and no two live pointers to
// the same node ever exist. A handle used after its node was popped panics
// with ErrDanglingBorrow.
type Unchecked[T any] struct {
	config *Configuration
	slots  []slot[T]
	free   int
	ends   [2]int
	length int
	// bumped whenever the arena is replaced
	epoch uint32
}

func NewUnchecked[T any](config *Configuration) *Unchecked[T] {
	config = orDefault(config)
	return &Unchecked[T]{
		config: config,
		slots:  make([]slot[T], 0, config.capacity),
		free:   nilIndex,
		ends:   [2]int{nilIndex, nilIndex},
	}
}

func (l *Unchecked[T]) Len() int {
	return l.length
}

func (l *Unchecked[T]) PushFront(value T) {
	l.push(front, value)
}

func (l *Unchecked[T]) PushBack(value T) {
	l.push(back, value)
}

func (l *Unchecked[T]) PopFront() (T, bool) {
	return l.pop(front)
}

func (l *Unchecked[T]) PopBack() (T, bool) {
	return l.pop(back)
}

func (l *Unchecked[T]) PeekFront() *Ref[T] {
	if i := l.ends[front]; i != nilIndex {
		return l.handle(i)
	}
	return nil
}

func (l *Unchecked[T]) PeekBack() *Ref[T] {
	if i := l.ends[back]; i != nilIndex {
		return l.handle(i)
	}
	return nil
}

func (l *Unchecked[T]) PeekFrontMut() *RefMut[T] {
	if i := l.ends[front]; i != nilIndex {
		return &RefMut[T]{*l.handle(i)}
	}
	return nil
}

func (l *Unchecked[T]) PeekBackMut() *RefMut[T] {
	if i := l.ends[back]; i != nilIndex {
		return &RefMut[T]{*l.handle(i)}
	}
	return nil
}

// IntoIter hands the arena to the iterator. Handles taken from l before the
// move are left dangling.
func (l *Unchecked[T]) IntoIter() *Iter[T] {
	moved := &Unchecked[T]{
		config: l.config,
		slots:  l.slots,
		free:   l.free,
		ends:   l.ends,
		length: l.length,
	}
	l.slots = make([]slot[T], 0, l.config.capacity)
	l.epoch++
	l.free = nilIndex
	l.ends = [2]int{nilIndex, nilIndex}
	l.length = 0
	return newIter[T](moved)
}

// Close pops every node and drops the arena.
func (l *Unchecked[T]) Close() int {
	released := 0
	for l.length > 0 {
		l.pop(front)
		released++
	}
	l.slots = nil
	l.epoch++
	l.free = nilIndex
	l.log().Tracef("teardown released %d nodes", released)
	return released
}

func (l *Unchecked[T]) push(s side, value T) {
	i := l.alloc(value)
	if old := l.ends[s]; old != nilIndex {
		l.slots[old].link[s] = i
		l.slots[i].link[s.other()] = old
	} else {
		l.ends[s.other()] = i
	}
	l.ends[s] = i
	l.length++
	l.verify()
}

func (l *Unchecked[T]) pop(s side) (T, bool) {
	i := l.ends[s]
	if i == nilIndex {
		var zero T
		return zero, false
	}
	if next := l.slots[i].link[s.other()]; next != nilIndex {
		l.slots[next].link[s] = nilIndex
		l.ends[s] = next
	} else {
		l.ends = [2]int{nilIndex, nilIndex}
	}
	l.length--
	value := l.reclaim(i)
	l.verify()
	return value, true
}

func (l *Unchecked[T]) alloc(value T) int {
	unlinked := [2]int{nilIndex, nilIndex}
	i := l.free
	if i == nilIndex {
		l.slots = append(l.slots, slot[T]{value: value, link: unlinked, live: true})
		return len(l.slots) - 1
	}
	s := &l.slots[i]
	l.free = s.link[back]
	s.value = value
	s.link = unlinked
	s.live = true
	return i
}

// reclaim puts slot i on the free list and bumps its generation so handles
// to the old value can tell.
func (l *Unchecked[T]) reclaim(i int) T {
	s := &l.slots[i]
	value := s.value
	var zero T
	s.value = zero
	s.live = false
	s.gen++
	s.link = [2]int{nilIndex, l.free}
	l.free = i
	return value
}

// handle captures the slot index and generation, never a pointer: the arena
// may move when it grows.
func (l *Unchecked[T]) handle(i int) *Ref[T] {
	gen, epoch := l.slots[i].gen, l.epoch
	return &Ref[T]{log: l.log(), load: func() *T {
		return l.at(i, gen, epoch)
	}}
}

func (l *Unchecked[T]) at(i int, gen, epoch uint32) *T {
	if epoch != l.epoch || i >= len(l.slots) || !l.slots[i].live || l.slots[i].gen != gen {
		fault(l.log(), ErrDanglingBorrow, "slot %d no longer holds the borrowed value", i)
	}
	return &l.slots[i].value
}

func (l *Unchecked[T]) log() loggo.Logger {
	return l.config.logger
}
