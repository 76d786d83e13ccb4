package deque

import (
	"math/rand"
	"testing"

	qt "github.com/frankban/quicktest"
)

// model is the obvious slice implementation the linked variants are
// compared against.
type model []int

func (m *model) pushFront(v int) { *m = append(model{v}, *m...) }
func (m *model) pushBack(v int)  { *m = append(*m, v) }

func (m *model) popFront() (int, bool) {
	if len(*m) == 0 {
		return 0, false
	}
	v := (*m)[0]
	*m = (*m)[1:]
	return v, true
}

func (m *model) popBack() (int, bool) {
	if len(*m) == 0 {
		return 0, false
	}
	v := (*m)[len(*m)-1]
	*m = (*m)[:len(*m)-1]
	return v, true
}

func instrumented() map[string]func() Deque[int] {
	return map[string]func() Deque[int]{
		"shared":    func() Deque[int] { return NewShared[int](Configure().Instrument(true)) },
		"unchecked": func() Deque[int] { return NewUnchecked[int](Configure().Instrument(true).Capacity(2)) },
	}
}

func TestRandomInterleavingsMatchModel(t *testing.T) {
	c := qt.New(t)
	for name, newDeque := range instrumented() {
		c.Run(name, func(c *qt.C) {
			rnd := rand.New(rand.NewSource(42))
			d := newDeque()
			var m model
			pushed, popped := 0, 0
			for step := 0; step < 2000; step++ {
				switch op := rnd.Intn(5); op {
				case 0:
					d.PushFront(step)
					m.pushFront(step)
					pushed++
				case 1:
					d.PushBack(step)
					m.pushBack(step)
					pushed++
				case 2, 3:
					pop, popModel := d.PopFront, m.popFront
					if op == 3 {
						pop, popModel = d.PopBack, m.popBack
					}
					got, gotOK := pop()
					want, wantOK := popModel()
					c.Assert(gotOK, qt.Equals, wantOK, qt.Commentf("step %d", step))
					c.Assert(got, qt.Equals, want, qt.Commentf("step %d", step))
					if gotOK {
						popped++
					}
				case 4:
					if ref := d.PeekFront(); ref != nil {
						c.Assert(ref.Value(), qt.Equals, m[0])
						ref.Release()
					}
					if ref := d.PeekBack(); ref != nil {
						c.Assert(ref.Value(), qt.Equals, m[len(m)-1])
						ref.Release()
					}
				}
				c.Assert(d.Len(), qt.Equals, len(m))
				c.Assert(popped <= pushed, qt.IsTrue)
			}

			rest := []int{}
			for v := range d.IntoIter().All() {
				rest = append(rest, v)
			}
			c.Assert(rest, qt.DeepEquals, append([]int{}, m...))
			_, ok := d.PopFront()
			c.Assert(ok, qt.IsFalse)
			_, ok = d.PopBack()
			c.Assert(ok, qt.IsFalse)
		})
	}
}

func TestIterConvergesFromBothEnds(t *testing.T) {
	c := qt.New(t)
	for name, newDeque := range instrumented() {
		c.Run(name, func(c *qt.C) {
			for size := 0; size < 8; size++ {
				for pattern := 0; pattern < 1<<size; pattern++ {
					d := newDeque()
					for i := 0; i < size; i++ {
						d.PushBack(i)
					}
					it := d.IntoIter()
					lo, hi := 0, size-1
					for step := 0; step < size; step++ {
						if pattern&(1<<step) == 0 {
							v, ok := it.Next()
							c.Assert(ok, qt.IsTrue)
							c.Assert(v, qt.Equals, lo)
							lo++
						} else {
							v, ok := it.NextBack()
							c.Assert(ok, qt.IsTrue)
							c.Assert(v, qt.Equals, hi)
							hi--
						}
					}
					for i := 0; i < 3; i++ {
						_, ok := it.Next()
						c.Assert(ok, qt.IsFalse)
						_, ok = it.NextBack()
						c.Assert(ok, qt.IsFalse)
					}
				}
			}
		})
	}
}

func TestBackwardDrainsInReverse(t *testing.T) {
	c := qt.New(t)
	for name, newDeque := range instrumented() {
		c.Run(name, func(c *qt.C) {
			d := newDeque()
			d.PushFront(2)
			d.PushFront(1)
			d.PushBack(3)
			var values []int
			for v := range d.IntoIter().Backward() {
				values = append(values, v)
			}
			c.Assert(values, qt.DeepEquals, []int{3, 2, 1})
		})
	}
}
