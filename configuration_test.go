package deque

import (
	"testing"

	"github.com/juju/loggo"
	"github.com/karlseguin/deque/assert"
)

func Test_Configuration_Defaults(t *testing.T) {
	c := Configure()
	assert.Equal(t, c.capacity, 16)
	assert.False(t, c.instrument)
	assert.Equal(t, c.logger.Name(), "deque")
}

func Test_Configuration_NegativeCapacity(t *testing.T) {
	c := Configure().Capacity(-3)
	assert.Equal(t, c.capacity, 0)
	l := NewUnchecked[int](c)
	l.PushBack(1)
	assertPop(t, l.PopFront, 1)
}

func Test_Configuration_CapacityReservesSlots(t *testing.T) {
	l := NewUnchecked[int](Configure().Capacity(64))
	assert.Equal(t, cap(l.slots), 64)
	assert.Equal(t, len(l.slots), 0)
}

func Test_Configuration_NilMeansDefaults(t *testing.T) {
	assert.Equal(t, NewShared[int](nil).config.capacity, 16)
	assert.Equal(t, NewUnchecked[int](nil).config.capacity, 16)
}

func Test_Configuration_FaultsGoToTheConfiguredLogger(t *testing.T) {
	context := loggo.NewContext(loggo.ERROR)
	writer := &loggo.TestWriter{}
	assert.Nil(t, context.AddWriter("test", writer))

	l := NewShared[int](Configure().Logger(context.GetLogger("deque.test")))
	l.PushFront(1)
	ref := l.PeekFront()
	defer ref.Release()
	assert.Panics(t, ErrAliasingViolation, func() { l.PeekFrontMut() })

	log := writer.Log()
	assert.Equal(t, len(log), 1)
	assert.Equal(t, log[0].Level, loggo.ERROR)
	assert.StringContains(t, log[0].Message, "aliasing violation")
}
