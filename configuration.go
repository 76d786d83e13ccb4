package deque

import "github.com/juju/loggo"

type Configuration struct {
	capacity   int
	instrument bool
	logger     loggo.Logger
}

// Creates a configuration object with sensible defaults
// Use this as the start of the fluent configuration:
// e.g.: deque.NewShared[int](deque.Configure().Instrument(true))
func Configure() *Configuration {
	return &Configuration{
		capacity: 16,
		logger:   logger,
	}
}

// The number of slots the unchecked deque reserves up front. The arena still
// grows past this when needed.
// [16]
func (c *Configuration) Capacity(count int) *Configuration {
	if count < 0 {
		count = 0
	}
	c.capacity = count
	return c
}

// Verify the list's structural invariants before every public call returns.
// Every operation becomes O(n); meant for tests and debugging.
// [false]
func (c *Configuration) Instrument(instrument bool) *Configuration {
	c.instrument = instrument
	return c
}

// The logger faults and teardown are reported to
// [loggo.GetLogger("deque")]
func (c *Configuration) Logger(logger loggo.Logger) *Configuration {
	c.logger = logger
	return c
}

func orDefault(config *Configuration) *Configuration {
	if config == nil {
		return Configure()
	}
	return config
}
