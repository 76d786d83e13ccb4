package deque

import (
	"github.com/juju/errors"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("deque")

const (
	// A borrow was requested that conflicts with a borrow of the same node
	// which is still outstanding.
	ErrAliasingViolation = errors.ConstError("aliasing violation")

	// The linked structure is not in the shape every public call promises.
	ErrInvariantViolation = errors.ConstError("invariant violation")

	// A borrow handle outlived the node it was taken from.
	ErrDanglingBorrow = errors.ConstError("dangling borrow")

	// A borrow handle was used after Release.
	ErrReleasedBorrow = errors.ConstError("released borrow")
)

// fault logs and panics. Faults are never returned: they mean the caller (or
// the list itself) broke a rule and the current operation cannot continue.
func fault(log loggo.Logger, err error, format string, args ...interface{}) {
	err = errors.Annotatef(err, format, args...)
	log.Errorf("%v", err)
	panic(err)
}
