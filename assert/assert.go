// A wrapper around *testing.T. I hate the if a != b { t.ErrorF(....) } pattern.
// Also knows how to catch the panics the deque raises for aliasing and
// invariant faults.
package assert

import (
	"reflect"
	"strings"
	"testing"

	"github.com/juju/errors"
)

// a == b
func Equal[T comparable](t *testing.T, actual T, expected T) {
	t.Helper()
	if actual != expected {
		t.Errorf("expected '%v' to equal '%v'", actual, expected)
		t.FailNow()
	}
}

// Two lists are equal (same length & same values in the same order)
func List[T comparable](t *testing.T, actuals []T, expecteds []T) {
	t.Helper()
	Equal(t, len(actuals), len(expecteds))

	for i, actual := range actuals {
		Equal(t, actual, expecteds[i])
	}
}

// A value is nil
func Nil(t *testing.T, actual interface{}) {
	t.Helper()
	if actual != nil && !reflect.ValueOf(actual).IsNil() {
		t.Errorf("expected %v to be nil", actual)
		t.FailNow()
	}
}

// A value is not nil
func NotNil(t *testing.T, actual interface{}) {
	t.Helper()
	if actual == nil || reflect.ValueOf(actual).IsNil() {
		t.Errorf("expected %v to be not nil", actual)
		t.FailNow()
	}
}

// A value is true
func True(t *testing.T, actual bool) {
	t.Helper()
	if !actual {
		t.Error("expected true, got false")
		t.FailNow()
	}
}

// A value is false
func False(t *testing.T, actual bool) {
	t.Helper()
	if actual {
		t.Error("expected false, got true")
		t.FailNow()
	}
}

// The string contains the given value
func StringContains(t *testing.T, actual string, expected string) {
	t.Helper()
	if !strings.Contains(actual, expected) {
		t.Errorf("expected %s to contain %s", actual, expected)
		t.FailNow()
	}
}

// err is, or wraps, expected
func Error(t *testing.T, actual error, expected error) {
	t.Helper()
	if !errors.Is(actual, expected) {
		t.Errorf("expected '%v' to be '%v'", actual, expected)
		t.FailNow()
	}
}

// fn panics with an error that is, or wraps, expected
func Panics(t *testing.T, expected error, fn func()) {
	t.Helper()
	err := recovered(fn)
	if err == nil {
		t.Errorf("expected a panic with '%v'", expected)
		t.FailNow()
	}
	Error(t, err, expected)
}

// fn returns without panicking
func NoPanic(t *testing.T, fn func()) {
	t.Helper()
	if err := recovered(fn); err != nil {
		t.Errorf("unexpected panic '%v'", err)
		t.FailNow()
	}
}

func recovered(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = errors.Errorf("%v", r)
			}
		}
	}()
	fn()
	return nil
}
