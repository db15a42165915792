package harness

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// AssertionError describes a failed comparison.
type AssertionError struct {
	Actual   any
	Expected any
	Operator string
	Message  string
}

func (e *AssertionError) Error() string {
	return e.Message
}

// Equal returns nil if actual equals expected, otherwise an *AssertionError
// wrapped with the caller's stack. The first msg, if any, replaces the
// default message.
func Equal(actual, expected any, msg ...string) error {
	if assert.ObjectsAreEqual(expected, actual) {
		return nil
	}
	return newAssertionError(actual, expected, "==", msg)
}

// NotEqual is the inverse of Equal.
func NotEqual(actual, expected any, msg ...string) error {
	if !assert.ObjectsAreEqual(expected, actual) {
		return nil
	}
	return newAssertionError(actual, expected, "!=", msg)
}

func newAssertionError(actual, expected any, op string, msg []string) error {
	e := &AssertionError{
		Actual:   actual,
		Expected: expected,
		Operator: op,
	}
	if len(msg) > 0 && msg[0] != "" {
		e.Message = msg[0]
	} else {
		e.Message = fmt.Sprintf("%#v %s %#v", actual, op, expected)
	}
	return errors.WithStack(e)
}
