package errors

import (
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type markerError struct{ msg string }

func (m *markerError) Error() string { return m.msg }

type wrapping struct {
	name string
	err  error
}

func (w *wrapping) Error() string { return w.name + ": " + w.err.Error() }
func (w *wrapping) Cause() error  { return w.err }

func TestFindWalksCauseChain(t *testing.T) {
	root := fmt.Errorf("connection reset")
	typed := &wrapping{"emr.ListInstanceGroups", root}
	err := pkgerrors.Wrap(pkgerrors.Wrap(typed, "listing groups"), "checking scaling progress")

	found := Find(err, func(e error) bool {
		_, ok := e.(*wrapping)
		return ok
	})
	assert.Equal(t, typed, found)

	assert.Equal(t, root, Find(err, func(e error) bool { return e == root }))
}

func TestFindNoMatch(t *testing.T) {
	err := pkgerrors.Wrap(&markerError{"x"}, "outer")
	assert.Nil(t, Find(err, func(e error) bool {
		_, ok := e.(*wrapping)
		return ok
	}))
	assert.Nil(t, Find(nil, func(error) bool { return true }))
}

func TestExitCodeError(t *testing.T) {
	assert.Nil(t, NewError(nil, NoDataExitCode))

	var nilErr *ExitCodeError
	assert.Equal(t, ExitCode(0), nilErr.GetExitCode())

	e := NewError(&markerError{"no data"}, NoDataExitCode)
	assert.Equal(t, NoDataExitCode, e.GetExitCode())
	assert.Equal(t, "no data", e.Error())
	assert.NotNil(t, Find(e, func(err error) bool {
		_, ok := err.(*markerError)
		return ok
	}))
}
