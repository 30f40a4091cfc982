package errors

// ExitCodeError carries the process exit code an error should terminate the binary with.
type ExitCodeError struct {
	code ExitCode
	error
}

func NewError(err error, exitCode ExitCode) *ExitCodeError {
	if err == nil {
		return nil
	}
	return &ExitCodeError{exitCode, err}
}

func (e *ExitCodeError) GetExitCode() ExitCode {
	if e == nil {
		return 0
	}
	return e.code
}

func (e *ExitCodeError) Cause() error {
	return e.error
}

type causer interface {
	Cause() error
}

// Find walks err and the chain of errors it wraps via Cause(), outermost first,
// and returns the first one for which match returns true, or nil.
func Find(err error, match func(error) bool) error {
	for err != nil {
		if match(err) {
			return err
		}
		c, ok := err.(causer)
		if !ok {
			return nil
		}
		err = c.Cause()
	}
	return nil
}
