package commands

import "strconv"

// An error type that includes an exit code
type ExitError struct {
	Code int
	Err  error
}

// Implement the error interface
func (e *ExitError) Error() string {
	if e.Err == nil {
		return "exit status " + strconv.Itoa(e.Code)
	}
	return e.Err.Error()
}
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitWithCode wraps err with a process exit code.
// A nil err still exits with the code, silently.
func ExitWithCode(code int, err error) *ExitError {
	return &ExitError{
		Code: code,
		Err:  err,
	}
}

type UsageError struct{ error }

func (e *UsageError) Unwrap() error {
	return e.error
}
