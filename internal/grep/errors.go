package grep

import "fmt"

// PatternError is returned when a pattern fails to compile.
type PatternError struct {
	Pattern string
	Cause   error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Cause)
}
func (e *PatternError) Unwrap() error      { return e.Cause }
func (e *PatternError) InvalidInput() bool { return true }

// ReadError is returned when reading the input fails mid-search.
type ReadError struct {
	Line  uint64
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read failed after line %d: %v", e.Line, e.Cause)
}
func (e *ReadError) Unwrap() error { return e.Cause }
func (e *ReadError) IOError() bool { return true }

// LineTooLongError is returned when a single line outgrows the configured limit.
type LineTooLongError struct {
	Line  uint64
	Limit int
}

func (e *LineTooLongError) Error() string {
	return fmt.Sprintf("line %d exceeds the %d byte line limit", e.Line, e.Limit)
}

func (e *LineTooLongError) LimitExceeded() bool { return true }
