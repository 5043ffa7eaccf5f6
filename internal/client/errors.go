package client

import (
	"errors"
	"fmt"

	"github.com/Cyclone1070/grepbridge/internal/search"
)

var (
	// ErrPathRequired is returned when the path is empty.
	ErrPathRequired = errors.New("path is required")
	// ErrConsumerRequired is returned when no consumer is supplied.
	ErrConsumerRequired = errors.New("result consumer is required")
	// ErrStop may be returned by a consumer to end a search early without error.
	ErrStop = errors.New("stop search")
)

// NotAFileError is returned by SearchFile when the path is not a regular file.
type NotAFileError struct {
	Path string
}

func (e *NotAFileError) Error() string      { return fmt.Sprintf("%s is not a file", e.Path) }
func (e *NotAFileError) InvalidInput() bool { return true }

// NotADirectoryError is returned by SearchDir when the path is not a directory.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string      { return fmt.Sprintf("%s is not a directory", e.Path) }
func (e *NotADirectoryError) InvalidInput() bool { return true }

// BadPatternError is returned when the engine rejects the pattern.
type BadPatternError struct {
	Pattern string
}

func (e *BadPatternError) Error() string {
	return fmt.Sprintf("invalid search text %q: the engine uses RE2 syntax, which lacks backreferences and lookaround", e.Pattern)
}
func (e *BadPatternError) InvalidInput() bool { return true }

// OpenError is returned when the engine cannot open or walk the path.
type OpenError struct {
	Path string
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("could not open or read %q", e.Path)
}
func (e *OpenError) IOError() bool { return true }

// EngineError is returned when the search engine itself fails.
type EngineError struct{}

func (e *EngineError) Error() string {
	return "the search engine failed; details are not available across the status code boundary"
}

// CallbackError is returned when the search was aborted from the callback
// side. Cause is the consumer's error, or nil when the engine failed while
// reading a file.
type CallbackError struct {
	Cause error
}

func (e *CallbackError) Error() string {
	if e.Cause == nil {
		return "search aborted while delivering results"
	}
	return fmt.Sprintf("result consumer failed: %v", e.Cause)
}
func (e *CallbackError) Unwrap() error { return e.Cause }

// UnexpectedStatusError is returned for status codes the client never
// provokes, such as a missing argument after the client validated it.
type UnexpectedStatusError struct {
	Code search.StatusCode
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status %s (%d)", e.Code, int32(e.Code))
}
