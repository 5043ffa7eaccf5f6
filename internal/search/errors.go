package search

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrInvalidUTF8 is the cause recorded when an argument is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("not valid UTF-8")

// MissingFilenameError is returned when no path was supplied.
type MissingFilenameError struct{}

func (e *MissingFilenameError) Error() string         { return "path is required" }
func (e *MissingFilenameError) MissingFilename() bool { return true }

// MissingSearchTextError is returned when no pattern was supplied.
type MissingSearchTextError struct{}

func (e *MissingSearchTextError) Error() string           { return "search text is required" }
func (e *MissingSearchTextError) MissingSearchText() bool { return true }

// MissingCallbackError is returned when no callback was supplied.
type MissingCallbackError struct{}

func (e *MissingCallbackError) Error() string         { return "callback is required" }
func (e *MissingCallbackError) MissingCallback() bool { return true }

// PathEncodingError is returned when the path is not valid UTF-8.
type PathEncodingError struct {
	Path []byte
}

func (e *PathEncodingError) Error() string {
	return fmt.Sprintf("path %q: %v", e.Path, ErrInvalidUTF8)
}
func (e *PathEncodingError) Unwrap() error    { return ErrInvalidUTF8 }
func (e *PathEncodingError) CannotOpen() bool { return true }

// FileMissingError is returned when the path does not exist.
type FileMissingError struct {
	Path string
}

func (e *FileMissingError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}
func (e *FileMissingError) Unwrap() error     { return fs.ErrNotExist }
func (e *FileMissingError) FileMissing() bool { return true }
func (e *FileMissingError) CannotOpen() bool  { return true }

// StatError is returned when the path exists but cannot be inspected.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}
func (e *StatError) Unwrap() error    { return e.Cause }
func (e *StatError) IOError() bool    { return true }
func (e *StatError) CannotOpen() bool { return true }

// UnsupportedFileTypeError is returned when the path is neither a regular
// file nor a directory.
type UnsupportedFileTypeError struct {
	Path string
	Mode fs.FileMode
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("%s is neither a regular file nor a directory (mode %s)", e.Path, e.Mode)
}
func (e *UnsupportedFileTypeError) CannotOpen() bool { return true }

// BadPatternError is returned when the pattern cannot be compiled.
type BadPatternError struct {
	Pattern string
	Cause   error
}

func (e *BadPatternError) Error() string {
	return fmt.Sprintf("bad pattern %q: %v", e.Pattern, e.Cause)
}
func (e *BadPatternError) Unwrap() error        { return e.Cause }
func (e *BadPatternError) InvalidPattern() bool { return true }

// WalkError is returned when directory traversal fails.
type WalkError struct {
	Path  string
	Cause error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("failed to walk %s: %v", e.Path, e.Cause)
}
func (e *WalkError) Unwrap() error    { return e.Cause }
func (e *WalkError) IOError() bool    { return true }
func (e *WalkError) CannotOpen() bool { return true }

// FileSearchError is returned when a file cannot be opened or read while it
// is being searched.
type FileSearchError struct {
	Path  string
	Cause error
}

func (e *FileSearchError) Error() string {
	return fmt.Sprintf("search of %s failed: %v", e.Path, e.Cause)
}
func (e *FileSearchError) Unwrap() error       { return e.Cause }
func (e *FileSearchError) IOError() bool       { return true }
func (e *FileSearchError) SearchAborted() bool { return true }

// CallbackRejectedError is returned when the callback answers false.
type CallbackRejectedError struct {
	FileName   string
	LineNumber int32
}

func (e *CallbackRejectedError) Error() string {
	if e.FileName == "" {
		return fmt.Sprintf("callback rejected match at line %d", e.LineNumber)
	}
	return fmt.Sprintf("callback rejected match at %s:%d", e.FileName, e.LineNumber)
}
func (e *CallbackRejectedError) SearchAborted() bool { return true }

// EngineError is returned for search engine failures that are not caused by
// the input or the callback.
type EngineError struct {
	Path  string
	Cause error
}

func (e *EngineError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("search engine failure: %v", e.Cause)
	}
	return fmt.Sprintf("search engine failure in %s: %v", e.Path, e.Cause)
}
func (e *EngineError) Unwrap() error       { return e.Cause }
func (e *EngineError) EngineFailure() bool { return true }
