package search

import "fmt"

// StatusCode is the only result of a dispatch. The integer values are part of
// the C ABI and are never renumbered.
type StatusCode int32

const (
	Success StatusCode = 0

	// Caller-input failures.
	MissingFilename   StatusCode = 1
	MissingSearchText StatusCode = 2
	MissingCallback   StatusCode = 3

	// Failures from the search engine.
	ErrorBadPattern       StatusCode = 11
	ErrorCouldNotOpenFile StatusCode = 12
	ErrorFromRipgrep      StatusCode = 13

	// Failures from the callback.
	ErrorFromCallback StatusCode = 21
)

func (c StatusCode) String() string {
	switch c {
	case Success:
		return "Success"
	case MissingFilename:
		return "MissingFilename"
	case MissingSearchText:
		return "MissingSearchText"
	case MissingCallback:
		return "MissingCallback"
	case ErrorBadPattern:
		return "ErrorBadPattern"
	case ErrorCouldNotOpenFile:
		return "ErrorCouldNotOpenFile"
	case ErrorFromRipgrep:
		return "ErrorFromRipgrep"
	case ErrorFromCallback:
		return "ErrorFromCallback"
	default:
		return fmt.Sprintf("StatusCode(%d)", int32(c))
	}
}

// RawText is a nullable string as received from a foreign caller. The bytes
// are not assumed to be valid UTF-8 until validated.
type RawText struct {
	data    []byte
	present bool
}

// NullText returns the absent value.
func NullText() RawText {
	return RawText{}
}

// Text wraps a Go string.
func Text(s string) RawText {
	return RawText{data: []byte(s), present: true}
}

// TextBytes wraps raw bytes without copying them.
func TextBytes(b []byte) RawText {
	if b == nil {
		b = []byte{}
	}
	return RawText{data: b, present: true}
}

// IsNull reports whether the value is absent.
func (t RawText) IsNull() bool {
	return !t.present
}

// UnknownLineNumber is reported when the searcher does not count lines.
const UnknownLineNumber int32 = -1

// MatchRecord describes one matching line.
//
// Bytes holds the line as read, including its terminator, and aliases the
// searcher's buffer. It is only valid until the callback returns.
type MatchRecord struct {
	// FileName is the path of the file the line came from. It is empty when a
	// single file was searched.
	FileName   string
	LineNumber int32
	Bytes      []byte
}

// NumBytes returns the length of Bytes.
func (r MatchRecord) NumBytes() int32 {
	return int32(len(r.Bytes))
}

// HasFileName reports whether the record was produced in directory mode.
func (r MatchRecord) HasFileName() bool {
	return r.FileName != ""
}

// Callback receives each match. Returning false aborts the dispatch with
// ErrorFromCallback. It must not call back into the dispatcher.
type Callback func(record MatchRecord) bool
