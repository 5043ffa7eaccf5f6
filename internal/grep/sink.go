package grep

// Sink consumes matches reported by a Searcher.
//
// Matched returns true to keep searching, false to stop the current search
// quietly, or a non-nil error to stop it and have the Searcher return that
// error unchanged.
type Sink interface {
	Matched(searcher *Searcher, match *SinkMatch) (bool, error)
}

// SinkMatch describes one matching line.
type SinkMatch struct {
	bytes         []byte
	lineNumber    uint64
	hasLineNumber bool
}

// Bytes returns the matching line including its terminator, if any.
// The slice aliases the searcher's buffer and must not be retained after
// Matched returns.
func (m *SinkMatch) Bytes() []byte {
	return m.bytes
}

// LineNumber returns the 1-based line number of the match. The second result
// is false when line counting is disabled on the searcher.
func (m *SinkMatch) LineNumber() (uint64, bool) {
	return m.lineNumber, m.hasLineNumber
}
