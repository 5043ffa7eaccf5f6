package search

import (
	"math"

	"github.com/Cyclone1070/grepbridge/internal/grep"
)

// callbackSink forwards every match of one file to the callback.
type callbackSink struct {
	fileName string
	callback Callback
}

func newCallbackSink(fileName string, callback Callback) *callbackSink {
	return &callbackSink{fileName: fileName, callback: callback}
}

// Matched implements grep.Sink. A false answer from the callback becomes a
// CallbackRejectedError, which the searcher returns unchanged.
func (s *callbackSink) Matched(_ *grep.Searcher, match *grep.SinkMatch) (bool, error) {
	record := MatchRecord{
		FileName:   s.fileName,
		LineNumber: toLineNumber(match.LineNumber()),
		Bytes:      match.Bytes(),
	}

	if s.callback(record) {
		return true, nil
	}
	return false, &CallbackRejectedError{FileName: s.fileName, LineNumber: record.LineNumber}
}

// toLineNumber narrows a line number to the record's int32 field. Lines past
// math.MaxInt32 are reported as unknown.
func toLineNumber(n uint64, ok bool) int32 {
	if !ok || n > math.MaxInt32 {
		return UnknownLineNumber
	}
	return int32(n)
}
