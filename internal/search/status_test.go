package search

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Cyclone1070/grepbridge/internal/grep"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want StatusCode
	}{
		{"Nil", nil, Success},
		{"Missing Filename", &MissingFilenameError{}, MissingFilename},
		{"Missing Search Text", &MissingSearchTextError{}, MissingSearchText},
		{"Missing Callback", &MissingCallbackError{}, MissingCallback},
		{"Bad Pattern", &BadPatternError{Pattern: "(", Cause: &grep.PatternError{Pattern: "("}}, ErrorBadPattern},
		{"Path Encoding", &PathEncodingError{Path: []byte{0xff}}, ErrorCouldNotOpenFile},
		{"File Missing", &FileMissingError{Path: "x"}, ErrorCouldNotOpenFile},
		{"Stat Error", &StatError{Path: "x", Cause: errors.New("boom")}, ErrorCouldNotOpenFile},
		{"Unsupported Type", &UnsupportedFileTypeError{Path: "x"}, ErrorCouldNotOpenFile},
		{"Walk Error", &WalkError{Path: "x", Cause: errors.New("boom")}, ErrorCouldNotOpenFile},
		{"File Search Error", &FileSearchError{Path: "x", Cause: errors.New("boom")}, ErrorFromCallback},
		{"Callback Rejected", &CallbackRejectedError{LineNumber: 1}, ErrorFromCallback},
		{"Engine Error", &EngineError{Cause: &grep.LineTooLongError{Limit: 1}}, ErrorFromRipgrep},
		{"Wrapped Callback Rejected", fmt.Errorf("outer: %w", &CallbackRejectedError{}), ErrorFromCallback},
		{"Wrapped Missing File", fmt.Errorf("outer: %w", &FileMissingError{Path: "x"}), ErrorCouldNotOpenFile},
		{"Unknown", errors.New("something else"), ErrorFromRipgrep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromError(tt.err))
		})
	}
}

func TestStatusCode_Values(t *testing.T) {
	// The integers are part of the C ABI.
	assert.Equal(t, int32(0), int32(Success))
	assert.Equal(t, int32(1), int32(MissingFilename))
	assert.Equal(t, int32(2), int32(MissingSearchText))
	assert.Equal(t, int32(3), int32(MissingCallback))
	assert.Equal(t, int32(11), int32(ErrorBadPattern))
	assert.Equal(t, int32(12), int32(ErrorCouldNotOpenFile))
	assert.Equal(t, int32(13), int32(ErrorFromRipgrep))
	assert.Equal(t, int32(21), int32(ErrorFromCallback))
}

func TestStatusCode_String(t *testing.T) {
	assert.Equal(t, "ErrorFromCallback", ErrorFromCallback.String())
	assert.Equal(t, "Success", Success.String())
	assert.Equal(t, "StatusCode(99)", StatusCode(99).String())
}
