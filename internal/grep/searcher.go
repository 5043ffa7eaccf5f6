package grep

import (
	"bufio"
	"errors"
	"io"

	"github.com/Cyclone1070/grepbridge/internal/helper/content"
)

// BinaryDetection selects what the searcher does with inputs that look binary.
type BinaryDetection int

const (
	// BinaryNone searches every input as text.
	BinaryNone BinaryDetection = iota
	// BinaryQuit stops searching an input, without error, when its leading
	// sample contains a NUL byte.
	BinaryQuit
)

const defaultReadBufferSize = 64 * 1024

// SearcherConfig configures a Searcher.
type SearcherConfig struct {
	// LineNumbers enables 1-based line counting for reported matches.
	LineNumbers bool
	// BinaryDetection selects the binary input policy.
	BinaryDetection BinaryDetection
	// BinarySampleSize is how many leading bytes BinaryQuit inspects.
	BinarySampleSize int
	// ReadBufferSize is the size of the read buffer. Lines that fit in it are
	// reported without copying.
	ReadBufferSize int
	// MaxLineBytes caps the length of a single line. 0 means unlimited.
	MaxLineBytes int
}

// DefaultSearcherConfig returns the configuration used by NewSearcher(nil).
func DefaultSearcherConfig() SearcherConfig {
	return SearcherConfig{
		LineNumbers:      true,
		BinaryDetection:  BinaryNone,
		BinarySampleSize: content.DefaultBinarySampleSize,
		ReadBufferSize:   defaultReadBufferSize,
	}
}

// Searcher streams inputs line by line and reports matching lines to a Sink.
// A Searcher reuses an internal line buffer and is not safe for concurrent use;
// create one per goroutine.
type Searcher struct {
	cfg     SearcherConfig
	lineBuf []byte
}

// NewSearcher creates a Searcher. A nil cfg uses DefaultSearcherConfig.
func NewSearcher(cfg *SearcherConfig) *Searcher {
	c := DefaultSearcherConfig()
	if cfg != nil {
		c = *cfg
	}
	if c.ReadBufferSize <= 0 {
		c.ReadBufferSize = defaultReadBufferSize
	}
	if c.BinarySampleSize <= 0 {
		c.BinarySampleSize = content.DefaultBinarySampleSize
	}
	return &Searcher{cfg: c}
}

// SearchReader searches everything read from r.
func (s *Searcher) SearchReader(matcher Matcher, r io.Reader, sink Sink) error {
	size := s.cfg.ReadBufferSize
	if s.cfg.BinaryDetection == BinaryQuit {
		size = max(size, s.cfg.BinarySampleSize)
	}
	br := bufio.NewReaderSize(r, size)

	if s.cfg.BinaryDetection == BinaryQuit {
		head, err := br.Peek(s.cfg.BinarySampleSize)
		if err != nil && !errors.Is(err, io.EOF) {
			return &ReadError{Cause: err}
		}
		if content.IsBinaryContent(head, s.cfg.BinarySampleSize) {
			return nil
		}
	}

	var lineNumber uint64
	for {
		line, err := s.readLine(br, lineNumber)
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		if len(line) > 0 {
			lineNumber++
			if matcher.IsMatch(content.TrimLineTerminator(line)) {
				match := SinkMatch{
					bytes:         line,
					lineNumber:    lineNumber,
					hasLineNumber: s.cfg.LineNumbers,
				}
				if !s.cfg.LineNumbers {
					match.lineNumber = 0
				}

				keepGoing, sinkErr := sink.Matched(s, &match)
				if sinkErr != nil {
					return sinkErr
				}
				if !keepGoing {
					return nil
				}
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}

// readLine returns the next line including its terminator. The result aliases
// either the reader's buffer or s.lineBuf and is only valid until the next call.
func (s *Searcher) readLine(br *bufio.Reader, linesRead uint64) ([]byte, error) {
	line, err := br.ReadSlice('\n')
	if errors.Is(err, bufio.ErrBufferFull) {
		// Line is longer than the read buffer; spill it into lineBuf.
		s.lineBuf = append(s.lineBuf[:0], line...)
		for errors.Is(err, bufio.ErrBufferFull) {
			if s.exceedsLimit(len(s.lineBuf)) {
				return nil, &LineTooLongError{Line: linesRead + 1, Limit: s.cfg.MaxLineBytes}
			}
			line, err = br.ReadSlice('\n')
			s.lineBuf = append(s.lineBuf, line...)
		}
		line = s.lineBuf
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return nil, &ReadError{Line: linesRead, Cause: err}
	}
	if s.exceedsLimit(len(line)) {
		return nil, &LineTooLongError{Line: linesRead + 1, Limit: s.cfg.MaxLineBytes}
	}
	return line, err
}

func (s *Searcher) exceedsLimit(n int) bool {
	return s.cfg.MaxLineBytes > 0 && n > s.cfg.MaxLineBytes
}
