package grep

import "regexp"

// Matcher tests a single line, without its terminator, for a match.
// Implementations must be safe to reuse across any number of inputs.
type Matcher interface {
	IsMatch(line []byte) bool
}

// RegexOptions adjusts how a pattern is compiled.
type RegexOptions struct {
	CaseInsensitive bool
}

// RegexMatcher matches lines against an RE2 regular expression.
type RegexMatcher struct {
	pattern string
	re      *regexp.Regexp
}

// NewRegexMatcher compiles pattern with default options.
func NewRegexMatcher(pattern string) (*RegexMatcher, error) {
	return NewRegexMatcherWithOptions(pattern, RegexOptions{})
}

// NewRegexMatcherWithOptions compiles pattern. Compilation is all-or-nothing:
// on failure no matcher is returned.
func NewRegexMatcherWithOptions(pattern string, opts RegexOptions) (*RegexMatcher, error) {
	expr := pattern
	if opts.CaseInsensitive {
		expr = "(?i)" + pattern
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Cause: err}
	}
	return &RegexMatcher{pattern: pattern, re: re}, nil
}

// IsMatch reports whether line contains a match.
func (m *RegexMatcher) IsMatch(line []byte) bool {
	return m.re.Match(line)
}

// String returns the pattern the matcher was built from.
func (m *RegexMatcher) String() string {
	return m.pattern
}
