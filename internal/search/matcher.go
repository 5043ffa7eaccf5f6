package search

import (
	"github.com/Cyclone1070/grepbridge/internal/grep"
)

// buildMatcher compiles pattern once for the whole dispatch.
func buildMatcher(pattern string, caseInsensitive bool) (grep.Matcher, error) {
	m, err := grep.NewRegexMatcherWithOptions(pattern, grep.RegexOptions{CaseInsensitive: caseInsensitive})
	if err != nil {
		return nil, &BadPatternError{Pattern: pattern, Cause: err}
	}
	return m, nil
}
