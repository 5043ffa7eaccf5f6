package glob

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/gobwas/glob"
)

// InvalidGlobError is returned when an include or exclude pattern does not compile.
type InvalidGlobError struct {
	Pattern string
	Cause   error
}

func (e *InvalidGlobError) Error() string {
	return fmt.Sprintf("invalid glob %q: %v", e.Pattern, e.Cause)
}
func (e *InvalidGlobError) Unwrap() error      { return e.Cause }
func (e *InvalidGlobError) InvalidInput() bool { return true }

// compiledPattern holds both the pattern string and compiled glob
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// PathFilter decides which entries of a directory search are visited.
// Paths are relative to the search root and use forward slashes. A pattern
// matches when it matches either the whole relative path or the entry's base
// name, so "*.go" selects Go files at any depth.
type PathFilter struct {
	include []compiledPattern
	exclude []compiledPattern
}

// NewPathFilter compiles include and exclude patterns.
func NewPathFilter(include, exclude []string) (*PathFilter, error) {
	f := &PathFilter{}

	for _, pattern := range include {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, &InvalidGlobError{Pattern: pattern, Cause: err}
		}
		f.include = append(f.include, compiledPattern{pattern: pattern, glob: g})
	}

	for _, pattern := range exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, &InvalidGlobError{Pattern: pattern, Cause: err}
		}
		f.exclude = append(f.exclude, compiledPattern{pattern: pattern, glob: g})
	}

	return f, nil
}

// Excluded reports whether an entry, file or directory, matches an exclude pattern.
// Excluded directories are not descended into.
func (f *PathFilter) Excluded(relPath string) bool {
	return matchesAny(f.exclude, relPath)
}

// Included reports whether a file should be searched. With no include
// patterns every file is included.
func (f *PathFilter) Included(relPath string) bool {
	if len(f.include) == 0 {
		return true
	}
	return matchesAny(f.include, relPath)
}

func matchesAny(patterns []compiledPattern, relPath string) bool {
	if len(patterns) == 0 {
		return false
	}
	normalized := filepath.ToSlash(relPath)
	base := path.Base(normalized)
	for _, p := range patterns {
		if p.glob.Match(normalized) || p.glob.Match(base) {
			return true
		}
	}
	return false
}
