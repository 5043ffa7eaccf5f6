package git

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Cyclone1070/grepbridge/internal/helper/content"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// GitignoreReadError is returned when .gitignore cannot be read.
type GitignoreReadError struct {
	Path  string
	Cause error
}

func (e *GitignoreReadError) Error() string {
	return fmt.Sprintf("failed to read .gitignore at %s: %v", e.Path, e.Cause)
}
func (e *GitignoreReadError) Unwrap() error { return e.Cause }
func (e *GitignoreReadError) IOError() bool { return true }

// fileSystem defines the minimal filesystem interface needed for gitignore matching.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFileLimited(path string, maxBytes int64) ([]byte, error)
}

// maxGitignoreBytes bounds how much of a .gitignore is loaded.
const maxGitignoreBytes = 1 << 20

// IgnoreMatcher implements gitignore pattern matching using go-git's gitignore matcher.
type IgnoreMatcher struct {
	matcher gitignore.Matcher
}

// NewIgnoreMatcher loads root/.gitignore. A missing file, or a directory of
// that name, yields a matcher that ignores nothing.
func NewIgnoreMatcher(root string, fs fileSystem) (*IgnoreMatcher, error) {
	if root == "" {
		panic("root is required")
	}
	if fs == nil {
		panic("fs is required")
	}
	gitignorePath := filepath.Join(root, ".gitignore")

	info, err := fs.Stat(gitignorePath)
	if err != nil || info.IsDir() {
		return &IgnoreMatcher{matcher: nil}, nil
	}

	data, err := fs.ReadFileLimited(gitignorePath, maxGitignoreBytes)
	if err != nil {
		return nil, &GitignoreReadError{Path: gitignorePath, Cause: err}
	}

	var patterns []gitignore.Pattern
	for _, line := range content.SplitLines(string(data)) {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}

	return &IgnoreMatcher{matcher: gitignore.NewMatcher(patterns)}, nil
}

// ShouldIgnore reports whether a path relative to the search root is ignored.
// isDir must be set for directories so that patterns ending in "/" apply.
func (m *IgnoreMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	if m.matcher == nil {
		return false
	}

	segments := splitPath(relativePath)
	if len(segments) == 0 {
		return false
	}
	return m.matcher.Match(segments, isDir)
}

// splitPath turns a slash or OS separated path into gitignore segments,
// dropping empty and "." components.
func splitPath(path string) []string {
	return slices.DeleteFunc(strings.Split(filepath.ToSlash(path), "/"), func(seg string) bool {
		return seg == "" || seg == "."
	})
}

// NoOpMatcher is used when respect_gitignore is off.
type NoOpMatcher struct{}

func (m *NoOpMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	return false
}
