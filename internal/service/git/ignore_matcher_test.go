package git

import (
	"errors"
	"os"
	"testing"
	"time"
)

type mockFileInfo struct {
	name  string
	isDir bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return 0 }
func (m *mockFileInfo) Mode() os.FileMode  { return 0o644 }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() any           { return nil }

// mockFileSystemForIgnore serves .gitignore files from memory.
type mockFileSystemForIgnore struct {
	files     map[string][]byte
	dirs      map[string]bool
	readErr   error
	lastLimit int64
}

func newMockFileSystemForIgnore() *mockFileSystemForIgnore {
	return &mockFileSystemForIgnore{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (m *mockFileSystemForIgnore) createFile(path string, content []byte) {
	m.files[path] = content
}

func (m *mockFileSystemForIgnore) Stat(path string) (os.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &mockFileInfo{name: path}, nil
	}
	if m.dirs[path] {
		return &mockFileInfo{name: path, isDir: true}, nil
	}
	return nil, os.ErrNotExist
}

func (m *mockFileSystemForIgnore) ReadFileLimited(path string, maxBytes int64) ([]byte, error) {
	m.lastLimit = maxBytes
	if m.readErr != nil {
		return nil, m.readErr
	}
	content, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return content, nil
}

func TestLoadGitignore(t *testing.T) {
	root := "/workspace"

	t.Run("load gitignore from search root", func(t *testing.T) {
		fs := newMockFileSystemForIgnore()
		fs.createFile("/workspace/.gitignore", []byte("*.log\n*.tmp\n"))

		matcher, err := NewIgnoreMatcher(root, fs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !matcher.ShouldIgnore("test.log", false) {
			t.Error("expected test.log to be ignored")
		}
		if !matcher.ShouldIgnore("nested/file.tmp", false) {
			t.Error("expected nested/file.tmp to be ignored")
		}
		if matcher.ShouldIgnore("test.txt", false) {
			t.Error("expected test.txt not to be ignored")
		}
	})

	t.Run("non-existent gitignore should not error", func(t *testing.T) {
		fs := newMockFileSystemForIgnore()

		matcher, err := NewIgnoreMatcher(root, fs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if matcher.ShouldIgnore("test.log", false) {
			t.Error("expected no files to be ignored without .gitignore")
		}
	})

	t.Run("gitignore that is a directory is skipped", func(t *testing.T) {
		fs := newMockFileSystemForIgnore()
		fs.dirs["/workspace/.gitignore"] = true

		matcher, err := NewIgnoreMatcher(root, fs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if matcher.ShouldIgnore("anything", false) {
			t.Error("expected nothing to be ignored")
		}
	})

	t.Run("directory-only patterns", func(t *testing.T) {
		fs := newMockFileSystemForIgnore()
		fs.createFile("/workspace/.gitignore", []byte("build/\n"))

		matcher, err := NewIgnoreMatcher(root, fs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !matcher.ShouldIgnore("build", true) {
			t.Error("expected build directory to be ignored")
		}
		if matcher.ShouldIgnore("build", false) {
			t.Error("expected file named build not to be ignored")
		}
	})

	t.Run("comments and blank lines", func(t *testing.T) {
		fs := newMockFileSystemForIgnore()
		fs.createFile("/workspace/.gitignore", []byte("# build output\n\n   \ndist/\n"))

		matcher, err := NewIgnoreMatcher(root, fs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !matcher.ShouldIgnore("dist", true) {
			t.Error("expected dist directory to be ignored")
		}
		if matcher.ShouldIgnore("# build output", false) {
			t.Error("comment line must not become a pattern")
		}
		if fs.lastLimit != maxGitignoreBytes {
			t.Errorf("read limit = %d, want %d", fs.lastLimit, maxGitignoreBytes)
		}
	})

	t.Run("negated patterns", func(t *testing.T) {
		fs := newMockFileSystemForIgnore()
		fs.createFile("/workspace/.gitignore", []byte("*.log\n!keep.log\n"))

		matcher, err := NewIgnoreMatcher(root, fs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if matcher.ShouldIgnore("keep.log", false) {
			t.Error("expected keep.log to be re-included")
		}
		if !matcher.ShouldIgnore("drop.log", false) {
			t.Error("expected drop.log to be ignored")
		}
	})
}

func TestNewIgnoreMatcherErrors(t *testing.T) {
	t.Run("ReadError", func(t *testing.T) {
		fs := newMockFileSystemForIgnore()
		fs.createFile("/workspace/.gitignore", []byte("*.log"))
		fs.readErr = errors.New("disk failure")

		_, err := NewIgnoreMatcher("/workspace", fs)
		if err == nil {
			t.Fatal("expected error for read failure")
		}
		var gitErr *GitignoreReadError
		if !errors.As(err, &gitErr) {
			t.Errorf("expected GitignoreReadError, got %T: %v", err, err)
		}
	})
}

func TestShouldIgnoreLogic(t *testing.T) {
	t.Run("WindowsLineEndings", func(t *testing.T) {
		fs := newMockFileSystemForIgnore()
		fs.createFile("/workspace/.gitignore", []byte("*.log\r\nnode_modules\r\n"))

		matcher, err := NewIgnoreMatcher("/workspace", fs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !matcher.ShouldIgnore("app.log", false) {
			t.Error("failed to match pattern with CRLF")
		}
		if !matcher.ShouldIgnore("node_modules", true) {
			t.Error("failed to match directory with CRLF")
		}
	})

	t.Run("PathNormalization", func(t *testing.T) {
		fs := newMockFileSystemForIgnore()
		fs.createFile("/workspace/.gitignore", []byte("*.log"))

		matcher, err := NewIgnoreMatcher("/workspace", fs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !matcher.ShouldIgnore("foo//bar.log", false) {
			t.Error("failed to ignore path with consecutive slashes")
		}
		if !matcher.ShouldIgnore("./baz.log", false) {
			t.Error("failed to ignore path with dot prefix")
		}
		if matcher.ShouldIgnore("", false) {
			t.Error("empty path must never be ignored")
		}
	})

	t.Run("NoOpMatcher", func(t *testing.T) {
		var m NoOpMatcher
		if m.ShouldIgnore("anything.log", false) {
			t.Error("NoOpMatcher must never ignore")
		}
	})
}
