package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Cyclone1070/grepbridge/internal/client"
	"github.com/Cyclone1070/grepbridge/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func defaultOpts() *searchOptions {
	return &searchOptions{color: colorNever, maxLineBytes: -1}
}

func TestRunSearch_SingleFile(t *testing.T) {
	root := writeTree(t, map[string]string{"notes.txt": "alpha\nbeta\nalphabet\n"})
	var out bytes.Buffer

	err := runSearch(&out, config.DefaultConfig(), filepath.Join(root, "notes.txt"), "alpha", defaultOpts())

	require.NoError(t, err)
	assert.Equal(t, "1:alpha\n3:alphabet\n", out.String())
}

func TestRunSearch_Directory(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.txt":          "needle\n",
		"sub/b.txt":      "hay\nneedle\n",
		".hidden/c.txt":  "needle\n",
		"sub/.secret.go": "needle\n",
	})
	var out bytes.Buffer

	err := runSearch(&out, config.DefaultConfig(), root, "needle", defaultOpts())

	require.NoError(t, err)
	want := root + "/a.txt:1:needle\n" + root + "/sub/b.txt:2:needle\n"
	assert.Equal(t, want, out.String())
}

func TestRunSearch_Flags(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.txt":      "Needle\nneedle\n",
		"b.log":      "needle\n",
		"skip/c.txt": "needle\n",
	})

	tests := []struct {
		name   string
		modify func(o *searchOptions)
		want   string
	}{
		{
			name:   "count",
			modify: func(o *searchOptions) { o.count = true },
			want:   root + "/a.txt:1\n" + root + "/b.log:1\n" + root + "/skip/c.txt:1\n",
		},
		{
			name:   "ignore case",
			modify: func(o *searchOptions) { o.count = true; o.ignoreCase = true },
			want:   root + "/a.txt:2\n" + root + "/b.log:1\n" + root + "/skip/c.txt:1\n",
		},
		{
			name:   "include",
			modify: func(o *searchOptions) { o.include = []string{"*.log"} },
			want:   root + "/b.log:1:needle\n",
		},
		{
			name:   "exclude",
			modify: func(o *searchOptions) { o.count = true; o.exclude = []string{"skip", "*.log"} },
			want:   root + "/a.txt:1\n",
		},
		{
			name:   "no line numbers",
			modify: func(o *searchOptions) { o.noLineNumbers = true; o.include = []string{"*.log"} },
			want:   root + "/b.log:needle\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOpts()
			tt.modify(opts)
			var out bytes.Buffer

			err := runSearch(&out, config.DefaultConfig(), root, "needle", opts)

			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunSearch_NoMatches(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": "hay\n"})
	var out bytes.Buffer

	err := runSearch(&out, config.DefaultConfig(), root, "needle", defaultOpts())

	assert.ErrorIs(t, err, ErrNoMatches)
	assert.Empty(t, out.String())
}

func TestRunSearch_Errors(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": "hay\n"})

	tests := []struct {
		name    string
		path    string
		pattern string
		modify  func(o *searchOptions)
		check   func(t *testing.T, err error)
	}{
		{
			name:    "bad pattern",
			path:    root,
			pattern: "(",
			check: func(t *testing.T, err error) {
				var target *client.BadPatternError
				assert.True(t, errors.As(err, &target), "got %v", err)
			},
		},
		{
			name:    "missing path",
			path:    filepath.Join(root, "nope"),
			pattern: "x",
			check: func(t *testing.T, err error) {
				var target *client.OpenError
				assert.True(t, errors.As(err, &target), "got %v", err)
			},
		},
		{
			name:    "invalid binary mode",
			path:    root,
			pattern: "x",
			modify:  func(o *searchOptions) { o.binary = "maybe" },
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "config validation failed")
			},
		},
		{
			name:    "invalid color",
			path:    root,
			pattern: "x",
			modify:  func(o *searchOptions) { o.color = "sometimes" },
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "invalid --color")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOpts()
			if tt.modify != nil {
				tt.modify(opts)
			}
			var out bytes.Buffer

			err := runSearch(&out, config.DefaultConfig(), tt.path, tt.pattern, opts)

			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestRunSearch_Report(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": "needle\nhay\nneedle again\n"})
	opts := defaultOpts()
	opts.report = true
	var out bytes.Buffer

	err := runSearch(&out, config.DefaultConfig(), root, "needle", opts)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Search report")
	assert.Contains(t, out.String(), "needle again")
}

func TestSearchCommand(t *testing.T) {
	withDefaultConfig(t)
	root := writeTree(t, map[string]string{"a.txt": "needle\n"})

	out, err := execute(t, "search", "--color", "never", "-c", filepath.Join(root, "a.txt"), "needle")

	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestSearchCommand_ConfigError(t *testing.T) {
	orig := loadConfig
	loadConfig = func() (*config.Config, error) { return nil, errors.New("boom") }
	defer func() { loadConfig = orig }()

	_, err := execute(t, "search", ".", "x")

	assert.ErrorContains(t, err, "failed to load config: boom")
}

func TestSearchCommand_Args(t *testing.T) {
	withDefaultConfig(t)

	_, err := execute(t, "search", "only-path")

	assert.Error(t, err)
}
