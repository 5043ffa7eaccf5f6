package search

import (
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/Cyclone1070/grepbridge/internal/config"
	"github.com/Cyclone1070/grepbridge/internal/grep"
	fsservice "github.com/Cyclone1070/grepbridge/internal/service/fs"
	"github.com/Cyclone1070/grepbridge/internal/service/git"
	"github.com/Cyclone1070/grepbridge/internal/service/glob"
)

// fileSystem defines the filesystem operations the dispatcher needs.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.DirEntry, error)
	Open(path string) (io.ReadCloser, error)
	ReadFileLimited(path string, maxBytes int64) ([]byte, error)
}

// ignoreMatcher reports whether a path relative to the search root is ignored.
type ignoreMatcher interface {
	ShouldIgnore(relativePath string, isDir bool) bool
}

// Dispatcher runs searches with a fixed configuration. It holds no per-call
// state and may be shared between goroutines; each call is sequential.
type Dispatcher struct {
	fs          fileSystem
	cfg         config.SearchConfig
	searcherCfg grep.SearcherConfig
	filter      *glob.PathFilter
}

// NewDispatcher creates a Dispatcher over fsys. It fails only when an
// include or exclude pattern does not compile.
func NewDispatcher(cfg *config.SearchConfig, fsys fileSystem) (*Dispatcher, error) {
	if cfg == nil {
		panic("cfg is required")
	}
	if fsys == nil {
		panic("fs is required")
	}

	filter, err := glob.NewPathFilter(cfg.Include, cfg.Exclude)
	if err != nil {
		return nil, err
	}

	return &Dispatcher{
		fs:          fsys,
		cfg:         *cfg,
		searcherCfg: searcherConfig(cfg),
		filter:      filter,
	}, nil
}

// New creates a Dispatcher over the real filesystem.
func New(cfg *config.SearchConfig) (*Dispatcher, error) {
	return NewDispatcher(cfg, fsservice.NewOSFileSystem())
}

// maxRecordBytes is the longest line a MatchRecord can describe, since
// num_bytes is an int32. It also bounds an unlimited max_line_bytes.
const maxRecordBytes = math.MaxInt32

func searcherConfig(cfg *config.SearchConfig) grep.SearcherConfig {
	sc := grep.DefaultSearcherConfig()
	sc.LineNumbers = cfg.LineNumbers
	sc.BinarySampleSize = cfg.BinarySampleSize
	sc.ReadBufferSize = cfg.ReadBufferSize
	sc.MaxLineBytes = maxRecordBytes
	if cfg.MaxLineBytes > 0 && int64(cfg.MaxLineBytes) < maxRecordBytes {
		sc.MaxLineBytes = cfg.MaxLineBytes
	}
	if cfg.BinaryDetection == config.BinaryDetectionQuit {
		sc.BinaryDetection = grep.BinaryQuit
	}
	return sc
}

// SearchPath searches a file or a directory tree and returns the status of
// the whole dispatch.
func (d *Dispatcher) SearchPath(path, pattern RawText, callback Callback) StatusCode {
	return StatusFromError(d.Dispatch(path, pattern, callback))
}

// Dispatch is SearchPath with the underlying failure instead of its status
// code. Null arguments are reported first, in order path, pattern, callback,
// before the filesystem or the matcher is touched. Then the path is checked,
// then the pattern compiled.
func (d *Dispatcher) Dispatch(path, pattern RawText, callback Callback) error {
	if err := checkPresent(path, pattern, callback); err != nil {
		return err
	}

	target, err := parsePath(path, d.fs)
	if err != nil {
		return err
	}

	text, err := parseSearchText(pattern)
	if err != nil {
		return err
	}
	matcher, err := buildMatcher(text, d.cfg.CaseInsensitive)
	if err != nil {
		return err
	}

	searcher := grep.NewSearcher(&d.searcherCfg)
	mode := target.info.Mode()
	switch {
	case mode.IsRegular():
		return d.searchFile(searcher, matcher, target.path, "", callback)
	case mode.IsDir():
		return d.searchDir(searcher, matcher, target.path, callback)
	default:
		return &UnsupportedFileTypeError{Path: target.path, Mode: mode}
	}
}

// searchFile searches one regular file. fileName is copied into every record.
func (d *Dispatcher) searchFile(searcher *grep.Searcher, matcher grep.Matcher, path, fileName string, callback Callback) error {
	r, err := d.fs.Open(path)
	if err != nil {
		return &FileSearchError{Path: path, Cause: err}
	}
	defer r.Close()

	err = searcher.SearchReader(matcher, r, newCallbackSink(fileName, callback))
	if err == nil {
		return nil
	}

	var rejected *CallbackRejectedError
	if errors.As(err, &rejected) {
		return rejected
	}
	var limit interface{ LimitExceeded() bool }
	if errors.As(err, &limit) && limit.LimitExceeded() {
		return &EngineError{Path: path, Cause: err}
	}
	return &FileSearchError{Path: path, Cause: err}
}

// searchDir walks root and searches every visitable regular file.
func (d *Dispatcher) searchDir(searcher *grep.Searcher, matcher grep.Matcher, root string, callback Callback) error {
	var ignore ignoreMatcher = &git.NoOpMatcher{}
	if d.cfg.RespectGitignore {
		m, err := git.NewIgnoreMatcher(root, d.fs)
		if err != nil {
			return &WalkError{Path: root, Cause: err}
		}
		ignore = m
	}

	w := &walker{
		dispatcher: d,
		searcher:   searcher,
		matcher:    matcher,
		callback:   callback,
		ignore:     ignore,
	}
	return w.walk(root, "")
}

// walker holds the state of one directory dispatch.
type walker struct {
	dispatcher *Dispatcher
	searcher   *grep.Searcher
	matcher    grep.Matcher
	callback   Callback
	ignore     ignoreMatcher
}

// walk visits dir in pre-order, depth first, entries sorted by name. Hidden,
// ignored and excluded entries are pruned before they are descended into.
// The first failure stops the walk.
func (w *walker) walk(dir, rel string) error {
	d := w.dispatcher

	entries, err := d.fs.ReadDir(dir)
	if err != nil {
		return &WalkError{Path: dir, Cause: err}
	}
	slices.SortFunc(entries, func(a, b os.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	for _, entry := range entries {
		name := entry.Name()
		if d.isHidden(name) {
			continue
		}

		// Symlinks are not followed.
		typ := entry.Type()
		if typ&fs.ModeSymlink != 0 {
			continue
		}

		path := joinPath(dir, name)
		relPath := name
		if rel != "" {
			relPath = rel + "/" + name
		}
		isDir := entry.IsDir()

		if d.filter.Excluded(relPath) || w.ignore.ShouldIgnore(relPath, isDir) {
			continue
		}

		if isDir {
			if err := w.walk(path, relPath); err != nil {
				return err
			}
			continue
		}

		if !typ.IsRegular() || !d.filter.Included(relPath) {
			continue
		}
		if err := d.searchFile(w.searcher, w.matcher, path, path, w.callback); err != nil {
			return err
		}
	}

	return nil
}

func (d *Dispatcher) isHidden(name string) bool {
	return strings.HasPrefix(name, d.cfg.HiddenPrefix)
}

// joinPath appends name to dir without cleaning dir, so reported file names
// keep the prefix the caller passed in.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
