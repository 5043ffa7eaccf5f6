// Package client wraps the search dispatcher for Go callers that want owned
// results and ordinary errors instead of borrowed records and status codes.
package client

import (
	"errors"
	"os"

	"github.com/Cyclone1070/grepbridge/internal/config"
	"github.com/Cyclone1070/grepbridge/internal/search"
	fsservice "github.com/Cyclone1070/grepbridge/internal/service/fs"
)

// Result is an owned copy of one match.
type Result struct {
	// FileName is empty when a single file was searched.
	FileName string
	// LineNumber is 1-based, or -1 when unknown.
	LineNumber int
	// Text is the matched line including its terminator.
	Text string
}

// dispatcher is the status-code level search capability.
type dispatcher interface {
	SearchPath(path, pattern search.RawText, callback search.Callback) search.StatusCode
}

// fileSystem is used to check the path kind for SearchFile and SearchDir.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
}

// Client runs searches and translates their status codes into errors.
type Client struct {
	dispatcher dispatcher
	fs         fileSystem
}

// New creates a Client.
func New(d dispatcher, fs fileSystem) *Client {
	if d == nil {
		panic("dispatcher is required")
	}
	if fs == nil {
		panic("fs is required")
	}
	return &Client{dispatcher: d, fs: fs}
}

// NewFromConfig creates a Client over the real filesystem.
func NewFromConfig(cfg *config.SearchConfig) (*Client, error) {
	d, err := search.New(cfg)
	if err != nil {
		return nil, err
	}
	return New(d, fsservice.NewOSFileSystem()), nil
}

// Search searches a file or directory and passes every match to consume.
// A consumer error aborts the search and is returned as the Cause of a
// *CallbackError, except ErrStop which ends the search with a nil error.
func (c *Client) Search(path, pattern string, consume func(Result) error) error {
	if path == "" {
		return ErrPathRequired
	}
	if consume == nil {
		return ErrConsumerRequired
	}

	var consumerErr error
	callback := func(r search.MatchRecord) bool {
		err := consume(Result{
			FileName:   r.FileName,
			LineNumber: int(r.LineNumber),
			Text:       string(r.Bytes),
		})
		if err != nil {
			consumerErr = err
			return false
		}
		return true
	}

	code := c.dispatcher.SearchPath(search.Text(path), search.Text(pattern), callback)
	if code == search.ErrorFromCallback && errors.Is(consumerErr, ErrStop) {
		return nil
	}
	return errorFromStatus(code, path, pattern, consumerErr)
}

// SearchFile is Search restricted to regular files.
func (c *Client) SearchFile(path, pattern string, consume func(Result) error) error {
	if path == "" {
		return ErrPathRequired
	}
	info, err := c.fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return &NotAFileError{Path: path}
	}
	return c.Search(path, pattern, consume)
}

// SearchDir is Search restricted to directories.
func (c *Client) SearchDir(path, pattern string, consume func(Result) error) error {
	if path == "" {
		return ErrPathRequired
	}
	info, err := c.fs.Stat(path)
	if err != nil || !info.IsDir() {
		return &NotADirectoryError{Path: path}
	}
	return c.Search(path, pattern, consume)
}

func errorFromStatus(code search.StatusCode, path, pattern string, consumerErr error) error {
	switch code {
	case search.Success:
		return nil
	case search.ErrorBadPattern:
		return &BadPatternError{Pattern: pattern}
	case search.ErrorCouldNotOpenFile:
		return &OpenError{Path: path}
	case search.ErrorFromRipgrep:
		return &EngineError{}
	case search.ErrorFromCallback:
		return &CallbackError{Cause: consumerErr}
	default:
		return &UnexpectedStatusError{Code: code}
	}
}
