package search

import (
	"errors"
	"io/fs"
	"os"
	"unicode/utf8"
)

type statFS interface {
	Stat(path string) (os.FileInfo, error)
}

// checkPresent reports the first null argument.
func checkPresent(path, pattern RawText, callback Callback) error {
	switch {
	case path.IsNull():
		return &MissingFilenameError{}
	case pattern.IsNull():
		return &MissingSearchTextError{}
	case callback == nil:
		return &MissingCallbackError{}
	}
	return nil
}

// validatedPath is a path that existed when it was checked.
type validatedPath struct {
	path string
	info os.FileInfo
}

// parsePath turns the raw path into an existing path. The text is used as
// given: no cleaning, no symlink resolution, no globbing.
func parsePath(raw RawText, fsys statFS) (validatedPath, error) {
	if raw.IsNull() {
		return validatedPath{}, &MissingFilenameError{}
	}
	if !utf8.Valid(raw.data) {
		return validatedPath{}, &PathEncodingError{Path: raw.data}
	}

	path := string(raw.data)
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return validatedPath{}, &FileMissingError{Path: path}
		}
		return validatedPath{}, &StatError{Path: path, Cause: err}
	}

	return validatedPath{path: path, info: info}, nil
}

// parseSearchText turns the raw pattern into a Go string.
func parseSearchText(raw RawText) (string, error) {
	if raw.IsNull() {
		return "", &MissingSearchTextError{}
	}
	if !utf8.Valid(raw.data) {
		return "", &BadPatternError{Pattern: string(raw.data), Cause: ErrInvalidUTF8}
	}
	return string(raw.data), nil
}
