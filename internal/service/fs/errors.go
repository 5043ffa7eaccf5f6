package fs

import "fmt"

// FileTooLargeError is returned by ReadFileLimited when a file exceeds the limit.
type FileTooLargeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("%s is %d bytes, over the %d byte limit", e.Path, e.Size, e.Limit)
}
func (e *FileTooLargeError) LimitExceeded() bool { return true }
