package search

import (
	"sync"

	"github.com/Cyclone1070/grepbridge/internal/config"
)

var defaultDispatcher = sync.OnceValue(func() *Dispatcher {
	d, err := New(&config.DefaultConfig().Search)
	if err != nil {
		// The default configuration has no globs to fail on.
		panic(err)
	}
	return d
})

// SearchPath searches a file or directory with the default configuration.
func SearchPath(path, pattern RawText, callback Callback) StatusCode {
	return defaultDispatcher().SearchPath(path, pattern, callback)
}

// SearchFile is an alias for SearchPath.
//
// Deprecated: use SearchPath.
func SearchFile(path, pattern RawText, callback Callback) StatusCode {
	return SearchPath(path, pattern, callback)
}

// SearchDir is an alias for SearchPath.
//
// Deprecated: use SearchPath.
func SearchDir(path, pattern RawText, callback Callback) StatusCode {
	return SearchPath(path, pattern, callback)
}
