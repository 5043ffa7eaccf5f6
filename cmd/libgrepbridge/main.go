// Package main builds grepbridge as a C shared library:
//
//	go build -buildmode=c-shared -o libgrepbridge.so ./cmd/libgrepbridge
//
// search_path, search_file and search_dir take a NUL-terminated path, a
// NUL-terminated pattern and a callback, and return a status code. Match
// records passed to the callback point at memory that is freed as soon as
// the callback returns.
package main

/*
#include <stdlib.h>
#include <string.h>
#include "grepbridge.h"
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/Cyclone1070/grepbridge/internal/config"
	"github.com/Cyclone1070/grepbridge/internal/rlog"
	"github.com/Cyclone1070/grepbridge/internal/search"
)

var dispatcher = sync.OnceValue(func() *search.Dispatcher {
	cfg, err := config.Load()
	if err != nil {
		rlog.Warnf("failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	d, err := search.New(&cfg.Search)
	if err != nil {
		rlog.Warnf("invalid search config, using defaults: %v", err)
		d, err = search.New(&config.DefaultConfig().Search)
		if err != nil {
			panic(err)
		}
	}
	return d
})

func rawText(s *C.char) search.RawText {
	if s == nil {
		return search.NullText()
	}
	return search.TextBytes(C.GoBytes(unsafe.Pointer(s), C.int(C.strlen(s))))
}

// callbackBridge forwards records to a C callback for one dispatch. The C
// copy of the file name is kept while consecutive records come from the same
// file and freed when the file changes or the dispatch ends.
type callbackBridge struct {
	fn    C.SearchResultCallbackFn
	name  string
	cName *C.char
}

func (b *callbackBridge) fileName(name string) *C.char {
	if name == "" {
		return nil
	}
	if b.cName != nil && b.name == name {
		return b.cName
	}
	b.release()
	b.name = name
	b.cName = C.CString(name)
	return b.cName
}

func (b *callbackBridge) release() {
	if b.cName != nil {
		C.free(unsafe.Pointer(b.cName))
		b.cName = nil
		b.name = ""
	}
}

func (b *callbackBridge) call(record search.MatchRecord) bool {
	var result C.SearchResult
	result.file_name = b.fileName(record.FileName)
	result.line_number = C.int32_t(record.LineNumber)

	n := record.NumBytes()
	if n > 0 {
		buf := C.CBytes(record.Bytes)
		defer C.free(buf)
		result.bytes = (*C.uint8_t)(buf)
	}
	result.num_bytes = C.int32_t(n)

	return bool(C.call_search_result_callback(b.fn, result))
}

func searchPath(path, pattern *C.char, fn C.SearchResultCallbackFn) (code C.int32_t) {
	defer func() {
		if r := recover(); r != nil {
			rlog.Errorf("search panicked: %v", r)
			code = C.int32_t(search.ErrorFromRipgrep)
		}
	}()

	// A nil function pointer stays a nil Callback so the dispatcher reports
	// MissingCallback.
	var callback search.Callback
	if fn != nil {
		bridge := &callbackBridge{fn: fn}
		defer bridge.release()
		callback = bridge.call
	}
	return C.int32_t(dispatcher().SearchPath(rawText(path), rawText(pattern), callback))
}

//export search_path
func search_path(path, pattern *C.char, callback C.SearchResultCallbackFn) C.int32_t {
	return searchPath(path, pattern, callback)
}

// search_file is kept for hosts built against older headers.
//
//export search_file
func search_file(path, pattern *C.char, callback C.SearchResultCallbackFn) C.int32_t {
	return searchPath(path, pattern, callback)
}

// search_dir is kept for hosts built against older headers.
//
//export search_dir
func search_dir(path, pattern *C.char, callback C.SearchResultCallbackFn) C.int32_t {
	return searchPath(path, pattern, callback)
}

func main() {}
