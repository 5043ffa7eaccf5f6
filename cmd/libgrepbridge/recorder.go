package main

/*
#include <stdlib.h>
#include <string.h>
#include "grepbridge.h"

#define RECORDER_MAX 64
#define RECORDER_FIELD 4096

typedef struct {
    int has_file_name;
    const char *file_name_ptr;
    char file_name[RECORDER_FIELD];
    int32_t line_number;
    uint8_t bytes[RECORDER_FIELD];
    int32_t num_bytes;
} recorded_result;

static recorded_result recorder_results[RECORDER_MAX];
static int recorder_count;
static int recorder_stop_after;

static void recorder_reset(int stop_after) {
    recorder_count = 0;
    recorder_stop_after = stop_after;
}

// recorder_callback copies what a C host would see. It answers false once
// stop_after records have arrived; stop_after <= 0 never stops.
bool recorder_callback(SearchResult r) {
    if (recorder_count < RECORDER_MAX) {
        recorded_result *out = &recorder_results[recorder_count];
        out->has_file_name = r.file_name != NULL;
        out->file_name_ptr = r.file_name;
        out->file_name[0] = '\0';
        if (r.file_name != NULL) {
            strncpy(out->file_name, r.file_name, RECORDER_FIELD - 1);
            out->file_name[RECORDER_FIELD - 1] = '\0';
        }
        out->line_number = r.line_number;
        out->num_bytes = r.num_bytes;
        int32_t n = r.num_bytes < RECORDER_FIELD ? r.num_bytes : RECORDER_FIELD;
        if (n > 0) {
            memcpy(out->bytes, r.bytes, (size_t)n);
        }
    }
    recorder_count++;
    return recorder_stop_after <= 0 || recorder_count < recorder_stop_after;
}

static int recorder_len(void) {
    return recorder_count < RECORDER_MAX ? recorder_count : RECORDER_MAX;
}

static recorded_result *recorder_at(int i) {
    return &recorder_results[i];
}
*/
import "C"

import "unsafe"

// recordedResult is one SearchResult as observed by a C callback.
type recordedResult struct {
	hasFileName bool
	fileName    string
	// fileNamePtr is the address the host received, for lifetime checks.
	fileNamePtr uintptr
	lineNumber  int32
	numBytes    int32
	text        string
}

// recordSearch runs searchPath with a C recording callback and returns the
// status and every record the callback saw. A nil path or pattern is passed
// as NULL; withCallback false passes a NULL callback. stopAfter > 0 makes the
// callback return false on that record.
func recordSearch(path, pattern *string, withCallback bool, stopAfter int) (int32, []recordedResult) {
	cPath := optionalCString(path)
	defer C.free(unsafe.Pointer(cPath))
	cPattern := optionalCString(pattern)
	defer C.free(unsafe.Pointer(cPattern))

	C.recorder_reset(C.int(stopAfter))

	var fn C.SearchResultCallbackFn
	if withCallback {
		fn = C.SearchResultCallbackFn(C.recorder_callback)
	}
	code := searchPath(cPath, cPattern, fn)

	n := int(C.recorder_len())
	results := make([]recordedResult, 0, n)
	for i := 0; i < n; i++ {
		r := C.recorder_at(C.int(i))
		copied := min(int(r.num_bytes), C.RECORDER_FIELD)
		results = append(results, recordedResult{
			hasFileName: r.has_file_name != 0,
			fileName:    C.GoString(&r.file_name[0]),
			fileNamePtr: uintptr(unsafe.Pointer(r.file_name_ptr)),
			lineNumber:  int32(r.line_number),
			numBytes:    int32(r.num_bytes),
			text:        string(C.GoBytes(unsafe.Pointer(&r.bytes[0]), C.int(max(copied, 0)))),
		})
	}
	return int32(code), results
}

func optionalCString(s *string) *C.char {
	if s == nil {
		return nil
	}
	return C.CString(*s)
}
