// Package search dispatches a text search over a file or a directory tree and
// streams every matching line to a caller-supplied callback.
//
// Every entry point returns exactly one StatusCode. Matches are delivered as
// MatchRecords whose Bytes borrow the searcher's line buffer: a callback must
// copy anything it wants to keep before returning.
package search
