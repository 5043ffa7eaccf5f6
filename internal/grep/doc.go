// Package grep is the line-oriented search engine used by the dispatcher.
//
// It has two halves: a Matcher, compiled once from a pattern and safe to
// share, and a Searcher, which streams an input line by line and hands every
// matching line to a Sink. Sinks receive a view into the searcher's internal
// buffer; the view is only valid until Matched returns.
package grep
