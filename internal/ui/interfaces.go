package ui

import "github.com/Cyclone1070/grepbridge/internal/client"

// Searcher runs one search and streams owned results to consume.
// *client.Client implements it.
type Searcher interface {
	Search(path, pattern string, consume func(client.Result) error) error
}
