package search

import "errors"

// Domain errors
var (
	// ErrEmptyQuery - normalization produced no tokens and no filter survived
	ErrEmptyQuery = errors.New("search: empty query")

	// ErrSearchFailed - product store query failed
	ErrSearchFailed = errors.New("search: store search failed")
)
