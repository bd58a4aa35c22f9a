package http

import (
	"errors"

	"search-srv/internal/search"
	pkgErrors "search-srv/pkg/errors"
)

var (
	errEmptyQuery = pkgErrors.NewHTTPError(
		400, "Query is empty after processing and no filters were given",
	)
	errSearchFailed = pkgErrors.NewHTTPError(
		503, "Search backend unavailable",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, search.ErrEmptyQuery):
		return errEmptyQuery
	case errors.Is(err, search.ErrSearchFailed):
		return errSearchFailed
	default:
		panic(err)
	}
}
