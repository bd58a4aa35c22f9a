package http

import (
	"errors"

	"search-srv/internal/analytics"
	pkgErrors "search-srv/pkg/errors"
)

var (
	errPublishFailed = pkgErrors.NewHTTPError(
		500, "Failed to publish analytics event",
	)
	errAggregationFailed = pkgErrors.NewHTTPError(
		500, "Failed to aggregate analytics events",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analytics.ErrPublishFailed):
		return errPublishFailed
	case errors.Is(err, analytics.ErrAggregationFailed):
		return errAggregationFailed
	default:
		panic(err)
	}
}
