package repository

import "errors"

var (
	ErrFailedToInsert    = errors.New("repository: failed to insert event")
	ErrFailedToAggregate = errors.New("repository: failed to aggregate events")
)
