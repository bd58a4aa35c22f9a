package analytics

import "errors"

// Domain errors
var (
	// ErrPublishFailed - event could not be handed to the broker
	ErrPublishFailed = errors.New("analytics: failed to publish event")

	// ErrSaveFailed - event could not be persisted
	ErrSaveFailed = errors.New("analytics: failed to save event")

	// ErrAggregationFailed - aggregation query over the event log failed
	ErrAggregationFailed = errors.New("analytics: aggregation failed")
)
