package kafka

import (
	"time"
)

// SearchEventMessage - Kafka message for catalog.search.events
type SearchEventMessage struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	Query       string                 `json:"query"`
	ResultCount int64                  `json:"result_count"`
	Filters     map[string]interface{} `json:"filters,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
}
