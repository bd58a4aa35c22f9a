package kafka

const (
	TopicSearchEvents         = "catalog.search.events"
	ConsumerGroupSearchEvents = "search-srv-analytics"
)
