package producer

import (
	"search-srv/internal/analytics"
	pkgKafka "search-srv/pkg/kafka"
	"search-srv/pkg/log"
)

// Producer interface for the analytics domain
type Producer interface {
	analytics.Producer
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new analytics producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
