package producer

import (
	"rentdesk-srv/internal/notification"
	pkgKafka "rentdesk-srv/pkg/kafka"
	"rentdesk-srv/pkg/log"
)

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates the notification publisher.
func New(l log.Logger, producer pkgKafka.IProducer) notification.Publisher {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
