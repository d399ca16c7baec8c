package kafka

import (
	"errors"
	"fmt"
	"sync"

	"rentdesk-srv/config"
	"rentdesk-srv/pkg/kafka"
)

// ErrNoBrokers is returned when kafka.brokers is empty.
var ErrNoBrokers = errors.New("kafka: no brokers configured")

var (
	producerMu sync.Mutex
	producer   kafka.IProducer
)

// ConnectProducer returns the process-wide notification producer, creating it
// on first use. A failed attempt leaves nothing behind, so it can be retried.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producer != nil {
		return producer, nil
	}
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}

	p, err := kafka.NewProducer(kafka.Config{Brokers: cfg.Brokers, Topic: cfg.Topic})
	if err != nil {
		return nil, fmt.Errorf("connect producer for %s: %w", cfg.Topic, err)
	}
	producer = p
	return producer, nil
}

// DisconnectProducer flushes and closes the shared producer.
func DisconnectProducer() error {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producer == nil {
		return nil
	}
	err := producer.Close()
	producer = nil
	return err
}
