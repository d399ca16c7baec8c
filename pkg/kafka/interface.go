package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// IProducer defines the interface for Kafka producer.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(ctx context.Context, key, value []byte) error
	Close() error
	HealthCheck() error
}

// IConsumer defines the interface for Kafka consumer group.
// Wraps sarama.ConsumerGroup for easier testing and management.
type IConsumer interface {
	// Consume runs one consumer-group session over topics. It returns when the
	// session ends (rebalance or ctx cancelled); callers loop until ctx is done.
	Consume(ctx context.Context, topics []string, handler MessageHandler) error
	// Close closes the consumer group
	Close() error
	// Errors returns a channel of errors from the consumer
	Errors() <-chan error
}

// MessageHandler processes one message. A nil error marks the message consumed.
type MessageHandler func(ctx context.Context, msg Message) error

// NewProducer creates a new Kafka producer. Returns the interface.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}

// NewProducerFromSync wraps an existing sarama producer, e.g. sarama/mocks in tests.
func NewProducerFromSync(p sarama.SyncProducer, topic string) (IProducer, error) {
	if topic == "" {
		return nil, ErrTopicRequired
	}
	return &producerImpl{producer: p, topic: topic}, nil
}

// NewConsumer creates a new Kafka consumer group. Returns the interface.
func NewConsumer(cfg ConsumerConfig) (IConsumer, error) {
	if err := validateConsumerConfig(cfg); err != nil {
		return nil, err
	}
	return newConsumerImpl(cfg)
}
