package consumer

import (
	"context"
	"fmt"

	"rentdesk-srv/config"
	"rentdesk-srv/internal/notification"
	pkgKafka "rentdesk-srv/pkg/kafka"
	"rentdesk-srv/pkg/log"
)

// Consumer stores notification events received from Kafka.
type Consumer interface {
	ConsumeNotifications(ctx context.Context) error
	Close() error
}

// Config holds the configuration for the notification consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     notification.UseCase
	// Group is created from KafkaConfig when nil.
	Group pkgKafka.IConsumer
}

type consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          notification.UseCase
	group       pkgKafka.IConsumer
	started     bool
	done        chan struct{}
}

// New creates a new notification consumer
func New(cfg Config) (Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if cfg.KafkaConfig.Topic == "" {
		return nil, fmt.Errorf("kafka topic is required")
	}
	if cfg.Group == nil && len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
		group:       cfg.Group,
		done:        make(chan struct{}),
	}, nil
}

// Close closes the consumer group and waits for the consume loop to exit.
func (c *consumer) Close() error {
	if c.group == nil {
		return nil
	}
	if err := c.group.Close(); err != nil {
		return fmt.Errorf("failed to close notification group: %w", err)
	}
	if c.started {
		<-c.done
	}
	return nil
}
