package kafka

import (
	"fmt"
	"sync"

	"rentdesk-srv/config"
	"rentdesk-srv/pkg/kafka"
)

var (
	consumerMu sync.Mutex
	consumer   kafka.IConsumer
)

// ConnectConsumer joins the notification consumer group named by
// kafka.group_id.
func ConnectConsumer(cfg config.KafkaConfig) (kafka.IConsumer, error) {
	consumerMu.Lock()
	defer consumerMu.Unlock()

	if consumer != nil {
		return consumer, nil
	}
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}

	c, err := kafka.NewConsumer(kafka.ConsumerConfig{Brokers: cfg.Brokers, GroupID: cfg.GroupID})
	if err != nil {
		return nil, fmt.Errorf("join group %q: %w", cfg.GroupID, err)
	}
	consumer = c
	return consumer, nil
}

// DisconnectConsumer leaves the group and closes the client.
func DisconnectConsumer() error {
	consumerMu.Lock()
	defer consumerMu.Unlock()

	if consumer == nil {
		return nil
	}
	err := consumer.Close()
	consumer = nil
	return err
}
