package consumer

import (
	"context"
	"fmt"

	pkgKafka "rentdesk-srv/pkg/kafka"
)

// ConsumeNotifications joins the consumer group and handles messages in the background
// until ctx is cancelled or Close is called.
func (c *consumer) ConsumeNotifications(ctx context.Context) error {
	if c.group == nil {
		group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
			Brokers: c.kafkaConfig.Brokers,
			GroupID: c.kafkaConfig.GroupID,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCreateConsumerGroupFailed, err)
		}
		c.group = group
	}

	topics := []string{c.kafkaConfig.Topic}
	c.started = true
	go func() {
		defer close(c.done)
		for {
			if err := c.group.Consume(ctx, topics, c.handleNotificationMessage); err != nil {
				if ctx.Err() != nil || isClosed(err) {
					return
				}
				c.l.Errorf(ctx, "notification.delivery.kafka.consumer.ConsumeNotifications: consume error: %v", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		for err := range c.group.Errors() {
			c.l.Errorf(ctx, "notification.delivery.kafka.consumer.ConsumeNotifications: group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", c.kafkaConfig.Topic)
	return nil
}
