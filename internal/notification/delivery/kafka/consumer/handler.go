package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"rentdesk-srv/internal/notification"
	kafkaDelivery "rentdesk-srv/internal/notification/delivery/kafka"
	pkgKafka "rentdesk-srv/pkg/kafka"
)

// handleNotificationMessage stores one event. Malformed events are logged and
// acknowledged; storage failures are returned so the message is redelivered.
func (c *consumer) handleNotificationMessage(ctx context.Context, msg pkgKafka.Message) error {
	var m kafkaDelivery.NotificationMessage
	if err := json.Unmarshal(msg.Value, &m); err != nil {
		c.l.Warnf(ctx, "notification.delivery.kafka.consumer.handleNotificationMessage: invalid message at %d/%d (skipping): %v",
			msg.Partition, msg.Offset, err)
		return nil
	}
	if m.EventType != kafkaDelivery.EventTypeNotificationCreated {
		c.l.Debugf(ctx, "notification.delivery.kafka.consumer.handleNotificationMessage: ignoring event %q", m.EventType)
		return nil
	}

	err := c.uc.Store(ctx, toNotification(m))
	switch {
	case err == nil:
		c.l.Infof(ctx, "notification.delivery.kafka.consumer.handleNotificationMessage: stored %s", m.ID)
		return nil
	case errors.Is(err, notification.ErrInvalidNotification), errors.Is(err, notification.ErrInvalidRole):
		c.l.Warnf(ctx, "notification.delivery.kafka.consumer.handleNotificationMessage: rejected %s (skipping): %v", m.ID, err)
		return nil
	default:
		c.l.Errorf(ctx, "notification.delivery.kafka.consumer.handleNotificationMessage: usecase Store failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}
}
