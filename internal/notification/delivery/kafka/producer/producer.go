package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"rentdesk-srv/internal/model"
	kafkaDelivery "rentdesk-srv/internal/notification/delivery/kafka"
)

// PublishNotification publishes n keyed by its ID.
func (p *implProducer) PublishNotification(ctx context.Context, n model.Notification) error {
	body, err := json.Marshal(kafkaDelivery.NotificationMessage{
		EventType:   kafkaDelivery.EventTypeNotificationCreated,
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Role:        n.Role,
		Title:       n.Title,
		Body:        n.Body,
		CreatedAt:   n.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := p.producer.Publish(ctx, []byte(n.ID), body); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	p.l.Debugf(ctx, "notification.delivery.kafka.producer.PublishNotification: published %s", n.ID)
	return nil
}
