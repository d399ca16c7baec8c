package consumer

import (
	"rentdesk-srv/internal/model"
	kafkaDelivery "rentdesk-srv/internal/notification/delivery/kafka"
)

func toNotification(m kafkaDelivery.NotificationMessage) model.Notification {
	return model.Notification{
		ID:          m.ID,
		RecipientID: m.RecipientID,
		Role:        m.Role,
		Title:       m.Title,
		Body:        m.Body,
		CreatedAt:   m.CreatedAt,
	}
}
