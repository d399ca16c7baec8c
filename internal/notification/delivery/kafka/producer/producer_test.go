package producer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"rentdesk-srv/internal/model"
	kafkaDelivery "rentdesk-srv/internal/notification/delivery/kafka"
	pkgKafka "rentdesk-srv/pkg/kafka"
	"rentdesk-srv/pkg/log"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishNotification(t *testing.T) {
	sp := mocks.NewSyncProducer(t, sarama.NewConfig())
	defer sp.Close()

	var got kafkaDelivery.NotificationMessage
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		return json.Unmarshal(val, &got)
	})

	kp, err := pkgKafka.NewProducerFromSync(sp, "rentdesk.notifications")
	require.NoError(t, err)
	p := New(log.NewNop(), kp)

	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, p.PublishNotification(context.Background(), model.Notification{
		ID: "n1", Role: model.RoleTenant, Title: "Water outage", CreatedAt: created,
	}))

	assert.Equal(t, kafkaDelivery.EventTypeNotificationCreated, got.EventType)
	assert.Equal(t, "tenant", got.Role)
	assert.Empty(t, got.RecipientID)
	assert.True(t, created.Equal(got.CreatedAt))
}
