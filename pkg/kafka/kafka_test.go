package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	assert.ErrorIs(t, validateProducerConfig(Config{Topic: "t"}), ErrNoBrokers)
	assert.ErrorIs(t, validateProducerConfig(Config{Brokers: []string{"b:9092"}}), ErrTopicRequired)
	assert.NoError(t, validateProducerConfig(Config{Brokers: []string{"b:9092"}, Topic: "t"}))

	assert.ErrorIs(t, validateConsumerConfig(ConsumerConfig{GroupID: "g"}), ErrNoBrokers)
	assert.ErrorIs(t, validateConsumerConfig(ConsumerConfig{Brokers: []string{"b:9092"}}), ErrGroupRequired)
}

func TestPublish(t *testing.T) {
	sp := mocks.NewSyncProducer(t, sarama.NewConfig())
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"title":"Rent due"}` {
			return errors.New("unexpected payload")
		}
		return nil
	})
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p, err := NewProducerFromSync(sp, "rentdesk.notifications")
	require.NoError(t, err)
	require.NoError(t, p.HealthCheck())

	require.NoError(t, p.Publish(context.Background(), []byte("k"), []byte(`{"title":"Rent due"}`)))
	err = p.Publish(context.Background(), []byte("k"), []byte("x"))
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)

	require.NoError(t, p.Close())
}

func TestPublishCancelled(t *testing.T) {
	sp := mocks.NewSyncProducer(t, sarama.NewConfig())
	p, err := NewProducerFromSync(sp, "topic")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Publish(ctx, nil, []byte("x")), context.Canceled)
	require.NoError(t, p.Close())
}

func TestNotReady(t *testing.T) {
	p := &producerImpl{topic: "t"}
	assert.ErrorIs(t, p.HealthCheck(), ErrProducerNotReady)
	assert.ErrorIs(t, p.Publish(context.Background(), nil, nil), ErrProducerNotReady)
}
