package consumer

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"rentdesk-srv/config"
	kafkaDelivery "rentdesk-srv/internal/notification/delivery/kafka"
	pkgKafka "rentdesk-srv/pkg/kafka"
	"rentdesk-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeGroup struct {
	msgs    []pkgKafka.Message
	handled chan error
	closed  chan struct{}
	errs    chan error
	once    sync.Once
}

func newFakeGroup(msgs ...pkgKafka.Message) *fakeGroup {
	return &fakeGroup{
		msgs:    msgs,
		handled: make(chan error, len(msgs)),
		closed:  make(chan struct{}),
		errs:    make(chan error),
	}
}

func (g *fakeGroup) Consume(ctx context.Context, _ []string, handler pkgKafka.MessageHandler) error {
	for _, m := range g.msgs {
		g.handled <- handler(ctx, m)
	}
	g.msgs = nil
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-g.closed:
		return sarama.ErrClosedConsumerGroup
	}
}

func (g *fakeGroup) Close() error {
	g.once.Do(func() {
		close(g.closed)
		close(g.errs)
	})
	return nil
}

func (g *fakeGroup) Errors() <-chan error { return g.errs }

func TestNew_Validation(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	kafkaCfg := config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "rentdesk.notifications"}

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing logger", cfg: Config{KafkaConfig: kafkaCfg, PostgresDB: db}},
		{name: "missing brokers", cfg: Config{Logger: log.NewNop(), KafkaConfig: config.KafkaConfig{Topic: "t"}, PostgresDB: db}},
		{name: "missing topic", cfg: Config{Logger: log.NewNop(), KafkaConfig: config.KafkaConfig{Brokers: []string{"b"}}, PostgresDB: db}},
		{name: "missing database", cfg: Config{Logger: log.NewNop(), KafkaConfig: kafkaCfg}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, err := New(tc.cfg)
			assert.Error(t, err)
			assert.Nil(t, srv)
		})
	}
}

func TestRun_StoresNotifications(t *testing.T) {
	defer goleak.VerifyNone(t)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	raw, err := json.Marshal(kafkaDelivery.NotificationMessage{
		EventType: kafkaDelivery.EventTypeNotificationCreated,
		ID:        "7d4b1c9e-2f6a-4e8b-9c3d-5a1e0f2b6c7d",
		Title:     "Rent due Friday",
		Body:      "Please settle outstanding balances.",
		Role:      "tenant",
	})
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO notifications").
		WithArgs("7d4b1c9e-2f6a-4e8b-9c3d-5a1e0f2b6c7d", nil, "tenant", "Rent due Friday",
			"Please settle outstanding balances.", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	group := newFakeGroup(pkgKafka.Message{Topic: "rentdesk.notifications", Value: raw})
	srv, err := New(Config{
		Logger:        log.NewNop(),
		KafkaConfig:   config.KafkaConfig{Topic: "rentdesk.notifications"},
		PostgresDB:    db,
		ConsumerGroup: group,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	runErr := make(chan error, 1)
	go func() { runErr <- srv.Run(ctx) }()

	select {
	case err := <-group.handled:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("message not handled")
	}

	cancel()
	select {
	case err := <-runErr:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
