package consumer

import (
	"context"
	"fmt"

	notificationConsumer "rentdesk-srv/internal/notification/delivery/kafka/consumer"
	notificationPostgre "rentdesk-srv/internal/notification/repository/postgre"
	notificationUsecase "rentdesk-srv/internal/notification/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	notificationConsumer notificationConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	// The consumer only stores events, so the usecase needs no publisher.
	notificationUC := notificationUsecase.New(notificationPostgre.New(srv.postgresDB, srv.l), nil, srv.l)
	notificationCons, err := notificationConsumer.New(notificationConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     notificationUC,
		Group:       srv.consumerGroup,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create notification consumer: %w", err)
	}

	srv.l.Infof(ctx, "Notification domain initialized")

	return &domainConsumers{
		notificationConsumer: notificationCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.notificationConsumer.ConsumeNotifications(ctx); err != nil {
		return fmt.Errorf("failed to start notification consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.notificationConsumer != nil {
		if err := consumers.notificationConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing notification consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
