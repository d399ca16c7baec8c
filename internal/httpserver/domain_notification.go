package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"rentdesk-srv/internal/middleware"
	"rentdesk-srv/internal/notification"
	notificationHTTP "rentdesk-srv/internal/notification/delivery/http"
	notificationProducer "rentdesk-srv/internal/notification/delivery/kafka/producer"
	notificationPostgre "rentdesk-srv/internal/notification/repository/postgre"
	notificationUsecase "rentdesk-srv/internal/notification/usecase"
)

// setupNotificationDomain wires notifications. Broadcasting answers 503 without a Kafka producer.
func (srv *HTTPServer) setupNotificationDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	var publisher notification.Publisher
	if srv.kafkaProducer != nil {
		publisher = notificationProducer.New(srv.l, srv.kafkaProducer)
	}

	uc := notificationUsecase.New(notificationPostgre.New(srv.postgresDB, srv.l), publisher, srv.l)
	notificationHTTP.New(srv.l, uc).RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Notification domain registered (broadcast=%t)", publisher != nil)
}
