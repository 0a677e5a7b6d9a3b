// Package notifier assembles the email notification worker. It consumes
// order status events from the broker and sends the buyer an email.
package notifier

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/guswanstore/guswanmy/internal/config"
	"github.com/guswanstore/guswanmy/internal/lib/rabbitmq"
	"github.com/guswanstore/guswanmy/internal/lib/smtp"
	notifierservice "github.com/guswanstore/guswanmy/internal/services/notifier"
)

// App holds the worker's broker connection and service.
type App struct {
	conn            *amqp.Connection
	ch              *amqp.Channel
	notifierService *notifierservice.Service
	logger          *slog.Logger
}

// New connects to the broker and wires the notifier service.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		conn.Close()
		return nil, err
	}

	transport := smtp.NewTransport(cfg, logger)
	notifierService := notifierservice.NewService(transport, logger)

	return &App{
		conn:            conn,
		ch:              ch,
		notifierService: notifierService,
		logger:          logger,
	}, nil
}

// Run consumes status events until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, rabbitmq.OrderStatusQueue, a.notifierService.SendOrderStatusUpdate)
	if err != nil {
		a.logger.Error("failed to start order status consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("notifier shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}
	return nil
}
