// Package storefront assembles the HTTP storefront: storage, cache, message
// broker, services, routes and the server lifecycle.
package storefront

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/guswanstore/guswanmy/internal/cache"
	"github.com/guswanstore/guswanmy/internal/catalog"
	"github.com/guswanstore/guswanmy/internal/config"
	"github.com/guswanstore/guswanmy/internal/lib/jwt"
	"github.com/guswanstore/guswanmy/internal/lib/rabbitmq"
	"github.com/guswanstore/guswanmy/internal/metrics"
	"github.com/guswanstore/guswanmy/internal/migrations"
	authservice "github.com/guswanstore/guswanmy/internal/services/auth"
	cartservice "github.com/guswanstore/guswanmy/internal/services/cart"
	checkoutservice "github.com/guswanstore/guswanmy/internal/services/checkout"
	orderservice "github.com/guswanstore/guswanmy/internal/services/order"
	resellerservice "github.com/guswanstore/guswanmy/internal/services/reseller"
	"github.com/guswanstore/guswanmy/internal/storage/repository"
)

// App holds the storefront server and its long-lived resources.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	conn   *amqp.Connection
	ch     *amqp.Channel
}

// publisher adapts the broker channel to the order service. A nil publisher
// is valid and turns status events into no-ops.
type publisher struct {
	ch *amqp.Channel
}

func (p *publisher) Publish(routingKey string, message any) error {
	return rabbitmq.PublishMessage(p.ch, "notifications", routingKey, message)
}

// New wires every component of the storefront. The broker is optional: with
// an empty RabbitMQURL the app runs without status notifications.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	var (
		conn *amqp.Connection
		ch   *amqp.Channel
	)
	var orderPublisher orderservice.Publisher
	if cfg.RabbitMQURL != "" {
		conn, err = rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
		if err != nil {
			return nil, err
		}
		ch, err = rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
		if err != nil {
			conn.Close()
			return nil, err
		}
		orderPublisher = &publisher{ch: ch}
	} else {
		logger.Warn("rabbitmq url is empty, status notifications disabled")
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewService(db, db, jwtMaker, cfg.AdminAccount, cfg.SimulatedLatency, logger)
	cartService := cartservice.NewService(cacheRedis, cfg.CartTTL, logger)
	orderService := orderservice.NewService(db, orderPublisher, logger)
	orderService.SetMetricHooks(
		func() { metrics.OrdersCreated.Inc() },
		func(status string) { metrics.OrderStatusUpdates.WithLabelValues(status).Inc() },
	)
	checkoutService := checkoutservice.NewService(checkoutservice.Config{
		ProcessingDuration: cfg.ProcessingDuration,
		MessageInterval:    cfg.MessageInterval,
		ProgressInterval:   cfg.ProgressInterval,
		RevealDelay:        cfg.RevealDelay,
	}, cartService, orderService, logger)
	checkoutService.SetCancelHook(func() { metrics.CheckoutsCancelled.Inc() })
	resellerService := resellerservice.NewService(db, logger)
	catalogService := catalog.NewService(db, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker,
		authService, cartService, checkoutService, orderService, resellerService, catalogService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		conn:   conn,
		ch:     ch,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if a.ch != nil {
			a.ch.Close()
		}
		if a.conn != nil {
			a.conn.Close()
		}
		a.db.DB.Close()
		return err
	}
}
