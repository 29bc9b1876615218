package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mateusmacedo/go-todo/internal/config"
	"github.com/mateusmacedo/go-todo/internal/todo"
	todoApp "github.com/mateusmacedo/go-todo/internal/todo/application"
	todoDomain "github.com/mateusmacedo/go-todo/internal/todo/domain"
	todoInfra "github.com/mateusmacedo/go-todo/internal/todo/infrastructure"
	"github.com/mateusmacedo/go-todo/internal/weatherforecast"
	weatherInfra "github.com/mateusmacedo/go-todo/internal/weatherforecast/infrastructure"
	pkgApp "github.com/mateusmacedo/go-todo/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-todo/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-todo/pkg/infrastructure"
	channelsAdapter "github.com/mateusmacedo/go-todo/pkg/infrastructure/channels/adapter"
	kafkaAdapter "github.com/mateusmacedo/go-todo/pkg/infrastructure/kafka/adapter"
	redisAdapter "github.com/mateusmacedo/go-todo/pkg/infrastructure/redis/adapter"
	watermillAdapter "github.com/mateusmacedo/go-todo/pkg/infrastructure/watermill/adapter"
	zapAdapter "github.com/mateusmacedo/go-todo/pkg/infrastructure/zaplogger/adapter"
)

func main() {
	configPath := flag.String("config", os.Getenv("TODO_CONFIG_FILE"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	appLogger, err := zapAdapter.NewZapAppLogger(
		zapAdapter.WithAppName(cfg.Log.AppName),
		zapAdapter.WithLevel(cfg.Log.Level),
	)
	if err != nil {
		panic(err)
	}
	if syncer, ok := appLogger.(interface{ Sync() error }); ok {
		defer func() { _ = syncer.Sync() }()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Error(context.Background(), "Erro ao executar o servidor", map[string]interface{}{
			"error": err,
		})
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, appLogger pkgApp.AppLogger) error {
	repository, err := newRepository(cfg.Database, appLogger)
	if err != nil {
		return fmt.Errorf("repository: %w", err)
	}

	eventBus := pkgInfra.NewSimpleEventBus[pkgDomain.Event[todoDomain.TodoItem], todoDomain.TodoItem](appLogger)

	todoSlice := todo.NewTodoSlice(eventBus, repository, pkgInfra.GenerateUUID, appLogger, todo.SliceConfig{
		RequestTimeout:       cfg.Server.RequestTimeout,
		SlowCommandThreshold: cfg.Events.SlowCommandLimit,
	})
	weatherSlice := weatherforecast.NewWeatherForecastSlice(
		weatherInfra.NewRandomForecastSource(time.Now().UnixNano()),
		appLogger,
		cfg.Server.RequestTimeout,
	)

	if cfg.Events.RelayEnabled() {
		closeRelay, err := startRelay(ctx, cfg, eventBus, appLogger)
		if err != nil {
			return fmt.Errorf("event relay: %w", err)
		}
		defer closeRelay()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	todoSlice.RegisterRoutes(router)
	weatherSlice.RegisterRoutes(router)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info(ctx, "Server starting", map[string]interface{}{
			"address": server.Addr,
			"driver":  cfg.Database.Driver,
			"relay":   cfg.Events.Relay,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		appLogger.Info(context.Background(), "Encerrando servidor...", nil)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	appLogger.Info(context.Background(), "Servidor encerrado", nil)
	return nil
}

func newRepository(cfg config.DatabaseConfig, appLogger pkgApp.AppLogger) (todoDomain.TodoItemRepository, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return todoInfra.NewGormTodoItemRepository(cfg.DSN, appLogger)
	default:
		return todoInfra.NewInMemoryTodoItemRepository(appLogger), nil
	}
}

// startRelay registra o EventRelay no barramento para todos os eventos do item.
// Com gochannel os eventos relayados são consumidos no próprio processo, e a
// assinatura é feita antes do registro para nenhum evento ser descartado.
func startRelay(ctx context.Context, cfg *config.Config, eventBus todoApp.TodoItemEventBus, appLogger pkgApp.AppLogger) (func(), error) {
	var publisher message.Publisher

	switch cfg.Events.Relay {
	case config.RelayGoChannel:
		pubSub := channelsAdapter.NewGoChannelPubSub(cfg.Events.GoChannelBuffer, appLogger)
		wait, err := watermillAdapter.NewRelayConsumer(pubSub, appLogger).Start(ctx, todoDomain.EventNames...)
		if err != nil {
			_ = pubSub.Close()
			return nil, err
		}
		go wait()
		publisher = pubSub
	case config.RelayRedis:
		client := redisAdapter.NewRedisClient(redisAdapter.ClientConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		redisPublisher, err := redisAdapter.NewPublisher(ctx, client, appLogger)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		publisher = closerChain{Publisher: redisPublisher, closers: []func() error{client.Close}}
	case config.RelayKafka:
		kafkaPublisher, err := kafkaAdapter.NewPublisher(cfg.Kafka.Brokers, appLogger)
		if err != nil {
			return nil, err
		}
		publisher = kafkaPublisher
	default:
		return nil, fmt.Errorf("unknown relay %q", cfg.Events.Relay)
	}

	relay := watermillAdapter.NewEventRelay[pkgDomain.Event[todoDomain.TodoItem], todoDomain.TodoItem](publisher, appLogger)
	relay.RegisterOn(eventBus, todoDomain.EventNames...)

	return func() {
		if err := publisher.Close(); err != nil {
			pkgApp.LogError(context.Background(), appLogger, "error closing relay publisher", err, nil)
		}
	}, nil
}

// closerChain fecha recursos extras depois do publisher.
type closerChain struct {
	message.Publisher
	closers []func() error
}

func (c closerChain) Close() error {
	errs := []error{c.Publisher.Close()}
	for _, closeFn := range c.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}
