package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/mateusmacedo/go-todo/internal/config"
	todoDomain "github.com/mateusmacedo/go-todo/internal/todo/domain"
	pkgApp "github.com/mateusmacedo/go-todo/pkg/application"
	kafkaAdapter "github.com/mateusmacedo/go-todo/pkg/infrastructure/kafka/adapter"
	redisAdapter "github.com/mateusmacedo/go-todo/pkg/infrastructure/redis/adapter"
	watermillAdapter "github.com/mateusmacedo/go-todo/pkg/infrastructure/watermill/adapter"
	zapAdapter "github.com/mateusmacedo/go-todo/pkg/infrastructure/zaplogger/adapter"
)

// relayconsumer lê os eventos de domínio relayados pelo servidor via redis ou kafka.
func main() {
	configPath := flag.String("config", os.Getenv("TODO_CONFIG_FILE"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	appLogger, err := zapAdapter.NewZapAppLogger(
		zapAdapter.WithAppName(cfg.RelayConsumer.Name),
		zapAdapter.WithLevel(cfg.Log.Level),
	)
	if err != nil {
		panic(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	subscriber, closeSubscriber, err := newSubscriber(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error(ctx, "Erro ao criar subscriber", map[string]interface{}{
			"error": err,
			"relay": cfg.Events.Relay,
		})
		os.Exit(1)
	}
	defer closeSubscriber()

	if err := watermillAdapter.NewRelayConsumer(subscriber, appLogger).Run(ctx, todoDomain.EventNames...); err != nil {
		appLogger.Error(ctx, "Erro ao consumir eventos", map[string]interface{}{
			"error": err,
		})
		os.Exit(1)
	}

	appLogger.Info(context.Background(), "Consumidor encerrado", nil)
}

func newSubscriber(ctx context.Context, cfg *config.Config, appLogger pkgApp.AppLogger) (message.Subscriber, func(), error) {
	switch cfg.Events.Relay {
	case config.RelayRedis:
		client := redisAdapter.NewRedisClient(redisAdapter.ClientConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		subscriber, err := redisAdapter.NewSubscriber(client, cfg.RelayConsumer.Group, cfg.RelayConsumer.Name, appLogger)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return subscriber, func() {
			_ = subscriber.Close()
			_ = client.Close()
		}, nil
	case config.RelayKafka:
		subscriber, err := kafkaAdapter.NewSubscriber(cfg.Kafka.Brokers, cfg.RelayConsumer.Group, cfg.RelayConsumer.Name, appLogger)
		if err != nil {
			return nil, nil, err
		}
		return subscriber, func() { _ = subscriber.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("relay %q has no out-of-process subscriber; use redis or kafka", cfg.Events.Relay)
	}
}
