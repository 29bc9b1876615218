package adapter

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/redis/go-redis/v9"

	"github.com/mateusmacedo/go-todo/pkg/application"
	watermillLogAdapter "github.com/mateusmacedo/go-todo/pkg/infrastructure/watermill/adapter"
)

// NewPublisher verifica a conexão com o redis antes de criar o publisher de streams.
func NewPublisher(ctx context.Context, client redis.UniversalClient, logger application.AppLogger) (*redisstream.Publisher, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: client,
	}, watermillLogAdapter.NewWatermillLoggerAdapter(logger))
}

func NewSubscriber(client redis.UniversalClient, consumerGroup, consumer string, logger application.AppLogger) (*redisstream.Subscriber, error) {
	return redisstream.NewSubscriber(redisstream.SubscriberConfig{
		Client:        client,
		ConsumerGroup: consumerGroup,
		Consumer:      consumer,
	}, watermillLogAdapter.NewWatermillLoggerAdapter(logger))
}
