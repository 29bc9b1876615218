package adapter

import (
	"github.com/Shopify/sarama"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"

	"github.com/mateusmacedo/go-todo/pkg/application"
	watermillLogAdapter "github.com/mateusmacedo/go-todo/pkg/infrastructure/watermill/adapter"
)

func NewPublisher(brokers []string, logger application.AppLogger) (*kafka.Publisher, error) {
	return kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:   brokers,
		Marshaler: kafka.DefaultMarshaler{},
	}, watermillLogAdapter.NewWatermillLoggerAdapter(logger))
}

// SubscriberSaramaConfig lê os tópicos desde o início quando o grupo ainda não tem offset.
func SubscriberSaramaConfig(clientID string) *sarama.Config {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V1_0_0_0
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.ClientID = clientID
	return saramaConfig
}

func NewSubscriber(brokers []string, consumerGroup, clientID string, logger application.AppLogger) (*kafka.Subscriber, error) {
	return kafka.NewSubscriber(kafka.SubscriberConfig{
		Brokers:               brokers,
		Unmarshaler:           kafka.DefaultMarshaler{},
		ConsumerGroup:         consumerGroup,
		OverwriteSaramaConfig: SubscriberSaramaConfig(clientID),
		InitializeTopicDetails: &sarama.TopicDetail{
			NumPartitions:     1,
			ReplicationFactor: 1,
		},
	}, watermillLogAdapter.NewWatermillLoggerAdapter(logger))
}
