package adapter

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/mateusmacedo/go-todo/pkg/application"
)

const relayedEventLogMessage = "relayed event received"

// RelayConsumer assina os tópicos produzidos pelo EventRelay e registra cada
// mensagem recebida antes de confirmá-la.
type RelayConsumer struct {
	subscriber message.Subscriber
	logger     application.AppLogger
}

func NewRelayConsumer(subscriber message.Subscriber, logger application.AppLogger) *RelayConsumer {
	return &RelayConsumer{
		subscriber: subscriber,
		logger:     logger,
	}
}

// Start assina todos os tópicos antes de retornar; a função devolvida bloqueia até
// ctx ser cancelado ou todas as assinaturas serem fechadas.
func (c *RelayConsumer) Start(ctx context.Context, topics ...string) (func(), error) {
	subscriptions := make([]<-chan *message.Message, 0, len(topics))
	for _, topic := range topics {
		messages, err := c.subscriber.Subscribe(ctx, topic)
		if err != nil {
			return nil, fmt.Errorf("subscribe %s: %w", topic, err)
		}
		subscriptions = append(subscriptions, messages)
	}

	var wg sync.WaitGroup
	for i, topic := range topics {
		wg.Add(1)
		go func(topic string, messages <-chan *message.Message) {
			defer wg.Done()
			c.consume(ctx, topic, messages)
		}(topic, subscriptions[i])
	}

	application.LogInfo(ctx, c.logger, "relay consumer started", map[string]interface{}{
		"topics": topics,
	})

	return wg.Wait, nil
}

// Run bloqueia até ctx ser cancelado ou todas as assinaturas serem fechadas.
func (c *RelayConsumer) Run(ctx context.Context, topics ...string) error {
	wait, err := c.Start(ctx, topics...)
	if err != nil {
		return err
	}

	wait()
	return nil
}

func (c *RelayConsumer) consume(ctx context.Context, topic string, messages <-chan *message.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			application.LogInfo(ctx, c.logger, relayedEventLogMessage, map[string]interface{}{
				"topic":       topic,
				"event_name":  msg.Metadata.Get(EventNameMetadataKey),
				"occurred_at": msg.Metadata.Get(OccurredAtMetadataKey),
				"message_id":  msg.UUID,
				"payload":     string(msg.Payload),
			})
			msg.Ack()
		}
	}
}
