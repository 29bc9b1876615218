package adapter

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/mateusmacedo/go-todo/pkg/application"
	"github.com/mateusmacedo/go-todo/pkg/domain"
)

const (
	// EventNameMetadataKey guarda o nome do evento de domínio na mensagem relayada.
	EventNameMetadataKey = "event_name"
	// OccurredAtMetadataKey guarda o instante do relay em RFC3339Nano.
	OccurredAtMetadataKey = "occurred_at"
)

// EventRelay é um manipulador de eventos que repassa cada evento de domínio para
// um publisher do watermill, um tópico por nome de evento. Para o barramento em
// processo ele é só mais um manipulador.
type EventRelay[E domain.Event[D], D any] struct {
	publisher message.Publisher
	logger    application.AppLogger
	now       func() time.Time
}

func NewEventRelay[E domain.Event[D], D any](publisher message.Publisher, logger application.AppLogger) *EventRelay[E, D] {
	return &EventRelay[E, D]{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (r *EventRelay[E, D]) Handle(ctx context.Context, event E) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	eventName := event.EventName()
	payload, err := application.MarshalPayload(event.Payload())
	if err != nil {
		application.LogError(ctx, r.logger, "error marshalling event payload", err, map[string]interface{}{
			"event_name": eventName,
		})
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(EventNameMetadataKey, eventName)
	msg.Metadata.Set(OccurredAtMetadataKey, r.now().UTC().Format(time.RFC3339Nano))
	msg.SetContext(ctx)

	if err := r.publisher.Publish(eventName, msg); err != nil {
		application.LogError(ctx, r.logger, "error relaying event", err, map[string]interface{}{
			"event_name": eventName,
		})
		return err
	}

	application.LogDebug(ctx, r.logger, "event relayed", map[string]interface{}{
		"event_name": eventName,
		"message_id": msg.UUID,
	})
	return nil
}

// RegisterOn registra o relay no barramento para cada nome de evento informado.
func (r *EventRelay[E, D]) RegisterOn(bus application.EventBus[E, D], eventNames ...string) {
	for _, name := range eventNames {
		bus.RegisterHandler(name, r)
	}
}
