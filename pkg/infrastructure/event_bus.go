package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"github.com/mateusmacedo/go-todo/pkg/application"
	"github.com/mateusmacedo/go-todo/pkg/domain"
)

// simpleEventBus entrega eventos em processo. Os manipuladores de um evento rodam
// em sequência, na ordem de registro, na goroutine de quem publica; o primeiro
// erro interrompe o despacho e é devolvido ao publicador.
type simpleEventBus[E domain.Event[T], T any] struct {
	handlers map[string][]application.EventHandler[E, T]
	mu       sync.RWMutex
	logger   application.AppLogger
}

// NewSimpleEventBus cria uma nova instância do SimpleEventBus.
func NewSimpleEventBus[E domain.Event[T], T any](logger application.AppLogger) application.EventBus[E, T] {
	return &simpleEventBus[E, T]{
		handlers: make(map[string][]application.EventHandler[E, T]),
		logger:   logger,
	}
}

// RegisterHandler registra um manipulador para um evento específico.
func (bus *simpleEventBus[E, T]) RegisterHandler(eventName string, handler application.EventHandler[E, T]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[eventName] = append(bus.handlers[eventName], handler)
}

func (bus *simpleEventBus[E, T]) Handlers(eventName string) int {
	bus.mu.RLock()
	defer bus.mu.RUnlock()
	return len(bus.handlers[eventName])
}

// Publish invoca cada manipulador registrado para o nome do evento e só retorna
// depois que todos terminarem ou o primeiro falhar.
func (bus *simpleEventBus[E, T]) Publish(ctx context.Context, event E) error {
	eventName := event.EventName()

	bus.mu.RLock()
	handlers := make([]application.EventHandler[E, T], len(bus.handlers[eventName]))
	copy(handlers, bus.handlers[eventName])
	bus.mu.RUnlock()

	if len(handlers) == 0 {
		application.LogDebug(ctx, bus.logger, "no handler registered for event", map[string]interface{}{
			"event_name": eventName,
		})
		return nil
	}

	for i, handler := range handlers {
		if err := ctx.Err(); err != nil {
			application.LogError(ctx, bus.logger, "event dispatch cancelled", err, map[string]interface{}{
				"event_name":    eventName,
				"handler_index": i,
			})
			return err
		}

		if err := bus.safeHandle(ctx, handler, event); err != nil {
			application.LogError(ctx, bus.logger, "error handling event", err, map[string]interface{}{
				"event_name":    eventName,
				"handler_index": i,
			})
			return fmt.Errorf("event %s: handler %d: %w", eventName, i, err)
		}
	}

	application.LogDebug(ctx, bus.logger, "event published", map[string]interface{}{
		"event_name":    eventName,
		"handler_count": len(handlers),
	})
	return nil
}

func (bus *simpleEventBus[E, T]) safeHandle(ctx context.Context, handler application.EventHandler[E, T], event E) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", application.ErrHandlerPanic, r)
		}
	}()

	return handler.Handle(ctx, event)
}
