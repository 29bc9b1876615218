package application

import (
	"context"

	"github.com/mateusmacedo/go-todo/pkg/domain"
)

// EventHandler processa um evento de domínio. Deve retornar nil para entradas
// normais; o contexto carrega o sinal de cancelamento do publicador.
type EventHandler[E domain.Event[T], T any] interface {
	Handle(ctx context.Context, event E) error
}

// EventHandlerFunc adapta uma função comum a EventHandler.
type EventHandlerFunc[E domain.Event[T], T any] func(ctx context.Context, event E) error

func (f EventHandlerFunc[E, T]) Handle(ctx context.Context, event E) error {
	return f(ctx, event)
}

// EventBus entrega cada evento publicado a todos os manipuladores registrados
// para o nome do evento antes de retornar.
type EventBus[E domain.Event[D], D any] interface {
	RegisterHandler(eventName string, handler EventHandler[E, D])
	Publish(ctx context.Context, event E) error
	Handlers(eventName string) int
}
