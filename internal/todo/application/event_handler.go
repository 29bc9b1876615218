package application

import (
	"context"

	"github.com/mateusmacedo/go-todo/internal/todo/domain"
	pkgApp "github.com/mateusmacedo/go-todo/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-todo/pkg/domain"
)

const domainEventLogMessage = "Domain Event"

func logDomainEvent(ctx context.Context, logger pkgApp.AppLogger, event pkgDomain.Event[domain.TodoItem]) {
	pkgApp.LogInfo(ctx, logger, domainEventLogMessage, map[string]interface{}{
		"DomainEvent":  event.EventName(),
		"todo_item_id": event.Payload().ID,
	})
}

type todoItemCreatedEventHandler struct {
	logger pkgApp.AppLogger
}

func (h *todoItemCreatedEventHandler) Handle(ctx context.Context, event pkgDomain.Event[domain.TodoItem]) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	logDomainEvent(ctx, h.logger, event)
	return nil
}

// NewTodoItemCreatedEventHandler deve ser registrado para TodoItemCreatedEvent.
func NewTodoItemCreatedEventHandler(logger pkgApp.AppLogger) pkgApp.EventHandler[pkgDomain.Event[domain.TodoItem], domain.TodoItem] {
	return &todoItemCreatedEventHandler{
		logger: logger,
	}
}

type todoItemCompletedEventHandler struct {
	logger pkgApp.AppLogger
}

func (h *todoItemCompletedEventHandler) Handle(ctx context.Context, event pkgDomain.Event[domain.TodoItem]) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	logDomainEvent(ctx, h.logger, event)
	return nil
}

// NewTodoItemCompletedEventHandler deve ser registrado para TodoItemCompletedEvent.
func NewTodoItemCompletedEventHandler(logger pkgApp.AppLogger) pkgApp.EventHandler[pkgDomain.Event[domain.TodoItem], domain.TodoItem] {
	return &todoItemCompletedEventHandler{
		logger: logger,
	}
}
