package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/mateusmacedo/go-todo/internal/todo/domain"
	pkgDomain "github.com/mateusmacedo/go-todo/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-todo/pkg/infrastructure"
	zapAdapter "github.com/mateusmacedo/go-todo/pkg/infrastructure/zaplogger/adapter"
)

func TestTodoItemCreatedEventHandler(t *testing.T) {
	logger, logs := zapAdapter.NewObservedAppLogger(zapcore.InfoLevel)
	handler := NewTodoItemCreatedEventHandler(logger)

	err := handler.Handle(context.Background(), domain.NewTodoItemCreatedEvent(domain.TodoItem{ID: "42"}))
	require.NoError(t, err)

	entries := logs.FilterMessage(domainEventLogMessage).AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "TodoItemCreatedEvent", entries[0].ContextMap()["DomainEvent"])
	assert.Equal(t, "42", entries[0].ContextMap()["todo_item_id"])
}

func TestTodoItemCreatedEventHandlerCancelled(t *testing.T) {
	logger, logs := zapAdapter.NewObservedAppLogger(zapcore.InfoLevel)
	handler := NewTodoItemCreatedEventHandler(logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.Handle(ctx, domain.NewTodoItemCreatedEvent(domain.TodoItem{ID: "42"}))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, logs.Len())
}

func TestPublishTodoItemCreatedEventThroughBus(t *testing.T) {
	logger, logs := zapAdapter.NewObservedAppLogger(zapcore.InfoLevel)
	bus := pkgInfra.NewSimpleEventBus[pkgDomain.Event[domain.TodoItem], domain.TodoItem](logger)
	bus.RegisterHandler(domain.TodoItemCreatedEventName, NewTodoItemCreatedEventHandler(logger))
	bus.RegisterHandler(domain.TodoItemCompletedEventName, NewTodoItemCompletedEventHandler(logger))

	err := bus.Publish(context.Background(), domain.NewTodoItemCreatedEvent(domain.TodoItem{ID: "42"}))
	require.NoError(t, err)

	entries := logs.FilterMessage(domainEventLogMessage).AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "TodoItemCreatedEvent", entries[0].ContextMap()["DomainEvent"])
}
