package infrastructure

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/mateusmacedo/go-todo/pkg/application"
	"github.com/mateusmacedo/go-todo/pkg/domain"
	zapAdapter "github.com/mateusmacedo/go-todo/pkg/infrastructure/zaplogger/adapter"
)

type testEvent struct {
	name string
	id   int
}

func (e testEvent) EventName() string { return e.name }
func (e testEvent) Payload() int      { return e.id }

type recordingHandler struct {
	calls []int
	order *[]string
	label string
	err   error
}

func (h *recordingHandler) Handle(_ context.Context, event domain.Event[int]) error {
	h.calls = append(h.calls, event.Payload())
	if h.order != nil {
		*h.order = append(*h.order, h.label)
	}
	return h.err
}

func newEventBus(t *testing.T) application.EventBus[domain.Event[int], int] {
	t.Helper()
	logger, _ := zapAdapter.NewObservedAppLogger(zapcore.DebugLevel)
	return NewSimpleEventBus[domain.Event[int], int](logger)
}

func TestSimpleEventBusPublish(t *testing.T) {
	t.Run("delivers once to every handler of the exact name", func(t *testing.T) {
		bus := newEventBus(t)
		first := &recordingHandler{}
		second := &recordingHandler{}
		other := &recordingHandler{}

		bus.RegisterHandler("TodoItemCreatedEvent", first)
		bus.RegisterHandler("TodoItemCreatedEvent", second)
		bus.RegisterHandler("TodoItemDeletedEvent", other)

		err := bus.Publish(context.Background(), testEvent{name: "TodoItemCreatedEvent", id: 42})
		require.NoError(t, err)

		assert.Equal(t, []int{42}, first.calls)
		assert.Equal(t, []int{42}, second.calls)
		assert.Empty(t, other.calls)
	})

	t.Run("runs handlers in registration order", func(t *testing.T) {
		bus := newEventBus(t)
		var order []string
		for _, label := range []string{"a", "b", "c"} {
			bus.RegisterHandler("Ordered", &recordingHandler{order: &order, label: label})
		}

		require.NoError(t, bus.Publish(context.Background(), testEvent{name: "Ordered"}))
		assert.Equal(t, []string{"a", "b", "c"}, order)
	})

	t.Run("no handlers is a silent success", func(t *testing.T) {
		bus := newEventBus(t)
		assert.NoError(t, bus.Publish(context.Background(), testEvent{name: "Nobody"}))
		assert.Equal(t, 0, bus.Handlers("Nobody"))
	})

	t.Run("first failure aborts remaining handlers", func(t *testing.T) {
		bus := newEventBus(t)
		boom := errors.New("boom")
		failing := &recordingHandler{err: boom}
		after := &recordingHandler{}

		bus.RegisterHandler("Failing", failing)
		bus.RegisterHandler("Failing", after)

		err := bus.Publish(context.Background(), testEvent{name: "Failing", id: 1})
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "Failing")
		assert.Len(t, failing.calls, 1)
		assert.Empty(t, after.calls)
	})

	t.Run("handler panic becomes an error", func(t *testing.T) {
		bus := newEventBus(t)
		bus.RegisterHandler("Panicky", application.EventHandlerFunc[domain.Event[int], int](
			func(context.Context, domain.Event[int]) error { panic("kaboom") },
		))

		err := bus.Publish(context.Background(), testEvent{name: "Panicky"})
		require.Error(t, err)
		assert.ErrorIs(t, err, application.ErrHandlerPanic)
		assert.Contains(t, err.Error(), "kaboom")
	})

	t.Run("cancelled context stops dispatch", func(t *testing.T) {
		bus := newEventBus(t)
		handler := &recordingHandler{}
		bus.RegisterHandler("Cancelled", handler)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := bus.Publish(ctx, testEvent{name: "Cancelled"})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, handler.calls)
	})

	t.Run("handler work is finished when publish returns", func(t *testing.T) {
		bus := newEventBus(t)
		done := false
		bus.RegisterHandler("Slow", application.EventHandlerFunc[domain.Event[int], int](
			func(context.Context, domain.Event[int]) error {
				time.Sleep(10 * time.Millisecond)
				done = true
				return nil
			},
		))

		require.NoError(t, bus.Publish(context.Background(), testEvent{name: "Slow"}))
		assert.True(t, done)
	})
}

type testCommand struct{ name string }

func (c testCommand) CommandName() string { return c.name }
func (c testCommand) Payload() string     { return "payload" }

type commandHandlerFunc func(ctx context.Context, cmd domain.Command[string]) error

func (f commandHandlerFunc) Handle(ctx context.Context, cmd domain.Command[string]) error {
	return f(ctx, cmd)
}

func TestSimpleCommandBus(t *testing.T) {
	logger, logs := zapAdapter.NewObservedAppLogger(zapcore.DebugLevel)

	t.Run("dispatches to the registered handler", func(t *testing.T) {
		bus := NewSimpleCommandBus[domain.Command[string], string](logger)
		var got string
		bus.RegisterHandler("Do", commandHandlerFunc(func(_ context.Context, cmd domain.Command[string]) error {
			got = cmd.Payload()
			return nil
		}))

		require.NoError(t, bus.Dispatch(context.Background(), testCommand{name: "Do"}))
		assert.Equal(t, "payload", got)
	})

	t.Run("missing handler", func(t *testing.T) {
		bus := NewSimpleCommandBus[domain.Command[string], string](logger)
		err := bus.Dispatch(context.Background(), testCommand{name: "Missing"})
		assert.ErrorIs(t, err, application.ErrNoHandler)
	})

	t.Run("propagates handler error", func(t *testing.T) {
		bus := NewSimpleCommandBus[domain.Command[string], string](logger)
		boom := errors.New("boom")
		bus.RegisterHandler("Fail", commandHandlerFunc(func(context.Context, domain.Command[string]) error {
			return boom
		}))
		assert.ErrorIs(t, bus.Dispatch(context.Background(), testCommand{name: "Fail"}), boom)
	})

	t.Run("warns about slow commands", func(t *testing.T) {
		bus := NewSimpleCommandBus[domain.Command[string], string](logger, WithSlowThreshold(time.Millisecond))
		bus.RegisterHandler("Slow", commandHandlerFunc(func(context.Context, domain.Command[string]) error {
			time.Sleep(5 * time.Millisecond)
			return nil
		}))

		require.NoError(t, bus.Dispatch(context.Background(), testCommand{name: "Slow"}))
		assert.Equal(t, 1, logs.FilterMessage("long running command").Len())
	})
}

type testQuery struct{ name string }

func (q testQuery) QueryName() string { return q.name }
func (q testQuery) Payload() int      { return 21 }

type queryHandlerFunc func(ctx context.Context, q domain.Query[int]) (int, error)

func (f queryHandlerFunc) Handle(ctx context.Context, q domain.Query[int]) (int, error) {
	return f(ctx, q)
}

func TestSimpleQueryBus(t *testing.T) {
	logger, _ := zapAdapter.NewObservedAppLogger(zapcore.DebugLevel)

	t.Run("returns the handler result", func(t *testing.T) {
		bus := NewSimpleQueryBus[domain.Query[int], int, int](logger)
		bus.RegisterHandler("Double", queryHandlerFunc(func(_ context.Context, q domain.Query[int]) (int, error) {
			return q.Payload() * 2, nil
		}))

		result, err := bus.Dispatch(context.Background(), testQuery{name: "Double"})
		require.NoError(t, err)
		assert.Equal(t, 42, result)
	})

	t.Run("missing handler", func(t *testing.T) {
		bus := NewSimpleQueryBus[domain.Query[int], int, int](logger)
		_, err := bus.Dispatch(context.Background(), testQuery{name: "Missing"})
		assert.ErrorIs(t, err, application.ErrNoHandler)
	})

	t.Run("handler panic becomes an error", func(t *testing.T) {
		bus := NewSimpleQueryBus[domain.Query[int], int, int](logger)
		bus.RegisterHandler("Broken", queryHandlerFunc(func(context.Context, domain.Query[int]) (int, error) {
			panic("repo bug")
		}))

		_, err := bus.Dispatch(context.Background(), testQuery{name: "Broken"})
		assert.ErrorIs(t, err, application.ErrHandlerPanic)
		assert.Contains(t, err.Error(), "repo bug")
	})

	t.Run("honors context deadline", func(t *testing.T) {
		bus := NewSimpleQueryBus[domain.Query[int], int, int](logger)
		bus.RegisterHandler("Block", queryHandlerFunc(func(ctx context.Context, _ domain.Query[int]) (int, error) {
			<-ctx.Done()
			time.Sleep(5 * time.Millisecond)
			return 0, nil
		}))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := bus.Dispatch(ctx, testQuery{name: "Block"})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
