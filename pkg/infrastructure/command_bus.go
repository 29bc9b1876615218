package infrastructure

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mateusmacedo/go-todo/pkg/application"
	"github.com/mateusmacedo/go-todo/pkg/domain"
)

const defaultSlowCommandThreshold = 500 * time.Millisecond

type simpleCommandBus[C domain.Command[D], D any] struct {
	handlers      map[string]application.CommandHandler[C, D]
	mu            sync.RWMutex
	logger        application.AppLogger
	slowThreshold time.Duration
}

// CommandBusOption configura o barramento de comandos.
type CommandBusOption func(*commandBusOptions)

type commandBusOptions struct {
	slowThreshold time.Duration
}

// WithSlowThreshold define a partir de quanto tempo um comando é reportado como
// lento. Valores não positivos mantêm o padrão.
func WithSlowThreshold(d time.Duration) CommandBusOption {
	return func(o *commandBusOptions) {
		if d > 0 {
			o.slowThreshold = d
		}
	}
}

func NewSimpleCommandBus[C domain.Command[D], D any](logger application.AppLogger, opts ...CommandBusOption) application.CommandBus[C, D] {
	options := commandBusOptions{slowThreshold: defaultSlowCommandThreshold}
	for _, opt := range opts {
		opt(&options)
	}

	return &simpleCommandBus[C, D]{
		handlers:      make(map[string]application.CommandHandler[C, D]),
		logger:        logger,
		slowThreshold: options.slowThreshold,
	}
}

func (bus *simpleCommandBus[C, D]) RegisterHandler(commandName string, handler application.CommandHandler[C, D]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[commandName] = handler
}

func (bus *simpleCommandBus[C, D]) Dispatch(ctx context.Context, command C) error {
	commandName := command.CommandName()

	bus.mu.RLock()
	handler, found := bus.handlers[commandName]
	bus.mu.RUnlock()

	if !found {
		return fmt.Errorf("command %s: %w", commandName, application.ErrNoHandler)
	}

	start := time.Now()
	err := handler.Handle(ctx, command)
	elapsed := time.Since(start)

	fields := map[string]interface{}{
		"command_name": commandName,
		"elapsed_ms":   elapsed.Milliseconds(),
	}
	if elapsed > bus.slowThreshold {
		application.LogWarn(ctx, bus.logger, "long running command", fields)
	}
	if err != nil {
		return err
	}

	application.LogDebug(ctx, bus.logger, "command handled", fields)
	return nil
}
