package application

import "errors"

var (
	// ErrNoHandler é retornado quando um comando ou consulta não tem manipulador registrado.
	ErrNoHandler = errors.New("no handler registered")
	// ErrHandlerPanic envolve um panic recuperado durante a execução de um manipulador.
	ErrHandlerPanic = errors.New("handler panicked")
)
