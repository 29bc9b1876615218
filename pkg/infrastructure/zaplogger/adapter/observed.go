package adapter

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mateusmacedo/go-todo/pkg/application"
)

// NewObservedAppLogger grava as entradas em memória a partir de level. Usado
// pelos testes que precisam inspecionar o que foi logado.
func NewObservedAppLogger(level zapcore.Level) (application.AppLogger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewZapAppLoggerFrom(zap.New(core)), logs
}
