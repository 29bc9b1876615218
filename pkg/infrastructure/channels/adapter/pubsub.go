package adapter

import (
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/mateusmacedo/go-todo/pkg/application"
	watermillLogAdapter "github.com/mateusmacedo/go-todo/pkg/infrastructure/watermill/adapter"
)

// NewGoChannelPubSub cria o pub/sub em memória do watermill. Sem assinantes as
// mensagens são descartadas.
func NewGoChannelPubSub(bufferSize int64, logger application.AppLogger) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: bufferSize,
	}, watermillLogAdapter.NewWatermillLoggerAdapter(logger))
}
