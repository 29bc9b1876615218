package adapter

import (
	"testing"

	"github.com/Shopify/sarama"
	"github.com/stretchr/testify/assert"
)

func TestSubscriberSaramaConfig(t *testing.T) {
	cfg := SubscriberSaramaConfig("todo-relay")

	assert.Equal(t, "todo-relay", cfg.ClientID)
	assert.Equal(t, sarama.OffsetOldest, cfg.Consumer.Offsets.Initial)
	assert.True(t, cfg.Consumer.Return.Errors)
	assert.NoError(t, cfg.Validate())
}
