package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducerReusesWriterPerTopic(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	defer p.Close()

	w1 := p.writerFor(TopicEvents)
	w2 := p.writerFor(TopicEvents)
	w3 := p.writerFor(TopicAlerts)

	assert.Same(t, w1, w2)
	assert.NotSame(t, w1, w3)
}

func TestResolveSASLDefaultsToPlain(t *testing.T) {
	m := resolveSASL(Config{SASLUsername: "u", SASLPassword: "p"})
	require.NotNil(t, m)
	assert.Equal(t, "PLAIN", m.Name())
}

func TestResolveSASLUnknownMechanism(t *testing.T) {
	assert.Nil(t, resolveSASL(Config{SASLMechanism: "GSSAPI"}))
}
