// Package kafka wraps segmentio/kafka-go with the small producer/consumer
// surface the Krishi Connect services need.
package kafka

// Topic names shared by producers and consumers.
const (
	TopicEvents = "krishi.events"
	TopicAlerts = "krishi.alerts"
)

// Config holds Kafka connection parameters.
type Config struct {
	ConsumerGroup string

	// SASL configuration. Mechanism is "PLAIN", "SCRAM-SHA-256" or
	// "SCRAM-SHA-512".
	SASLMechanism string
	SASLUsername  string
	SASLPassword  string

	Brokers []string

	TLS         bool
	SASLEnabled bool
}
