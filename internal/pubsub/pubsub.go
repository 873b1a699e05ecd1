// Package pubsub is the in-process event bus. Donation submissions publish
// here and the live progress layer subscribes; neither side knows about the
// other.
package pubsub

import "context"

// Message is what travels on the bus.
type Message struct {
	// Topic identifies the channel, e.g. "donations.created".
	Topic string
	// Payload is the raw event data, usually JSON.
	Payload []byte
	// Metadata carries arbitrary key/value context.
	Metadata map[string]string
}

// Handler processes one received message. A non-nil error nacks it.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber receives messages from the bus. Subscribe is non-blocking; the
// handler runs until ctx is canceled.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
