package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// GoChannelBus implements Publisher and Subscriber on watermill's in-memory
// GoChannel transport. One process, one bus.
type GoChannelBus struct {
	channel *gochannel.GoChannel
}

// NewGoChannelBus creates the bus.
func NewGoChannelBus() *GoChannelBus {
	logger := watermill.NewStdLogger(false, false)
	return &GoChannelBus{
		channel: gochannel.NewGoChannel(gochannel.Config{}, logger),
	}
}

// Publish implements Publisher.
func (b *GoChannelBus) Publish(ctx context.Context, msg Message) error {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}
	return b.channel.Publish(msg.Topic, wmMsg)
}

// Subscribe implements Subscriber. Messages are acked on handler success and
// nacked (and logged) on failure; the in-memory transport does not redeliver.
func (b *GoChannelBus) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := b.channel.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wmMsg := range messages {
			msg := Message{
				Topic:    topic,
				Payload:  wmMsg.Payload,
				Metadata: map[string]string(wmMsg.Metadata),
			}
			if err := handler(ctx, msg); err != nil {
				slog.Error("Event handler failed", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
				wmMsg.Nack()
				continue
			}
			wmMsg.Ack()
		}
	}()
	return nil
}

// Close shuts the bus down, ending all subscriptions.
func (b *GoChannelBus) Close() error {
	return b.channel.Close()
}
