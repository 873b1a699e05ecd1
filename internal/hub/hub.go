// Package hub fans rendered HTML fragments out to connected browsers.
package hub

import "log/slog"

// Subscriber is one connected client. The hub writes outbound fragments to
// Send; the websocket layer drains it.
type Subscriber struct {
	Send chan []byte
}

// Hub maintains the set of active subscribers and broadcasts fragments to
// all of them.
type Hub struct {
	subscribers map[*Subscriber]bool

	// Broadcast accepts a fragment to deliver to every subscriber.
	Broadcast chan []byte
	// Register and Unregister add and remove subscribers.
	Register   chan *Subscriber
	Unregister chan *Subscriber

	done chan struct{}
}

// NewHub creates a Hub. Call Run in its own goroutine before using it.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*Subscriber]bool),
		Broadcast:   make(chan []byte),
		Register:    make(chan *Subscriber),
		Unregister:  make(chan *Subscriber),
		done:        make(chan struct{}),
	}
}

// Run processes registrations and broadcasts until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			for sub := range h.subscribers {
				close(sub.Send)
				delete(h.subscribers, sub)
			}
			return

		case sub := <-h.Register:
			h.subscribers[sub] = true
			slog.Debug("Subscriber registered", "total", len(h.subscribers))

		case sub := <-h.Unregister:
			if _, ok := h.subscribers[sub]; ok {
				delete(h.subscribers, sub)
				close(sub.Send)
				slog.Debug("Subscriber unregistered", "total", len(h.subscribers))
			}

		case fragment := <-h.Broadcast:
			for sub := range h.subscribers {
				// Non-blocking send: a full buffer means the client is
				// lagging or gone, so it gets dropped.
				select {
				case sub.Send <- fragment:
				default:
					close(sub.Send)
					delete(h.subscribers, sub)
					slog.Warn("Dropping slow subscriber", "total", len(h.subscribers))
				}
			}
		}
	}
}

// Stop ends the Run loop and closes every subscriber channel.
func (h *Hub) Stop() {
	close(h.done)
}
