package live

import (
	"context"
	"log/slog"

	"github.com/coder/websocket"

	"github.com/ScarMeireles/JuntosMais/internal/hub"
)

// client ties one websocket connection to the hub.
type client struct {
	conn       *websocket.Conn
	hub        *hub.Hub
	subscriber *hub.Subscriber
}

// readPump drains the connection. The progress channel is push-only, so
// inbound payloads are discarded; the read loop exists to notice when the
// browser goes away.
func (c *client) readPump() {
	defer func() {
		c.hub.Unregister <- c.subscriber
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	c.conn.SetReadLimit(512)

	for {
		if _, _, err := c.conn.Read(context.Background()); err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway {
				slog.Debug("Progress socket read ended", "error", err)
			}
			return
		}
	}
}

// writePump forwards fragments from the hub to the connection. It exits when
// the hub closes the subscriber channel.
func (c *client) writePump() {
	defer c.conn.Close(websocket.StatusNormalClosure, "")

	for fragment := range c.subscriber.Send {
		if err := c.conn.Write(context.Background(), websocket.MessageText, fragment); err != nil {
			slog.Debug("Progress socket write failed", "error", err)
			return
		}
	}
}
