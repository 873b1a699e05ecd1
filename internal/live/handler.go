package live

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"

	"github.com/ScarMeireles/JuntosMais/internal/hub"
)

// Handler upgrades progress socket requests.
type Handler struct {
	hub *hub.Hub
}

// NewHandler creates a Handler.
func NewHandler(h *hub.Hub) *Handler {
	return &Handler{hub: h}
}

// ServeWS upgrades the request and registers the connection with the hub.
func (h *Handler) ServeWS(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true, // In production, check origin.
	})
	if err != nil {
		slog.Error("Failed to upgrade progress WebSocket", "error", err)
		return c.String(http.StatusInternalServerError, "Failed to upgrade to WebSocket")
	}

	subscriber := &hub.Subscriber{Send: make(chan []byte, 16)}
	h.hub.Register <- subscriber

	cl := &client{conn: conn, hub: h.hub, subscriber: subscriber}
	go cl.writePump()
	go cl.readPump()

	return nil
}
