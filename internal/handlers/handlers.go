// Package handlers contains the HTTP handlers, one struct per screen area.
// Handlers bind and validate forms, call the backend through the domain
// interfaces, and render gomponents pages.
package handlers

import (
	cmp "maragu.dev/gomponents"

	"github.com/labstack/echo/v4"

	"github.com/ScarMeireles/JuntosMais/internal/rendering"
	"github.com/ScarMeireles/JuntosMais/internal/session"
	"github.com/ScarMeireles/JuntosMais/internal/view"
	"github.com/ScarMeireles/JuntosMais/web/src/templates/layouts"
)

// base carries what every handler needs to render a full page.
type base struct {
	sessions *session.Manager
	renderer rendering.Renderer
}

// page wraps content in the shared layout with the current session state and
// any pending flash messages.
func (b base) page(c echo.Context, status int, title string, content cmp.Node) error {
	flashes := view.GetFlashData(c)
	state := b.sessions.Current(c)
	return b.renderer.RenderPage(c, status, layouts.Base(title, flashes, state, content))
}
