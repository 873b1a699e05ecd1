package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ScarMeireles/JuntosMais/internal/handlers"
	"github.com/ScarMeireles/JuntosMais/internal/live"
	appmw "github.com/ScarMeireles/JuntosMais/internal/middleware"
	appsession "github.com/ScarMeireles/JuntosMais/internal/session"
)

type routeDeps struct {
	sessions  *appsession.Manager
	home      *handlers.HomeHandler
	auth      *handlers.AuthHandler
	donations *handlers.DonationHandler
	campaigns *handlers.CampaignHandler
	settings  *handlers.SettingsHandler
	progress  *live.Handler
}

func registerRoutes(e *echo.Echo, deps routeDeps) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.Static("/static", "web/static")

	limited := appmw.RateLimiter()

	e.GET("/", deps.home.HomeGet)

	e.GET("/login", deps.auth.LoginGet)
	e.POST("/login", deps.auth.LoginPost, limited)
	e.GET("/cadastro", deps.auth.RegisterGet)
	e.POST("/cadastro", deps.auth.RegisterPost, limited)
	e.GET("/logout", deps.auth.Logout)

	e.GET("/campanhas/:id/doar", deps.donations.FormGet)
	e.POST("/campanhas/:id/doar", deps.donations.SubmitPost, limited)
	e.POST("/doacoes/:id/confirmar", deps.donations.ConfirmPost)
	e.POST("/doacoes/:id/cancelar", deps.donations.CancelPost)

	e.GET("/ws/progresso", deps.progress.ServeWS)

	authed := e.Group("", appmw.RequireAuth(deps.sessions))
	authed.GET("/campanhas/nova", deps.campaigns.NewGet)
	authed.POST("/campanhas/nova", deps.campaigns.CreatePost)
	authed.GET("/configuracoes", deps.settings.SettingsGet)
	authed.POST("/configuracoes", deps.settings.SettingsPost)
	authed.GET("/configuracoes/avatar", deps.settings.AvatarGet)
	authed.POST("/configuracoes/avatar", deps.settings.AvatarPost)
	authed.POST("/configuracoes/avatar/remover", deps.settings.AvatarDeletePost)
}
