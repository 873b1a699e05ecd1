// Package server assembles the application: configuration, backend client,
// session store, event bus, and the echo instance with all routes.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"

	"github.com/ScarMeireles/JuntosMais/internal/api"
	"github.com/ScarMeireles/JuntosMais/internal/catalog"
	"github.com/ScarMeireles/JuntosMais/internal/config"
	"github.com/ScarMeireles/JuntosMais/internal/handlers"
	"github.com/ScarMeireles/JuntosMais/internal/hub"
	"github.com/ScarMeireles/JuntosMais/internal/live"
	appmw "github.com/ScarMeireles/JuntosMais/internal/middleware"
	"github.com/ScarMeireles/JuntosMais/internal/pubsub"
	"github.com/ScarMeireles/JuntosMais/internal/rendering"
	appsession "github.com/ScarMeireles/JuntosMais/internal/session"
	"github.com/ScarMeireles/JuntosMais/internal/storage"
	"github.com/ScarMeireles/JuntosMais/internal/validation"
)

// Server is the assembled application.
type Server struct {
	echo     *echo.Echo
	cfg      config.Provider
	hub      *hub.Hub
	bus      *pubsub.GoChannelBus
	fallback *catalog.Fallback
	notifier *live.Notifier
}

// New wires the application together. It does not start listening; call
// Start for that.
func New(cfg config.Provider) (*Server, error) {
	client, err := api.New(&http.Client{Timeout: 15 * time.Second}, cfg.GetAPIBaseURL())
	if err != nil {
		return nil, err
	}
	sessionManager := appsession.NewManager()
	validator := validation.New()
	renderer := rendering.NewUniversalRenderer()

	fs := afero.NewOsFs()
	avatars := storage.NewAvatarStore(fs, cfg.GetDataDir())
	fallback, err := catalog.NewFallback(fs, cfg.GetCatalogPath())
	if err != nil {
		return nil, fmt.Errorf("loading offline catalog: %w", err)
	}

	progressHub := hub.NewHub()
	bus := pubsub.NewGoChannelBus()
	notifier := live.NewNotifier(client, renderer, progressHub)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = validator

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(appmw.Logger)
	e.Use(echosession.Middleware(sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))))

	registerRoutes(e, routeDeps{
		sessions:  sessionManager,
		home:      handlers.NewHomeHandler(sessionManager, renderer, client, fallback),
		auth:      handlers.NewAuthHandler(sessionManager, renderer, client, validator),
		donations: handlers.NewDonationHandler(sessionManager, renderer, client, client, validator, bus),
		campaigns: handlers.NewCampaignHandler(sessionManager, renderer, client, validator),
		settings:  handlers.NewSettingsHandler(sessionManager, renderer, validator, avatars),
		progress:  live.NewHandler(progressHub),
	})

	return &Server{
		echo:     e,
		cfg:      cfg,
		hub:      progressHub,
		bus:      bus,
		fallback: fallback,
		notifier: notifier,
	}, nil
}

// Echo exposes the underlying echo instance for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
