package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RateLimiter protects the auth and donation POSTs from hammering. An
// in-memory store at 10 requests per second per IP is enough for a
// single-instance deployment.
func RateLimiter() echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStore(10),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.String(http.StatusTooManyRequests, "Muitas tentativas. Aguarde um instante.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
