package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	appsession "github.com/ScarMeireles/JuntosMais/internal/session"
)

// UserContextKey is where the authenticated user is stored on the echo
// context for downstream handlers.
const UserContextKey = "user"

// RequireAuth gates routes that need an authenticated session. Anonymous
// visitors are redirected to the login page.
func RequireAuth(sessions *appsession.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := sessions.Current(c)
			if !state.Authenticated {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			c.Set(UserContextKey, state.User)
			return next(c)
		}
	}
}
