// Package session holds the visitor's authentication state in a cookie
// session. The backend issues the token; this package only persists it next
// to the user record and keeps the two in lockstep.
package session

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
)

const (
	// Name is the cookie session holding the auth state.
	Name = "juntosmais-session"

	keyToken = "auth_token"
	keyUser  = "user_data"
)

// State is what the rest of the application sees: whether the visitor is
// authenticated and, if so, who they are.
type State struct {
	Authenticated bool
	User          *domain.User
}

// Manager reads and writes the auth session. The invariant it protects:
// token and user record are always written and cleared together, so there
// is never a half-authenticated session.
type Manager struct{}

// NewManager creates a Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current loads the session state. A malformed stored user record or an
// expired token is treated as logged out and the stale keys are cleared;
// parse failures are never surfaced to the visitor.
func (m *Manager) Current(c echo.Context) State {
	sess, err := session.Get(Name, c)
	if err != nil {
		return State{}
	}

	token, _ := sess.Values[keyToken].(string)
	rawUser, _ := sess.Values[keyUser].(string)
	if token == "" || rawUser == "" {
		return State{}
	}

	if tokenExpired(token, time.Now()) {
		slog.Info("Stored token expired, clearing session")
		m.clear(c, sess)
		return State{}
	}

	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		slog.Warn("Stored user record unreadable, clearing session", "error", err)
		m.clear(c, sess)
		return State{}
	}

	return State{Authenticated: true, User: &user}
}

// Token returns the bearer token of the current session, or "" when the
// visitor is anonymous.
func (m *Manager) Token(c echo.Context) string {
	if !m.Current(c).Authenticated {
		return ""
	}
	sess, err := session.Get(Name, c)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[keyToken].(string)
	return token
}

// SignIn persists the token and user record in one save.
func (m *Manager) SignIn(c echo.Context, token string, user domain.User) error {
	sess, err := session.Get(Name, c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	sess.Values[keyToken] = token
	sess.Values[keyUser] = string(raw)
	return sess.Save(c.Request(), c.Response())
}

// SignOut clears the token and user record together.
func (m *Manager) SignOut(c echo.Context) error {
	sess, err := session.Get(Name, c)
	if err != nil {
		return err
	}
	return m.clear(c, sess)
}

// UpdateUser rewrites the stored user record of an authenticated session.
// This is a local-only mutation: the backend is not called, so the change
// does not survive a backend-side refresh (the original behaves the same
// way on the settings screen).
func (m *Manager) UpdateUser(c echo.Context, user domain.User) error {
	sess, err := session.Get(Name, c)
	if err != nil {
		return err
	}
	if token, _ := sess.Values[keyToken].(string); token == "" {
		return domain.ErrInvalidCredentials
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	sess.Values[keyUser] = string(raw)
	return sess.Save(c.Request(), c.Response())
}

func (m *Manager) clear(c echo.Context, sess *sessions.Session) error {
	delete(sess.Values, keyToken)
	delete(sess.Values, keyUser)
	return sess.Save(c.Request(), c.Response())
}

// tokenExpired makes a best-effort check of a JWT exp claim. Tokens that do
// not look like JWTs, or whose payload cannot be decoded, are treated as
// opaque and trusted until the backend rejects them.
func tokenExpired(token string, now time.Time) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}
	var claims struct {
		Exp float64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil || claims.Exp <= 0 {
		return false
	}
	return now.After(time.Unix(int64(claims.Exp), 0))
}
