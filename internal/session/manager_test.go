package session_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsession "github.com/ScarMeireles/JuntosMais/internal/session"
	"github.com/ScarMeireles/JuntosMais/internal/domain"
)

const testSecret = "a-very-secret-key-for-testing-!"

// newContext builds an echo context with the session middleware applied,
// optionally carrying cookies from a previous response.
func newContext(t *testing.T, cookies []*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	store := sessions.NewCookieStore([]byte(testSecret))
	handler := echosession.Middleware(store)(func(c echo.Context) error { return nil })
	require.NoError(t, handler(c))
	return c, rec
}

func TestSignInThenCurrent(t *testing.T) {
	c, rec := newContext(t, nil)
	m := appsession.NewManager()

	user := domain.User{ID: 9, Email: "ana@example.com", Name: "Ana"}
	require.NoError(t, m.SignIn(c, "tok-1", user))

	// Replay the cookie into a fresh request, like a browser would.
	c2, _ := newContext(t, rec.Result().Cookies())
	state := m.Current(c2)
	require.True(t, state.Authenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, user, *state.User)
	assert.Equal(t, "tok-1", m.Token(c2))
}

func TestSignOutClearsBothKeys(t *testing.T) {
	c, rec := newContext(t, nil)
	m := appsession.NewManager()
	require.NoError(t, m.SignIn(c, "tok-1", domain.User{ID: 1, Email: "a@b.c"}))

	c2, rec2 := newContext(t, rec.Result().Cookies())
	require.NoError(t, m.SignOut(c2))

	c3, _ := newContext(t, rec2.Result().Cookies())
	state := m.Current(c3)
	assert.False(t, state.Authenticated)
	assert.Nil(t, state.User)
	assert.Empty(t, m.Token(c3))
}

func TestAnonymousByDefault(t *testing.T) {
	c, _ := newContext(t, nil)
	m := appsession.NewManager()
	state := m.Current(c)
	assert.False(t, state.Authenticated)
	assert.Empty(t, m.Token(c))
}

func TestUpdateUserRewritesRecord(t *testing.T) {
	c, rec := newContext(t, nil)
	m := appsession.NewManager()
	require.NoError(t, m.SignIn(c, "tok-1", domain.User{ID: 9, Email: "ana@example.com", Name: "Ana"}))

	c2, rec2 := newContext(t, rec.Result().Cookies())
	require.NoError(t, m.UpdateUser(c2, domain.User{ID: 9, Email: "ana@example.com", Name: "Ana Paula"}))

	c3, _ := newContext(t, rec2.Result().Cookies())
	state := m.Current(c3)
	require.True(t, state.Authenticated)
	assert.Equal(t, "Ana Paula", state.User.Name)
}

func TestUpdateUserRequiresSession(t *testing.T) {
	c, _ := newContext(t, nil)
	m := appsession.NewManager()
	err := m.UpdateUser(c, domain.User{ID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestCorruptUserRecordTreatedAsLoggedOut(t *testing.T) {
	// Plant a valid token next to an unreadable user record, the way a
	// tampered or truncated cookie would arrive.
	c, rec := newContext(t, nil)
	sess, err := echosession.Get(appsession.Name, c)
	require.NoError(t, err)
	sess.Values["auth_token"] = "tok-1"
	sess.Values["user_data"] = "{not-json"
	require.NoError(t, sess.Save(c.Request(), c.Response()))

	m := appsession.NewManager()
	c2, rec2 := newContext(t, rec.Result().Cookies())
	state := m.Current(c2)
	assert.False(t, state.Authenticated)
	assert.Nil(t, state.User)
	assert.Empty(t, m.Token(c2))

	// Both keys were cleared, not just ignored.
	c3, _ := newContext(t, rec2.Result().Cookies())
	sess3, err := echosession.Get(appsession.Name, c3)
	require.NoError(t, err)
	assert.NotContains(t, sess3.Values, "auth_token")
	assert.NotContains(t, sess3.Values, "user_data")
}

func TestExpiredJWTTreatedAsLoggedOut(t *testing.T) {
	claims, err := json.Marshal(map[string]any{
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	require.NoError(t, err)
	expired := "eyJhbGciOiJIUzI1NiJ9." + base64.RawURLEncoding.EncodeToString(claims) + ".sig"

	c, rec := newContext(t, nil)
	m := appsession.NewManager()
	require.NoError(t, m.SignIn(c, expired, domain.User{ID: 1, Email: "a@b.c"}))

	c2, _ := newContext(t, rec.Result().Cookies())
	assert.False(t, m.Current(c2).Authenticated)
}

func TestOpaqueTokenTrusted(t *testing.T) {
	c, rec := newContext(t, nil)
	m := appsession.NewManager()
	require.NoError(t, m.SignIn(c, "not-a-jwt", domain.User{ID: 1, Email: "a@b.c"}))

	c2, _ := newContext(t, rec.Result().Cookies())
	assert.True(t, m.Current(c2).Authenticated)
}
