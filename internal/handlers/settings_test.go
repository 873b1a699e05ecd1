package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
	"github.com/ScarMeireles/JuntosMais/internal/handlers"
	appmw "github.com/ScarMeireles/JuntosMais/internal/middleware"
	"github.com/ScarMeireles/JuntosMais/internal/rendering"
	"github.com/ScarMeireles/JuntosMais/internal/storage"
	"github.com/ScarMeireles/JuntosMais/internal/validation"
)

func newSettingsApp(t *testing.T, avatars *storage.AvatarStore) *testApp {
	t.Helper()
	app := newTestApp(t)
	h := handlers.NewSettingsHandler(app.sessions, rendering.NewUniversalRenderer(), validation.New(), avatars)
	authed := app.echo.Group("", appmw.RequireAuth(app.sessions))
	authed.GET("/configuracoes", h.SettingsGet)
	authed.POST("/configuracoes", h.SettingsPost)
	authed.GET("/configuracoes/avatar", h.AvatarGet)
	authed.POST("/configuracoes/avatar", h.AvatarPost)
	authed.POST("/configuracoes/avatar/remover", h.AvatarDeletePost)
	return app
}

func memAvatars() *storage.AvatarStore {
	return storage.NewAvatarStore(afero.NewMemMapFs(), "avatars")
}

func TestSettingsRequiresAuth(t *testing.T) {
	app := newSettingsApp(t, memAvatars())

	rec := app.do(httptest.NewRequest(http.MethodGet, "/configuracoes", nil), nil)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSettingsShowsProfile(t *testing.T) {
	app := newSettingsApp(t, memAvatars())
	cookies := app.signIn(t, domain.User{ID: 9, Email: "ana@example.com", Name: "Ana"})

	rec := app.do(httptest.NewRequest(http.MethodGet, "/configuracoes", nil), cookies)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="Ana"`)
	assert.Contains(t, body, `value="ana@example.com"`)
}

func TestSettingsUpdatesProfileLocally(t *testing.T) {
	app := newSettingsApp(t, memAvatars())
	cookies := app.signIn(t, domain.User{ID: 9, Email: "ana@example.com", Name: "Ana"})

	rec := app.do(formRequest("/configuracoes", url.Values{
		"name":  {"Ana Paula"},
		"email": {"ana@example.com"},
	}), cookies)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec2 := app.do(httptest.NewRequest(http.MethodGet, "/configuracoes", nil), rec.Result().Cookies())
	require.Equal(t, http.StatusOK, rec2.Code)
	body := rec2.Body.String()
	assert.Contains(t, body, `value="Ana Paula"`)
	assert.Contains(t, body, "Dados atualizados com sucesso!")
}

func TestPasswordGroupAllEmptyIsValid(t *testing.T) {
	app := newSettingsApp(t, memAvatars())
	cookies := app.signIn(t, domain.User{ID: 9, Email: "ana@example.com", Name: "Ana"})

	rec := app.do(formRequest("/configuracoes", url.Values{
		"name":             {"Ana"},
		"email":            {"ana@example.com"},
		"current_password": {""},
		"new_password":     {""},
		"confirm_password": {""},
	}), cookies)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestPasswordGroupPartiallyFilledFails(t *testing.T) {
	app := newSettingsApp(t, memAvatars())
	cookies := app.signIn(t, domain.User{ID: 9, Email: "ana@example.com", Name: "Ana"})

	rec := app.do(formRequest("/configuracoes", url.Values{
		"name":             {"Ana"},
		"email":            {"ana@example.com"},
		"current_password": {"old-pw"},
		"new_password":     {"short"},
		"confirm_password": {"different"},
	}), cookies)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Valor muito curto.")
	assert.Contains(t, body, "Os campos não coincidem.")
}

func avatarUpload(t *testing.T, field, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/configuracoes/avatar", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestAvatarUploadAndServe(t *testing.T) {
	avatars := memAvatars()
	app := newSettingsApp(t, avatars)
	cookies := app.signIn(t, domain.User{ID: 9, Email: "ana@example.com", Name: "Ana"})

	png := []byte("\x89PNG\r\n\x1a\nfakeimagedata")
	rec := app.do(avatarUpload(t, "avatar", "foto.png", "image/png", png), cookies)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	stored, ok := avatars.Load(9)
	require.True(t, ok)
	assert.Equal(t, png, stored)

	rec2 := app.do(httptest.NewRequest(http.MethodGet, "/configuracoes/avatar", nil), cookies)
	require.Equal(t, http.StatusOK, rec2.Code)
	assert.Equal(t, png, rec2.Body.Bytes())
}

func TestAvatarRejectsNonImage(t *testing.T) {
	avatars := memAvatars()
	app := newSettingsApp(t, avatars)
	cookies := app.signIn(t, domain.User{ID: 9, Email: "ana@example.com", Name: "Ana"})

	rec := app.do(avatarUpload(t, "avatar", "doc.txt", "text/plain", []byte("hello")), cookies)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	_, ok := avatars.Load(9)
	assert.False(t, ok)
}

func TestAvatarRemove(t *testing.T) {
	avatars := memAvatars()
	app := newSettingsApp(t, avatars)
	cookies := app.signIn(t, domain.User{ID: 9, Email: "ana@example.com", Name: "Ana"})

	rec := app.do(avatarUpload(t, "avatar", "foto.png", "image/png", []byte("img")), cookies)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec2 := app.do(httptest.NewRequest(http.MethodPost, "/configuracoes/avatar/remover", nil), cookies)
	require.Equal(t, http.StatusSeeOther, rec2.Code)

	_, ok := avatars.Load(9)
	assert.False(t, ok)
}
