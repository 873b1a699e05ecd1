package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScarMeireles/JuntosMais/internal/view"
)

func newContext(t *testing.T, cookies []*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	// A response may carry several Set-Cookie headers for the same name (one
	// per session save); browsers keep only the newest, so replay just that.
	latest := make(map[string]*http.Cookie)
	for _, ck := range cookies {
		latest[ck.Name] = ck
	}
	for _, ck := range latest {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	store := sessions.NewCookieStore([]byte("test-secret-test-secret-test-se!"))
	require.NoError(t, echosession.Middleware(store)(func(c echo.Context) error { return nil })(c))
	return c, rec
}

func TestFlashRoundTrip(t *testing.T) {
	c, rec := newContext(t, nil)
	view.SetFlashSuccess(c, "Doação criada com sucesso!")
	view.SetFlashError(c, "Algo deu errado.")

	c2, _ := newContext(t, rec.Result().Cookies())
	data := view.GetFlashData(c2)
	assert.Equal(t, []string{"Doação criada com sucesso!"}, data.Success)
	assert.Equal(t, []string{"Algo deu errado."}, data.Error)
	assert.Empty(t, data.Notice)
}

func TestFlashesAreConsumed(t *testing.T) {
	c, rec := newContext(t, nil)
	view.SetFlashNotice(c, "Exibindo catálogo offline.")

	c2, rec2 := newContext(t, rec.Result().Cookies())
	first := view.GetFlashData(c2)
	require.Equal(t, []string{"Exibindo catálogo offline."}, first.Notice)

	c3, _ := newContext(t, rec2.Result().Cookies())
	second := view.GetFlashData(c3)
	assert.Empty(t, second.Notice)
}

func TestFormEmailPrefill(t *testing.T) {
	c, rec := newContext(t, nil)
	view.SetFormEmail(c, "ana@example.com")

	c2, _ := newContext(t, rec.Result().Cookies())
	assert.Equal(t, "ana@example.com", view.PopFormEmail(c2))
}
