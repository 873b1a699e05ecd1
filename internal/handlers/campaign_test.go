package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
	"github.com/ScarMeireles/JuntosMais/internal/handlers"
	appmw "github.com/ScarMeireles/JuntosMais/internal/middleware"
	"github.com/ScarMeireles/JuntosMais/internal/rendering"
	"github.com/ScarMeireles/JuntosMais/internal/validation"
)

func newCampaignApp(t *testing.T, campaigns *fakeCampaigns) *testApp {
	t.Helper()
	app := newTestApp(t)
	h := handlers.NewCampaignHandler(app.sessions, rendering.NewUniversalRenderer(), campaigns, validation.New())
	authed := app.echo.Group("", appmw.RequireAuth(app.sessions))
	authed.GET("/campanhas/nova", h.NewGet)
	authed.POST("/campanhas/nova", h.CreatePost)
	return app
}

func TestCampaignCreateRequiresAuth(t *testing.T) {
	app := newCampaignApp(t, &fakeCampaigns{})

	rec := app.do(httptest.NewRequest(http.MethodGet, "/campanhas/nova", nil), nil)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestCampaignCreateSuccess(t *testing.T) {
	campaigns := &fakeCampaigns{}
	app := newCampaignApp(t, campaigns)
	cookies := app.signIn(t, domain.User{ID: 9, Email: "ana@example.com", Name: "Ana"})

	rec := app.do(formRequest("/campanhas/nova", url.Values{
		"name":          {"Horta Comunitária"},
		"category":      {"Meio Ambiente"},
		"description":   {"Hortas urbanas em escolas públicas."},
		"location":      {"Belo Horizonte, MG"},
		"target_amount": {"12.500,00"},
		"end_date":      {"2027-06-30"},
	}), cookies)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	require.Len(t, campaigns.created, 1)
	created := campaigns.created[0]
	assert.Equal(t, "Horta Comunitária", created.Name)
	assert.True(t, created.TargetAmount.Equal(decimal.RequireFromString("12500.00")))
	require.NotNil(t, created.EndDate)
	assert.Equal(t, "2027-06-30", created.EndDate.Format("2006-01-02"))
}

func TestCampaignCreateValidation(t *testing.T) {
	app := newCampaignApp(t, &fakeCampaigns{})
	cookies := app.signIn(t, domain.User{ID: 9, Email: "ana@example.com", Name: "Ana"})

	rec := app.do(formRequest("/campanhas/nova", url.Values{
		"name":          {""},
		"category":      {"Saúde"},
		"description":   {"x"},
		"target_amount": {"0,00"},
	}), cookies)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Campo obrigatório.")
	assert.Contains(t, body, "Informe um valor maior que zero.")
	// Typed values come back.
	assert.Contains(t, body, `value="Saúde"`)
}
