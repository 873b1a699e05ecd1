package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
	"github.com/ScarMeireles/JuntosMais/internal/pubsub"
	"github.com/ScarMeireles/JuntosMais/internal/rendering"
	appsession "github.com/ScarMeireles/JuntosMais/internal/session"
	"github.com/ScarMeireles/JuntosMais/internal/validation"
)

const testSecret = "a-very-secret-key-for-testing-!"

// testApp bundles what every handler test needs: an echo instance with the
// session middleware, plus the shared collaborators.
type testApp struct {
	echo     *echo.Echo
	sessions *appsession.Manager
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	e := echo.New()
	e.Validator = validation.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Use(echosession.Middleware(sessions.NewCookieStore([]byte(testSecret))))
	return &testApp{echo: e, sessions: appsession.NewManager()}
}

// do runs one request through the echo instance, replaying cookies from a
// previous response so flows spanning redirects keep their session.
func (a *testApp) do(req *http.Request, cookies []*http.Cookie) *httptest.ResponseRecorder {
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
	a.echo.ServeHTTP(rec, req)
	return rec
}

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

// signIn establishes an authenticated session and returns its cookies.
func (a *testApp) signIn(t *testing.T, user domain.User) []*http.Cookie {
	t.Helper()
	a.echo.POST("/test/signin", func(c echo.Context) error {
		return a.sessions.SignIn(c, "test-token", user)
	})
	rec := a.do(httptest.NewRequest(http.MethodPost, "/test/signin", nil), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Result().Cookies()
}

// fakeCampaigns is an in-memory CampaignDirectory.
type fakeCampaigns struct {
	campaigns []domain.Campaign
	listErr   error
	created   []domain.Campaign
	createErr error
}

func (f *fakeCampaigns) ListCampaigns(context.Context) ([]domain.Campaign, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.campaigns, nil
}

func (f *fakeCampaigns) GetCampaign(_ context.Context, id int64) (domain.Campaign, error) {
	if f.listErr != nil {
		return domain.Campaign{}, f.listErr
	}
	for _, c := range f.campaigns {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Campaign{}, domain.ErrNotFound
}

func (f *fakeCampaigns) CreateCampaign(_ context.Context, _ string, c domain.Campaign) (domain.Campaign, error) {
	if f.createErr != nil {
		return domain.Campaign{}, f.createErr
	}
	c.ID = int64(len(f.created) + 100)
	f.created = append(f.created, c)
	return c, nil
}

// fakeAuth is a scripted Authenticator.
type fakeAuth struct {
	token string
	user  domain.User
	err   error

	gotEmail    string
	gotRegister domain.RegisterInput
}

func (f *fakeAuth) Login(_ context.Context, email, _ string) (string, domain.User, error) {
	f.gotEmail = email
	if f.err != nil {
		return "", domain.User{}, f.err
	}
	return f.token, f.user, nil
}

func (f *fakeAuth) Register(_ context.Context, in domain.RegisterInput) (string, domain.User, error) {
	f.gotRegister = in
	if f.err != nil {
		return "", domain.User{}, f.err
	}
	return f.token, f.user, nil
}

// fakeDonations is a scripted DonationService.
type fakeDonations struct {
	nextID    int64
	createErr error
	created   []domain.Donation
	confirmed []int64
	cancelled []int64
}

func (f *fakeDonations) CreateDonation(_ context.Context, _ string, d domain.Donation) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, d)
	if f.nextID == 0 {
		f.nextID = 1
	}
	return f.nextID, nil
}

func (f *fakeDonations) GetDonation(_ context.Context, _ string, id int64) (domain.DonationStatus, error) {
	return domain.DonationStatus{ID: id, Status: domain.StatusPending}, nil
}

func (f *fakeDonations) ConfirmDonation(_ context.Context, _ string, id int64) error {
	f.confirmed = append(f.confirmed, id)
	return nil
}

func (f *fakeDonations) CancelDonation(_ context.Context, _ string, id int64) error {
	f.cancelled = append(f.cancelled, id)
	return nil
}

func (f *fakeDonations) ListCampaignDonations(context.Context, int64) ([]domain.DonationStatus, error) {
	return nil, nil
}

// capturePublisher records published messages.
type capturePublisher struct {
	messages []pubsub.Message
}

func (p *capturePublisher) Publish(_ context.Context, msg pubsub.Message) error {
	p.messages = append(p.messages, msg)
	return nil
}

func (p *capturePublisher) Close() error { return nil }
