package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
	"github.com/ScarMeireles/JuntosMais/internal/mask"
	appmw "github.com/ScarMeireles/JuntosMais/internal/middleware"
	"github.com/ScarMeireles/JuntosMais/internal/rendering"
	"github.com/ScarMeireles/JuntosMais/internal/session"
	"github.com/ScarMeireles/JuntosMais/internal/validation"
	"github.com/ScarMeireles/JuntosMais/internal/view"
	"github.com/ScarMeireles/JuntosMais/internal/view/dto/forms"
	"github.com/ScarMeireles/JuntosMais/web/src/templates/pages"
)

// AuthHandler serves login, registration and logout.
type AuthHandler struct {
	base
	auth      domain.Authenticator
	validator *validation.CustomValidator
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(sessions *session.Manager, renderer rendering.Renderer, auth domain.Authenticator, validator *validation.CustomValidator) *AuthHandler {
	return &AuthHandler{
		base:      base{sessions: sessions, renderer: renderer},
		auth:      auth,
		validator: validator,
	}
}

// LoginGet serves the sign-in page. Already authenticated visitors go home.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	if h.sessions.Current(c).Authenticated {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	data := forms.LoginData{Email: view.PopFormEmail(c)}
	return h.page(c, http.StatusOK, "Entrar", pages.Login(data))
}

// LoginPost exchanges credentials for a session. Failures redirect back to
// the form with a flash and the email preserved.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var form LoginForm
	if err := c.Bind(&form); err != nil {
		view.SetFlashError(c, "Não foi possível ler o formulário.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	if v := h.validator.Check(form); v.Any() {
		view.SetFlashError(c, "Informe e-mail e senha válidos.")
		view.SetFormEmail(c, form.Email)
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	token, user, err := h.auth.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		view.SetFormEmail(c, form.Email)
		view.SetFlashError(c, loginErrorMessage(err))
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	if err := h.sessions.SignIn(c, token, user); err != nil {
		appmw.FromContext(c.Request().Context()).Error("Persisting session failed", "error", err)
		view.SetFlashError(c, "Não foi possível iniciar a sessão. Tente novamente.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	view.SetFlashSuccess(c, "Bem-vindo de volta, "+user.Name+"!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// RegisterGet serves the account creation page.
func (h *AuthHandler) RegisterGet(c echo.Context) error {
	if h.sessions.Current(c).Authenticated {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	data := forms.RegisterData{Email: view.PopFormEmail(c)}
	return h.page(c, http.StatusOK, "Criar conta", pages.Register(data, nil))
}

// RegisterPost creates the account and signs the new user in. Validation
// failures re-render the form with per-field violations instead of
// redirecting, so nothing typed is lost.
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	var form RegisterForm
	if err := c.Bind(&form); err != nil {
		view.SetFlashError(c, "Não foi possível ler o formulário.")
		return c.Redirect(http.StatusSeeOther, "/cadastro")
	}

	if v := h.validator.Check(form); v.Any() {
		data := forms.RegisterData{Name: form.Name, Email: form.Email, CPF: form.CPF}
		return h.page(c, http.StatusUnprocessableEntity, "Criar conta", pages.Register(data, v))
	}

	input := domain.RegisterInput{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		CPF:      mask.Digits(form.CPF),
	}
	token, user, err := h.auth.Register(c.Request().Context(), input)
	if err != nil {
		view.SetFormEmail(c, form.Email)
		view.SetFlashError(c, registerErrorMessage(err))
		return c.Redirect(http.StatusSeeOther, "/cadastro")
	}

	if err := h.sessions.SignIn(c, token, user); err != nil {
		appmw.FromContext(c.Request().Context()).Error("Persisting session failed", "error", err)
		view.SetFlashError(c, "Conta criada, mas não foi possível iniciar a sessão. Faça login.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	view.SetFlashSuccess(c, "Conta criada com sucesso!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.SignOut(c); err != nil {
		appmw.FromContext(c.Request().Context()).Error("Clearing session failed", "error", err)
	}
	view.SetFlashSuccess(c, "Você saiu da sua conta.")
	return c.Redirect(http.StatusSeeOther, "/login")
}

func loginErrorMessage(err error) string {
	var vErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "E-mail ou senha incorretos."
	case errors.Is(err, domain.ErrUnavailable):
		return "Servidor indisponível. Tente novamente em instantes."
	case errors.As(err, &vErr):
		return vErr.Detail
	default:
		return "Não foi possível entrar. Tente novamente."
	}
}

func registerErrorMessage(err error) string {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Detail
	case errors.Is(err, domain.ErrUnavailable):
		return "Servidor indisponível. Tente novamente em instantes."
	default:
		return "Não foi possível criar a conta. Tente novamente."
	}
}
