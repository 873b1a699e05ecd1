package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
	appmw "github.com/ScarMeireles/JuntosMais/internal/middleware"
	"github.com/ScarMeireles/JuntosMais/internal/rendering"
	"github.com/ScarMeireles/JuntosMais/internal/session"
	"github.com/ScarMeireles/JuntosMais/internal/storage"
	"github.com/ScarMeireles/JuntosMais/internal/validation"
	"github.com/ScarMeireles/JuntosMais/internal/view"
	"github.com/ScarMeireles/JuntosMais/internal/view/dto/forms"
	"github.com/ScarMeireles/JuntosMais/web/src/templates/pages"
)

// SettingsHandler serves the account settings screen. All routes sit
// behind RequireAuth, so the user is always present on the context.
type SettingsHandler struct {
	base
	validator *validation.CustomValidator
	avatars   *storage.AvatarStore
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(sessions *session.Manager, renderer rendering.Renderer, validator *validation.CustomValidator, avatars *storage.AvatarStore) *SettingsHandler {
	return &SettingsHandler{
		base:      base{sessions: sessions, renderer: renderer},
		validator: validator,
		avatars:   avatars,
	}
}

// SettingsGet serves the settings page.
func (h *SettingsHandler) SettingsGet(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	_, hasAvatar := h.avatars.Load(user.ID)
	data := forms.SettingsData{Name: user.Name, Email: user.Email, HasAvatar: hasAvatar}
	return h.page(c, http.StatusOK, "Configurações", pages.Settings(data))
}

// SettingsPost updates the profile and, when the password group is filled,
// changes the password. The profile update is session-local: the backend
// has no profile endpoint, so the change lives as long as the session.
func (h *SettingsHandler) SettingsPost(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var form ProfileForm
	if err := c.Bind(&form); err != nil {
		view.SetFlashError(c, "Não foi possível ler o formulário.")
		return c.Redirect(http.StatusSeeOther, "/configuracoes")
	}

	violations := h.validator.Check(form)
	if violations == nil {
		violations = validation.Violations{}
	}
	pwGroup := validation.PasswordChange{
		Current: form.CurrentPassword,
		New:     form.NewPassword,
		Confirm: form.ConfirmPassword,
	}
	for field, codes := range validation.CheckPasswordChange(pwGroup) {
		for _, code := range codes {
			violations.Add(field, code)
		}
	}

	if violations.Any() {
		_, hasAvatar := h.avatars.Load(user.ID)
		data := forms.SettingsData{
			Name:       form.Name,
			Email:      form.Email,
			HasAvatar:  hasAvatar,
			Violations: violations,
		}
		return h.page(c, http.StatusUnprocessableEntity, "Configurações", pages.Settings(data))
	}

	updated := *user
	updated.Name = form.Name
	updated.Email = form.Email
	if err := h.sessions.UpdateUser(c, updated); err != nil {
		appmw.FromContext(c.Request().Context()).Error("Updating session user failed", "error", err)
		view.SetFlashError(c, "Não foi possível salvar as alterações.")
		return c.Redirect(http.StatusSeeOther, "/configuracoes")
	}

	if pwGroup.Empty() {
		view.SetFlashSuccess(c, "Dados atualizados com sucesso!")
	} else {
		view.SetFlashSuccess(c, "Dados e senha atualizados com sucesso!")
	}
	return c.Redirect(http.StatusSeeOther, "/configuracoes")
}

// AvatarPost stores the uploaded profile image.
func (h *SettingsHandler) AvatarPost(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		view.SetFlashError(c, "Selecione uma imagem para enviar.")
		return c.Redirect(http.StatusSeeOther, "/configuracoes")
	}
	src, err := file.Open()
	if err != nil {
		view.SetFlashError(c, "Não foi possível ler o arquivo enviado.")
		return c.Redirect(http.StatusSeeOther, "/configuracoes")
	}
	defer src.Close()

	err = h.avatars.Save(user.ID, file.Header.Get("Content-Type"), src)
	switch {
	case errors.Is(err, storage.ErrNotImage):
		view.SetFlashError(c, "O arquivo precisa ser uma imagem.")
	case errors.Is(err, storage.ErrTooLarge):
		view.SetFlashError(c, "A imagem excede o limite de 5MB.")
	case err != nil:
		appmw.FromContext(c.Request().Context()).Error("Saving avatar failed", "user_id", user.ID, "error", err)
		view.SetFlashError(c, "Não foi possível salvar a imagem.")
	default:
		view.SetFlashSuccess(c, "Foto de perfil atualizada!")
	}
	return c.Redirect(http.StatusSeeOther, "/configuracoes")
}

// AvatarGet serves the stored profile image.
func (h *SettingsHandler) AvatarGet(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	data, ok := h.avatars.Load(user.ID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	return c.Blob(http.StatusOK, http.DetectContentType(data), data)
}

// AvatarDeletePost removes the stored profile image.
func (h *SettingsHandler) AvatarDeletePost(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.avatars.Remove(user.ID); err != nil {
		appmw.FromContext(c.Request().Context()).Error("Removing avatar failed", "user_id", user.ID, "error", err)
		view.SetFlashError(c, "Não foi possível remover a imagem.")
	} else {
		view.SetFlashNotice(c, "Foto de perfil removida.")
	}
	return c.Redirect(http.StatusSeeOther, "/configuracoes")
}

// currentUser reads the authenticated user placed on the context by
// RequireAuth.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(appmw.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized)
	}
	return user, nil
}
