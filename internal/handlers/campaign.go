package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
	"github.com/ScarMeireles/JuntosMais/internal/mask"
	"github.com/ScarMeireles/JuntosMais/internal/rendering"
	"github.com/ScarMeireles/JuntosMais/internal/session"
	"github.com/ScarMeireles/JuntosMais/internal/validation"
	"github.com/ScarMeireles/JuntosMais/internal/view"
	"github.com/ScarMeireles/JuntosMais/internal/view/dto/forms"
	"github.com/ScarMeireles/JuntosMais/web/src/templates/pages"
)

// CampaignHandler serves campaign creation. Routes using it sit behind
// RequireAuth.
type CampaignHandler struct {
	base
	campaigns domain.CampaignDirectory
	validator *validation.CustomValidator
}

// NewCampaignHandler creates a CampaignHandler.
func NewCampaignHandler(sessions *session.Manager, renderer rendering.Renderer, campaigns domain.CampaignDirectory, validator *validation.CustomValidator) *CampaignHandler {
	return &CampaignHandler{
		base:      base{sessions: sessions, renderer: renderer},
		campaigns: campaigns,
		validator: validator,
	}
}

// NewGet serves the creation form.
func (h *CampaignHandler) NewGet(c echo.Context) error {
	return h.page(c, http.StatusOK, "Nova campanha", pages.CampaignNew(forms.CampaignData{}))
}

// CreatePost validates and submits the new campaign.
func (h *CampaignHandler) CreatePost(c echo.Context) error {
	var form CampaignForm
	if err := c.Bind(&form); err != nil {
		return h.reRender(c, form, nil, "Não foi possível ler o formulário.")
	}

	if v := h.validator.Check(form); v.Any() {
		return h.reRender(c, form, v, "")
	}

	target, err := mask.ParseAmount(form.TargetAmount)
	if err != nil {
		v := validation.Violations{}
		v.Add("target_amount", validation.CodeInvalidAmount)
		return h.reRender(c, form, v, "")
	}

	campaign := domain.Campaign{
		Name:         form.Name,
		Category:     form.Category,
		Description:  form.Description,
		Location:     form.Location,
		Phone:        form.Phone,
		TargetAmount: target,
	}
	if form.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", form.EndDate)
		if err != nil {
			v := validation.Violations{}
			v.Add("end_date", validation.CodeLen)
			return h.reRender(c, form, v, "")
		}
		campaign.EndDate = &endDate
	}

	created, err := h.campaigns.CreateCampaign(c.Request().Context(), h.sessions.Token(c), campaign)
	if err != nil {
		return h.reRender(c, form, nil, createErrorMessage(err))
	}

	view.SetFlashSuccess(c, "Campanha \""+created.Name+"\" criada com sucesso!")
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *CampaignHandler) reRender(c echo.Context, form CampaignForm, v validation.Violations, submitErr string) error {
	data := forms.CampaignData{
		Values: map[string]string{
			"name":          form.Name,
			"category":      form.Category,
			"description":   form.Description,
			"location":      form.Location,
			"phone":         form.Phone,
			"target_amount": form.TargetAmount,
			"end_date":      form.EndDate,
		},
		Violations: v,
		Error:      submitErr,
	}
	return h.page(c, http.StatusUnprocessableEntity, "Nova campanha", pages.CampaignNew(data))
}

func createErrorMessage(err error) string {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Detail
	case errors.Is(err, domain.ErrUnavailable):
		return "Servidor indisponível. Tente novamente em instantes."
	default:
		return "Não foi possível criar a campanha. Tente novamente."
	}
}
