package handlers

import (
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
	"github.com/ScarMeireles/JuntosMais/internal/live"
	"github.com/ScarMeireles/JuntosMais/internal/mask"
	appmw "github.com/ScarMeireles/JuntosMais/internal/middleware"
	"github.com/ScarMeireles/JuntosMais/internal/pubsub"
	"github.com/ScarMeireles/JuntosMais/internal/receipt"
	"github.com/ScarMeireles/JuntosMais/internal/rendering"
	"github.com/ScarMeireles/JuntosMais/internal/session"
	"github.com/ScarMeireles/JuntosMais/internal/validation"
	"github.com/ScarMeireles/JuntosMais/internal/view"
	"github.com/ScarMeireles/JuntosMais/internal/view/dto/forms"
	"github.com/ScarMeireles/JuntosMais/web/src/templates/pages"
)

// DonationHandler serves the donation form, the submission, and the
// confirm/cancel actions on the resulting receipt.
type DonationHandler struct {
	base
	campaigns domain.CampaignDirectory
	donations domain.DonationService
	validator *validation.CustomValidator
	publisher pubsub.Publisher
	now       func() time.Time
}

// NewDonationHandler creates a DonationHandler.
func NewDonationHandler(
	sessions *session.Manager,
	renderer rendering.Renderer,
	campaigns domain.CampaignDirectory,
	donations domain.DonationService,
	validator *validation.CustomValidator,
	publisher pubsub.Publisher,
) *DonationHandler {
	return &DonationHandler{
		base:      base{sessions: sessions, renderer: renderer},
		campaigns: campaigns,
		donations: donations,
		validator: validator,
		publisher: publisher,
		now:       time.Now,
	}
}

// FormGet serves the donation form for one campaign.
func (h *DonationHandler) FormGet(c echo.Context) error {
	campaign, err := h.campaign(c)
	if err != nil {
		return h.campaignError(c, err)
	}
	return h.page(c, http.StatusOK, "Doar para "+campaign.Name,
		pages.Donation(campaign, forms.DonationData{}))
}

// SubmitPost validates the form and submits the donation to the backend
// exactly once. On success it renders the receipt directly; nothing about
// the donor is kept after this response.
func (h *DonationHandler) SubmitPost(c echo.Context) error {
	campaign, err := h.campaign(c)
	if err != nil {
		return h.campaignError(c, err)
	}

	var form DonationForm
	if err := c.Bind(&form); err != nil {
		return h.reRender(c, campaign, form, nil, "Não foi possível ler o formulário.", http.StatusBadRequest)
	}

	if v := h.validator.Check(form); v.Any() {
		return h.reRender(c, campaign, form, v, "", http.StatusUnprocessableEntity)
	}

	amount, err := mask.ParseAmount(form.Amount)
	if err != nil {
		v := validation.Violations{}
		v.Add("amount", validation.CodeInvalidAmount)
		return h.reRender(c, campaign, form, v, "", http.StatusUnprocessableEntity)
	}

	donation := domain.Donation{
		CampaignID: campaign.ID,
		Amount:     amount,
		DonorName:  form.Name,
		DonorEmail: form.Email,
		DonorCPF:   mask.Digits(form.CPF),
		Address: domain.Address{
			Street:       form.Street,
			Number:       form.Number,
			Complement:   form.Complement,
			Neighborhood: form.Neighborhood,
			City:         form.City,
			State:        mask.State(form.State),
			ZipCode:      mask.Digits(form.ZipCode),
		},
	}

	token := h.sessions.Token(c)
	donationID, err := h.donations.CreateDonation(c.Request().Context(), token, donation)
	if err != nil {
		return h.reRender(c, campaign, form, nil, submitErrorMessage(err), submitErrorStatus(err))
	}

	h.publishCreated(c, donationID, donation)

	rcpt := receipt.New(donation, donationID, h.now())
	// One generator per submission; rand.Rand is not safe for concurrent use.
	pattern := receipt.NewPattern(rand.New(rand.NewSource(h.now().UnixNano())))
	return h.page(c, http.StatusOK, "Comprovante",
		pages.Receipt(campaign, rcpt, pattern, domain.StatusPending))
}

// ConfirmPost marks a donation as paid.
func (h *DonationHandler) ConfirmPost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err := h.donations.ConfirmDonation(c.Request().Context(), h.sessions.Token(c), id); err != nil {
		view.SetFlashError(c, actionErrorMessage(err, "confirmar"))
		return c.Redirect(http.StatusSeeOther, "/")
	}
	view.SetFlashSuccess(c, "Pagamento confirmado. Obrigado pela sua doação!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// CancelPost cancels a pending donation.
func (h *DonationHandler) CancelPost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err := h.donations.CancelDonation(c.Request().Context(), h.sessions.Token(c), id); err != nil {
		view.SetFlashError(c, actionErrorMessage(err, "cancelar"))
		return c.Redirect(http.StatusSeeOther, "/")
	}
	view.SetFlashNotice(c, "Doação cancelada.")
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *DonationHandler) campaign(c echo.Context) (domain.Campaign, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return domain.Campaign{}, domain.ErrNotFound
	}
	return h.campaigns.GetCampaign(c.Request().Context(), id)
}

func (h *DonationHandler) campaignError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		view.SetFlashError(c, "Campanha não encontrada.")
	case errors.Is(err, domain.ErrUnavailable):
		view.SetFlashError(c, "Servidor indisponível. Tente novamente em instantes.")
	default:
		view.SetFlashError(c, "Não foi possível carregar a campanha.")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *DonationHandler) reRender(c echo.Context, campaign domain.Campaign, form DonationForm, v validation.Violations, submitErr string, status int) error {
	data := forms.DonationData{
		Values: map[string]string{
			"name":         form.Name,
			"email":        form.Email,
			"cpf":          form.CPF,
			"street":       form.Street,
			"number":       form.Number,
			"complement":   form.Complement,
			"neighborhood": form.Neighborhood,
			"city":         form.City,
			"state":        form.State,
			"zip_code":     form.ZipCode,
			"amount":       form.Amount,
		},
		Violations: v,
		Error:      submitErr,
	}
	return h.page(c, status, "Doar para "+campaign.Name, pages.Donation(campaign, data))
}

// publishCreated emits the donation event for the live progress layer. A
// failed publish never fails the donation; the browser just misses one
// push.
func (h *DonationHandler) publishCreated(c echo.Context, donationID int64, d domain.Donation) {
	event := live.DonationCreated{
		DonationID: donationID,
		CampaignID: d.CampaignID,
		Amount:     d.Amount.StringFixed(2),
	}
	payload, err := event.Encode()
	if err != nil {
		appmw.FromContext(c.Request().Context()).Error("Encoding donation event failed", "error", err)
		return
	}
	msg := pubsub.Message{Topic: live.TopicDonationCreated, Payload: payload}
	if err := h.publisher.Publish(c.Request().Context(), msg); err != nil {
		appmw.FromContext(c.Request().Context()).Error("Publishing donation event failed", "error", err)
	}
}

func submitErrorMessage(err error) string {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Detail
	case errors.Is(err, domain.ErrUnavailable):
		return "Servidor indisponível. Sua doação não foi registrada; tente novamente."
	default:
		return "Não foi possível registrar a doação. Tente novamente."
	}
}

// submitErrorStatus picks the re-render status: a backend rejection is the
// visitor's data being refused, everything else is the backend failing us.
func submitErrorStatus(err error) int {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadGateway
}

func actionErrorMessage(err error, verb string) string {
	if errors.Is(err, domain.ErrUnavailable) {
		return "Servidor indisponível. Não foi possível " + verb + " a doação."
	}
	return "Não foi possível " + verb + " a doação."
}
