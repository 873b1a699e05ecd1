package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
)

// donationPayload is the backend's wire shape for a new donation. The
// amount goes out as a plain JSON number.
type donationPayload struct {
	CampanhaID int64   `json:"campanha_id"`
	Valor      float64 `json:"valor"`
	DoadorNome string  `json:"doador_nome"`
	DoadorMail string  `json:"doador_email"`
	DoadorCPF  string  `json:"doador_cpf"`
	Rua        string  `json:"rua"`
	Numero     string  `json:"numero"`
	Complement string  `json:"complemento"`
	Bairro     string  `json:"bairro"`
	Cidade     string  `json:"cidade"`
	UF         string  `json:"uf"`
	CEP        string  `json:"cep"`
}

type donationRecord struct {
	ID         int64           `json:"id"`
	CampanhaID int64           `json:"campanha_id"`
	Valor      decimal.Decimal `json:"valor"`
	Status     string          `json:"status"`
}

func (r donationRecord) toDomain() domain.DonationStatus {
	return domain.DonationStatus{
		ID:         r.ID,
		CampaignID: r.CampanhaID,
		Amount:     r.Valor,
		Status:     r.Status,
	}
}

// CreateDonation submits a donation exactly once and returns the identifier
// the backend assigned.
func (c *Client) CreateDonation(ctx context.Context, token string, d domain.Donation) (int64, error) {
	valor, _ := d.Amount.Float64()
	payload := donationPayload{
		CampanhaID: d.CampaignID,
		Valor:      valor,
		DoadorNome: d.DonorName,
		DoadorMail: d.DonorEmail,
		DoadorCPF:  d.DonorCPF,
		Rua:        d.Address.Street,
		Numero:     d.Address.Number,
		Complement: d.Address.Complement,
		Bairro:     d.Address.Neighborhood,
		Cidade:     d.Address.City,
		UF:         d.Address.State,
		CEP:        d.Address.ZipCode,
	}
	var resp donationRecord
	if err := c.do(ctx, http.MethodPost, "/doacoes/", token, payload, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// GetDonation fetches one donation.
func (c *Client) GetDonation(ctx context.Context, token string, id int64) (domain.DonationStatus, error) {
	var resp donationRecord
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/doacoes/%d", id), token, nil, &resp); err != nil {
		return domain.DonationStatus{}, err
	}
	return resp.toDomain(), nil
}

// ConfirmDonation marks a donation as paid.
func (c *Client) ConfirmDonation(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/doacoes/%d/confirmar", id), token, struct{}{}, nil)
}

// CancelDonation cancels a pending donation.
func (c *Client) CancelDonation(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/doacoes/%d/cancelar", id), token, struct{}{}, nil)
}

// ListCampaignDonations lists the donations of one campaign.
func (c *Client) ListCampaignDonations(ctx context.Context, campaignID int64) ([]domain.DonationStatus, error) {
	var records []donationRecord
	path := fmt.Sprintf("/doacoes/campanha/%d", campaignID)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &records); err != nil {
		return nil, err
	}
	out := make([]domain.DonationStatus, 0, len(records))
	for _, r := range records {
		out = append(out, r.toDomain())
	}
	return out, nil
}
