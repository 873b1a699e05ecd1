package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
)

// campaignPayload is the backend's wire shape for a campaign. The field
// names are translated to the domain names at this boundary and nowhere
// else.
type campaignPayload struct {
	ID           int64           `json:"id,omitempty"`
	Nome         string          `json:"nome"`
	TipoCategory string          `json:"tipo_categoria"`
	Descricao    string          `json:"descricao"`
	Localizacao  string          `json:"localizacao"`
	Website      *string         `json:"website"`
	Telefone     *string         `json:"telefone"`
	Email        *string         `json:"email"`
	MetaValor    decimal.Decimal `json:"meta_valor"`
	Arrecadado   decimal.Decimal `json:"valor_arrecadado"`
	Ativa        bool            `json:"ativa"`
	Rating       float64         `json:"rating"`
	DataFim      *string         `json:"data_fim"`
}

func (p campaignPayload) toDomain() domain.Campaign {
	c := domain.Campaign{
		ID:           p.ID,
		Name:         p.Nome,
		Category:     p.TipoCategory,
		Description:  p.Descricao,
		Location:     p.Localizacao,
		Verified:     p.Ativa,
		Rating:       p.Rating,
		TargetAmount: p.MetaValor,
		AmountRaised: p.Arrecadado,
	}
	if p.Website != nil {
		c.Website = *p.Website
	}
	if p.Telefone != nil {
		c.Phone = *p.Telefone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.DataFim != nil && *p.DataFim != "" {
		// The backend is loose about the date format; take either a bare
		// date or a full timestamp.
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, *p.DataFim); err == nil {
				c.EndDate = &t
				break
			}
		}
	}
	return c
}

func campaignToPayload(c domain.Campaign) campaignPayload {
	p := campaignPayload{
		Nome:         c.Name,
		TipoCategory: c.Category,
		Descricao:    c.Description,
		Localizacao:  c.Location,
		MetaValor:    c.TargetAmount,
	}
	if c.Website != "" {
		p.Website = &c.Website
	}
	if c.Phone != "" {
		p.Telefone = &c.Phone
	}
	if c.Email != "" {
		p.Email = &c.Email
	}
	if c.EndDate != nil {
		s := c.EndDate.Format("2006-01-02")
		p.DataFim = &s
	}
	return p
}

// ListCampaigns fetches the full campaign collection.
func (c *Client) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	var payloads []campaignPayload
	if err := c.do(ctx, http.MethodGet, "/campanhas", "", nil, &payloads); err != nil {
		return nil, err
	}
	campaigns := make([]domain.Campaign, 0, len(payloads))
	for _, p := range payloads {
		campaigns = append(campaigns, p.toDomain())
	}
	return campaigns, nil
}

// GetCampaign fetches one campaign by ID.
func (c *Client) GetCampaign(ctx context.Context, id int64) (domain.Campaign, error) {
	var p campaignPayload
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/campanhas/%d", id), "", nil, &p); err != nil {
		return domain.Campaign{}, err
	}
	return p.toDomain(), nil
}

// CreateCampaign registers a new campaign.
func (c *Client) CreateCampaign(ctx context.Context, token string, campaign domain.Campaign) (domain.Campaign, error) {
	var p campaignPayload
	if err := c.do(ctx, http.MethodPost, "/campanhas", token, campaignToPayload(campaign), &p); err != nil {
		return domain.Campaign{}, err
	}
	return p.toDomain(), nil
}

// UpdateCampaign replaces a campaign's editable fields.
func (c *Client) UpdateCampaign(ctx context.Context, token string, id int64, campaign domain.Campaign) (domain.Campaign, error) {
	var p campaignPayload
	path := fmt.Sprintf("/campanhas/%d", id)
	if err := c.do(ctx, http.MethodPut, path, token, campaignToPayload(campaign), &p); err != nil {
		return domain.Campaign{}, err
	}
	return p.toDomain(), nil
}

// DeleteCampaign removes a campaign.
func (c *Client) DeleteCampaign(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/campanhas/%d", id), token, nil, nil)
}
