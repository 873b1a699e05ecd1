// Package receipt builds the donation confirmation artifacts: the receipt
// payload shown to the donor and the decorative code pattern next to it.
package receipt

import (
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
)

// PaymentMethod is fixed: the platform settles donations over PIX.
const PaymentMethod = "PIX"

// Receipt is the confirmation payload synthesized after the backend accepts
// a donation. The JSON keys follow the backend's naming.
type Receipt struct {
	DonationID int64          `json:"doacaoId"`
	CampaignID int64          `json:"campanhaId"`
	Reference  string         `json:"referencia"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	CPF        string         `json:"cpf"`
	Address    domain.Address `json:"address"`
	// Amount is the canonical two-decimal form, e.g. "50.00".
	Amount        string    `json:"amount"`
	Timestamp     time.Time `json:"timestamp"`
	PaymentMethod string    `json:"paymentMethod"`
}

// New builds a Receipt for an accepted donation.
func New(d domain.Donation, donationID int64, now time.Time) Receipt {
	return Receipt{
		DonationID:    donationID,
		CampaignID:    d.CampaignID,
		Reference:     uuid.NewString(),
		Name:          d.DonorName,
		Email:         d.DonorEmail,
		CPF:           d.DonorCPF,
		Address:       d.Address,
		Amount:        d.Amount.StringFixed(2),
		Timestamp:     now.UTC(),
		PaymentMethod: PaymentMethod,
	}
}

// Payload renders the receipt as the JSON string displayed under the code.
func (r Receipt) Payload() string {
	raw, err := json.Marshal(r)
	if err != nil {
		// Receipt has no unmarshalable fields; this cannot happen.
		return "{}"
	}
	return string(raw)
}

// FullAddress joins the address parts for display, skipping empty ones.
func (r Receipt) FullAddress() string {
	parts := []string{
		r.Address.Street,
		r.Address.Number,
		r.Address.Complement,
		r.Address.Neighborhood,
		r.Address.City,
		r.Address.State,
		r.Address.ZipCode,
	}
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

// PatternSize is the side length of the decorative pattern.
const PatternSize = 25

// fillProbability matches the original's visual density.
const fillProbability = 0.55

// Pattern is the decorative code matrix. It is a randomly filled placeholder
// that merely looks like a QR code; it encodes nothing and is not scannable.
type Pattern [][]bool

// NewPattern generates a PatternSize×PatternSize matrix from rnd.
func NewPattern(rnd *rand.Rand) Pattern {
	p := make(Pattern, PatternSize)
	for i := range p {
		row := make([]bool, PatternSize)
		for j := range row {
			row[j] = rnd.Float64() < fillProbability
		}
		p[i] = row
	}
	return p
}
