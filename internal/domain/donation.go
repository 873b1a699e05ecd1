package domain

import "github.com/shopspring/decimal"

// Address is the donor's structured address, collected on the donation form.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

// Donation is a single contribution tied to one campaign. It is built
// transiently by the submission flow, sent to the backend once, and never
// retained beyond the receipt view. CPF and ZipCode are digits-only and
// State is the uppercase two-letter code by the time a Donation exists.
type Donation struct {
	CampaignID int64
	Amount     decimal.Decimal
	DonorName  string
	DonorEmail string
	DonorCPF   string
	Address    Address
}

// Donation status values as the backend reports them.
const (
	StatusPending   = "pendente"
	StatusConfirmed = "confirmada"
	StatusCancelled = "cancelada"
)

// DonationStatus mirrors a donation record as the backend reports it.
type DonationStatus struct {
	ID         int64
	CampaignID int64
	Amount     decimal.Decimal
	Status     string
}
