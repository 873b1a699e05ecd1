package domain

import "context"

// Authenticator is the contract for the backend's auth operations.
// It lives in the domain because it is a requirement OF the domain, not of
// the HTTP client implementation.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, User, error)
	Register(ctx context.Context, in RegisterInput) (string, User, error)
}

// CampaignDirectory exposes the backend's campaign collection.
type CampaignDirectory interface {
	ListCampaigns(ctx context.Context) ([]Campaign, error)
	GetCampaign(ctx context.Context, id int64) (Campaign, error)
	CreateCampaign(ctx context.Context, token string, c Campaign) (Campaign, error)
}

// DonationService exposes the backend's donation lifecycle. The token is the
// bearer credential of the current session, empty when anonymous.
type DonationService interface {
	CreateDonation(ctx context.Context, token string, d Donation) (int64, error)
	GetDonation(ctx context.Context, token string, id int64) (DonationStatus, error)
	ConfirmDonation(ctx context.Context, token string, id int64) error
	CancelDonation(ctx context.Context, token string, id int64) error
	ListCampaignDonations(ctx context.Context, campaignID int64) ([]DonationStatus, error)
}
