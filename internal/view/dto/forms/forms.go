// Package forms holds the view models passed from handlers to page
// components, keeping the template packages free of handler imports.
package forms

import "github.com/ScarMeireles/JuntosMais/internal/validation"

// LoginData prefills the login form.
type LoginData struct {
	Email string
}

// RegisterData prefills the registration form. Passwords are never echoed
// back.
type RegisterData struct {
	Name  string
	Email string
	CPF   string
}

// DonationData re-renders the donation form after a failed submit: the
// posted values by field name, the per-field violations, and an optional
// submission error from the backend.
type DonationData struct {
	Values     map[string]string
	Violations validation.Violations
	Error      string
}

// Value returns the posted value of a field, or "".
func (d DonationData) Value(field string) string {
	return d.Values[field]
}

// CampaignData re-renders the new-campaign form after a failed submit.
type CampaignData struct {
	Values     map[string]string
	Violations validation.Violations
	Error      string
}

// Value returns the posted value of a field, or "".
func (d CampaignData) Value(field string) string {
	return d.Values[field]
}

// SettingsData renders the account settings page.
type SettingsData struct {
	Name       string
	Email      string
	HasAvatar  bool
	Violations validation.Violations
}
