// Package live pushes campaign progress updates to connected browsers.
// Donation handlers publish events on the bus; the notifier re-renders the
// affected campaign's progress block and fans it out over websockets.
package live

import "encoding/json"

// TopicDonationCreated carries DonationCreated events.
const TopicDonationCreated = "donations.created"

// DonationCreated announces that the backend accepted a donation.
type DonationCreated struct {
	DonationID int64  `json:"donation_id"`
	CampaignID int64  `json:"campaign_id"`
	Amount     string `json:"amount"`
}

// Encode serializes the event for the bus.
func (e DonationCreated) Encode() ([]byte, error) {
	return json.Marshal(e)
}
