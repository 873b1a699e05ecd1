package live

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
	"github.com/ScarMeireles/JuntosMais/internal/hub"
	"github.com/ScarMeireles/JuntosMais/internal/pubsub"
	"github.com/ScarMeireles/JuntosMais/internal/rendering"
	"github.com/ScarMeireles/JuntosMais/web/src/templates/components"
)

// Notifier turns donation events into rendered progress fragments.
type Notifier struct {
	campaigns domain.CampaignDirectory
	renderer  rendering.Renderer
	hub       *hub.Hub
}

// NewNotifier creates a Notifier.
func NewNotifier(campaigns domain.CampaignDirectory, renderer rendering.Renderer, h *hub.Hub) *Notifier {
	return &Notifier{campaigns: campaigns, renderer: renderer, hub: h}
}

// Start subscribes the notifier on the bus. It returns once the
// subscription is registered; handling runs until ctx is canceled.
func (n *Notifier) Start(ctx context.Context, sub pubsub.Subscriber) error {
	return sub.Subscribe(ctx, TopicDonationCreated, n.handle)
}

// handle refetches the campaign so the broadcast progress reflects the
// backend's totals, not a local guess.
func (n *Notifier) handle(ctx context.Context, msg pubsub.Message) error {
	var event DonationCreated
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return fmt.Errorf("decoding donation event: %w", err)
	}

	campaign, err := n.campaigns.GetCampaign(ctx, event.CampaignID)
	if err != nil {
		return fmt.Errorf("fetching campaign %d: %w", event.CampaignID, err)
	}

	fragment, err := n.renderer.RenderComponent(ctx, components.CampaignProgress(campaign))
	if err != nil {
		return fmt.Errorf("rendering progress fragment: %w", err)
	}

	slog.Debug("Broadcasting progress update",
		"campaign_id", campaign.ID, "donation_id", event.DonationID)
	n.hub.Broadcast <- fragment
	return nil
}
