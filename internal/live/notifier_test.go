package live_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
	"github.com/ScarMeireles/JuntosMais/internal/hub"
	"github.com/ScarMeireles/JuntosMais/internal/live"
	"github.com/ScarMeireles/JuntosMais/internal/pubsub"
	"github.com/ScarMeireles/JuntosMais/internal/rendering"
)

type staticDirectory struct {
	campaign domain.Campaign
}

func (d staticDirectory) ListCampaigns(context.Context) ([]domain.Campaign, error) {
	return []domain.Campaign{d.campaign}, nil
}

func (d staticDirectory) GetCampaign(_ context.Context, id int64) (domain.Campaign, error) {
	if id != d.campaign.ID {
		return domain.Campaign{}, domain.ErrNotFound
	}
	return d.campaign, nil
}

func (d staticDirectory) CreateCampaign(_ context.Context, _ string, c domain.Campaign) (domain.Campaign, error) {
	return c, nil
}

// TestDonationEventBecomesFragment runs the full pipeline: an event on the
// bus turns into a rendered progress fragment on a hub subscriber.
func TestDonationEventBecomesFragment(t *testing.T) {
	directory := staticDirectory{campaign: domain.Campaign{
		ID:           7,
		Name:         "Patas Felizes",
		TargetAmount: decimal.NewFromInt(200),
		AmountRaised: decimal.NewFromInt(50),
	}}

	progressHub := hub.NewHub()
	go progressHub.Run()
	defer progressHub.Stop()

	sub := &hub.Subscriber{Send: make(chan []byte, 1)}
	progressHub.Register <- sub

	bus := pubsub.NewGoChannelBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier := live.NewNotifier(directory, rendering.NewUniversalRenderer(), progressHub)
	require.NoError(t, notifier.Start(ctx, bus))

	event := live.DonationCreated{DonationID: 42, CampaignID: 7, Amount: "25.00"}
	payload, err := event.Encode()
	require.NoError(t, err)
	require.NoError(t, bus.Publish(ctx, pubsub.Message{
		Topic:   live.TopicDonationCreated,
		Payload: payload,
	}))

	select {
	case fragment := <-sub.Send:
		html := string(fragment)
		assert.Contains(t, html, `id="campanha-progresso-7"`)
		assert.Contains(t, html, "25%")
	case <-time.After(2 * time.Second):
		t.Fatal("no fragment broadcast")
	}
}
