package components

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
	"github.com/ScarMeireles/JuntosMais/internal/mask"
)

// CampaignProgress renders the progress block of one campaign. It carries a
// stable element ID so live updates pushed over the websocket can swap it
// in place.
func CampaignProgress(c domain.Campaign) cmp.Node {
	pct := c.ProgressPercent()
	return g.Div(
		g.ID(fmt.Sprintf("campanha-progresso-%d", c.ID)),
		g.Class("mt-3"),
		g.Div(
			g.Class("h-2 rounded bg-gray-200 overflow-hidden"),
			g.Div(
				g.Class("h-2 bg-emerald-600"),
				g.Style(fmt.Sprintf("width: %.0f%%", pct)),
			),
		),
		g.P(
			g.Class("mt-1 text-sm text-gray-600"),
			cmp.Textf("R$ %s arrecadados de R$ %s (%.0f%%)",
				mask.FormatAmount(c.AmountRaised),
				mask.FormatAmount(c.TargetAmount),
				pct,
			),
		),
	)
}

// CampaignCard renders one campaign in the listing grid.
func CampaignCard(c domain.Campaign) cmp.Node {
	return g.Div(
		g.Class("bg-white rounded-xl shadow p-6 flex flex-col"),
		g.Div(
			g.Class("flex items-center justify-between"),
			g.H2(g.Class("text-lg font-bold"), cmp.Text(c.Name)),
			cmp.If(c.Verified,
				g.Span(g.Class("text-xs bg-emerald-100 text-emerald-800 rounded px-2 py-1"), cmp.Text("Ativa")),
			),
		),
		g.P(g.Class("text-sm text-emerald-700 font-semibold"), cmp.Text(c.Category)),
		g.P(g.Class("mt-2 text-gray-700 grow"), cmp.Text(c.Description)),
		cmp.If(c.Location != "",
			g.P(g.Class("mt-2 text-sm text-gray-500"), cmp.Text(c.Location)),
		),
		CampaignProgress(c),
		g.A(
			g.Href(fmt.Sprintf("/campanhas/%d/doar", c.ID)),
			g.Class("mt-4 inline-block text-center rounded bg-emerald-700 text-white font-semibold px-4 py-2"),
			cmp.Text("Doar agora"),
		),
	)
}
