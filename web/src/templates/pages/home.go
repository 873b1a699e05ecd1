package pages

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
	"github.com/ScarMeireles/JuntosMais/web/src/templates/components"
)

// AllCategories is the sentinel filter entry that clears the category
// filter.
const AllCategories = "Todos"

// Home renders the campaign listing with the category filter bar. The grid
// itself is a separate fragment so the filter buttons can swap it over
// htmx without a full page load.
func Home(campaigns []domain.Campaign, categories []string, selected string) cmp.Node {
	return g.Div(
		g.H1(g.Class("text-3xl font-extrabold mb-1"), cmp.Text("Campanhas")),
		g.P(g.Class("text-gray-600 mb-4"), cmp.Text("Escolha uma causa e faça sua doação.")),
		filterBar(categories, selected),
		CampaignGrid(campaigns),
		progressSocketScript(),
	)
}

func filterBar(categories []string, selected string) cmp.Node {
	return g.Div(
		g.Class("flex flex-wrap gap-2 mb-6"),
		cmp.Map(categories, func(cat string) cmp.Node {
			classes := "rounded-full border px-4 py-1 text-sm"
			if cat == selected || (cat == AllCategories && selected == "") {
				classes += " bg-emerald-700 text-white border-emerald-700"
			} else {
				classes += " bg-white text-gray-700 border-gray-300"
			}
			query := "categoria=" + cat
			if cat == AllCategories || cat == selected {
				// Clicking the active filter (or the sentinel) clears it.
				query = ""
			}
			return g.Button(
				g.Type("button"),
				g.Class(classes),
				hx.Get("/?"+query),
				hx.Target("#campanhas-grid"),
				hx.Swap("outerHTML"),
				hx.PushURL("true"),
				cmp.Text(cat),
			)
		}),
	)
}

// CampaignGrid is the swap target for the category filter.
func CampaignGrid(campaigns []domain.Campaign) cmp.Node {
	if len(campaigns) == 0 {
		return g.Div(
			g.ID("campanhas-grid"),
			g.Class("text-gray-600 py-12 text-center"),
			cmp.Text("Nenhuma campanha encontrada."),
		)
	}
	return g.Div(
		g.ID("campanhas-grid"),
		g.Class("grid gap-6 md:grid-cols-2 lg:grid-cols-3"),
		cmp.Map(campaigns, components.CampaignCard),
	)
}

// progressSocketScript keeps the progress blocks current: fragments pushed
// over the websocket replace the element with the matching ID.
func progressSocketScript() cmp.Node {
	const script = `
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var sock = new WebSocket(proto + location.host + "/ws/progresso");
  sock.onmessage = function (ev) {
    var tpl = document.createElement("template");
    tpl.innerHTML = ev.data.trim();
    var incoming = tpl.content.firstElementChild;
    if (!incoming || !incoming.id) return;
    var current = document.getElementById(incoming.id);
    if (current) current.replaceWith(incoming);
  };
})();
`
	return g.Script(cmp.Raw(script))
}
