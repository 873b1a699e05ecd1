package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/ScarMeireles/JuntosMais/internal/view/dto/forms"
	"github.com/ScarMeireles/JuntosMais/web/src/templates/components"
)

// CampaignNew renders the campaign creation form.
func CampaignNew(data forms.CampaignData) cmp.Node {
	v := data.Violations
	return g.Div(
		g.Class("max-w-2xl mx-auto bg-white rounded-xl shadow p-8"),
		g.H1(g.Class("text-2xl font-bold mb-6"), cmp.Text("Nova campanha")),
		components.FormError(data.Error),
		g.Form(
			g.Method("post"),
			g.Action("/campanhas/nova"),
			components.TextField("Nome", "name", data.Value("name"), v),
			components.TextField("Categoria", "category", data.Value("category"), v),
			g.Div(
				g.Class("mb-4"),
				g.Label(g.For("description"), g.Class("block text-sm font-semibold"), cmp.Text("Descrição")),
				g.Textarea(
					g.Name("description"),
					g.ID("description"),
					g.Rows("4"),
					g.Class("mt-1 w-full rounded border border-gray-300 px-3 py-2"),
					cmp.Text(data.Value("description")),
				),
				components.FieldErrors(v, "description"),
			),
			components.TextField("Localização", "location", data.Value("location"), v),
			components.TextField("Telefone", "phone", data.Value("phone"), v),
			components.TextField("Meta (R$)", "target_amount", data.Value("target_amount"), v,
				g.Placeholder("0,00"), cmp.Attr("inputmode", "numeric"), cmp.Attr("data-mask", "amount")),
			components.TextField("Data de encerramento", "end_date", data.Value("end_date"), v,
				g.Type("date")),
			components.SubmitButton("Criar campanha"),
		),
		maskScript(),
	)
}
