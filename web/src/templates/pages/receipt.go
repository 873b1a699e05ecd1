package pages

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
	"github.com/ScarMeireles/JuntosMais/internal/mask"
	"github.com/ScarMeireles/JuntosMais/internal/receipt"
)

// Receipt renders the post-donation confirmation: the decorative payment
// code, the receipt payload, and the confirm/cancel actions while the
// donation is still pending.
func Receipt(c domain.Campaign, r receipt.Receipt, pattern receipt.Pattern, status string) cmp.Node {
	amount, err := mask.ParseAmount(r.Amount)
	display := r.Amount
	if err == nil {
		display = mask.FormatAmount(amount)
	}
	return g.Div(
		g.Class("max-w-2xl mx-auto bg-white rounded-xl shadow p-8"),
		g.H1(g.Class("text-2xl font-bold"), cmp.Text("Doação registrada!")),
		g.P(
			g.Class("text-gray-600 mt-1"),
			cmp.Textf("R$ %s para %s", display, c.Name),
		),
		statusBadge(status),
		g.Div(
			g.Class("mt-6 flex flex-col items-center"),
			patternGrid(pattern),
			g.P(
				g.Class("mt-2 text-sm text-gray-500"),
				cmp.Text("Código ilustrativo. Pague via "+r.PaymentMethod+" usando a referência abaixo."),
			),
		),
		g.Dl(
			g.Class("mt-6 grid grid-cols-[auto_1fr] gap-x-4 gap-y-1 text-sm"),
			detail("Referência", r.Reference),
			detail("Doador", r.Name),
			detail("CPF", r.CPF),
			detail("Endereço", r.FullAddress()),
			detail("Data", r.Timestamp.Format("02/01/2006 15:04")),
		),
		g.Details(
			g.Class("mt-4 text-xs text-gray-500"),
			g.Summary(cmp.Text("Dados do comprovante")),
			g.Pre(g.Class("mt-2 whitespace-pre-wrap break-all"), cmp.Text(r.Payload())),
		),
		cmp.If(status == domain.StatusPending,
			g.Div(
				g.Class("mt-6 flex gap-4"),
				g.Form(
					g.Method("post"),
					g.Action(fmt.Sprintf("/doacoes/%d/confirmar", r.DonationID)),
					g.Class("grow"),
					g.Button(
						g.Type("submit"),
						g.Class("w-full rounded bg-emerald-700 text-white font-semibold px-4 py-2"),
						cmp.Text("Já paguei"),
					),
				),
				g.Form(
					g.Method("post"),
					g.Action(fmt.Sprintf("/doacoes/%d/cancelar", r.DonationID)),
					g.Class("grow"),
					g.Button(
						g.Type("submit"),
						g.Class("w-full rounded border border-gray-300 text-gray-700 px-4 py-2"),
						cmp.Text("Cancelar doação"),
					),
				),
			),
		),
		g.A(
			g.Href("/"),
			g.Class("mt-6 inline-block text-emerald-700 font-semibold"),
			cmp.Text("Voltar às campanhas"),
		),
	)
}

func statusBadge(status string) cmp.Node {
	label, classes := "Aguardando pagamento", "bg-amber-100 text-amber-900"
	switch status {
	case domain.StatusConfirmed:
		label, classes = "Pagamento confirmado", "bg-emerald-100 text-emerald-900"
	case domain.StatusCancelled:
		label, classes = "Doação cancelada", "bg-gray-200 text-gray-700"
	}
	return g.Span(
		g.Class("mt-2 inline-block rounded px-3 py-1 text-sm font-semibold "+classes),
		cmp.Text(label),
	)
}

func patternGrid(p receipt.Pattern) cmp.Node {
	return g.Div(
		g.Class("border-4 border-gray-900 p-1 bg-white"),
		cmp.Map(p, func(row []bool) cmp.Node {
			return g.Div(
				g.Class("flex"),
				cmp.Map(row, func(filled bool) cmp.Node {
					cell := "w-2 h-2"
					if filled {
						cell += " bg-gray-900"
					}
					return g.Div(g.Class(cell))
				}),
			)
		}),
	)
}

func detail(term, value string) cmp.Node {
	return cmp.Group([]cmp.Node{
		g.Dt(g.Class("font-semibold text-gray-700"), cmp.Text(term)),
		g.Dd(g.Class("text-gray-600"), cmp.Text(value)),
	})
}
