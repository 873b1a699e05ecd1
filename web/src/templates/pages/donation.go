package pages

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
	"github.com/ScarMeireles/JuntosMais/internal/view/dto/forms"
	"github.com/ScarMeireles/JuntosMais/web/src/templates/components"
)

// Donation renders the donation form for one campaign. Inputs carrying a
// data-mask attribute are masked as the donor types by the script at the
// bottom of the page.
func Donation(c domain.Campaign, data forms.DonationData) cmp.Node {
	v := data.Violations
	return g.Div(
		g.Class("max-w-2xl mx-auto"),
		g.Div(
			g.Class("bg-white rounded-xl shadow p-8"),
			g.H1(g.Class("text-2xl font-bold"), cmp.Text("Doar para "+c.Name)),
			g.P(g.Class("text-gray-600 mb-6"), cmp.Text(c.Description)),
			components.CampaignProgress(c),
			components.FormError(data.Error),
			g.Form(
				g.Method("post"),
				g.Action(fmt.Sprintf("/campanhas/%d/doar", c.ID)),
				g.Class("mt-6"),
				g.H2(g.Class("text-lg font-semibold mb-2"), cmp.Text("Seus dados")),
				components.TextField("Nome completo", "name", data.Value("name"), v, g.AutoComplete("name")),
				components.TextField("E-mail", "email", data.Value("email"), v, g.Type("email"), g.AutoComplete("email")),
				components.TextField("CPF", "cpf", data.Value("cpf"), v,
					g.Placeholder("000.000.000-00"), cmp.Attr("data-mask", "cpf")),

				g.H2(g.Class("text-lg font-semibold mb-2 mt-6"), cmp.Text("Endereço")),
				components.TextField("Rua", "street", data.Value("street"), v),
				g.Div(
					g.Class("grid grid-cols-2 gap-4"),
					components.TextField("Número", "number", data.Value("number"), v),
					components.TextField("Complemento", "complement", data.Value("complement"), v),
				),
				components.TextField("Bairro", "neighborhood", data.Value("neighborhood"), v),
				g.Div(
					g.Class("grid grid-cols-3 gap-4"),
					components.TextField("Cidade", "city", data.Value("city"), v),
					components.TextField("UF", "state", data.Value("state"), v,
						g.MaxLength("2"), cmp.Attr("data-mask", "state")),
					components.TextField("CEP", "zip_code", data.Value("zip_code"), v,
						g.Placeholder("00000-000"), cmp.Attr("data-mask", "cep")),
				),

				g.H2(g.Class("text-lg font-semibold mb-2 mt-6"), cmp.Text("Doação")),
				components.TextField("Valor (R$)", "amount", data.Value("amount"), v,
					g.Placeholder("0,00"), cmp.Attr("inputmode", "numeric"), cmp.Attr("data-mask", "amount")),

				components.SubmitButton("Doar"),
			),
		),
		maskScript(),
	)
}

// maskScript mirrors the server-side masks so the field contents the donor
// sees match what the server re-renders on a failed submit.
func maskScript() cmp.Node {
	const script = `
(function () {
  var digits = function (s) { return s.replace(/\D/g, ""); };
  var masks = {
    cpf: function (s) {
      var d = digits(s).slice(0, 11);
      if (d.length > 9) return d.slice(0, 3) + "." + d.slice(3, 6) + "." + d.slice(6, 9) + "-" + d.slice(9);
      if (d.length > 6) return d.slice(0, 3) + "." + d.slice(3, 6) + "." + d.slice(6);
      if (d.length > 3) return d.slice(0, 3) + "." + d.slice(3);
      return d;
    },
    cep: function (s) {
      var d = digits(s).slice(0, 8);
      return d.length > 5 ? d.slice(0, 5) + "-" + d.slice(5) : d;
    },
    state: function (s) { return s.toUpperCase().slice(0, 2); },
    amount: function (s) {
      var d = digits(s).slice(0, 15);
      if (!d) return "";
      var cents = d.padStart(3, "0");
      var whole = cents.slice(0, -2).replace(/^0+(?=\d)/, "");
      return whole.replace(/\B(?=(\d{3})+(?!\d))/g, ".") + "," + cents.slice(-2);
    }
  };
  document.querySelectorAll("[data-mask]").forEach(function (el) {
    var fn = masks[el.getAttribute("data-mask")];
    if (!fn) return;
    el.addEventListener("input", function () { el.value = fn(el.value); });
  });
})();
`
	return g.Script(cmp.Raw(script))
}
