package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/ScarMeireles/JuntosMais/internal/validation"
	"github.com/ScarMeireles/JuntosMais/internal/view/dto/forms"
	"github.com/ScarMeireles/JuntosMais/web/src/templates/components"
)

// Login renders the sign-in form.
func Login(data forms.LoginData) cmp.Node {
	return authCard("Entrar",
		g.Form(
			g.Method("post"),
			g.Action("/login"),
			components.TextField("E-mail", "email", data.Email, nil, g.Type("email"), g.AutoComplete("email")),
			components.TextField("Senha", "password", "", nil, g.Type("password"), g.AutoComplete("current-password")),
			components.SubmitButton("Entrar"),
		),
		g.P(
			g.Class("mt-4 text-sm text-center text-gray-600"),
			cmp.Text("Ainda não tem conta? "),
			g.A(g.Href("/cadastro"), g.Class("text-emerald-700 font-semibold"), cmp.Text("Cadastre-se")),
		),
	)
}

// Register renders the account creation form.
func Register(data forms.RegisterData, violations validation.Violations) cmp.Node {
	return authCard("Criar conta",
		g.Form(
			g.Method("post"),
			g.Action("/cadastro"),
			components.TextField("Nome", "name", data.Name, violations, g.AutoComplete("name")),
			components.TextField("E-mail", "email", data.Email, violations, g.Type("email"), g.AutoComplete("email")),
			components.TextField("CPF", "cpf", data.CPF, violations,
				g.Placeholder("000.000.000-00"), cmp.Attr("data-mask", "cpf")),
			components.TextField("Senha", "password", "", violations, g.Type("password"), g.AutoComplete("new-password")),
			components.TextField("Confirmar senha", "confirm_password", "", violations,
				g.Type("password"), g.AutoComplete("new-password")),
			components.SubmitButton("Criar conta"),
		),
		g.P(
			g.Class("mt-4 text-sm text-center text-gray-600"),
			cmp.Text("Já tem conta? "),
			g.A(g.Href("/login"), g.Class("text-emerald-700 font-semibold"), cmp.Text("Entrar")),
		),
		maskScript(),
	)
}

func authCard(title string, content ...cmp.Node) cmp.Node {
	nodes := []cmp.Node{
		g.Class("max-w-md mx-auto bg-white rounded-xl shadow p-8 mt-8"),
		g.H1(g.Class("text-2xl font-bold mb-6 text-center"), cmp.Text(title)),
	}
	nodes = append(nodes, content...)
	return g.Div(nodes...)
}
