package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/ScarMeireles/JuntosMais/internal/view/dto/forms"
	"github.com/ScarMeireles/JuntosMais/web/src/templates/components"
)

// Settings renders the account page: profile data, the optional password
// change group, and the avatar upload.
func Settings(data forms.SettingsData) cmp.Node {
	v := data.Violations
	return g.Div(
		g.Class("max-w-xl mx-auto space-y-6"),
		g.H1(g.Class("text-2xl font-bold"), cmp.Text("Configurações da conta")),

		g.Div(
			g.Class("bg-white rounded-xl shadow p-8"),
			g.H2(g.Class("text-lg font-semibold mb-4"), cmp.Text("Perfil")),
			g.Form(
				g.Method("post"),
				g.Action("/configuracoes"),
				components.TextField("Nome", "name", data.Name, v, g.AutoComplete("name")),
				components.TextField("E-mail", "email", data.Email, v, g.Type("email"), g.AutoComplete("email")),

				g.H2(g.Class("text-lg font-semibold mb-1 mt-6"), cmp.Text("Alterar senha")),
				g.P(
					g.Class("text-sm text-gray-500 mb-3"),
					cmp.Text("Deixe os três campos em branco para manter a senha atual."),
				),
				components.TextField("Senha atual", "current_password", "", v,
					g.Type("password"), g.AutoComplete("current-password")),
				components.TextField("Nova senha", "new_password", "", v,
					g.Type("password"), g.AutoComplete("new-password")),
				components.TextField("Confirmar nova senha", "confirm_password", "", v,
					g.Type("password"), g.AutoComplete("new-password")),

				components.SubmitButton("Salvar alterações"),
			),
		),

		g.Div(
			g.Class("bg-white rounded-xl shadow p-8"),
			g.H2(g.Class("text-lg font-semibold mb-4"), cmp.Text("Foto de perfil")),
			cmp.If(data.HasAvatar,
				g.Img(
					g.Src("/configuracoes/avatar"),
					g.Alt("Foto de perfil"),
					g.Class("w-24 h-24 rounded-full object-cover mb-4"),
				),
			),
			g.Form(
				g.Method("post"),
				g.Action("/configuracoes/avatar"),
				g.EncType("multipart/form-data"),
				g.Class("flex items-center gap-4"),
				g.Input(
					g.Type("file"),
					g.Name("avatar"),
					g.Accept("image/*"),
					g.Class("text-sm"),
				),
				g.Button(
					g.Type("submit"),
					g.Class("rounded bg-emerald-700 text-white font-semibold px-4 py-2"),
					cmp.Text("Enviar"),
				),
			),
			cmp.If(data.HasAvatar,
				g.Form(
					g.Method("post"),
					g.Action("/configuracoes/avatar/remover"),
					g.Class("mt-3"),
					g.Button(
						g.Type("submit"),
						g.Class("text-sm text-red-700"),
						cmp.Text("Remover foto"),
					),
				),
			),
		),
	)
}
