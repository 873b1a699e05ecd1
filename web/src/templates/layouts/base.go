package layouts

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/ScarMeireles/JuntosMais/internal/session"
	"github.com/ScarMeireles/JuntosMais/internal/view"
)

// Base wraps page content in the shared document shell: head, navigation
// bar with the session-dependent links, and the flash message area.
func Base(title string, flashes view.FlashData, state session.State, content cmp.Node) cmp.Node {
	return g.HTML(
		g.Lang("pt-BR"),
		g.Head(
			g.Meta(g.Charset("utf-8")),
			g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
			g.TitleEl(cmp.Text(CalculateTitle(title))),
			g.Link(g.Rel("stylesheet"), g.Href("/static/css/app.css")),
			g.Script(g.Src("https://unpkg.com/htmx.org@1.9.12"), g.Defer()),
		),
		g.Body(
			g.Class("bg-gray-50 text-gray-900 min-h-screen"),
			navBar(state),
			flashArea(flashes),
			g.Main(g.Class("container mx-auto px-4 py-6"), content),
		),
	)
}

// CalculateTitle appends the site name to non-empty page titles.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - JuntosMais"
	}
	return "JuntosMais"
}

func navBar(state session.State) cmp.Node {
	return g.Header(
		g.Class("bg-emerald-700 text-white shadow"),
		g.Nav(
			g.Class("container mx-auto px-4 py-3 flex items-center justify-between"),
			g.A(g.Href("/"), g.Class("text-xl font-bold"), cmp.Text("JuntosMais")),
			g.Div(
				g.Class("flex items-center gap-4"),
				g.A(g.Href("/"), cmp.Text("Campanhas")),
				cmp.If(state.Authenticated, cmp.Group([]cmp.Node{
					g.A(g.Href("/campanhas/nova"), cmp.Text("Nova campanha")),
					g.A(g.Href("/configuracoes"), cmp.Text("Configurações")),
					g.A(g.Href("/logout"), cmp.Text("Sair")),
				})),
				cmp.If(!state.Authenticated,
					g.A(g.Href("/login"), g.Class("font-semibold"), cmp.Text("Entrar")),
				),
			),
		),
	)
}

func flashArea(flashes view.FlashData) cmp.Node {
	if len(flashes.Success)+len(flashes.Error)+len(flashes.Notice) == 0 {
		return nil
	}
	return g.Div(
		g.Class("container mx-auto px-4 pt-4 space-y-2"),
		cmp.Map(flashes.Success, func(msg string) cmp.Node {
			return g.Div(g.Class("rounded bg-emerald-100 text-emerald-900 px-4 py-2"), cmp.Text(msg))
		}),
		cmp.Map(flashes.Error, func(msg string) cmp.Node {
			return g.Div(g.Class("rounded bg-red-100 text-red-900 px-4 py-2"), cmp.Text(msg))
		}),
		cmp.Map(flashes.Notice, func(msg string) cmp.Node {
			return g.Div(g.Class("rounded bg-amber-100 text-amber-900 px-4 py-2"), cmp.Text(msg))
		}),
	)
}
