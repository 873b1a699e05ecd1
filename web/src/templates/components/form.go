package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/ScarMeireles/JuntosMais/internal/validation"
)

// messages maps the validation reason codes to the pt-BR texts shown under
// the fields.
var messages = map[string]string{
	validation.CodeRequired:      "Campo obrigatório.",
	validation.CodeEmail:         "Informe um e-mail válido.",
	validation.CodeMinLength:     "Valor muito curto.",
	validation.CodeMaxLength:     "Valor muito longo.",
	validation.CodeLen:           "Tamanho inválido.",
	validation.CodeInvalidCPF:    "CPF inválido.",
	validation.CodeInvalidCEP:    "CEP inválido.",
	validation.CodeInvalidAmount: "Informe um valor maior que zero.",
	validation.CodeMismatch:      "Os campos não coincidem.",
}

// FieldErrors renders the violation messages of one field, or nothing.
func FieldErrors(violations validation.Violations, field string) cmp.Node {
	if !violations.Has(field) {
		return nil
	}
	return g.Div(
		g.Class("mt-1 text-sm text-red-700"),
		cmp.Map(violations[field], func(code string) cmp.Node {
			msg, ok := messages[code]
			if !ok {
				msg = "Valor inválido."
			}
			return g.P(cmp.Text(msg))
		}),
	)
}

// TextField renders a labeled input with its violations. Extra attributes
// (type, placeholder, mask hooks) are appended to the input element.
func TextField(label, name, value string, violations validation.Violations, attrs ...cmp.Node) cmp.Node {
	inputClass := "mt-1 w-full rounded border px-3 py-2"
	if violations.Has(name) {
		inputClass += " border-red-500"
	} else {
		inputClass += " border-gray-300"
	}
	input := []cmp.Node{
		g.Type("text"),
		g.Name(name),
		g.ID(name),
		g.Value(value),
		g.Class(inputClass),
	}
	input = append(input, attrs...)
	return g.Div(
		g.Class("mb-4"),
		g.Label(g.For(name), g.Class("block text-sm font-semibold"), cmp.Text(label)),
		g.Input(input...),
		FieldErrors(violations, name),
	)
}

// SubmitButton renders the primary form action.
func SubmitButton(label string) cmp.Node {
	return g.Button(
		g.Type("submit"),
		g.Class("w-full rounded bg-emerald-700 text-white font-semibold px-4 py-2"),
		cmp.Text(label),
	)
}

// FormError renders a submission-level error banner, or nothing.
func FormError(msg string) cmp.Node {
	if msg == "" {
		return nil
	}
	return g.Div(
		g.Class("mb-4 rounded bg-red-100 text-red-900 px-4 py-2"),
		cmp.Text(msg),
	)
}
