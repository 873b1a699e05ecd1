// Package mask holds the input masks applied to donation and registration
// form fields. Every function is total: garbage in yields an empty or
// best-effort string, never an error.
package mask

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// brl formats numbers with the Brazilian convention: comma as the decimal
// separator, dot as the thousands separator.
var brl = message.NewPrinter(language.BrazilianPortuguese)

// Digits strips everything that is not an ASCII digit.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CPF masks a Brazilian tax ID as 000.000.000-00, inserting separators only
// once enough digits are present. Input beyond 11 digits is truncated, so
// the mask is idempotent.
func CPF(s string) string {
	d := Digits(s)
	if len(d) > 11 {
		d = d[:11]
	}
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "." + d[3:]
	case len(d) <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

// ZipCode masks a CEP as 00000-000, truncating past 8 digits.
func ZipCode(s string) string {
	d := Digits(s)
	if len(d) > 8 {
		d = d[:8]
	}
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

// State uppercases the two-letter state code as the user types it.
func State(s string) string {
	return strings.ToUpper(s)
}

// Amount interprets the typed digits as a cent count and renders it as a
// pt-BR currency amount with exactly two decimals ("1000" -> "10,00").
// No digits at all yields the empty string. Inputs are capped at 15 digits;
// nobody donates more than a quadrillion reais.
func Amount(s string) string {
	d := Digits(s)
	if d == "" {
		return ""
	}
	if len(d) > 15 {
		d = d[:15]
	}
	cents, err := strconv.ParseInt(d, 10, 64)
	if err != nil {
		return ""
	}
	value, _ := decimal.New(cents, -2).Float64()
	return brl.Sprint(number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatAmount renders a decimal amount in the pt-BR convention with two
// decimals, without a currency symbol.
func FormatAmount(d decimal.Decimal) string {
	value, _ := d.Float64()
	return brl.Sprint(number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// ParseAmount undoes the display mask: thousands dots are dropped and the
// decimal comma becomes a dot before parsing. It is the only mask helper
// that can fail, because validators need to know the difference between an
// unparsable amount and a non-positive one.
func ParseAmount(display string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(display), ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")
	return decimal.NewFromString(clean)
}
