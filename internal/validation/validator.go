// Package validation wires go-playground/validator into Echo and adds the
// Brazilian-specific rules the donation forms need.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ScarMeireles/JuntosMais/internal/mask"
)

// Violations maps a form field name to the reason codes it violated. A
// single field can carry several codes at once, so pages can render every
// message that applies.
type Violations map[string][]string

// Add records a reason code against a field.
func (v Violations) Add(field, code string) {
	v[field] = append(v[field], code)
}

// Has reports whether the field violated anything.
func (v Violations) Has(field string) bool {
	return len(v[field]) > 0
}

// Any reports whether any field violated anything.
func (v Violations) Any() bool {
	return len(v) > 0
}

// Reason codes surfaced to templates. They mirror the codes the original
// form layer produced so the per-field messages stay stable.
const (
	CodeRequired      = "required"
	CodeEmail         = "invalidEmail"
	CodeMinLength     = "minlength"
	CodeMaxLength     = "maxlength"
	CodeLen           = "length"
	CodeInvalidCPF    = "invalidCpf"
	CodeInvalidCEP    = "invalidZipCode"
	CodeInvalidAmount = "invalidAmount"
	CodeMismatch      = "mismatch"
)

// CustomValidator wraps go-playground/validator to implement Echo's
// Validator interface.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the validator with the cpf, cep and brl rules registered.
// Field names in violations come from the `form` struct tag so they line up
// with the rendered inputs.
func New() *CustomValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// CPF: exactly 11 digits once the mask is stripped. The checksum digits
	// are deliberately not verified; the backend owns that decision.
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return len(mask.Digits(fl.Field().String())) == 11
	})

	// CEP: exactly 8 digits once the mask is stripped.
	_ = v.RegisterValidation("cep", func(fl validator.FieldLevel) bool {
		return len(mask.Digits(fl.Field().String())) == 8
	})

	// brl: the display amount must unmask to a finite value strictly
	// greater than zero.
	_ = v.RegisterValidation("brl", func(fl validator.FieldLevel) bool {
		d, err := mask.ParseAmount(fl.Field().String())
		return err == nil && d.IsPositive()
	})

	return &CustomValidator{validate: v}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validate.Struct(i)
}

// Check validates a struct and flattens the result into Violations. A nil
// return means the struct passed.
func (cv *CustomValidator) Check(i interface{}) Violations {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-validation errors (bad struct usage) should surface loudly
		// during development rather than masquerade as user mistakes.
		panic(err)
	}
	out := Violations{}
	for _, fe := range errs {
		out.Add(fe.Field(), codeFor(fe.Tag()))
	}
	return out
}

func codeFor(tag string) string {
	switch tag {
	case "required":
		return CodeRequired
	case "email":
		return CodeEmail
	case "min":
		return CodeMinLength
	case "max":
		return CodeMaxLength
	case "len":
		return CodeLen
	case "cpf":
		return CodeInvalidCPF
	case "cep":
		return CodeInvalidCEP
	case "brl":
		return CodeInvalidAmount
	case "eqfield":
		return CodeMismatch
	default:
		return tag
	}
}
