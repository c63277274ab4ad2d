package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// instancia única: el validator cachea metadata de structs y es seguro para
// uso concurrente.
var v = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO según sus tags `validate`.
func Struct(s interface{}) error {
	return v.Struct(s)
}

// Messages convierte los errores del validator en mensajes cortos por campo,
// aptos para la respuesta HTTP.
func Messages(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		var b strings.Builder
		b.WriteString(fe.Field())
		b.WriteString(": falla la regla '")
		b.WriteString(fe.Tag())
		b.WriteString("'")
		if fe.Param() != "" {
			b.WriteString("=")
			b.WriteString(fe.Param())
		}
		msgs = append(msgs, b.String())
	}
	return msgs
}
