package views

import (
	"embed"
	"html/template"
	"strconv"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	GrupoTemplate        = "grupo.html"
	MedicamentosTemplate = "medicamentos.html"
)

var funcs = template.FuncMap{
	"price": func(d decimal.Decimal) string { return d.StringFixed(2) },
	// selected compares a raw form value with an option code.
	"selected": func(value string, code uint) bool {
		return value == strconv.FormatUint(uint64(code), 10)
	},
}

// Templates parses the embedded page templates. It panics on a malformed
// template since they ship with the binary.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
