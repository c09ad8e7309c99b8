package services

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Patch is a partial update body keyed by JSON field name. Only the keys
// present are written.
type Patch map[string]json.RawMessage

type fieldKind int

const (
	kindText fieldKind = iota
	kindInt
	kindDecimal
	kindRef
)

type patchField struct {
	column string
	kind   fieldKind
}

type patchSchema struct {
	writable map[string]patchField
	readOnly map[string]bool
}

var especialidadPatch = patchSchema{
	writable: map[string]patchField{
		"descripcionEsp": {column: "descripcion_esp", kind: kindText},
	},
	readOnly: map[string]bool{"CodEspec": true, "medicamentos": true},
}

var tipoMedicPatch = patchSchema{
	writable: map[string]patchField{
		"descripcion": {column: "descripcion", kind: kindText},
	},
	readOnly: map[string]bool{"CodTipoMed": true, "medicamentos": true},
}

var medicamentoPatch = patchSchema{
	writable: map[string]patchField{
		"descripcionMed": {column: "descripcion_med", kind: kindText},
		"stock":          {column: "stock", kind: kindInt},
		"precioVentaUni": {column: "precio_venta_uni", kind: kindDecimal},
		"CodTipoMed":     {column: "cod_tipo_med", kind: kindRef},
		"CodEspec":       {column: "cod_espec", kind: kindRef},
	},
	readOnly: map[string]bool{"CodMedicamento": true, "tipoMedic": true, "especialidad": true},
}

// columns converts the patch into a column -> value map. Read-only keys
// are skipped; unknown keys and values of the wrong type are rejected.
func (p Patch) columns(schema patchSchema) (map[string]any, error) {
	out := make(map[string]any, len(p))
	for key, raw := range p {
		if schema.readOnly[key] {
			continue
		}
		field, ok := schema.writable[key]
		if !ok {
			return nil, invalid("Campo desconocido: %s", key)
		}

		switch field.kind {
		case kindText:
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, invalid("Valor inválido para %s", key)
			}
			s = strings.TrimSpace(s)
			if s == "" {
				return nil, invalid("El campo %s no puede estar vacío", key)
			}
			out[field.column] = s
		case kindInt:
			var n int
			if err := json.Unmarshal(raw, &n); err != nil || isNull(raw) {
				return nil, invalid("Valor inválido para %s", key)
			}
			out[field.column] = n
		case kindDecimal:
			var d decimal.Decimal
			if err := json.Unmarshal(raw, &d); err != nil || isNull(raw) {
				return nil, invalid("Valor inválido para %s", key)
			}
			out[field.column] = d
		case kindRef:
			var ref *uint
			if err := json.Unmarshal(raw, &ref); err != nil {
				return nil, invalid("Valor inválido para %s", key)
			}
			if ref == nil {
				out[field.column] = nil
			} else {
				out[field.column] = *ref
			}
		}
	}
	return out, nil
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
