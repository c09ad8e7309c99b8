package views

import (
	"strconv"

	"farmacia/internal/models"
)

// GrupoKind selects the copy and routes of a grouping page: specialties
// and medication types share the same table + modal layout. Nuevo and Este
// agree in gender with Singular.
type GrupoKind struct {
	Title       string
	Subtitle    string
	Singular    string
	Nuevo       string
	Este        string
	Path        string
	Field       string
	Placeholder string
	Nav         string
}

var (
	KindEspecialidad = GrupoKind{
		Title:       "Especialidades",
		Subtitle:    "Gestión de Especialidades Médicas",
		Singular:    "Especialidad",
		Nuevo:       "Nueva",
		Este:        "esta",
		Path:        "/especialidades",
		Field:       "descripcionEsp",
		Placeholder: "Ej: Cardiología, Neurología, etc.",
		Nav:         "especialidades",
	}
	KindTipo = GrupoKind{
		Title:       "Tipos de Medicamento",
		Subtitle:    "Gestión de Tipos de Medicamento",
		Singular:    "Tipo de Medicamento",
		Nuevo:       "Nuevo",
		Este:        "este",
		Path:        "/tipos",
		Field:       "descripcion",
		Placeholder: "Ej: Antibiótico, Analgésico, etc.",
		Nav:         "tipos",
	}
)

type GrupoRow struct {
	Codigo      uint
	Descripcion string
	Stats       Stats
	Preview     []string
	More        int
}

type GrupoForm struct {
	Descripcion string
}

type GrupoPage struct {
	Kind   GrupoKind
	Phase  Phase
	Search string
	Rows   []GrupoRow
	Totals Totals
	Modal  Modal
	Form   GrupoForm
}

func (p GrupoPage) Nav() string { return p.Kind.Nav }

// BuildEspecialidadesPage filters the loaded specialties by search and
// computes their stats. form carries the input of a failed submit; when it
// is nil an edit modal is filled from the row being edited.
func BuildEspecialidadesPage(phase Phase, list []models.Especialidad, search string, modal Modal, form *GrupoForm) GrupoPage {
	rows := make([]GrupoRow, 0, len(list))
	for _, e := range list {
		rows = append(rows, grupoRow(e.CodEspec, e.DescripcionEsp, e.Medicamentos))
	}
	return buildGrupoPage(KindEspecialidad, phase, rows, search, modal, form)
}

func BuildTiposPage(phase Phase, list []models.TipoMedic, search string, modal Modal, form *GrupoForm) GrupoPage {
	rows := make([]GrupoRow, 0, len(list))
	for _, t := range list {
		rows = append(rows, grupoRow(t.CodTipoMed, t.Descripcion, t.Medicamentos))
	}
	return buildGrupoPage(KindTipo, phase, rows, search, modal, form)
}

func grupoRow(codigo uint, descripcion string, medicamentos []models.MedicamentoResumen) GrupoRow {
	names, more := preview(medicamentos)
	return GrupoRow{
		Codigo:      codigo,
		Descripcion: descripcion,
		Stats:       StatsFor(medicamentos),
		Preview:     names,
		More:        more,
	}
}

func buildGrupoPage(kind GrupoKind, phase Phase, rows []GrupoRow, search string, modal Modal, form *GrupoForm) GrupoPage {
	page := GrupoPage{Kind: kind, Phase: phase, Search: search, Modal: modal}
	for _, r := range rows {
		page.Totals.add(r.Stats)
	}
	page.Rows = Filter(rows, search, func(r GrupoRow) string { return r.Descripcion })

	switch {
	case form != nil:
		page.Form = *form
	case modal.IsEdit():
		found := false
		for _, r := range rows {
			if r.Codigo == modal.EditID {
				page.Form = GrupoForm{Descripcion: r.Descripcion}
				found = true
				break
			}
		}
		if !found {
			page.Modal = Modal{}
		}
	}
	return page
}

// MedicamentoForm keeps the raw modal inputs so a rejected submit can be
// shown again unchanged.
type MedicamentoForm struct {
	DescripcionMed string
	Stock          string
	PrecioVentaUni string
	CodTipoMed     string
	CodEspec       string
}

type MedicamentoPage struct {
	Phase          Phase
	Search         string
	Rows           []models.Medicamento
	Tipos          []models.TipoMedic
	Especialidades []models.Especialidad
	TotalStock     int
	Total          int
	Modal          Modal
	Form           MedicamentoForm
}

func (p MedicamentoPage) Nav() string { return "medicamentos" }

func BuildMedicamentosPage(phase Phase, list []models.Medicamento, tipos []models.TipoMedic, especialidades []models.Especialidad, search string, modal Modal, form *MedicamentoForm) MedicamentoPage {
	page := MedicamentoPage{
		Phase:          phase,
		Search:         search,
		Tipos:          tipos,
		Especialidades: especialidades,
		Total:          len(list),
		Modal:          modal,
	}
	for _, m := range list {
		page.TotalStock += m.Stock
	}
	page.Rows = Filter(list, search, func(m models.Medicamento) string { return m.DescripcionMed })

	switch {
	case form != nil:
		page.Form = *form
	case modal.IsEdit():
		found := false
		for _, m := range list {
			if m.CodMedicamento == modal.EditID {
				page.Form = MedicamentoFormFrom(m)
				found = true
				break
			}
		}
		if !found {
			page.Modal = Modal{}
		}
	}
	return page
}

func MedicamentoFormFrom(m models.Medicamento) MedicamentoForm {
	f := MedicamentoForm{
		DescripcionMed: m.DescripcionMed,
		Stock:          strconv.Itoa(m.Stock),
		PrecioVentaUni: m.PrecioVentaUni.StringFixed(2),
	}
	if m.CodTipoMed != nil {
		f.CodTipoMed = strconv.FormatUint(uint64(*m.CodTipoMed), 10)
	}
	if m.CodEspec != nil {
		f.CodEspec = strconv.FormatUint(uint64(*m.CodEspec), 10)
	}
	return f
}
