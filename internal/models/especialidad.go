package models

import "strings"

// Especialidad is a medical specialty. Medicamentos holds the summaries of the
// medications that reference it; it is an empty list for a specialty with none.
type Especialidad struct {
	CodEspec       uint                 `gorm:"column:cod_espec;primaryKey;autoIncrement" json:"CodEspec"`
	DescripcionEsp string               `gorm:"column:descripcion_esp;type:text;not null" json:"descripcionEsp"`
	Medicamentos   []MedicamentoResumen `gorm:"foreignKey:CodEspec;references:CodEspec" json:"medicamentos"`
}

func (Especialidad) TableName() string { return "especialidad" }

func (e *Especialidad) Prepare() {
	e.DescripcionEsp = strings.TrimSpace(e.DescripcionEsp)
}

// EspecialidadRef is the specialty joined onto a medication, without the
// nested list.
type EspecialidadRef struct {
	CodEspec       uint   `gorm:"column:cod_espec;primaryKey" json:"CodEspec"`
	DescripcionEsp string `gorm:"column:descripcion_esp" json:"descripcionEsp"`
}

func (EspecialidadRef) TableName() string { return "especialidad" }
