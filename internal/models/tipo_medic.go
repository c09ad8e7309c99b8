package models

import "strings"

// TipoMedic is a medication category (antibiotic, analgesic, ...).
type TipoMedic struct {
	CodTipoMed   uint                 `gorm:"column:cod_tipo_med;primaryKey;autoIncrement" json:"CodTipoMed"`
	Descripcion  string               `gorm:"column:descripcion;type:text;not null" json:"descripcion"`
	Medicamentos []MedicamentoResumen `gorm:"foreignKey:CodTipoMed;references:CodTipoMed" json:"medicamentos"`
}

func (TipoMedic) TableName() string { return "tipo_medic" }

func (t *TipoMedic) Prepare() {
	t.Descripcion = strings.TrimSpace(t.Descripcion)
}

type TipoMedicRef struct {
	CodTipoMed  uint   `gorm:"column:cod_tipo_med;primaryKey" json:"CodTipoMed"`
	Descripcion string `gorm:"column:descripcion" json:"descripcion"`
}

func (TipoMedicRef) TableName() string { return "tipo_medic" }
