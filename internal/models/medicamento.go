package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Medicamento is a stocked medication. CodTipoMed and CodEspec are nullable
// foreign keys; TipoMedic and Especialidad are only set when joined.
type Medicamento struct {
	CodMedicamento uint            `gorm:"column:cod_medicamento;primaryKey;autoIncrement" json:"CodMedicamento"`
	DescripcionMed string          `gorm:"column:descripcion_med;type:text;not null" json:"descripcionMed"`
	Stock          int             `gorm:"column:stock;not null;default:0" json:"stock"`
	PrecioVentaUni decimal.Decimal `gorm:"column:precio_venta_uni;type:decimal(10,2);not null;default:0" json:"precioVentaUni"`
	CodTipoMed     *uint           `gorm:"column:cod_tipo_med;index" json:"CodTipoMed"`
	CodEspec       *uint           `gorm:"column:cod_espec;index" json:"CodEspec"`

	TipoMedic    *TipoMedicRef    `gorm:"foreignKey:CodTipoMed;references:CodTipoMed" json:"tipoMedic,omitempty"`
	Especialidad *EspecialidadRef `gorm:"foreignKey:CodEspec;references:CodEspec" json:"especialidad,omitempty"`
}

func (Medicamento) TableName() string { return "medicamento" }

func (m *Medicamento) Prepare() {
	m.DescripcionMed = strings.TrimSpace(m.DescripcionMed)
}

// MedicamentoResumen is the projection of a medication nested under its
// specialty or type.
type MedicamentoResumen struct {
	CodMedicamento uint            `gorm:"column:cod_medicamento;primaryKey" json:"CodMedicamento"`
	DescripcionMed string          `gorm:"column:descripcion_med" json:"descripcionMed"`
	Stock          int             `gorm:"column:stock" json:"stock"`
	PrecioVentaUni decimal.Decimal `gorm:"column:precio_venta_uni" json:"precioVentaUni"`
	CodTipoMed     *uint           `gorm:"column:cod_tipo_med" json:"-"`
	CodEspec       *uint           `gorm:"column:cod_espec" json:"-"`
}

func (MedicamentoResumen) TableName() string { return "medicamento" }
