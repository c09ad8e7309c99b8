package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"farmacia/internal/models"
)

// MedicamentoFilter narrows List to one specialty and/or type. Nil fields
// do not filter.
type MedicamentoFilter struct {
	CodEspec   *uint
	CodTipoMed *uint
}

func (f MedicamentoFilter) IsZero() bool {
	return f.CodEspec == nil && f.CodTipoMed == nil
}

type MedicamentoRepository struct {
	db *gorm.DB
}

func NewMedicamentoRepository(db *gorm.DB) *MedicamentoRepository {
	return &MedicamentoRepository{db: db}
}

func (r *MedicamentoRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("TipoMedic").
		Preload("Especialidad")
}

func (r *MedicamentoRepository) List(ctx context.Context, filter MedicamentoFilter) ([]models.Medicamento, error) {
	query := r.joined(ctx)
	if filter.CodEspec != nil {
		query = query.Where("cod_espec = ?", *filter.CodEspec)
	}
	if filter.CodTipoMed != nil {
		query = query.Where("cod_tipo_med = ?", *filter.CodTipoMed)
	}

	var medicamentos []models.Medicamento
	if err := query.Order("cod_medicamento").Find(&medicamentos).Error; err != nil {
		return nil, err
	}
	return medicamentos, nil
}

// GetByID returns the medication joined with its type and specialty, or
// nil, nil when it does not exist.
func (r *MedicamentoRepository) GetByID(ctx context.Context, id uint) (*models.Medicamento, error) {
	var medicamento models.Medicamento
	err := r.joined(ctx).Where("cod_medicamento = ?", id).First(&medicamento).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicamento, nil
}

func (r *MedicamentoRepository) Create(ctx context.Context, medicamento *models.Medicamento) error {
	medicamento.Prepare()
	return r.db.WithContext(ctx).Omit("TipoMedic", "Especialidad").Create(medicamento).Error
}

func (r *MedicamentoRepository) Update(ctx context.Context, id uint, columns map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Medicamento{}).
		Where("cod_medicamento = ?", id).
		Updates(columns)
	return result.RowsAffected, result.Error
}

func (r *MedicamentoRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("cod_medicamento = ?", id).
		Delete(&models.Medicamento{})
	return result.RowsAffected, result.Error
}

func (r *MedicamentoRepository) CountByEspecialidad(ctx context.Context, codEspec uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Medicamento{}).
		Where("cod_espec = ?", codEspec).
		Count(&count).Error
	return count, err
}

func (r *MedicamentoRepository) CountByTipoMedic(ctx context.Context, codTipoMed uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Medicamento{}).
		Where("cod_tipo_med = ?", codTipoMed).
		Count(&count).Error
	return count, err
}
