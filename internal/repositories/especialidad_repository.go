package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"farmacia/internal/models"
)

type EspecialidadRepository struct {
	db *gorm.DB
}

func NewEspecialidadRepository(db *gorm.DB) *EspecialidadRepository {
	return &EspecialidadRepository{db: db}
}

func (r *EspecialidadRepository) List(ctx context.Context) ([]models.Especialidad, error) {
	var especialidades []models.Especialidad
	err := r.db.WithContext(ctx).
		Preload("Medicamentos", orderByCodMedicamento).
		Order("cod_espec").
		Find(&especialidades).Error
	if err != nil {
		return nil, err
	}
	for i := range especialidades {
		especialidades[i].Medicamentos = withResumen(especialidades[i].Medicamentos)
	}
	return especialidades, nil
}

// GetByID returns nil, nil when no row has the given code.
func (r *EspecialidadRepository) GetByID(ctx context.Context, id uint) (*models.Especialidad, error) {
	var especialidad models.Especialidad
	err := r.db.WithContext(ctx).
		Preload("Medicamentos", orderByCodMedicamento).
		Where("cod_espec = ?", id).
		First(&especialidad).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	especialidad.Medicamentos = withResumen(especialidad.Medicamentos)
	return &especialidad, nil
}

func (r *EspecialidadRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Especialidad{}).
		Where("cod_espec = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *EspecialidadRepository) Create(ctx context.Context, especialidad *models.Especialidad) error {
	especialidad.Prepare()
	if err := r.db.WithContext(ctx).Omit("Medicamentos").Create(especialidad).Error; err != nil {
		return err
	}
	especialidad.Medicamentos = withResumen(especialidad.Medicamentos)
	return nil
}

// Update writes the given columns and reports how many rows matched.
func (r *EspecialidadRepository) Update(ctx context.Context, id uint, columns map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Especialidad{}).
		Where("cod_espec = ?", id).
		Updates(columns)
	return result.RowsAffected, result.Error
}

func (r *EspecialidadRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("cod_espec = ?", id).
		Delete(&models.Especialidad{})
	return result.RowsAffected, result.Error
}

func orderByCodMedicamento(tx *gorm.DB) *gorm.DB {
	return tx.Order("cod_medicamento")
}

// withResumen turns a missing nested list into an empty one so it encodes
// as [].
func withResumen(medicamentos []models.MedicamentoResumen) []models.MedicamentoResumen {
	if medicamentos == nil {
		return []models.MedicamentoResumen{}
	}
	return medicamentos
}
