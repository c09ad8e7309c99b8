package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"farmacia/internal/models"
)

type TipoMedicRepository struct {
	db *gorm.DB
}

func NewTipoMedicRepository(db *gorm.DB) *TipoMedicRepository {
	return &TipoMedicRepository{db: db}
}

func (r *TipoMedicRepository) List(ctx context.Context) ([]models.TipoMedic, error) {
	var tipos []models.TipoMedic
	err := r.db.WithContext(ctx).
		Preload("Medicamentos", orderByCodMedicamento).
		Order("cod_tipo_med").
		Find(&tipos).Error
	if err != nil {
		return nil, err
	}
	for i := range tipos {
		tipos[i].Medicamentos = withResumen(tipos[i].Medicamentos)
	}
	return tipos, nil
}

func (r *TipoMedicRepository) GetByID(ctx context.Context, id uint) (*models.TipoMedic, error) {
	var tipo models.TipoMedic
	err := r.db.WithContext(ctx).
		Preload("Medicamentos", orderByCodMedicamento).
		Where("cod_tipo_med = ?", id).
		First(&tipo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	tipo.Medicamentos = withResumen(tipo.Medicamentos)
	return &tipo, nil
}

func (r *TipoMedicRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.TipoMedic{}).
		Where("cod_tipo_med = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *TipoMedicRepository) Create(ctx context.Context, tipo *models.TipoMedic) error {
	tipo.Prepare()
	if err := r.db.WithContext(ctx).Omit("Medicamentos").Create(tipo).Error; err != nil {
		return err
	}
	tipo.Medicamentos = withResumen(tipo.Medicamentos)
	return nil
}

func (r *TipoMedicRepository) Update(ctx context.Context, id uint, columns map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.TipoMedic{}).
		Where("cod_tipo_med = ?", id).
		Updates(columns)
	return result.RowsAffected, result.Error
}

func (r *TipoMedicRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("cod_tipo_med = ?", id).
		Delete(&models.TipoMedic{})
	return result.RowsAffected, result.Error
}
