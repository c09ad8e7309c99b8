package services

import (
	"context"
	"fmt"
	"strings"

	"farmacia/internal/models"
	"farmacia/internal/repositories"
)

type TipoMedicService struct {
	tipoRepo        *repositories.TipoMedicRepository
	medicamentoRepo *repositories.MedicamentoRepository
	cache           Cache
}

func NewTipoMedicService(
	tipoRepo *repositories.TipoMedicRepository,
	medicamentoRepo *repositories.MedicamentoRepository,
	cache Cache,
) *TipoMedicService {
	return &TipoMedicService{
		tipoRepo:        tipoRepo,
		medicamentoRepo: medicamentoRepo,
		cache:           orNop(cache),
	}
}

type CreateTipoMedicRequest struct {
	Descripcion string `json:"descripcion"`
}

func (s *TipoMedicService) List(ctx context.Context) ([]models.TipoMedic, error) {
	list, err := cachedList(ctx, s.cache, cacheKeyTipos, s.tipoRepo.List)
	if err != nil {
		return nil, fmt.Errorf("failed to list tipos: %w", err)
	}
	return list, nil
}

func (s *TipoMedicService) Get(ctx context.Context, id uint) (*models.TipoMedic, error) {
	tipo, err := s.tipoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tipo %d: %w", id, err)
	}
	if tipo == nil {
		return nil, notFound(MsgTipoNoEncontrado)
	}
	return tipo, nil
}

func (s *TipoMedicService) Create(ctx context.Context, req CreateTipoMedicRequest) (*models.TipoMedic, error) {
	if strings.TrimSpace(req.Descripcion) == "" {
		return nil, invalid("La descripción del tipo de medicamento es obligatoria")
	}

	tipo := &models.TipoMedic{Descripcion: req.Descripcion}
	if err := s.tipoRepo.Create(ctx, tipo); err != nil {
		return nil, fmt.Errorf("failed to create tipo: %w", err)
	}
	invalidate(ctx, s.cache)
	return tipo, nil
}

func (s *TipoMedicService) Update(ctx context.Context, id uint, patch Patch) (*models.TipoMedic, error) {
	columns, err := patch.columns(tipoMedicPatch)
	if err != nil {
		return nil, err
	}

	exists, err := s.tipoRepo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check tipo %d: %w", id, err)
	}
	if !exists {
		return nil, notFound(MsgTipoNoEncontrado)
	}

	if len(columns) > 0 {
		if _, err := s.tipoRepo.Update(ctx, id, columns); err != nil {
			return nil, fmt.Errorf("failed to update tipo %d: %w", id, err)
		}
		invalidate(ctx, s.cache)
	}
	return s.Get(ctx, id)
}

// Delete has the same non-atomic count-then-delete guard as
// EspecialidadService.Delete.
func (s *TipoMedicService) Delete(ctx context.Context, id uint) error {
	count, err := s.medicamentoRepo.CountByTipoMedic(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count medicamentos for tipo %d: %w", id, err)
	}
	if count > 0 {
		return invalid("No se puede eliminar el tipo de medicamento porque tiene %d medicamento(s) asociado(s)", count)
	}

	deleted, err := s.tipoRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete tipo %d: %w", id, err)
	}
	if deleted == 0 {
		return notFound(MsgTipoNoEncontrado)
	}
	invalidate(ctx, s.cache)
	return nil
}
