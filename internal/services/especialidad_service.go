package services

import (
	"context"
	"fmt"
	"strings"

	"farmacia/internal/models"
	"farmacia/internal/repositories"
)

type EspecialidadService struct {
	especialidadRepo *repositories.EspecialidadRepository
	medicamentoRepo  *repositories.MedicamentoRepository
	cache            Cache
}

func NewEspecialidadService(
	especialidadRepo *repositories.EspecialidadRepository,
	medicamentoRepo *repositories.MedicamentoRepository,
	cache Cache,
) *EspecialidadService {
	return &EspecialidadService{
		especialidadRepo: especialidadRepo,
		medicamentoRepo:  medicamentoRepo,
		cache:            orNop(cache),
	}
}

type CreateEspecialidadRequest struct {
	DescripcionEsp string `json:"descripcionEsp"`
}

func (s *EspecialidadService) List(ctx context.Context) ([]models.Especialidad, error) {
	list, err := cachedList(ctx, s.cache, cacheKeyEspecialidades, s.especialidadRepo.List)
	if err != nil {
		return nil, fmt.Errorf("failed to list especialidades: %w", err)
	}
	return list, nil
}

func (s *EspecialidadService) Get(ctx context.Context, id uint) (*models.Especialidad, error) {
	especialidad, err := s.especialidadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get especialidad %d: %w", id, err)
	}
	if especialidad == nil {
		return nil, notFound(MsgEspecialidadNoEncontrada)
	}
	return especialidad, nil
}

func (s *EspecialidadService) Create(ctx context.Context, req CreateEspecialidadRequest) (*models.Especialidad, error) {
	if strings.TrimSpace(req.DescripcionEsp) == "" {
		return nil, invalid("La descripción de la especialidad es obligatoria")
	}

	especialidad := &models.Especialidad{DescripcionEsp: req.DescripcionEsp}
	if err := s.especialidadRepo.Create(ctx, especialidad); err != nil {
		return nil, fmt.Errorf("failed to create especialidad: %w", err)
	}
	invalidate(ctx, s.cache)
	return especialidad, nil
}

func (s *EspecialidadService) Update(ctx context.Context, id uint, patch Patch) (*models.Especialidad, error) {
	columns, err := patch.columns(especialidadPatch)
	if err != nil {
		return nil, err
	}

	exists, err := s.especialidadRepo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check especialidad %d: %w", id, err)
	}
	if !exists {
		return nil, notFound(MsgEspecialidadNoEncontrada)
	}

	if len(columns) > 0 {
		if _, err := s.especialidadRepo.Update(ctx, id, columns); err != nil {
			return nil, fmt.Errorf("failed to update especialidad %d: %w", id, err)
		}
		invalidate(ctx, s.cache)
	}
	return s.Get(ctx, id)
}

// Delete refuses to remove a specialty that still has medications. The
// count and the delete are separate statements, so a medication inserted
// between them is not seen by the check.
func (s *EspecialidadService) Delete(ctx context.Context, id uint) error {
	count, err := s.medicamentoRepo.CountByEspecialidad(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count medicamentos for especialidad %d: %w", id, err)
	}
	if count > 0 {
		return invalid("No se puede eliminar la especialidad porque tiene %d medicamento(s) asociado(s)", count)
	}

	deleted, err := s.especialidadRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete especialidad %d: %w", id, err)
	}
	if deleted == 0 {
		return notFound(MsgEspecialidadNoEncontrada)
	}
	invalidate(ctx, s.cache)
	return nil
}
