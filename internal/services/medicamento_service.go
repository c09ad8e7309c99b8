package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"farmacia/internal/models"
	"farmacia/internal/repositories"
)

type MedicamentoService struct {
	medicamentoRepo  *repositories.MedicamentoRepository
	tipoRepo         *repositories.TipoMedicRepository
	especialidadRepo *repositories.EspecialidadRepository
	cache            Cache
}

func NewMedicamentoService(
	medicamentoRepo *repositories.MedicamentoRepository,
	tipoRepo *repositories.TipoMedicRepository,
	especialidadRepo *repositories.EspecialidadRepository,
	cache Cache,
) *MedicamentoService {
	return &MedicamentoService{
		medicamentoRepo:  medicamentoRepo,
		tipoRepo:         tipoRepo,
		especialidadRepo: especialidadRepo,
		cache:            orNop(cache),
	}
}

type CreateMedicamentoRequest struct {
	DescripcionMed string          `json:"descripcionMed"`
	Stock          int             `json:"stock"`
	PrecioVentaUni decimal.Decimal `json:"precioVentaUni"`
	CodTipoMed     *uint           `json:"CodTipoMed"`
	CodEspec       *uint           `json:"CodEspec"`
}

// List returns every medication joined with its type and specialty. Only
// the unfiltered list is cached.
func (s *MedicamentoService) List(ctx context.Context, filter repositories.MedicamentoFilter) ([]models.Medicamento, error) {
	load := func(ctx context.Context) ([]models.Medicamento, error) {
		return s.medicamentoRepo.List(ctx, filter)
	}

	var (
		list []models.Medicamento
		err  error
	)
	if filter.IsZero() {
		list, err = cachedList(ctx, s.cache, cacheKeyMedicamentos, load)
	} else {
		list, err = load(ctx)
		list = nonNil(list)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list medicamentos: %w", err)
	}
	return list, nil
}

func (s *MedicamentoService) Get(ctx context.Context, id uint) (*models.Medicamento, error) {
	medicamento, err := s.medicamentoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get medicamento %d: %w", id, err)
	}
	if medicamento == nil {
		return nil, notFound(MsgMedicamentoNoEncontrado)
	}
	return medicamento, nil
}

// Create checks that the referenced type and specialty exist before the
// insert. A nil reference is stored as NULL without a lookup.
func (s *MedicamentoService) Create(ctx context.Context, req CreateMedicamentoRequest) (*models.Medicamento, error) {
	if strings.TrimSpace(req.DescripcionMed) == "" {
		return nil, invalid("La descripción del medicamento es obligatoria")
	}
	if err := s.checkRefs(ctx, req.CodTipoMed, req.CodEspec); err != nil {
		return nil, err
	}

	medicamento := &models.Medicamento{
		DescripcionMed: req.DescripcionMed,
		Stock:          req.Stock,
		PrecioVentaUni: req.PrecioVentaUni,
		CodTipoMed:     req.CodTipoMed,
		CodEspec:       req.CodEspec,
	}
	if err := s.medicamentoRepo.Create(ctx, medicamento); err != nil {
		return nil, fmt.Errorf("failed to create medicamento: %w", err)
	}
	invalidate(ctx, s.cache)
	return medicamento, nil
}

func (s *MedicamentoService) Update(ctx context.Context, id uint, patch Patch) (*models.Medicamento, error) {
	columns, err := patch.columns(medicamentoPatch)
	if err != nil {
		return nil, err
	}

	current, err := s.medicamentoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get medicamento %d: %w", id, err)
	}
	if current == nil {
		return nil, notFound(MsgMedicamentoNoEncontrado)
	}

	if err := s.checkRefs(ctx, refColumn(columns, "cod_tipo_med"), refColumn(columns, "cod_espec")); err != nil {
		return nil, err
	}

	if len(columns) > 0 {
		if _, err := s.medicamentoRepo.Update(ctx, id, columns); err != nil {
			return nil, fmt.Errorf("failed to update medicamento %d: %w", id, err)
		}
		invalidate(ctx, s.cache)
	}
	return s.Get(ctx, id)
}

func (s *MedicamentoService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.medicamentoRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete medicamento %d: %w", id, err)
	}
	if deleted == 0 {
		return notFound(MsgMedicamentoNoEncontrado)
	}
	invalidate(ctx, s.cache)
	return nil
}

func (s *MedicamentoService) checkRefs(ctx context.Context, codTipoMed, codEspec *uint) error {
	if codTipoMed != nil {
		ok, err := s.tipoRepo.Exists(ctx, *codTipoMed)
		if err != nil {
			return fmt.Errorf("failed to check tipo %d: %w", *codTipoMed, err)
		}
		if !ok {
			return invalid(MsgTipoNoEncontrado)
		}
	}
	if codEspec != nil {
		ok, err := s.especialidadRepo.Exists(ctx, *codEspec)
		if err != nil {
			return fmt.Errorf("failed to check especialidad %d: %w", *codEspec, err)
		}
		if !ok {
			return invalid(MsgEspecialidadNoEncontrada)
		}
	}
	return nil
}

func refColumn(columns map[string]any, column string) *uint {
	if v, ok := columns[column].(uint); ok {
		return &v
	}
	return nil
}
