package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmacia/internal/repositories"
	"farmacia/internal/responses"
	"farmacia/internal/services"
)

type MedicamentoHandler struct {
	medicamentoService *services.MedicamentoService
}

func NewMedicamentoHandler(medicamentoService *services.MedicamentoService) *MedicamentoHandler {
	return &MedicamentoHandler{medicamentoService: medicamentoService}
}

// List handles GET /api/medicamento?especialidad=&tipo=
func (h *MedicamentoHandler) List(c *gin.Context) {
	codEspec, ok := parseOptionalID(c.Query("especialidad"))
	if !ok {
		responses.Fail(c, http.StatusBadRequest, msgInvalidID)
		return
	}
	codTipoMed, ok := parseOptionalID(c.Query("tipo"))
	if !ok {
		responses.Fail(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	filter := repositories.MedicamentoFilter{CodEspec: codEspec, CodTipoMed: codTipoMed}
	medicamentos, err := h.medicamentoService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "listing medicamentos", err)
		return
	}
	responses.JSON(c, http.StatusOK, medicamentos)
}

// Get handles GET /api/medicamento/:id
func (h *MedicamentoHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	medicamento, err := h.medicamentoService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "getting medicamento", err)
		return
	}
	responses.JSON(c, http.StatusOK, medicamento)
}

// Create handles POST /api/medicamento
func (h *MedicamentoHandler) Create(c *gin.Context) {
	var req services.CreateMedicamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	medicamento, err := h.medicamentoService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "creating medicamento", err)
		return
	}
	responses.JSON(c, http.StatusOK, medicamento)
}

// Update handles PUT /api/medicamento/:id
func (h *MedicamentoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch services.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		responses.Fail(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	medicamento, err := h.medicamentoService.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, "updating medicamento", err)
		return
	}
	responses.JSON(c, http.StatusOK, medicamento)
}

// Delete handles DELETE /api/medicamento/:id
func (h *MedicamentoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.medicamentoService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "deleting medicamento", err)
		return
	}
	responses.Message(c, http.StatusOK, "Medicamento eliminado exitosamente")
}
