package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmacia/internal/responses"
	"farmacia/internal/services"
)

type TipoMedicHandler struct {
	tipoService *services.TipoMedicService
}

func NewTipoMedicHandler(tipoService *services.TipoMedicService) *TipoMedicHandler {
	return &TipoMedicHandler{tipoService: tipoService}
}

// List handles GET /api/tipomedic
func (h *TipoMedicHandler) List(c *gin.Context) {
	tipos, err := h.tipoService.List(c.Request.Context())
	if err != nil {
		respondError(c, "listing tipos", err)
		return
	}
	responses.JSON(c, http.StatusOK, tipos)
}

// Get handles GET /api/tipomedic/:id
func (h *TipoMedicHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tipo, err := h.tipoService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "getting tipo", err)
		return
	}
	responses.JSON(c, http.StatusOK, tipo)
}

// Create handles POST /api/tipomedic
func (h *TipoMedicHandler) Create(c *gin.Context) {
	var req services.CreateTipoMedicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	tipo, err := h.tipoService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "creating tipo", err)
		return
	}
	responses.JSON(c, http.StatusOK, tipo)
}

// Update handles PUT /api/tipomedic/:id
func (h *TipoMedicHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch services.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		responses.Fail(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	tipo, err := h.tipoService.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, "updating tipo", err)
		return
	}
	responses.JSON(c, http.StatusOK, tipo)
}

// Delete handles DELETE /api/tipomedic/:id
func (h *TipoMedicHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.tipoService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "deleting tipo", err)
		return
	}
	responses.Message(c, http.StatusOK, "Tipo de medicamento eliminado exitosamente")
}
