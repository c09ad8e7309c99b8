package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmacia/internal/responses"
	"farmacia/internal/services"
)

type EspecialidadHandler struct {
	especialidadService *services.EspecialidadService
}

func NewEspecialidadHandler(especialidadService *services.EspecialidadService) *EspecialidadHandler {
	return &EspecialidadHandler{especialidadService: especialidadService}
}

// List handles GET /api/especialidad
func (h *EspecialidadHandler) List(c *gin.Context) {
	especialidades, err := h.especialidadService.List(c.Request.Context())
	if err != nil {
		respondError(c, "listing especialidades", err)
		return
	}
	responses.JSON(c, http.StatusOK, especialidades)
}

// Get handles GET /api/especialidad/:id
func (h *EspecialidadHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	especialidad, err := h.especialidadService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "getting especialidad", err)
		return
	}
	responses.JSON(c, http.StatusOK, especialidad)
}

// Create handles POST /api/especialidad
func (h *EspecialidadHandler) Create(c *gin.Context) {
	var req services.CreateEspecialidadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	especialidad, err := h.especialidadService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "creating especialidad", err)
		return
	}
	responses.JSON(c, http.StatusOK, especialidad)
}

// Update handles PUT /api/especialidad/:id
func (h *EspecialidadHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch services.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		responses.Fail(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	especialidad, err := h.especialidadService.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, "updating especialidad", err)
		return
	}
	responses.JSON(c, http.StatusOK, especialidad)
}

// Delete handles DELETE /api/especialidad/:id
func (h *EspecialidadHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.especialidadService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "deleting especialidad", err)
		return
	}
	responses.Message(c, http.StatusOK, "Especialidad eliminada exitosamente")
}
