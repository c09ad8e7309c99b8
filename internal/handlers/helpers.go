package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"farmacia/internal/middlewares"
	"farmacia/internal/responses"
	"farmacia/internal/services"
)

const (
	msgInvalidID   = "Código inválido"
	msgInvalidBody = "Cuerpo de solicitud inválido"
	msgInternal    = "Error interno del servidor"
)

// parseID reads the :id path parameter. On failure it writes the 400
// response and returns false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		responses.Fail(c, http.StatusBadRequest, msgInvalidID)
		return 0, false
	}
	return uint(id), true
}

func parseOptionalID(raw string) (*uint, bool) {
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, false
	}
	v := uint(id)
	return &v, true
}

// respondError maps the service error taxonomy onto status codes. Anything
// that is not a not-found or validation error is logged and hidden behind a
// generic 500.
func respondError(c *gin.Context, op string, err error) {
	var nf *services.NotFoundError
	if errors.As(err, &nf) {
		responses.Fail(c, http.StatusNotFound, nf.Message)
		return
	}
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		responses.Fail(c, http.StatusBadRequest, verr.Message)
		return
	}
	log.Printf("[%s] Error %s: %v", middlewares.GetRequestID(c), op, err)
	responses.Fail(c, http.StatusInternalServerError, msgInternal)
}
