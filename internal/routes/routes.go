package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmacia/internal/handlers"
)

type Handlers struct {
	Especialidad *handlers.EspecialidadHandler
	TipoMedic    *handlers.TipoMedicHandler
	Medicamento  *handlers.MedicamentoHandler
	Pages        *handlers.PageHandler
}

func RegisterRoutes(router *gin.Engine, h Handlers) {
	api := router.Group("/api")

	NewEspecialidadRoutes(h.Especialidad).RegisterRoutes(api)
	NewTipoMedicRoutes(h.TipoMedic).RegisterRoutes(api)
	NewMedicamentoRoutes(h.Medicamento).RegisterRoutes(api)

	NewPageRoutes(h.Pages).RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
