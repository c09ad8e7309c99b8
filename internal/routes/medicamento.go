package routes

import (
	"github.com/gin-gonic/gin"

	"farmacia/internal/handlers"
)

type MedicamentoRoutes struct {
	handler *handlers.MedicamentoHandler
}

func NewMedicamentoRoutes(handler *handlers.MedicamentoHandler) *MedicamentoRoutes {
	return &MedicamentoRoutes{handler: handler}
}

func (r *MedicamentoRoutes) RegisterRoutes(router *gin.RouterGroup) {
	medicamento := router.Group("/medicamento")
	{
		// ?especialidad= and ?tipo= narrow the list
		medicamento.GET("", r.handler.List)
		medicamento.POST("", r.handler.Create)
		medicamento.GET("/:id", r.handler.Get)
		medicamento.PUT("/:id", r.handler.Update)
		medicamento.DELETE("/:id", r.handler.Delete)
	}
}
