package routes

import (
	"github.com/gin-gonic/gin"

	"farmacia/internal/handlers"
)

type TipoMedicRoutes struct {
	handler *handlers.TipoMedicHandler
}

func NewTipoMedicRoutes(handler *handlers.TipoMedicHandler) *TipoMedicRoutes {
	return &TipoMedicRoutes{handler: handler}
}

func (r *TipoMedicRoutes) RegisterRoutes(router *gin.RouterGroup) {
	tipo := router.Group("/tipomedic")
	{
		tipo.GET("", r.handler.List)
		tipo.POST("", r.handler.Create)
		tipo.GET("/:id", r.handler.Get)
		tipo.PUT("/:id", r.handler.Update)
		tipo.DELETE("/:id", r.handler.Delete)
	}
}
