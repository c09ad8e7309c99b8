package routes

import (
	"github.com/gin-gonic/gin"

	"farmacia/internal/handlers"
)

type EspecialidadRoutes struct {
	handler *handlers.EspecialidadHandler
}

func NewEspecialidadRoutes(handler *handlers.EspecialidadHandler) *EspecialidadRoutes {
	return &EspecialidadRoutes{handler: handler}
}

func (r *EspecialidadRoutes) RegisterRoutes(router *gin.RouterGroup) {
	especialidad := router.Group("/especialidad")
	{
		especialidad.GET("", r.handler.List)
		especialidad.POST("", r.handler.Create)
		especialidad.GET("/:id", r.handler.Get)
		especialidad.PUT("/:id", r.handler.Update)
		especialidad.DELETE("/:id", r.handler.Delete)
	}
}
