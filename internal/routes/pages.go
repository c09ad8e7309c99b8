package routes

import (
	"github.com/gin-gonic/gin"

	"farmacia/internal/handlers"
)

type PageRoutes struct {
	handler *handlers.PageHandler
}

func NewPageRoutes(handler *handlers.PageHandler) *PageRoutes {
	return &PageRoutes{handler: handler}
}

// RegisterRoutes mounts the HTML pages. Browsers only submit GET and POST,
// so updates and deletes are POSTs to the row path.
func (r *PageRoutes) RegisterRoutes(router gin.IRouter) {
	router.GET("/", r.handler.Medicamentos)

	medicamentos := router.Group("/medicamentos")
	{
		medicamentos.GET("", r.handler.Medicamentos)
		medicamentos.POST("", r.handler.SaveMedicamento)
		medicamentos.POST("/:id", r.handler.SaveMedicamento)
		medicamentos.POST("/:id/eliminar", r.handler.DeleteMedicamento)
	}

	especialidades := router.Group("/especialidades")
	{
		especialidades.GET("", r.handler.Especialidades)
		especialidades.POST("", r.handler.SaveEspecialidad)
		especialidades.POST("/:id", r.handler.SaveEspecialidad)
		especialidades.POST("/:id/eliminar", r.handler.DeleteEspecialidad)
	}

	tipos := router.Group("/tipos")
	{
		tipos.GET("", r.handler.Tipos)
		tipos.POST("", r.handler.SaveTipo)
		tipos.POST("/:id", r.handler.SaveTipo)
		tipos.POST("/:id/eliminar", r.handler.DeleteTipo)
	}
}
