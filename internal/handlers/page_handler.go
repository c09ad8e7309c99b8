package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"farmacia/internal/middlewares"
	"farmacia/internal/models"
	"farmacia/internal/repositories"
	"farmacia/internal/services"
	"farmacia/internal/views"
)

// PageHandler serves the HTML pages. Mutations post a form and redirect
// back to the list; a rejected form is rendered again with its input.
type PageHandler struct {
	especialidadService *services.EspecialidadService
	tipoMedicService    *services.TipoMedicService
	medicamentoService  *services.MedicamentoService
}

func NewPageHandler(
	especialidadService *services.EspecialidadService,
	tipoMedicService *services.TipoMedicService,
	medicamentoService *services.MedicamentoService,
) *PageHandler {
	return &PageHandler{
		especialidadService: especialidadService,
		tipoMedicService:    tipoMedicService,
		medicamentoService:  medicamentoService,
	}
}

// Especialidades handles GET /especialidades?q=&modal=
func (h *PageHandler) Especialidades(c *gin.Context) {
	h.renderEspecialidades(c, views.ParseModal(c.Request.URL.Query()), nil)
}

// SaveEspecialidad handles POST /especialidades and POST /especialidades/:id
func (h *PageHandler) SaveEspecialidad(c *gin.Context) {
	id, ok := formID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, views.KindEspecialidad.Path)
		return
	}
	form := views.GrupoForm{Descripcion: c.PostForm(views.KindEspecialidad.Field)}

	var err error
	if id == 0 {
		_, err = h.especialidadService.Create(c.Request.Context(), services.CreateEspecialidadRequest{DescripcionEsp: form.Descripcion})
	} else {
		_, err = h.especialidadService.Update(c.Request.Context(), id, textPatch(views.KindEspecialidad.Field, form.Descripcion))
	}
	if err != nil {
		logFailure(c, "saving especialidad", err)
		h.renderEspecialidades(c, modalFor(id), &form)
		return
	}
	c.Redirect(http.StatusSeeOther, views.KindEspecialidad.Path)
}

// DeleteEspecialidad handles POST /especialidades/:id/eliminar
func (h *PageHandler) DeleteEspecialidad(c *gin.Context) {
	if id, ok := formID(c); ok && id != 0 {
		if err := h.especialidadService.Delete(c.Request.Context(), id); err != nil {
			logFailure(c, "deleting especialidad", err)
		}
	}
	c.Redirect(http.StatusSeeOther, views.KindEspecialidad.Path)
}

func (h *PageHandler) renderEspecialidades(c *gin.Context, modal views.Modal, form *views.GrupoForm) {
	list, err := h.especialidadService.List(c.Request.Context())
	if err != nil {
		logFailure(c, "loading especialidades", err)
	}

	page := views.BuildEspecialidadesPage(views.PhaseOf(err), list, c.Query("q"), modal, form)
	c.HTML(phaseStatus(page.Phase), views.GrupoTemplate, page)
}

// Tipos handles GET /tipos?q=&modal=
func (h *PageHandler) Tipos(c *gin.Context) {
	h.renderTipos(c, views.ParseModal(c.Request.URL.Query()), nil)
}

// SaveTipo handles POST /tipos and POST /tipos/:id
func (h *PageHandler) SaveTipo(c *gin.Context) {
	id, ok := formID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, views.KindTipo.Path)
		return
	}
	form := views.GrupoForm{Descripcion: c.PostForm(views.KindTipo.Field)}

	var err error
	if id == 0 {
		_, err = h.tipoMedicService.Create(c.Request.Context(), services.CreateTipoMedicRequest{Descripcion: form.Descripcion})
	} else {
		_, err = h.tipoMedicService.Update(c.Request.Context(), id, textPatch(views.KindTipo.Field, form.Descripcion))
	}
	if err != nil {
		logFailure(c, "saving tipo de medicamento", err)
		h.renderTipos(c, modalFor(id), &form)
		return
	}
	c.Redirect(http.StatusSeeOther, views.KindTipo.Path)
}

// DeleteTipo handles POST /tipos/:id/eliminar
func (h *PageHandler) DeleteTipo(c *gin.Context) {
	if id, ok := formID(c); ok && id != 0 {
		if err := h.tipoMedicService.Delete(c.Request.Context(), id); err != nil {
			logFailure(c, "deleting tipo de medicamento", err)
		}
	}
	c.Redirect(http.StatusSeeOther, views.KindTipo.Path)
}

func (h *PageHandler) renderTipos(c *gin.Context, modal views.Modal, form *views.GrupoForm) {
	list, err := h.tipoMedicService.List(c.Request.Context())
	if err != nil {
		logFailure(c, "loading tipos de medicamento", err)
	}

	page := views.BuildTiposPage(views.PhaseOf(err), list, c.Query("q"), modal, form)
	c.HTML(phaseStatus(page.Phase), views.GrupoTemplate, page)
}

// Medicamentos handles GET / and GET /medicamentos?q=&modal=
func (h *PageHandler) Medicamentos(c *gin.Context) {
	h.renderMedicamentos(c, views.ParseModal(c.Request.URL.Query()), nil)
}

// SaveMedicamento handles POST /medicamentos and POST /medicamentos/:id
func (h *PageHandler) SaveMedicamento(c *gin.Context) {
	id, ok := formID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, medicamentosPath)
		return
	}
	form := views.MedicamentoForm{
		DescripcionMed: c.PostForm("descripcionMed"),
		Stock:          c.PostForm("stock"),
		PrecioVentaUni: c.PostForm("precioVentaUni"),
		CodTipoMed:     c.PostForm("CodTipoMed"),
		CodEspec:       c.PostForm("CodEspec"),
	}

	req, err := medicamentoRequest(form)
	if err == nil {
		if id == 0 {
			_, err = h.medicamentoService.Create(c.Request.Context(), req)
		} else {
			_, err = h.medicamentoService.Update(c.Request.Context(), id, medicamentoPatch(req))
		}
	}
	if err != nil {
		logFailure(c, "saving medicamento", err)
		h.renderMedicamentos(c, modalFor(id), &form)
		return
	}
	c.Redirect(http.StatusSeeOther, medicamentosPath)
}

// DeleteMedicamento handles POST /medicamentos/:id/eliminar
func (h *PageHandler) DeleteMedicamento(c *gin.Context) {
	if id, ok := formID(c); ok && id != 0 {
		if err := h.medicamentoService.Delete(c.Request.Context(), id); err != nil {
			logFailure(c, "deleting medicamento", err)
		}
	}
	c.Redirect(http.StatusSeeOther, medicamentosPath)
}

const medicamentosPath = "/medicamentos"

func (h *PageHandler) renderMedicamentos(c *gin.Context, modal views.Modal, form *views.MedicamentoForm) {
	ctx := c.Request.Context()

	list, err := h.medicamentoService.List(ctx, repositories.MedicamentoFilter{})
	var (
		tipos          = []models.TipoMedic{}
		especialidades = []models.Especialidad{}
	)
	if err == nil {
		tipos, err = h.tipoMedicService.List(ctx)
	}
	if err == nil {
		especialidades, err = h.especialidadService.List(ctx)
	}
	if err != nil {
		logFailure(c, "loading medicamentos", err)
	}

	page := views.BuildMedicamentosPage(views.PhaseOf(err), list, tipos, especialidades, c.Query("q"), modal, form)
	c.HTML(phaseStatus(page.Phase), views.MedicamentosTemplate, page)
}

// formID reads the optional :id of a form post. Zero means create.
func formID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func modalFor(id uint) views.Modal {
	if id == 0 {
		return views.Modal{Mode: views.ModalCreate}
	}
	return views.Modal{Mode: views.ModalEdit, EditID: id}
}

func phaseStatus(p views.Phase) int {
	if p == views.PhaseFailed {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}

func logFailure(c *gin.Context, op string, err error) {
	log.Printf("[%s] Error %s: %v", middlewares.GetRequestID(c), op, err)
}

func textPatch(field, value string) services.Patch {
	raw, _ := json.Marshal(value)
	return services.Patch{field: raw}
}

// medicamentoRequest converts the raw modal inputs. An empty select means
// no type or specialty.
func medicamentoRequest(form views.MedicamentoForm) (services.CreateMedicamentoRequest, error) {
	req := services.CreateMedicamentoRequest{DescripcionMed: form.DescripcionMed}

	stock, err := strconv.Atoi(strings.TrimSpace(form.Stock))
	if err != nil {
		return req, fmt.Errorf("invalid stock %q: %w", form.Stock, err)
	}
	req.Stock = stock

	precio, err := decimal.NewFromString(strings.TrimSpace(form.PrecioVentaUni))
	if err != nil {
		return req, fmt.Errorf("invalid precioVentaUni %q: %w", form.PrecioVentaUni, err)
	}
	req.PrecioVentaUni = precio

	var ok bool
	if req.CodTipoMed, ok = parseOptionalID(strings.TrimSpace(form.CodTipoMed)); !ok {
		return req, fmt.Errorf("invalid CodTipoMed %q", form.CodTipoMed)
	}
	if req.CodEspec, ok = parseOptionalID(strings.TrimSpace(form.CodEspec)); !ok {
		return req, fmt.Errorf("invalid CodEspec %q", form.CodEspec)
	}
	return req, nil
}

// medicamentoPatch writes every modal field, as the form always submits
// the whole row.
func medicamentoPatch(req services.CreateMedicamentoRequest) services.Patch {
	patch := services.Patch{}
	for key, v := range map[string]any{
		"descripcionMed": req.DescripcionMed,
		"stock":          req.Stock,
		"precioVentaUni": req.PrecioVentaUni,
		"CodTipoMed":     req.CodTipoMed,
		"CodEspec":       req.CodEspec,
	} {
		raw, _ := json.Marshal(v)
		patch[key] = raw
	}
	return patch
}
