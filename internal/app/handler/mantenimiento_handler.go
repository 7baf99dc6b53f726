package handler

import (
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// Manejadores del libro de mantenimientos

func mantenimientoToResponse(m *ds.Mantenimiento) dto.MantenimientoResponse {
	return dto.MantenimientoResponse{
		ID:                  m.ID,
		Codigo:              m.Codigo,
		Nombre:              m.Nombre,
		Descripcion:         m.Descripcion,
		Costo:               m.Costo,
		DuracionHoras:       m.DuracionHoras,
		ManualProcedimiento: m.ManualProcedimiento,
		FechaEntrega:        m.FechaEntrega,
		MaquinaID:           m.MaquinaID,
		MaquinaTipo:         m.Maquina.Tipo,
		Categoria:           m.Maquina.Categoria.Nombre,
		SolicitudID:         m.SolicitudID,
	}
}

// GetMantenimientos lista las órdenes de mantenimiento
// @Summary Listado de mantenimientos
// @Tags Mantenimientos
// @Produce json
// @Success 200 {object} dto.MantenimientoListResponse
// @Router /api/mantenimientos [get]
func (h *Handler) GetMantenimientos(c *gin.Context) {
	mantenimientos, err := h.Repository.GetAllMantenimientos()
	if err != nil {
		h.handleError(c, err)
		return
	}

	respuesta := make([]dto.MantenimientoResponse, len(mantenimientos))
	for i := range mantenimientos {
		respuesta[i] = mantenimientoToResponse(&mantenimientos[i])
	}

	c.JSON(http.StatusOK, dto.MantenimientoListResponse{
		Mantenimientos: respuesta,
		Total:          len(respuesta),
	})
}

// GetMantenimiento devuelve una orden de mantenimiento
// @Summary Detalle de mantenimiento
// @Tags Mantenimientos
// @Produce json
// @Param id path int true "ID del mantenimiento"
// @Success 200 {object} dto.MantenimientoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/mantenimientos/{id} [get]
func (h *Handler) GetMantenimiento(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	mantenimiento, err := h.Repository.GetMantenimientoByID(id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, mantenimientoToResponse(mantenimiento))
}

// CreateMantenimiento crea una orden de mantenimiento
// @Summary Creación de mantenimiento
// @Description Si viene solicitud_id y la solicitud reserva esa máquina, la línea queda enlazada al mantenimiento
// @Tags Mantenimientos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMantenimientoRequest true "Datos del mantenimiento"
// @Success 201 {object} dto.SuccessResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/mantenimientos [post]
func (h *Handler) CreateMantenimiento(c *gin.Context) {
	var req dto.CreateMantenimientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "datos inválidos: "+err.Error())
		return
	}

	mantenimiento, err := h.Repository.CreateMantenimiento(repository.NuevoMantenimiento{
		Codigo:              req.Codigo,
		Nombre:              req.Nombre,
		Descripcion:         req.Descripcion,
		Costo:               *req.Costo,
		DuracionHoras:       req.DuracionHoras,
		ManualProcedimiento: req.ManualProcedimiento,
		FechaEntrega:        req.FechaEntrega,
		MaquinaID:           req.MaquinaID,
		SolicitudID:         req.SolicitudID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	mantenimiento, err = h.Repository.GetMantenimientoByID(mantenimiento.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusCreated, "mantenimiento creado", mantenimientoToResponse(mantenimiento))
}

// UpdateMantenimiento aplica actualización parcial (el código es inmutable)
// @Summary Actualización parcial de mantenimiento
// @Tags Mantenimientos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del mantenimiento"
// @Param request body dto.UpdateMantenimientoRequest true "Campos a cambiar"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/mantenimientos/{id} [put]
func (h *Handler) UpdateMantenimiento(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	var req dto.UpdateMantenimientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "datos inválidos: "+err.Error())
		return
	}

	mantenimiento, err := h.Repository.UpdateMantenimiento(id, repository.ActualizarMantenimiento{
		Nombre:              req.Nombre,
		Descripcion:         req.Descripcion,
		Costo:               req.Costo,
		DuracionHoras:       req.DuracionHoras,
		ManualProcedimiento: req.ManualProcedimiento,
		FechaEntrega:        req.FechaEntrega,
		MaquinaID:           req.MaquinaID,
		SolicitudID:         req.SolicitudID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "mantenimiento actualizado", mantenimientoToResponse(mantenimiento))
}

// DeleteMantenimiento borra la orden y sus pagos en cascada
// @Summary Borrado de mantenimiento
// @Tags Mantenimientos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del mantenimiento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/mantenimientos/{id} [delete]
func (h *Handler) DeleteMantenimiento(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	if err := h.Repository.DeleteMantenimiento(id); err != nil {
		h.handleError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "mantenimiento eliminado", nil)
}
