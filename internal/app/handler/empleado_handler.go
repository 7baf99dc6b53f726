package handler

import (
	"net/http"

	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// Manejadores del directorio: cargos y empleados

// GetCargos lista los cargos
// @Summary Listado de cargos
// @Tags Empleados
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /api/cargos [get]
func (h *Handler) GetCargos(c *gin.Context) {
	cargos, err := h.Repository.GetAllCargos()
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "", cargos)
}

// CreateCargo registra un cargo
// @Summary Creación de cargo
// @Tags Empleados
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CategoriaRequest true "Datos del cargo"
// @Success 201 {object} dto.SuccessResponse
// @Router /api/cargos [post]
func (h *Handler) CreateCargo(c *gin.Context) {
	var req dto.CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "datos inválidos: "+err.Error())
		return
	}

	cargo, err := h.Repository.CreateCargo(req.Nombre, req.Descripcion)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.successResponse(c, http.StatusCreated, "cargo creado", cargo)
}

// GetEmpleados lista los empleados
// @Summary Listado de empleados
// @Tags Empleados
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /api/empleados [get]
func (h *Handler) GetEmpleados(c *gin.Context) {
	empleados, err := h.Repository.GetAllEmpleados()
	if err != nil {
		h.handleError(c, err)
		return
	}

	respuesta := make([]dto.EmpleadoResponse, len(empleados))
	for i, e := range empleados {
		respuesta[i] = dto.EmpleadoResponse{
			ID:        e.ID,
			Nombre:    e.Nombre,
			Documento: e.Documento,
			Telefono:  e.Telefono,
			Correo:    e.Correo,
			Cargo:     e.Cargo.Nombre,
		}
	}
	h.successResponse(c, http.StatusOK, "", respuesta)
}

// GetEmpleado devuelve un empleado por ID
// @Summary Detalle de empleado
// @Tags Empleados
// @Produce json
// @Param id path int true "ID del empleado"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/empleados/{id} [get]
func (h *Handler) GetEmpleado(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	empleado, err := h.Repository.GetEmpleadoByID(id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "", dto.EmpleadoResponse{
		ID:        empleado.ID,
		Nombre:    empleado.Nombre,
		Documento: empleado.Documento,
		Telefono:  empleado.Telefono,
		Correo:    empleado.Correo,
		Cargo:     empleado.Cargo.Nombre,
	})
}

// CreateEmpleado registra un empleado
// @Summary Creación de empleado
// @Tags Empleados
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEmpleadoRequest true "Datos del empleado"
// @Success 201 {object} dto.SuccessResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/empleados [post]
func (h *Handler) CreateEmpleado(c *gin.Context) {
	var req dto.CreateEmpleadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "datos inválidos: "+err.Error())
		return
	}

	empleado, err := h.Repository.CreateEmpleado(req.Nombre, req.Documento, req.Telefono, req.Correo, req.CargoID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	empleado, err = h.Repository.GetEmpleadoByID(empleado.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusCreated, "empleado creado", dto.EmpleadoResponse{
		ID:        empleado.ID,
		Nombre:    empleado.Nombre,
		Documento: empleado.Documento,
		Telefono:  empleado.Telefono,
		Correo:    empleado.Correo,
		Cargo:     empleado.Cargo.Nombre,
	})
}

// DeleteEmpleado borra un empleado sin asignaciones
// @Summary Borrado de empleado
// @Tags Empleados
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del empleado"
// @Success 200 {object} dto.SuccessResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/empleados/{id} [delete]
func (h *Handler) DeleteEmpleado(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	if err := h.Repository.DeleteEmpleado(id); err != nil {
		h.handleError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "empleado eliminado", nil)
}
