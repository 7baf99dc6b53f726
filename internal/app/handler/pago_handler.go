package handler

import (
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// Manejadores del libro de pagos

func pagoToResponse(p *ds.Pago) dto.PagoResponse {
	return dto.PagoResponse{
		ID:              p.ID,
		Codigo:          p.Codigo,
		FechaPago:       p.FechaPago,
		Monto:           p.Monto,
		Metodo:          p.Metodo,
		Referencia:      p.Referencia,
		Estado:          p.Estado,
		Notas:           p.Notas,
		MantenimientoID: p.MantenimientoID,
		EmpresaID:       p.EmpresaID,
	}
}

// GetPagos lista los pagos
// @Summary Listado de pagos
// @Tags Pagos
// @Produce json
// @Success 200 {object} dto.PagoListResponse
// @Router /api/pagos [get]
func (h *Handler) GetPagos(c *gin.Context) {
	pagos, err := h.Repository.GetAllPagos()
	if err != nil {
		h.handleError(c, err)
		return
	}

	respuesta := make([]dto.PagoResponse, len(pagos))
	for i := range pagos {
		respuesta[i] = pagoToResponse(&pagos[i])
	}

	c.JSON(http.StatusOK, dto.PagoListResponse{
		Pagos: respuesta,
		Total: len(respuesta),
	})
}

// GetPago devuelve un pago por ID
// @Summary Detalle de pago
// @Tags Pagos
// @Produce json
// @Param id path int true "ID del pago"
// @Success 200 {object} dto.PagoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/pagos/{id} [get]
func (h *Handler) GetPago(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	pago, err := h.Repository.GetPagoByID(id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, pagoToResponse(pago))
}

// CreatePago registra un pago contra un mantenimiento
// @Summary Creación de pago
// @Tags Pagos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePagoRequest true "Datos del pago"
// @Success 201 {object} dto.SuccessResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/pagos [post]
func (h *Handler) CreatePago(c *gin.Context) {
	var req dto.CreatePagoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "datos inválidos: "+err.Error())
		return
	}

	pago, err := h.Repository.CreatePago(repository.NuevoPago{
		Codigo:          req.Codigo,
		FechaPago:       req.FechaPago,
		Monto:           *req.Monto,
		Metodo:          req.Metodo,
		Referencia:      req.Referencia,
		Estado:          req.Estado,
		Notas:           req.Notas,
		MantenimientoID: req.MantenimientoID,
		EmpresaID:       req.EmpresaID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusCreated, "pago registrado", pagoToResponse(pago))
}

// UpdatePago aplica actualización parcial sobre un pago
// @Summary Actualización parcial de pago
// @Tags Pagos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del pago"
// @Param request body dto.UpdatePagoRequest true "Campos a cambiar"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/pagos/{id} [put]
func (h *Handler) UpdatePago(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	var req dto.UpdatePagoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "datos inválidos: "+err.Error())
		return
	}

	pago, err := h.Repository.UpdatePago(id, repository.ActualizarPago{
		FechaPago:  req.FechaPago,
		Monto:      req.Monto,
		Metodo:     req.Metodo,
		Referencia: req.Referencia,
		Estado:     req.Estado,
		Notas:      req.Notas,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "pago actualizado", pagoToResponse(pago))
}

// DeletePago borra un pago
// @Summary Borrado de pago
// @Tags Pagos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del pago"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/pagos/{id} [delete]
func (h *Handler) DeletePago(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	if err := h.Repository.DeletePago(id); err != nil {
		h.handleError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "pago eliminado", nil)
}
