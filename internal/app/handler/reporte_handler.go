package handler

import (
	"net/http"
	"strconv"

	"backend/internal/app/dto"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// Manejadores de reportes (proyecciones de solo lectura)

// ReporteMaquinasPorEmpresa total de máquinas reservadas por una empresa
// @Summary Máquinas reservadas por empresa
// @Tags Reportes
// @Produce json
// @Param nombre query string true "Nombre de la empresa"
// @Success 200 {object} dto.SuccessResponse
// @Router /api/reportes/maquinas-por-empresa [get]
func (h *Handler) ReporteMaquinasPorEmpresa(c *gin.Context) {
	nombre := c.Query("nombre")
	if nombre == "" {
		h.errorResponse(c, http.StatusBadRequest, "falta el parámetro 'nombre'")
		return
	}

	resultado, err := h.Repository.GetTotalMaquinasReservadas(nombre)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "", resultado)
}

// ReporteEmpresasSinSolicitudes empresas que nunca han solicitado
// @Summary Empresas sin solicitudes
// @Tags Reportes
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /api/reportes/empresas-sin-solicitudes [get]
func (h *Handler) ReporteEmpresasSinSolicitudes(c *gin.Context) {
	empresas, err := h.Repository.GetEmpresasSinSolicitudes()
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "", empresas)
}

// ReporteSolicitudesPorEmpleado solicitudes asignadas a un empleado
// @Summary Solicitudes por empleado
// @Tags Reportes
// @Produce json
// @Param documento query string true "Documento del empleado"
// @Success 200 {object} dto.SuccessResponse
// @Router /api/reportes/solicitudes-por-empleado [get]
func (h *Handler) ReporteSolicitudesPorEmpleado(c *gin.Context) {
	documento := c.Query("documento")
	if documento == "" {
		h.errorResponse(c, http.StatusBadRequest, "falta el parámetro 'documento'")
		return
	}

	solicitudes, err := h.Repository.GetSolicitudesPorEmpleado(documento)
	if err != nil {
		h.handleError(c, err)
		return
	}

	respuesta := make([]dto.SolicitudResponse, len(solicitudes))
	for i := range solicitudes {
		respuesta[i] = h.solicitudToResponse(&solicitudes[i])
	}
	h.successResponse(c, http.StatusOK, "", respuesta)
}

// ReporteSolicitudesSinMantenimiento solicitudes sin mantenimiento enlazado
// @Summary Solicitudes sin mantenimiento
// @Tags Reportes
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /api/reportes/solicitudes-sin-mantenimiento [get]
func (h *Handler) ReporteSolicitudesSinMantenimiento(c *gin.Context) {
	solicitudes, err := h.Repository.GetSolicitudesSinMantenimiento()
	if err != nil {
		h.handleError(c, err)
		return
	}

	respuesta := make([]dto.SolicitudResponse, len(solicitudes))
	for i := range solicitudes {
		respuesta[i] = h.solicitudToResponse(&solicitudes[i])
	}
	h.successResponse(c, http.StatusOK, "", respuesta)
}

// ReporteSolicitudDetalle reporte detallado de una solicitud
// @Summary Detalle completo de solicitud
// @Tags Reportes
// @Produce json
// @Param id path int true "ID de la solicitud"
// @Success 200 {object} dto.SolicitudResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/reportes/solicitudes/{id}/detalle [get]
func (h *Handler) ReporteSolicitudDetalle(c *gin.Context) {
	// El detalle es la misma proyección que GET /solicitudes/:id
	h.GetSolicitud(c)
}

// ReporteMantenimientosPorCategoria conteo de mantenimientos por categoría
// @Summary Mantenimientos por categoría
// @Tags Reportes
// @Produce json
// @Param categoria query string true "Nombre de la categoría"
// @Success 200 {object} dto.SuccessResponse
// @Router /api/reportes/mantenimientos-por-categoria [get]
func (h *Handler) ReporteMantenimientosPorCategoria(c *gin.Context) {
	categoria := c.Query("categoria")
	if categoria == "" {
		h.errorResponse(c, http.StatusBadRequest, "falta el parámetro 'categoria'")
		return
	}

	total, err := h.Repository.CountMantenimientosPorCategoria(categoria)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "", gin.H{
		"categoria": categoria,
		"total":     total,
	})
}

// ReporteMantenimientosCostosos mantenimientos costosos en maquinaria pesada
// @Summary Mantenimientos costosos
// @Tags Reportes
// @Produce json
// @Param categoria query string false "Categoría (por defecto pesada)"
// @Param umbral query number false "Costo mínimo (por defecto 1000000)"
// @Success 200 {object} dto.SuccessResponse
// @Router /api/reportes/mantenimientos-costosos [get]
func (h *Handler) ReporteMantenimientosCostosos(c *gin.Context) {
	categoria := c.DefaultQuery("categoria", "pesada")

	umbral := float64(repository.UmbralCostoPesada)
	if raw := c.Query("umbral"); raw != "" {
		valor, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "umbral inválido")
			return
		}
		umbral = valor
	}

	mantenimientos, err := h.Repository.GetMantenimientosCostosos(categoria, umbral)
	if err != nil {
		h.handleError(c, err)
		return
	}

	respuesta := make([]dto.MantenimientoResponse, len(mantenimientos))
	for i := range mantenimientos {
		respuesta[i] = mantenimientoToResponse(&mantenimientos[i])
	}
	h.successResponse(c, http.StatusOK, "", respuesta)
}
