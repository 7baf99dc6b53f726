package handler

import (
	"io"
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Manejadores del agregado solicitud

// fotoURL resuelve la URL temporal de la evidencia, si hay foto y cliente
func (h *Handler) fotoURL(foto *string) string {
	if foto == nil || *foto == "" || h.MinIOClient == nil {
		return ""
	}
	url, err := h.MinIOClient.GetEvidenciaURL(*foto)
	if err != nil {
		logrus.Error("error generando URL de evidencia: ", err)
		return ""
	}
	return url
}

func (h *Handler) solicitudToResponse(s *ds.Solicitud) dto.SolicitudResponse {
	return dto.SolicitudResponse{
		ID:               s.ID,
		Codigo:           s.Codigo,
		FechaSolicitud:   s.FechaSolicitud,
		FechaProgramada:  s.FechaProgramada,
		Descripcion:      s.Descripcion,
		CantidadMaquinas: s.CantidadMaquinas,
		FotoEvidencia:    h.fotoURL(s.FotoEvidencia),
		Estado:           s.Estado,
		EmpresaID:        s.EmpresaID,
		Empresa:          s.Empresa.Nombre,
	}
}

func lineasFromRequest(lineas []dto.LineaSolicitudRequest) []repository.LineaSolicitud {
	resultado := make([]repository.LineaSolicitud, len(lineas))
	for i, l := range lineas {
		resultado[i] = repository.LineaSolicitud{MaquinaID: l.MaquinaID, Cantidad: l.Cantidad}
	}
	return resultado
}

// GetSolicitudes lista solicitudes con filtros opcionales
// @Summary Listado de solicitudes
// @Tags Solicitudes
// @Produce json
// @Param estado query string false "Filtro por estado"
// @Param empresa_id query int false "Filtro por empresa"
// @Success 200 {object} dto.SolicitudListResponse
// @Router /api/solicitudes [get]
func (h *Handler) GetSolicitudes(c *gin.Context) {
	var filtro repository.FiltroSolicitudes
	if estado := c.Query("estado"); estado != "" {
		filtro.Estado = &estado
	}
	var query struct {
		EmpresaID *uint `form:"empresa_id"`
	}
	if err := c.ShouldBindQuery(&query); err == nil {
		filtro.EmpresaID = query.EmpresaID
	}

	solicitudes, err := h.Repository.GetAllSolicitudes(filtro)
	if err != nil {
		h.handleError(c, err)
		return
	}

	respuesta := make([]dto.SolicitudResponse, len(solicitudes))
	for i := range solicitudes {
		respuesta[i] = h.solicitudToResponse(&solicitudes[i])
	}

	c.JSON(http.StatusOK, dto.SolicitudListResponse{
		Solicitudes: respuesta,
		Total:       len(respuesta),
	})
}

// GetSolicitud devuelve el agregado completo: solicitud, líneas y empleados
// @Summary Detalle de solicitud
// @Tags Solicitudes
// @Produce json
// @Param id path int true "ID de la solicitud"
// @Success 200 {object} dto.SolicitudResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/solicitudes/{id} [get]
func (h *Handler) GetSolicitud(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	detalle, err := h.Repository.GetSolicitudDetalle(id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	respuesta := h.solicitudToResponse(&detalle.Solicitud)
	respuesta.Maquinas = make([]dto.LineaSolicitudResponse, len(detalle.Lineas))
	for i, linea := range detalle.Lineas {
		respuesta.Maquinas[i] = dto.LineaSolicitudResponse{
			MaquinaID:       linea.MaquinaID,
			Tipo:            linea.MaquinaTipo,
			Categoria:       linea.Categoria,
			Cantidad:        linea.Cantidad,
			MantenimientoID: linea.MantenimientoID,
		}
	}
	respuesta.Empleados = make([]dto.EmpleadoResponse, len(detalle.Empleados))
	for i, e := range detalle.Empleados {
		respuesta.Empleados[i] = dto.EmpleadoResponse{
			ID:        e.ID,
			Nombre:    e.Nombre,
			Documento: e.Documento,
			Telefono:  e.Telefono,
			Correo:    e.Correo,
			Cargo:     e.Cargo.Nombre,
		}
	}

	c.JSON(http.StatusOK, respuesta)
}

// CreateSolicitud crea la solicitud con sus líneas y asignaciones
// @Summary Creación de solicitud
// @Description Persiste la solicitud, sus líneas de reserva y sus empleados asignados de forma atómica
// @Tags Solicitudes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSolicitudRequest true "Datos de la solicitud"
// @Success 201 {object} dto.SuccessResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/solicitudes [post]
func (h *Handler) CreateSolicitud(c *gin.Context) {
	var req dto.CreateSolicitudRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "datos inválidos: "+err.Error())
		return
	}

	solicitud, err := h.Repository.CreateSolicitud(repository.NuevaSolicitud{
		EmpresaID:        req.EmpresaID,
		Codigo:           req.Codigo,
		FechaSolicitud:   req.FechaSolicitud,
		FechaProgramada:  req.FechaProgramada,
		Descripcion:      req.Descripcion,
		CantidadMaquinas: req.CantidadMaquinas,
		Lineas:           lineasFromRequest(req.Maquinas),
		EmpleadoIDs:      req.Empleados,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusCreated, "solicitud creada", h.solicitudToResponse(solicitud))
}

// UpdateSolicitud aplica actualización parcial; un arreglo de máquinas
// reemplaza el conjunto de líneas completo
// @Summary Actualización parcial de solicitud
// @Tags Solicitudes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la solicitud"
// @Param request body dto.UpdateSolicitudRequest true "Campos a cambiar"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/solicitudes/{id} [put]
func (h *Handler) UpdateSolicitud(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	var req dto.UpdateSolicitudRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "datos inválidos: "+err.Error())
		return
	}

	cambios := repository.ActualizarSolicitud{
		FechaSolicitud:   req.FechaSolicitud,
		FechaProgramada:  req.FechaProgramada,
		Descripcion:      req.Descripcion,
		CantidadMaquinas: req.CantidadMaquinas,
		Estado:           req.Estado,
		EmpresaID:        req.EmpresaID,
		EmpleadoIDs:      req.Empleados,
	}
	if req.Maquinas != nil {
		lineas := lineasFromRequest(*req.Maquinas)
		cambios.Lineas = &lineas
	}

	solicitud, err := h.Repository.UpdateSolicitud(id, cambios)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "solicitud actualizada", h.solicitudToResponse(solicitud))
}

// DeleteSolicitud borra el agregado; líneas y asignaciones caen con él
// @Summary Borrado de solicitud
// @Tags Solicitudes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la solicitud"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/solicitudes/{id} [delete]
func (h *Handler) DeleteSolicitud(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	if err := h.Repository.DeleteSolicitud(id); err != nil {
		h.handleError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "solicitud eliminada", nil)
}

// UploadFotoSolicitud sube la foto de evidencia a MinIO
// @Summary Foto de evidencia
// @Tags Solicitudes
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la solicitud"
// @Param foto formData file true "Imagen de evidencia"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/solicitudes/{id}/foto [post]
func (h *Handler) UploadFotoSolicitud(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	solicitud, err := h.Repository.GetSolicitudByID(id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, "almacenamiento de evidencias no disponible")
		return
	}

	fileHeader, err := c.FormFile("foto")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "falta el archivo 'foto'")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Si había foto anterior se borra para no dejar huérfanos
	if solicitud.FotoEvidencia != nil && *solicitud.FotoEvidencia != "" {
		if err := h.MinIOClient.DeleteEvidencia(*solicitud.FotoEvidencia); err != nil {
			logrus.Error("error borrando evidencia anterior: ", err)
		}
	}

	filename, err := h.MinIOClient.UploadEvidencia(data, fileHeader.Filename)
	if err != nil {
		h.handleError(c, err)
		return
	}

	solicitud, err = h.Repository.UpdateSolicitud(id, repository.ActualizarSolicitud{
		FotoEvidencia: &filename,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "foto cargada", h.solicitudToResponse(solicitud))
}
