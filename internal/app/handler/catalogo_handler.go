package handler

import (
	"net/http"

	"backend/internal/app/dto"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// Manejadores del catálogo: empresas, representantes, categorías y máquinas

// GetEmpresas lista las empresas
// @Summary Listado de empresas
// @Tags Empresas
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /api/empresas [get]
func (h *Handler) GetEmpresas(c *gin.Context) {
	empresas, err := h.Repository.GetAllEmpresas()
	if err != nil {
		h.handleError(c, err)
		return
	}

	respuesta := make([]dto.EmpresaResponse, len(empresas))
	for i, e := range empresas {
		respuesta[i] = dto.EmpresaResponse{
			ID:        e.ID,
			Nit:       e.Nit,
			Nombre:    e.Nombre,
			Direccion: e.Direccion,
			Ciudad:    e.Ciudad,
			Telefono:  e.Telefono,
		}
	}
	h.successResponse(c, http.StatusOK, "", respuesta)
}

// GetEmpresa devuelve una empresa por ID
// @Summary Detalle de empresa
// @Tags Empresas
// @Produce json
// @Param id path int true "ID de la empresa"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/empresas/{id} [get]
func (h *Handler) GetEmpresa(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	empresa, err := h.Repository.GetEmpresaByID(id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "", dto.EmpresaResponse{
		ID:        empresa.ID,
		Nit:       empresa.Nit,
		Nombre:    empresa.Nombre,
		Direccion: empresa.Direccion,
		Ciudad:    empresa.Ciudad,
		Telefono:  empresa.Telefono,
	})
}

// CreateEmpresa registra una empresa
// @Summary Creación de empresa
// @Tags Empresas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEmpresaRequest true "Datos de la empresa"
// @Success 201 {object} dto.SuccessResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/empresas [post]
func (h *Handler) CreateEmpresa(c *gin.Context) {
	var req dto.CreateEmpresaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "datos inválidos: "+err.Error())
		return
	}

	empresa, err := h.Repository.CreateEmpresa(req.Nit, req.Nombre, req.Direccion, req.Ciudad, req.Telefono)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusCreated, "empresa creada", dto.EmpresaResponse{
		ID:        empresa.ID,
		Nit:       empresa.Nit,
		Nombre:    empresa.Nombre,
		Direccion: empresa.Direccion,
		Ciudad:    empresa.Ciudad,
		Telefono:  empresa.Telefono,
	})
}

// UpdateEmpresa actualiza campos sueltos de una empresa
// @Summary Actualización parcial de empresa
// @Tags Empresas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la empresa"
// @Param request body dto.UpdateEmpresaRequest true "Campos a cambiar"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/empresas/{id} [put]
func (h *Handler) UpdateEmpresa(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	var req dto.UpdateEmpresaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "datos inválidos: "+err.Error())
		return
	}

	empresa, err := h.Repository.UpdateEmpresa(id, repository.ActualizarEmpresa{
		Nit:       req.Nit,
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
		Ciudad:    req.Ciudad,
		Telefono:  req.Telefono,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "empresa actualizada", dto.EmpresaResponse{
		ID:        empresa.ID,
		Nit:       empresa.Nit,
		Nombre:    empresa.Nombre,
		Direccion: empresa.Direccion,
		Ciudad:    empresa.Ciudad,
		Telefono:  empresa.Telefono,
	})
}

// DeleteEmpresa borra una empresa sin dependientes (modo restrict)
// @Summary Borrado de empresa
// @Tags Empresas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la empresa"
// @Success 200 {object} dto.SuccessResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/empresas/{id} [delete]
func (h *Handler) DeleteEmpresa(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	if err := h.Repository.DeleteEmpresa(id); err != nil {
		h.handleError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "empresa eliminada", nil)
}

// GetRepresentante devuelve el representante de la empresa
// @Summary Representante de empresa
// @Tags Empresas
// @Produce json
// @Param id path int true "ID de la empresa"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/empresas/{id}/representante [get]
func (h *Handler) GetRepresentante(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	rep, err := h.Repository.GetRepresentante(id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "", rep)
}

// SetRepresentante crea o reemplaza el representante de la empresa
// @Summary Asignación de representante
// @Tags Empresas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la empresa"
// @Param request body dto.RepresentanteRequest true "Datos del representante"
// @Success 200 {object} dto.SuccessResponse
// @Router /api/empresas/{id}/representante [put]
func (h *Handler) SetRepresentante(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	var req dto.RepresentanteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "datos inválidos: "+err.Error())
		return
	}

	rep, err := h.Repository.SetRepresentante(id, req.Nombre, req.Documento, req.Telefono, req.Correo)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "representante asignado", rep)
}

// GetCategorias lista las categorías de máquina
// @Summary Listado de categorías
// @Tags Maquinas
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /api/categorias [get]
func (h *Handler) GetCategorias(c *gin.Context) {
	categorias, err := h.Repository.GetAllCategorias()
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "", categorias)
}

// CreateCategoria registra una categoría de máquina
// @Summary Creación de categoría
// @Tags Maquinas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CategoriaRequest true "Datos de la categoría"
// @Success 201 {object} dto.SuccessResponse
// @Router /api/categorias [post]
func (h *Handler) CreateCategoria(c *gin.Context) {
	var req dto.CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "datos inválidos: "+err.Error())
		return
	}

	categoria, err := h.Repository.CreateCategoria(req.Nombre, req.Descripcion)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.successResponse(c, http.StatusCreated, "categoría creada", categoria)
}

// DeleteCategoria borra una categoría sin máquinas (modo restrict)
// @Summary Borrado de categoría
// @Tags Maquinas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la categoría"
// @Success 200 {object} dto.SuccessResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/categorias/{id} [delete]
func (h *Handler) DeleteCategoria(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	if err := h.Repository.DeleteCategoria(id); err != nil {
		h.handleError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "categoría eliminada", nil)
}

// GetMaquinas lista las máquinas del catálogo
// @Summary Listado de máquinas
// @Tags Maquinas
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /api/maquinas [get]
func (h *Handler) GetMaquinas(c *gin.Context) {
	maquinas, err := h.Repository.GetAllMaquinas()
	if err != nil {
		h.handleError(c, err)
		return
	}

	respuesta := make([]dto.MaquinaResponse, len(maquinas))
	for i, m := range maquinas {
		respuesta[i] = dto.MaquinaResponse{
			ID:        m.ID,
			Tipo:      m.Tipo,
			Categoria: m.Categoria.Nombre,
			EmpresaID: m.EmpresaID,
			Estado:    m.Estado,
		}
	}
	h.successResponse(c, http.StatusOK, "", respuesta)
}

// GetMaquina devuelve una máquina por ID
// @Summary Detalle de máquina
// @Tags Maquinas
// @Produce json
// @Param id path int true "ID de la máquina"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/maquinas/{id} [get]
func (h *Handler) GetMaquina(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	maquina, err := h.Repository.GetMaquinaByID(id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "", dto.MaquinaResponse{
		ID:        maquina.ID,
		Tipo:      maquina.Tipo,
		Categoria: maquina.Categoria.Nombre,
		EmpresaID: maquina.EmpresaID,
		Estado:    maquina.Estado,
	})
}

// CreateMaquina registra una máquina
// @Summary Creación de máquina
// @Tags Maquinas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMaquinaRequest true "Datos de la máquina"
// @Success 201 {object} dto.SuccessResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/maquinas [post]
func (h *Handler) CreateMaquina(c *gin.Context) {
	var req dto.CreateMaquinaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "datos inválidos: "+err.Error())
		return
	}

	maquina, err := h.Repository.CreateMaquina(req.Tipo, req.CategoriaID, req.EmpresaID, req.Estado)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// relee con la categoría precargada
	maquina, err = h.Repository.GetMaquinaByID(maquina.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusCreated, "máquina creada", dto.MaquinaResponse{
		ID:        maquina.ID,
		Tipo:      maquina.Tipo,
		Categoria: maquina.Categoria.Nombre,
		EmpresaID: maquina.EmpresaID,
		Estado:    maquina.Estado,
	})
}

// UpdateMaquina actualiza campos sueltos de una máquina
// @Summary Actualización parcial de máquina
// @Tags Maquinas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la máquina"
// @Param request body dto.UpdateMaquinaRequest true "Campos a cambiar"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/maquinas/{id} [put]
func (h *Handler) UpdateMaquina(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	var req dto.UpdateMaquinaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "datos inválidos: "+err.Error())
		return
	}

	maquina, err := h.Repository.UpdateMaquina(id, repository.ActualizarMaquina{
		Tipo:        req.Tipo,
		CategoriaID: req.CategoriaID,
		EmpresaID:   req.EmpresaID,
		Estado:      req.Estado,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "máquina actualizada", dto.MaquinaResponse{
		ID:        maquina.ID,
		Tipo:      maquina.Tipo,
		Categoria: maquina.Categoria.Nombre,
		EmpresaID: maquina.EmpresaID,
		Estado:    maquina.Estado,
	})
}

// DeleteMaquina borra una máquina sin reservas ni mantenimientos
// @Summary Borrado de máquina
// @Tags Maquinas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la máquina"
// @Success 200 {object} dto.SuccessResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/maquinas/{id} [delete]
func (h *Handler) DeleteMaquina(c *gin.Context) {
	id := h.parseID(c)
	if id == 0 {
		return
	}

	if err := h.Repository.DeleteMaquina(id); err != nil {
		h.handleError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "máquina eliminada", nil)
}
