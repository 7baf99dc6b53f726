package handler

import (
	"net/http"
	"strconv"

	"backend/internal/app/apperr"
	"backend/internal/app/dto"
	"backend/internal/app/middleware"
	"backend/internal/app/repository"
	"backend/internal/app/role"
	"backend/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler contiene los manejadores del API REST
type Handler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
	AuthHandler *AuthHandler
}

func NewHandler(r *repository.Repository, minioClient *storage.MinIOClient, authHandler *AuthHandler) *Handler {
	return &Handler{
		Repository:  r,
		MinIOClient: minioClient,
		AuthHandler: authHandler,
	}
}

// RegisterRoutes registra todas las rutas del API con su autorización.
// Lecturas y reportes son públicos; las mutaciones del catálogo son de
// administrador y las del flujo solicitud-mantenimiento-pago de
// cualquier usuario autenticado.
func (h *Handler) RegisterRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	autenticado := authMiddleware.WithAuthCheck(role.Operador, role.Gestor, role.Admin)
	soloAdmin := authMiddleware.WithAuthCheck(role.Admin)

	// ============ Catálogo: empresas ============
	empresas := api.Group("/empresas")
	{
		empresas.GET("", h.GetEmpresas)
		empresas.GET("/:id", h.GetEmpresa)
		empresas.POST("", soloAdmin, h.CreateEmpresa)
		empresas.PUT("/:id", soloAdmin, h.UpdateEmpresa)
		empresas.DELETE("/:id", soloAdmin, h.DeleteEmpresa)
		empresas.GET("/:id/representante", h.GetRepresentante)
		empresas.PUT("/:id/representante", soloAdmin, h.SetRepresentante)
	}

	// ============ Catálogo: categorías y máquinas ============
	categorias := api.Group("/categorias")
	{
		categorias.GET("", h.GetCategorias)
		categorias.POST("", soloAdmin, h.CreateCategoria)
		categorias.DELETE("/:id", soloAdmin, h.DeleteCategoria)
	}

	maquinas := api.Group("/maquinas")
	{
		maquinas.GET("", h.GetMaquinas)
		maquinas.GET("/:id", h.GetMaquina)
		maquinas.POST("", soloAdmin, h.CreateMaquina)
		maquinas.PUT("/:id", soloAdmin, h.UpdateMaquina)
		maquinas.DELETE("/:id", soloAdmin, h.DeleteMaquina)
	}

	// ============ Directorio: cargos y empleados ============
	cargos := api.Group("/cargos")
	{
		cargos.GET("", h.GetCargos)
		cargos.POST("", soloAdmin, h.CreateCargo)
	}

	empleados := api.Group("/empleados")
	{
		empleados.GET("", h.GetEmpleados)
		empleados.GET("/:id", h.GetEmpleado)
		empleados.POST("", soloAdmin, h.CreateEmpleado)
		empleados.DELETE("/:id", soloAdmin, h.DeleteEmpleado)
	}

	// ============ Flujo: solicitudes ============
	solicitudes := api.Group("/solicitudes")
	{
		solicitudes.GET("", h.GetSolicitudes)
		solicitudes.GET("/:id", h.GetSolicitud)
		solicitudes.POST("", autenticado, h.CreateSolicitud)
		solicitudes.PUT("/:id", autenticado, h.UpdateSolicitud)
		solicitudes.DELETE("/:id", autenticado, h.DeleteSolicitud)
		solicitudes.POST("/:id/foto", autenticado, h.UploadFotoSolicitud)
	}

	// ============ Flujo: mantenimientos ============
	mantenimientos := api.Group("/mantenimientos")
	{
		mantenimientos.GET("", h.GetMantenimientos)
		mantenimientos.GET("/:id", h.GetMantenimiento)
		mantenimientos.POST("", autenticado, h.CreateMantenimiento)
		mantenimientos.PUT("/:id", autenticado, h.UpdateMantenimiento)
		mantenimientos.DELETE("/:id", autenticado, h.DeleteMantenimiento)
	}

	// ============ Flujo: pagos ============
	pagos := api.Group("/pagos")
	{
		pagos.GET("", h.GetPagos)
		pagos.GET("/:id", h.GetPago)
		pagos.POST("", autenticado, h.CreatePago)
		pagos.PUT("/:id", autenticado, h.UpdatePago)
		pagos.DELETE("/:id", autenticado, h.DeletePago)
	}

	// ============ Reportes (solo lectura) ============
	reportes := api.Group("/reportes")
	{
		reportes.GET("/maquinas-por-empresa", h.ReporteMaquinasPorEmpresa)
		reportes.GET("/empresas-sin-solicitudes", h.ReporteEmpresasSinSolicitudes)
		reportes.GET("/solicitudes-por-empleado", h.ReporteSolicitudesPorEmpleado)
		reportes.GET("/solicitudes-sin-mantenimiento", h.ReporteSolicitudesSinMantenimiento)
		reportes.GET("/solicitudes/:id/detalle", h.ReporteSolicitudDetalle)
		reportes.GET("/mantenimientos-por-categoria", h.ReporteMantenimientosPorCategoria)
		reportes.GET("/mantenimientos-costosos", h.ReporteMantenimientosCostosos)
	}

	// ============ Autenticación ============
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.AuthHandler.RegisterUser)
		auth.POST("/login", h.AuthHandler.LoginUser)
		auth.POST("/logout", autenticado, h.AuthHandler.LogoutUser)
	}

	router.GET("/ping", h.Ping)
}

// Ping comprueba que el servidor responde
// @Summary Verificación de servicio
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *Handler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}

// ============ Funciones auxiliares ============

func (h *Handler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *Handler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// handleError traduce los errores del repositorio a códigos HTTP:
// validación 422 (con mapa campo->mensaje), no encontrado 404,
// conflicto de unicidad o de referencia 409, lo demás 500
func (h *Handler) handleError(c *gin.Context, err error) {
	if e, ok := apperr.As(err); ok {
		switch e.Kind {
		case apperr.Validation:
			c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
				Status: "fail",
				Errors: e.Fields,
			})
		case apperr.NotFound:
			h.errorResponse(c, http.StatusNotFound, e.Message)
		case apperr.Conflict, apperr.Referential:
			h.errorResponse(c, http.StatusConflict, e.Message)
		default:
			h.errorResponse(c, http.StatusInternalServerError, e.Message)
		}
		return
	}

	logrus.Error(err)
	h.errorResponse(c, http.StatusInternalServerError, "error interno del servidor")
}

// parseID lee el parámetro :id como uint; 0 indica error (ya respondido)
func (h *Handler) parseID(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "ID inválido")
		return 0
	}
	return uint(id)
}
