package dto

import "time"

// ============ Estructuras comunes ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ValidationErrorResponse lleva el mapa campo -> mensaje (HTTP 422)
type ValidationErrorResponse struct {
	Status string            `json:"status"`
	Errors map[string]string `json:"errors"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Empresas ============

type EmpresaResponse struct {
	ID        uint   `json:"id"`
	Nit       string `json:"nit"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Ciudad    string `json:"ciudad"`
	Telefono  string `json:"telefono"`
}

type CreateEmpresaRequest struct {
	Nit       string `json:"nit" binding:"required"`
	Nombre    string `json:"nombre" binding:"required"`
	Direccion string `json:"direccion"`
	Ciudad    string `json:"ciudad"`
	Telefono  string `json:"telefono"`
}

type UpdateEmpresaRequest struct {
	Nit       *string `json:"nit"`
	Nombre    *string `json:"nombre"`
	Direccion *string `json:"direccion"`
	Ciudad    *string `json:"ciudad"`
	Telefono  *string `json:"telefono"`
}

type RepresentanteRequest struct {
	Nombre    string `json:"nombre" binding:"required"`
	Documento string `json:"documento" binding:"required"`
	Telefono  string `json:"telefono"`
	Correo    string `json:"correo" binding:"omitempty,email"`
}

// ============ Categorías y máquinas ============

type CategoriaRequest struct {
	Nombre      string `json:"nombre" binding:"required"`
	Descripcion string `json:"descripcion"`
}

type MaquinaResponse struct {
	ID        uint   `json:"id"`
	Tipo      string `json:"tipo"`
	Categoria string `json:"categoria"`
	EmpresaID *uint  `json:"empresa_id,omitempty"`
	Estado    string `json:"estado"`
}

type CreateMaquinaRequest struct {
	Tipo        string `json:"tipo" binding:"required"`
	CategoriaID uint   `json:"categoria_id" binding:"required"`
	EmpresaID   *uint  `json:"empresa_id"`
	Estado      string `json:"estado" binding:"omitempty,oneof=disponible mantenimiento reparacion"`
}

type UpdateMaquinaRequest struct {
	Tipo        *string `json:"tipo"`
	CategoriaID *uint   `json:"categoria_id"`
	EmpresaID   *uint   `json:"empresa_id"`
	Estado      *string `json:"estado" binding:"omitempty,oneof=disponible mantenimiento reparacion"`
}

// ============ Empleados ============

type CreateEmpleadoRequest struct {
	Nombre    string `json:"nombre" binding:"required"`
	Documento string `json:"documento" binding:"required"`
	Telefono  string `json:"telefono"`
	Correo    string `json:"correo" binding:"omitempty,email"`
	CargoID   uint   `json:"cargo_id" binding:"required"`
}

type EmpleadoResponse struct {
	ID        uint   `json:"id"`
	Nombre    string `json:"nombre"`
	Documento string `json:"documento"`
	Telefono  string `json:"telefono"`
	Correo    string `json:"correo"`
	Cargo     string `json:"cargo"`
}

// ============ Solicitudes ============

type LineaSolicitudRequest struct {
	MaquinaID uint `json:"maquina_id" binding:"required"`
	Cantidad  int  `json:"cantidad" binding:"required,gte=1"`
}

type CreateSolicitudRequest struct {
	EmpresaID        uint                    `json:"empresa_id" binding:"required"`
	Codigo           string                  `json:"codigo" binding:"required"`
	FechaSolicitud   time.Time               `json:"fecha_solicitud" binding:"required"`
	FechaProgramada  time.Time               `json:"fecha_programada" binding:"required"`
	Descripcion      string                  `json:"descripcion"`
	CantidadMaquinas *int                    `json:"cantidad_maquinas"` // nil = se deriva de las líneas
	Maquinas         []LineaSolicitudRequest `json:"maquinas" binding:"required,min=1,dive"`
	Empleados        []uint                  `json:"empleados"`
}

// UpdateSolicitudRequest: cualquier campo puede omitirse. Si viene
// "maquinas" el conjunto de líneas se reemplaza completo.
type UpdateSolicitudRequest struct {
	FechaSolicitud   *time.Time               `json:"fecha_solicitud"`
	FechaProgramada  *time.Time               `json:"fecha_programada"`
	Descripcion      *string                  `json:"descripcion"`
	CantidadMaquinas *int                     `json:"cantidad_maquinas"`
	Estado           *string                  `json:"estado" binding:"omitempty,oneof=pendiente aprobada rechazada completada"`
	EmpresaID        *uint                    `json:"empresa_id"`
	Maquinas         *[]LineaSolicitudRequest `json:"maquinas" binding:"omitempty,dive"`
	Empleados        *[]uint                  `json:"empleados"`
}

type LineaSolicitudResponse struct {
	MaquinaID       uint   `json:"maquina_id"`
	Tipo            string `json:"tipo"`
	Categoria       string `json:"categoria"`
	Cantidad        int    `json:"cantidad"`
	MantenimientoID *uint  `json:"mantenimiento_id,omitempty"`
}

type SolicitudResponse struct {
	ID               uint                     `json:"id"`
	Codigo           string                   `json:"codigo"`
	FechaSolicitud   time.Time                `json:"fecha_solicitud"`
	FechaProgramada  time.Time                `json:"fecha_programada"`
	Descripcion      string                   `json:"descripcion"`
	CantidadMaquinas int                      `json:"cantidad_maquinas"`
	FotoEvidencia    string                   `json:"foto_evidencia,omitempty"` // URL temporal de MinIO
	Estado           string                   `json:"estado"`
	EmpresaID        uint                     `json:"empresa_id"`
	Empresa          string                   `json:"empresa,omitempty"`
	Maquinas         []LineaSolicitudResponse `json:"maquinas,omitempty"`
	Empleados        []EmpleadoResponse       `json:"empleados,omitempty"`
}

type SolicitudListResponse struct {
	Solicitudes []SolicitudResponse `json:"solicitudes"`
	Total       int                 `json:"total"`
}

// ============ Mantenimientos ============

type CreateMantenimientoRequest struct {
	Codigo              string    `json:"codigo" binding:"required"`
	Nombre              string    `json:"nombre" binding:"required"`
	Descripcion         string    `json:"descripcion"`
	Costo               *float64  `json:"costo" binding:"required"`
	DuracionHoras       int       `json:"duracion_horas" binding:"required"`
	ManualProcedimiento *string   `json:"manual_procedimiento"`
	FechaEntrega        time.Time `json:"fecha_entrega" binding:"required"`
	MaquinaID           uint      `json:"maquina_id" binding:"required"`
	SolicitudID         *uint     `json:"solicitud_id"`
}

type UpdateMantenimientoRequest struct {
	Nombre              *string    `json:"nombre"`
	Descripcion         *string    `json:"descripcion"`
	Costo               *float64   `json:"costo"`
	DuracionHoras       *int       `json:"duracion_horas"`
	ManualProcedimiento *string    `json:"manual_procedimiento"`
	FechaEntrega        *time.Time `json:"fecha_entrega"`
	MaquinaID           *uint      `json:"maquina_id"`
	SolicitudID         *uint      `json:"solicitud_id"`
}

type MantenimientoResponse struct {
	ID                  uint      `json:"id"`
	Codigo              string    `json:"codigo"`
	Nombre              string    `json:"nombre"`
	Descripcion         string    `json:"descripcion"`
	Costo               float64   `json:"costo"`
	DuracionHoras       int       `json:"duracion_horas"`
	ManualProcedimiento *string   `json:"manual_procedimiento,omitempty"`
	FechaEntrega        time.Time `json:"fecha_entrega"`
	MaquinaID           uint      `json:"maquina_id"`
	MaquinaTipo         string    `json:"maquina_tipo,omitempty"`
	Categoria           string    `json:"categoria,omitempty"`
	SolicitudID         *uint     `json:"solicitud_id,omitempty"`
}

type MantenimientoListResponse struct {
	Mantenimientos []MantenimientoResponse `json:"mantenimientos"`
	Total          int                     `json:"total"`
}

// ============ Pagos ============

type CreatePagoRequest struct {
	Codigo          string    `json:"codigo" binding:"required"`
	FechaPago       time.Time `json:"fecha_pago" binding:"required"`
	Monto           *float64  `json:"monto" binding:"required"`
	Metodo          string    `json:"metodo" binding:"required,oneof=efectivo tarjeta transferencia"`
	Referencia      *string   `json:"referencia"`
	Estado          string    `json:"estado" binding:"omitempty,oneof=pendiente completado rechazado"`
	Notas           *string   `json:"notas"`
	MantenimientoID uint      `json:"mantenimiento_id" binding:"required"`
	EmpresaID       uint      `json:"empresa_id" binding:"required"`
}

type UpdatePagoRequest struct {
	FechaPago  *time.Time `json:"fecha_pago"`
	Monto      *float64   `json:"monto"`
	Metodo     *string    `json:"metodo" binding:"omitempty,oneof=efectivo tarjeta transferencia"`
	Referencia *string    `json:"referencia"`
	Estado     *string    `json:"estado" binding:"omitempty,oneof=pendiente completado rechazado"`
	Notas      *string    `json:"notas"`
}

type PagoResponse struct {
	ID              uint      `json:"id"`
	Codigo          string    `json:"codigo"`
	FechaPago       time.Time `json:"fecha_pago"`
	Monto           float64   `json:"monto"`
	Metodo          string    `json:"metodo"`
	Referencia      *string   `json:"referencia,omitempty"`
	Estado          string    `json:"estado"`
	Notas           *string   `json:"notas,omitempty"`
	MantenimientoID uint      `json:"mantenimiento_id"`
	EmpresaID       uint      `json:"empresa_id"`
}

type PagoListResponse struct {
	Pagos []PagoResponse `json:"pagos"`
	Total int            `json:"total"`
}

// ============ Usuarios ============

type UserResponse struct {
	ID             uint   `json:"id"`
	Login          string `json:"login"`
	NombreCompleto string `json:"nombre_completo"`
	Rol            int    `json:"rol"`
}

type RegisterRequest struct {
	Login          string `json:"login" binding:"required,min=3,max=50"`
	Password       string `json:"password" binding:"required,min=6"`
	NombreCompleto string `json:"nombre_completo" binding:"required"`
	Correo         string `json:"correo" binding:"omitempty,email"`
	Rol            int    `json:"rol"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
