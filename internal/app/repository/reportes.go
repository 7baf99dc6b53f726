package repository

import (
	"backend/internal/app/ds"
)

// Consultas de reporte: proyecciones de solo lectura sobre el agregado y
// sus joins. No agregan invariantes nuevos.

// MaquinasPorEmpresa es el total de máquinas reservadas por una empresa
type MaquinasPorEmpresa struct {
	EmpresaID     uint   `json:"empresa_id"`
	Empresa       string `json:"empresa"`
	TotalMaquinas int    `json:"total_maquinas"`
}

// GetTotalMaquinasReservadas suma las cantidades reservadas en todas las
// solicitudes de la empresa con ese nombre
func (r *Repository) GetTotalMaquinasReservadas(nombreEmpresa string) (*MaquinasPorEmpresa, error) {
	var resultado MaquinasPorEmpresa
	err := r.db.Model(&ds.SolicitudMaquina{}).
		Select("empresas.id as empresa_id, empresas.nombre as empresa, COALESCE(SUM(solicitud_maquinas.cantidad), 0) as total_maquinas").
		Joins("JOIN solicitudes ON solicitudes.id = solicitud_maquinas.solicitud_id").
		Joins("JOIN empresas ON empresas.id = solicitudes.empresa_id").
		Where("empresas.nombre = ?", nombreEmpresa).
		Group("empresas.id, empresas.nombre").
		Scan(&resultado).Error
	if err != nil {
		return nil, err
	}
	if resultado.EmpresaID == 0 {
		// Empresa sin reservas (o inexistente): total cero con el nombre pedido
		resultado.Empresa = nombreEmpresa
	}
	return &resultado, nil
}

// GetEmpresasSinSolicitudes lista las empresas que nunca han solicitado
func (r *Repository) GetEmpresasSinSolicitudes() ([]ds.Empresa, error) {
	var empresas []ds.Empresa
	err := r.db.
		Where("NOT EXISTS (SELECT 1 FROM solicitudes WHERE solicitudes.empresa_id = empresas.id)").
		Order("id").
		Find(&empresas).Error
	return empresas, err
}

// GetSolicitudesPorEmpleado busca las solicitudes asignadas al empleado
// con ese documento
func (r *Repository) GetSolicitudesPorEmpleado(documento string) ([]ds.Solicitud, error) {
	var solicitudes []ds.Solicitud
	err := r.db.
		Joins("JOIN solicitud_empleados ON solicitud_empleados.solicitud_id = solicitudes.id").
		Joins("JOIN empleados ON empleados.id = solicitud_empleados.empleado_id").
		Where("empleados.documento = ?", documento).
		Preload("Empresa").
		Order("solicitudes.id").
		Find(&solicitudes).Error
	return solicitudes, err
}

// GetSolicitudesSinMantenimiento lista las solicitudes que aún no tienen
// ningún mantenimiento enlazado
func (r *Repository) GetSolicitudesSinMantenimiento() ([]ds.Solicitud, error) {
	var solicitudes []ds.Solicitud
	err := r.db.
		Where("NOT EXISTS (SELECT 1 FROM mantenimientos WHERE mantenimientos.solicitud_id = solicitudes.id)").
		Preload("Empresa").
		Order("id").
		Find(&solicitudes).Error
	return solicitudes, err
}

// CountMantenimientosPorCategoria cuenta las órdenes de mantenimiento
// sobre máquinas de la categoría con ese nombre
func (r *Repository) CountMantenimientosPorCategoria(nombreCategoria string) (int64, error) {
	var count int64
	err := r.db.Model(&ds.Mantenimiento{}).
		Joins("JOIN maquinas ON maquinas.id = mantenimientos.maquina_id").
		Joins("JOIN categoria_maquinas ON categoria_maquinas.id = maquinas.categoria_id").
		Where("categoria_maquinas.nombre = ?", nombreCategoria).
		Count(&count).Error
	return count, err
}

// UmbralCostoPesada es el costo mínimo por defecto del reporte de
// mantenimientos costosos en maquinaria pesada
const UmbralCostoPesada = 1_000_000

// GetMantenimientosCostosos devuelve los mantenimientos sobre máquinas de
// la categoría dada con costo por encima del umbral, de mayor a menor
func (r *Repository) GetMantenimientosCostosos(nombreCategoria string, umbral float64) ([]ds.Mantenimiento, error) {
	var mantenimientos []ds.Mantenimiento
	err := r.db.
		Joins("JOIN maquinas ON maquinas.id = mantenimientos.maquina_id").
		Joins("JOIN categoria_maquinas ON categoria_maquinas.id = maquinas.categoria_id").
		Where("categoria_maquinas.nombre = ? AND mantenimientos.costo > ?", nombreCategoria, umbral).
		Preload("Maquina").Preload("Maquina.Categoria").
		Order("mantenimientos.costo DESC").
		Find(&mantenimientos).Error
	return mantenimientos, err
}
