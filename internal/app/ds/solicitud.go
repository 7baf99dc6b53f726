package ds

import "time"

// Estados de una solicitud. El estado se asigna directamente, sin tabla
// de transiciones (comportamiento heredado del esquema original).
const (
	SolicitudPendiente  = "pendiente"
	SolicitudAprobada   = "aprobada"
	SolicitudRechazada  = "rechazada"
	SolicitudCompletada = "completada"
)

// Tabla de solicitudes de servicio
type Solicitud struct {
	ID               uint      `gorm:"primaryKey"`
	Codigo           string    `gorm:"type:varchar(20);unique;not null"`
	FechaSolicitud   time.Time `gorm:"not null"`
	FechaProgramada  time.Time `gorm:"not null"`
	Descripcion      string    `gorm:"type:text"`
	CantidadMaquinas int       `gorm:"type:int;default:0"`
	FotoEvidencia    *string   `gorm:"type:varchar(255)"` // nombre del objeto en MinIO
	Estado           string    `gorm:"type:varchar(20);not null;default:'pendiente'"`
	EmpresaID        uint      `gorm:"not null;index"`

	Empresa Empresa `gorm:"foreignKey:EmpresaID"`
}

// TableName evita el plural que genera gorm por defecto ("solicituds")
func (Solicitud) TableName() string {
	return "solicitudes"
}

// Tabla muchos-a-muchos solicitud-máquina con cantidad reservada.
// Una máquina aparece a lo sumo una vez por solicitud.
type SolicitudMaquina struct {
	ID              uint  `gorm:"primaryKey"`
	SolicitudID     uint  `gorm:"not null;index;uniqueIndex:idx_solicitud_maquina"`
	MaquinaID       uint  `gorm:"not null;index;uniqueIndex:idx_solicitud_maquina"`
	Cantidad        int   `gorm:"type:int;not null;default:1"`
	MantenimientoID *uint `gorm:"default:null"` // referencia al mantenimiento generado para esta línea

	Solicitud Solicitud `gorm:"foreignKey:SolicitudID"`
	Maquina   Maquina   `gorm:"foreignKey:MaquinaID"`
}

// Tabla muchos-a-muchos solicitud-empleado (asignación, sin atributos extra)
type SolicitudEmpleado struct {
	ID          uint `gorm:"primaryKey"`
	SolicitudID uint `gorm:"not null;index;uniqueIndex:idx_solicitud_empleado"`
	EmpleadoID  uint `gorm:"not null;index;uniqueIndex:idx_solicitud_empleado"`

	Solicitud Solicitud `gorm:"foreignKey:SolicitudID"`
	Empleado  Empleado  `gorm:"foreignKey:EmpleadoID"`
}
