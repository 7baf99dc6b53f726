package ds

import "time"

// Tabla de mantenimientos (órdenes de trabajo sobre una máquina)
type Mantenimiento struct {
	ID                  uint      `gorm:"primaryKey"`
	Codigo              string    `gorm:"type:varchar(20);unique;not null"`
	Nombre              string    `gorm:"type:varchar(100);not null"`
	Descripcion         string    `gorm:"type:text"`
	Costo               float64   `gorm:"type:decimal(12,2);not null"`
	DuracionHoras       int       `gorm:"type:int;not null"` // 1..720
	ManualProcedimiento *string   `gorm:"type:text"`
	FechaEntrega        time.Time `gorm:"not null"`
	MaquinaID           uint      `gorm:"not null;index"`
	SolicitudID         *uint     `gorm:"default:null;index"` // opcional: solicitud que originó la orden

	Maquina   Maquina    `gorm:"foreignKey:MaquinaID"`
	Solicitud *Solicitud `gorm:"foreignKey:SolicitudID"`
}
