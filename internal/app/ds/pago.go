package ds

import "time"

// Métodos de pago aceptados
const (
	PagoEfectivo      = "efectivo"
	PagoTarjeta       = "tarjeta"
	PagoTransferencia = "transferencia"
)

// Estados de un pago (sin guarda de transiciones, igual que Solicitud)
const (
	PagoPendiente  = "pendiente"
	PagoCompletado = "completado"
	PagoRechazado  = "rechazado"
)

// Tabla de pagos contra un mantenimiento
type Pago struct {
	ID              uint      `gorm:"primaryKey"`
	Codigo          string    `gorm:"type:varchar(20);unique;not null"`
	FechaPago       time.Time `gorm:"not null"`
	Monto           float64   `gorm:"type:decimal(12,2);not null"`
	Metodo          string    `gorm:"type:varchar(20);not null"` // efectivo, tarjeta, transferencia
	Referencia      *string   `gorm:"type:varchar(50)"`
	Estado          string    `gorm:"type:varchar(20);not null;default:'pendiente'"`
	Notas           *string   `gorm:"type:text"`
	MantenimientoID uint      `gorm:"not null;index"`
	EmpresaID       uint      `gorm:"not null;index"` // no tiene por qué coincidir con la empresa de la cadena máquina/solicitud

	Mantenimiento Mantenimiento `gorm:"foreignKey:MantenimientoID"`
	Empresa       Empresa       `gorm:"foreignKey:EmpresaID"`
}
