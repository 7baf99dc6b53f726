package repository

import (
	"errors"
	"time"

	"backend/internal/app/apperr"
	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Métodos del libro de pagos

type NuevoPago struct {
	Codigo          string
	FechaPago       time.Time
	Monto           float64
	Metodo          string
	Referencia      *string
	Estado          string // vacío = pendiente
	Notas           *string
	MantenimientoID uint
	EmpresaID       uint
}

// CreatePago valida monto, método y claves foráneas. No se comprueba que
// la empresa del pago coincida con la cadena máquina/solicitud del
// mantenimiento (hueco heredado del esquema original, documentado).
func (r *Repository) CreatePago(entrada NuevoPago) (*ds.Pago, error) {
	if entrada.Monto < 0 {
		return nil, apperr.NewValidationField("monto", "el monto no puede ser negativo")
	}
	if !metodoPagoValido(entrada.Metodo) {
		return nil, apperr.NewValidationField("metodo", "método de pago inválido")
	}
	if entrada.Estado == "" {
		entrada.Estado = ds.PagoPendiente
	}
	if !estadoPagoValido(entrada.Estado) {
		return nil, apperr.NewValidationField("estado", "estado de pago inválido")
	}
	if !r.MantenimientoExiste(entrada.MantenimientoID) {
		return nil, apperr.NewValidationField("mantenimiento_id", "el mantenimiento no existe")
	}
	if !r.EmpresaExiste(entrada.EmpresaID) {
		return nil, apperr.NewValidationField("empresa_id", "la empresa no existe")
	}

	pago := ds.Pago{
		Codigo:          entrada.Codigo,
		FechaPago:       entrada.FechaPago,
		Monto:           entrada.Monto,
		Metodo:          entrada.Metodo,
		Referencia:      entrada.Referencia,
		Estado:          entrada.Estado,
		Notas:           entrada.Notas,
		MantenimientoID: entrada.MantenimientoID,
		EmpresaID:       entrada.EmpresaID,
	}
	if err := r.db.Create(&pago).Error; err != nil {
		return nil, traducirError(err, "pago")
	}
	return &pago, nil
}

func (r *Repository) GetPagoByID(id uint) (*ds.Pago, error) {
	var pago ds.Pago
	err := r.db.Preload("Mantenimiento").Preload("Empresa").First(&pago, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("pago", id)
		}
		return nil, err
	}
	return &pago, nil
}

func (r *Repository) GetAllPagos() ([]ds.Pago, error) {
	var pagos []ds.Pago
	err := r.db.Preload("Mantenimiento").Preload("Empresa").Order("id").Find(&pagos).Error
	return pagos, err
}

type ActualizarPago struct {
	FechaPago  *time.Time
	Monto      *float64
	Metodo     *string
	Referencia *string
	Estado     *string
	Notas      *string
}

func (r *Repository) UpdatePago(id uint, cambios ActualizarPago) (*ds.Pago, error) {
	pago, err := r.GetPagoByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if cambios.FechaPago != nil {
		updates["fecha_pago"] = *cambios.FechaPago
	}
	if cambios.Monto != nil {
		if *cambios.Monto < 0 {
			return nil, apperr.NewValidationField("monto", "el monto no puede ser negativo")
		}
		updates["monto"] = *cambios.Monto
	}
	if cambios.Metodo != nil {
		if !metodoPagoValido(*cambios.Metodo) {
			return nil, apperr.NewValidationField("metodo", "método de pago inválido")
		}
		updates["metodo"] = *cambios.Metodo
	}
	if cambios.Referencia != nil {
		updates["referencia"] = *cambios.Referencia
	}
	if cambios.Estado != nil {
		// Enum sin guarda: cualquier estado puede asignarse directamente
		if !estadoPagoValido(*cambios.Estado) {
			return nil, apperr.NewValidationField("estado", "estado de pago inválido")
		}
		updates["estado"] = *cambios.Estado
	}
	if cambios.Notas != nil {
		updates["notas"] = *cambios.Notas
	}

	if len(updates) > 0 {
		if err := r.db.Model(pago).Updates(updates).Error; err != nil {
			return nil, traducirError(err, "pago")
		}
	}
	return r.GetPagoByID(id)
}

func (r *Repository) DeletePago(id uint) error {
	if _, err := r.GetPagoByID(id); err != nil {
		return err
	}
	return r.db.Delete(&ds.Pago{}, id).Error
}

func metodoPagoValido(metodo string) bool {
	switch metodo {
	case ds.PagoEfectivo, ds.PagoTarjeta, ds.PagoTransferencia:
		return true
	}
	return false
}

func estadoPagoValido(estado string) bool {
	switch estado {
	case ds.PagoPendiente, ds.PagoCompletado, ds.PagoRechazado:
		return true
	}
	return false
}
