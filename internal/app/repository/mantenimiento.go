package repository

import (
	"errors"
	"time"

	"backend/internal/app/apperr"
	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Métodos del libro de mantenimientos

const (
	duracionMinHoras = 1
	duracionMaxHoras = 720
)

type NuevoMantenimiento struct {
	Codigo              string
	Nombre              string
	Descripcion         string
	Costo               float64
	DuracionHoras       int
	ManualProcedimiento *string
	FechaEntrega        time.Time
	MaquinaID           uint
	SolicitudID         *uint
}

func validarRangosMantenimiento(costo float64, duracionHoras int) error {
	if costo < 0 {
		return apperr.NewValidationField("costo", "el costo no puede ser negativo")
	}
	if duracionHoras < duracionMinHoras || duracionHoras > duracionMaxHoras {
		return apperr.NewValidationField("duracion_horas", "la duración debe estar entre 1 y 720 horas")
	}
	return nil
}

// CreateMantenimiento valida rangos y claves foráneas. Si viene una
// solicitud y esta tiene una línea para la misma máquina, la línea queda
// apuntando al mantenimiento creado (enlace manual, dentro de la misma
// transacción).
func (r *Repository) CreateMantenimiento(entrada NuevoMantenimiento) (*ds.Mantenimiento, error) {
	if err := validarRangosMantenimiento(entrada.Costo, entrada.DuracionHoras); err != nil {
		return nil, err
	}
	// La fecha de entrega solo se valida al crear, nunca al leer
	hoy := time.Now().Truncate(24 * time.Hour)
	if entrada.FechaEntrega.Before(hoy) {
		return nil, apperr.NewValidationField("fecha_entrega", "la fecha de entrega no puede ser anterior a hoy")
	}
	if !r.MaquinaExiste(entrada.MaquinaID) {
		return nil, apperr.NewValidationField("maquina_id", "la máquina no existe")
	}
	if entrada.SolicitudID != nil && !r.SolicitudExiste(*entrada.SolicitudID) {
		return nil, apperr.NewValidationField("solicitud_id", "la solicitud no existe")
	}

	mantenimiento := ds.Mantenimiento{
		Codigo:              entrada.Codigo,
		Nombre:              entrada.Nombre,
		Descripcion:         entrada.Descripcion,
		Costo:               entrada.Costo,
		DuracionHoras:       entrada.DuracionHoras,
		ManualProcedimiento: entrada.ManualProcedimiento,
		FechaEntrega:        entrada.FechaEntrega,
		MaquinaID:           entrada.MaquinaID,
		SolicitudID:         entrada.SolicitudID,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&mantenimiento).Error; err != nil {
			return traducirError(err, "mantenimiento")
		}
		if entrada.SolicitudID != nil {
			// Enlaza la línea de reserva correspondiente, si existe
			if err := tx.Model(&ds.SolicitudMaquina{}).
				Where("solicitud_id = ? AND maquina_id = ?", *entrada.SolicitudID, entrada.MaquinaID).
				Update("mantenimiento_id", mantenimiento.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &mantenimiento, nil
}

func (r *Repository) GetMantenimientoByID(id uint) (*ds.Mantenimiento, error) {
	var mantenimiento ds.Mantenimiento
	err := r.db.Preload("Maquina").Preload("Maquina.Categoria").First(&mantenimiento, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("mantenimiento", id)
		}
		return nil, err
	}
	return &mantenimiento, nil
}

func (r *Repository) GetAllMantenimientos() ([]ds.Mantenimiento, error) {
	var mantenimientos []ds.Mantenimiento
	err := r.db.Preload("Maquina").Preload("Maquina.Categoria").Order("id").Find(&mantenimientos).Error
	return mantenimientos, err
}

// ActualizarMantenimiento: el código es inmutable y por eso no aparece
type ActualizarMantenimiento struct {
	Nombre              *string
	Descripcion         *string
	Costo               *float64
	DuracionHoras       *int
	ManualProcedimiento *string
	FechaEntrega        *time.Time
	MaquinaID           *uint
	SolicitudID         *uint
}

func (r *Repository) UpdateMantenimiento(id uint, cambios ActualizarMantenimiento) (*ds.Mantenimiento, error) {
	mantenimiento, err := r.GetMantenimientoByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if cambios.Nombre != nil {
		updates["nombre"] = *cambios.Nombre
	}
	if cambios.Descripcion != nil {
		updates["descripcion"] = *cambios.Descripcion
	}
	if cambios.Costo != nil {
		if *cambios.Costo < 0 {
			return nil, apperr.NewValidationField("costo", "el costo no puede ser negativo")
		}
		updates["costo"] = *cambios.Costo
	}
	if cambios.DuracionHoras != nil {
		if *cambios.DuracionHoras < duracionMinHoras || *cambios.DuracionHoras > duracionMaxHoras {
			return nil, apperr.NewValidationField("duracion_horas", "la duración debe estar entre 1 y 720 horas")
		}
		updates["duracion_horas"] = *cambios.DuracionHoras
	}
	if cambios.ManualProcedimiento != nil {
		updates["manual_procedimiento"] = *cambios.ManualProcedimiento
	}
	if cambios.FechaEntrega != nil {
		updates["fecha_entrega"] = *cambios.FechaEntrega
	}
	if cambios.MaquinaID != nil {
		if !r.MaquinaExiste(*cambios.MaquinaID) {
			return nil, apperr.NewValidationField("maquina_id", "la máquina no existe")
		}
		updates["maquina_id"] = *cambios.MaquinaID
	}
	if cambios.SolicitudID != nil {
		if !r.SolicitudExiste(*cambios.SolicitudID) {
			return nil, apperr.NewValidationField("solicitud_id", "la solicitud no existe")
		}
		updates["solicitud_id"] = *cambios.SolicitudID
	}

	if len(updates) > 0 {
		if err := r.db.Model(mantenimiento).Updates(updates).Error; err != nil {
			return nil, traducirError(err, "mantenimiento")
		}
	}
	return r.GetMantenimientoByID(id)
}

// DeleteMantenimiento borra en cascada los pagos asociados y desengancha
// las líneas de reserva que lo referenciaban
func (r *Repository) DeleteMantenimiento(id uint) error {
	if _, err := r.GetMantenimientoByID(id); err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mantenimiento_id = ?", id).Delete(&ds.Pago{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&ds.SolicitudMaquina{}).
			Where("mantenimiento_id = ?", id).
			Update("mantenimiento_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&ds.Mantenimiento{}, id).Error
	})
}

func (r *Repository) MantenimientoExiste(id uint) bool {
	var count int64
	r.db.Model(&ds.Mantenimiento{}).Where("id = ?", id).Count(&count)
	return count > 0
}
