package repository

import (
	"errors"

	"backend/internal/app/apperr"
	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Métodos de cargos y empleados (directorio)

func (r *Repository) CreateCargo(nombre, descripcion string) (*ds.Cargo, error) {
	cargo := ds.Cargo{Nombre: nombre, Descripcion: descripcion}
	if err := r.db.Create(&cargo).Error; err != nil {
		return nil, traducirError(err, "cargo")
	}
	return &cargo, nil
}

func (r *Repository) GetAllCargos() ([]ds.Cargo, error) {
	var cargos []ds.Cargo
	err := r.db.Order("id").Find(&cargos).Error
	return cargos, err
}

func (r *Repository) CargoExiste(id uint) bool {
	var count int64
	r.db.Model(&ds.Cargo{}).Where("id = ?", id).Count(&count)
	return count > 0
}

func (r *Repository) CreateEmpleado(nombre, documento, telefono, correo string, cargoID uint) (*ds.Empleado, error) {
	if !r.CargoExiste(cargoID) {
		return nil, apperr.NewValidationField("cargo_id", "el cargo no existe")
	}

	empleado := ds.Empleado{
		Nombre:    nombre,
		Documento: documento,
		Telefono:  telefono,
		Correo:    correo,
		CargoID:   cargoID,
	}
	if err := r.db.Create(&empleado).Error; err != nil {
		return nil, traducirError(err, "empleado")
	}
	return &empleado, nil
}

func (r *Repository) GetEmpleadoByID(id uint) (*ds.Empleado, error) {
	var empleado ds.Empleado
	err := r.db.Preload("Cargo").First(&empleado, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("empleado", id)
		}
		return nil, err
	}
	return &empleado, nil
}

func (r *Repository) GetAllEmpleados() ([]ds.Empleado, error) {
	var empleados []ds.Empleado
	err := r.db.Preload("Cargo").Order("id").Find(&empleados).Error
	return empleados, err
}

func (r *Repository) DeleteEmpleado(id uint) error {
	if _, err := r.GetEmpleadoByID(id); err != nil {
		return err
	}

	var dependientes int64
	r.db.Model(&ds.SolicitudEmpleado{}).Where("empleado_id = ?", id).Count(&dependientes)
	if dependientes > 0 {
		return apperr.NewReferential("el empleado está asignado a solicitudes")
	}
	return r.db.Delete(&ds.Empleado{}, id).Error
}

func (r *Repository) EmpleadoExiste(id uint) bool {
	var count int64
	r.db.Model(&ds.Empleado{}).Where("id = ?", id).Count(&count)
	return count > 0
}
