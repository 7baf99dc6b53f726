package repository

import (
	"errors"

	"backend/internal/app/apperr"
	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Métodos de empresas (catálogo)

func (r *Repository) CreateEmpresa(nit, nombre, direccion, ciudad, telefono string) (*ds.Empresa, error) {
	empresa := ds.Empresa{
		Nit:       nit,
		Nombre:    nombre,
		Direccion: direccion,
		Ciudad:    ciudad,
		Telefono:  telefono,
	}

	if err := r.db.Create(&empresa).Error; err != nil {
		return nil, traducirError(err, "empresa")
	}
	return &empresa, nil
}

func (r *Repository) GetEmpresaByID(id uint) (*ds.Empresa, error) {
	var empresa ds.Empresa
	err := r.db.First(&empresa, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("empresa", id)
		}
		return nil, err
	}
	return &empresa, nil
}

func (r *Repository) GetAllEmpresas() ([]ds.Empresa, error) {
	var empresas []ds.Empresa
	err := r.db.Order("id").Find(&empresas).Error
	return empresas, err
}

// ActualizarEmpresa aplica solo los campos presentes
type ActualizarEmpresa struct {
	Nit       *string
	Nombre    *string
	Direccion *string
	Ciudad    *string
	Telefono  *string
}

func (r *Repository) UpdateEmpresa(id uint, cambios ActualizarEmpresa) (*ds.Empresa, error) {
	empresa, err := r.GetEmpresaByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if cambios.Nit != nil {
		updates["nit"] = *cambios.Nit
	}
	if cambios.Nombre != nil {
		updates["nombre"] = *cambios.Nombre
	}
	if cambios.Direccion != nil {
		updates["direccion"] = *cambios.Direccion
	}
	if cambios.Ciudad != nil {
		updates["ciudad"] = *cambios.Ciudad
	}
	if cambios.Telefono != nil {
		updates["telefono"] = *cambios.Telefono
	}

	if len(updates) > 0 {
		if err := r.db.Model(empresa).Updates(updates).Error; err != nil {
			return nil, traducirError(err, "empresa")
		}
	}
	return empresa, nil
}

// DeleteEmpresa borra en modo restrict: falla si la empresa tiene
// máquinas, solicitudes o pagos asociados
func (r *Repository) DeleteEmpresa(id uint) error {
	if _, err := r.GetEmpresaByID(id); err != nil {
		return err
	}

	var dependientes int64
	r.db.Model(&ds.Maquina{}).Where("empresa_id = ?", id).Count(&dependientes)
	if dependientes > 0 {
		return apperr.NewReferential("la empresa tiene máquinas asociadas")
	}
	r.db.Model(&ds.Solicitud{}).Where("empresa_id = ?", id).Count(&dependientes)
	if dependientes > 0 {
		return apperr.NewReferential("la empresa tiene solicitudes asociadas")
	}
	r.db.Model(&ds.Pago{}).Where("empresa_id = ?", id).Count(&dependientes)
	if dependientes > 0 {
		return apperr.NewReferential("la empresa tiene pagos asociados")
	}

	// El representante sí cae junto con la empresa
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("empresa_id = ?", id).Delete(&ds.Representante{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ds.Empresa{}, id).Error
	})
}

func (r *Repository) EmpresaExiste(id uint) bool {
	var count int64
	r.db.Model(&ds.Empresa{}).Where("id = ?", id).Count(&count)
	return count > 0
}

// Métodos del representante (cero o uno por empresa)

func (r *Repository) SetRepresentante(empresaID uint, nombre, documento, telefono, correo string) (*ds.Representante, error) {
	if !r.EmpresaExiste(empresaID) {
		return nil, apperr.NewNotFound("empresa", empresaID)
	}

	var rep ds.Representante
	err := r.db.Where("empresa_id = ?", empresaID).First(&rep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rep = ds.Representante{
			EmpresaID: empresaID,
			Nombre:    nombre,
			Documento: documento,
			Telefono:  telefono,
			Correo:    correo,
		}
		if err := r.db.Create(&rep).Error; err != nil {
			return nil, traducirError(err, "representante")
		}
		return &rep, nil
	}
	if err != nil {
		return nil, err
	}

	// Ya hay representante: se reemplazan sus datos
	rep.Nombre = nombre
	rep.Documento = documento
	rep.Telefono = telefono
	rep.Correo = correo
	if err := r.db.Save(&rep).Error; err != nil {
		return nil, traducirError(err, "representante")
	}
	return &rep, nil
}

func (r *Repository) GetRepresentante(empresaID uint) (*ds.Representante, error) {
	var rep ds.Representante
	err := r.db.Where("empresa_id = ?", empresaID).First(&rep).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundMsg("la empresa no tiene representante")
		}
		return nil, err
	}
	return &rep, nil
}
