package repository

import (
	"errors"

	"backend/internal/app/apperr"
	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Métodos de categorías y máquinas (catálogo)

func (r *Repository) CreateCategoria(nombre, descripcion string) (*ds.CategoriaMaquina, error) {
	categoria := ds.CategoriaMaquina{Nombre: nombre, Descripcion: descripcion}
	if err := r.db.Create(&categoria).Error; err != nil {
		return nil, traducirError(err, "categoría")
	}
	return &categoria, nil
}

func (r *Repository) GetCategoriaByID(id uint) (*ds.CategoriaMaquina, error) {
	var categoria ds.CategoriaMaquina
	err := r.db.First(&categoria, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("categoría", id)
		}
		return nil, err
	}
	return &categoria, nil
}

func (r *Repository) GetAllCategorias() ([]ds.CategoriaMaquina, error) {
	var categorias []ds.CategoriaMaquina
	err := r.db.Order("id").Find(&categorias).Error
	return categorias, err
}

func (r *Repository) DeleteCategoria(id uint) error {
	if _, err := r.GetCategoriaByID(id); err != nil {
		return err
	}

	var dependientes int64
	r.db.Model(&ds.Maquina{}).Where("categoria_id = ?", id).Count(&dependientes)
	if dependientes > 0 {
		return apperr.NewReferential("la categoría tiene máquinas asociadas")
	}
	return r.db.Delete(&ds.CategoriaMaquina{}, id).Error
}

func (r *Repository) CategoriaExiste(id uint) bool {
	var count int64
	r.db.Model(&ds.CategoriaMaquina{}).Where("id = ?", id).Count(&count)
	return count > 0
}

func (r *Repository) CreateMaquina(tipo string, categoriaID uint, empresaID *uint, estado string) (*ds.Maquina, error) {
	if !r.CategoriaExiste(categoriaID) {
		return nil, apperr.NewValidationField("categoria_id", "la categoría no existe")
	}
	if empresaID != nil && !r.EmpresaExiste(*empresaID) {
		return nil, apperr.NewValidationField("empresa_id", "la empresa no existe")
	}
	if estado == "" {
		estado = ds.MaquinaDisponible
	}
	if !estadoMaquinaValido(estado) {
		return nil, apperr.NewValidationField("estado", "estado de máquina inválido")
	}

	maquina := ds.Maquina{
		Tipo:        tipo,
		CategoriaID: categoriaID,
		EmpresaID:   empresaID,
		Estado:      estado,
	}
	if err := r.db.Create(&maquina).Error; err != nil {
		return nil, traducirError(err, "máquina")
	}
	return &maquina, nil
}

func (r *Repository) GetMaquinaByID(id uint) (*ds.Maquina, error) {
	var maquina ds.Maquina
	err := r.db.Preload("Categoria").First(&maquina, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("máquina", id)
		}
		return nil, err
	}
	return &maquina, nil
}

func (r *Repository) GetAllMaquinas() ([]ds.Maquina, error) {
	var maquinas []ds.Maquina
	err := r.db.Preload("Categoria").Order("id").Find(&maquinas).Error
	return maquinas, err
}

type ActualizarMaquina struct {
	Tipo        *string
	CategoriaID *uint
	EmpresaID   *uint
	Estado      *string
}

func (r *Repository) UpdateMaquina(id uint, cambios ActualizarMaquina) (*ds.Maquina, error) {
	maquina, err := r.GetMaquinaByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if cambios.Tipo != nil {
		updates["tipo"] = *cambios.Tipo
	}
	if cambios.CategoriaID != nil {
		if !r.CategoriaExiste(*cambios.CategoriaID) {
			return nil, apperr.NewValidationField("categoria_id", "la categoría no existe")
		}
		updates["categoria_id"] = *cambios.CategoriaID
	}
	if cambios.EmpresaID != nil {
		if !r.EmpresaExiste(*cambios.EmpresaID) {
			return nil, apperr.NewValidationField("empresa_id", "la empresa no existe")
		}
		updates["empresa_id"] = *cambios.EmpresaID
	}
	if cambios.Estado != nil {
		// Sin máquina de estados: se acepta cualquier valor del enum
		if !estadoMaquinaValido(*cambios.Estado) {
			return nil, apperr.NewValidationField("estado", "estado de máquina inválido")
		}
		updates["estado"] = *cambios.Estado
	}

	if len(updates) > 0 {
		if err := r.db.Model(maquina).Updates(updates).Error; err != nil {
			return nil, traducirError(err, "máquina")
		}
	}
	return r.GetMaquinaByID(id)
}

func (r *Repository) DeleteMaquina(id uint) error {
	if _, err := r.GetMaquinaByID(id); err != nil {
		return err
	}

	var dependientes int64
	r.db.Model(&ds.SolicitudMaquina{}).Where("maquina_id = ?", id).Count(&dependientes)
	if dependientes > 0 {
		return apperr.NewReferential("la máquina está reservada en solicitudes")
	}
	r.db.Model(&ds.Mantenimiento{}).Where("maquina_id = ?", id).Count(&dependientes)
	if dependientes > 0 {
		return apperr.NewReferential("la máquina tiene mantenimientos asociados")
	}
	return r.db.Delete(&ds.Maquina{}, id).Error
}

func (r *Repository) MaquinaExiste(id uint) bool {
	var count int64
	r.db.Model(&ds.Maquina{}).Where("id = ?", id).Count(&count)
	return count > 0
}

func estadoMaquinaValido(estado string) bool {
	switch estado {
	case ds.MaquinaDisponible, ds.MaquinaMantenimiento, ds.MaquinaReparacion:
		return true
	}
	return false
}
