package repository

import (
	"backend/internal/app/ds"
)

// Métodos de usuarios (colaborador de autenticación)

func (r *Repository) GetUsuarioByID(id uint) (*ds.Usuario, error) {
	var usuario ds.Usuario
	err := r.db.First(&usuario, id).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *Repository) GetUsuarioByLogin(login string) (*ds.Usuario, error) {
	var usuario ds.Usuario
	err := r.db.Where("login = ?", login).First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *Repository) UsuarioExisteByLogin(login string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Usuario{}).Where("login = ?", login).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateUsuario(login, password, nombreCompleto, correo string, rol int) (*ds.Usuario, error) {
	usuario := ds.Usuario{
		Login:          login,
		Password:       password,
		NombreCompleto: nombreCompleto,
		Correo:         correo,
		Rol:            rol,
	}

	if err := r.db.Create(&usuario).Error; err != nil {
		return nil, traducirError(err, "usuario")
	}

	return &usuario, nil
}
