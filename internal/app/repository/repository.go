package repository

import (
	"errors"
	"fmt"

	"backend/internal/app/apperr"
	"backend/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	return NewWithDB(db)
}

// NewWithDB arma el repositorio sobre una conexión ya abierta (en los
// tests se usa sqlite en memoria)
func NewWithDB(db *gorm.DB) (*Repository, error) {
	err := db.AutoMigrate(
		&ds.Usuario{},
		&ds.Empresa{},
		&ds.Representante{},
		&ds.CategoriaMaquina{},
		&ds.Maquina{},
		&ds.Cargo{},
		&ds.Empleado{},
		&ds.Solicitud{},
		&ds.SolicitudMaquina{},
		&ds.SolicitudEmpleado{},
		&ds.Mantenimiento{},
		&ds.Pago{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{db: db}, nil
}

// traducirError convierte errores de gorm en errores de la aplicación.
// Los índices únicos se resuelven en la capa de almacenamiento para que
// inserciones concurrentes también terminen en Conflict.
func traducirError(err error, entidad string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.NewConflict(fmt.Sprintf("%s ya existe (valor duplicado)", entidad))
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NewNotFoundMsg(fmt.Sprintf("%s no encontrado", entidad))
	}
	return err
}
