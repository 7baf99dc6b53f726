package repository

import (
	"testing"

	"backend/internal/app/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmpleadoDocumentoDuplicado(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	cargo, err := repo.CreateCargo("supervisor", "supervisa obras")
	require.NoError(t, err)

	_, err = repo.CreateEmpleado("Otro Nombre", base.Empleado.Documento, "3000000000", "otro@club.co", cargo.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
}

func TestCreateEmpleadoCargoInexistente(t *testing.T) {
	repo := newTestRepo(t)
	seedBase(t, repo)

	_, err := repo.CreateEmpleado("Sin Cargo", "99887766", "3000000001", "sin@club.co", 9999)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestDeleteEmpleadoAsignado(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	_, err := repo.CreateSolicitud(nuevaSolicitudValida(base, "SOL-EMPL", []LineaSolicitud{
		{MaquinaID: base.Maquina1.ID, Cantidad: 1},
	}))
	require.NoError(t, err)

	// nuevaSolicitudValida asigna a base.Empleado
	err = repo.DeleteEmpleado(base.Empleado.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Referential))
}

func TestDeleteEmpleadoLibre(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	require.NoError(t, repo.DeleteEmpleado(base.Empleado.ID))
	_, err := repo.GetEmpleadoByID(base.Empleado.ID)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}
