package repository

import (
	"testing"

	"backend/internal/app/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmpresaNitDuplicado(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	_, err := repo.CreateEmpresa(base.Empresa.Nit, "Otra Empresa SAS", "Calle 1", "Bogotá", "3000000000")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
}

func TestUpdateEmpresaParcial(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	ciudad := "Barranquilla"
	actualizada, err := repo.UpdateEmpresa(base.Empresa.ID, ActualizarEmpresa{Ciudad: &ciudad})
	require.NoError(t, err)
	assert.Equal(t, "Barranquilla", actualizada.Ciudad)
	assert.Equal(t, base.Empresa.Nit, actualizada.Nit)
}

func TestDeleteEmpresaConDependientes(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	// La empresa sembrada es dueña de una máquina: borrar debe fallar
	err := repo.DeleteEmpresa(base.Empresa.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Referential))

	// Una empresa sin nada asociado sí se puede borrar
	libre, err := repo.CreateEmpresa("800999888-7", "Alquileres Libres", "Av 5 #1-10", "Pereira", "6063330000")
	require.NoError(t, err)
	_, err = repo.SetRepresentante(libre.ID, "Carlos Ruiz", "79456123", "3114567890", "carlos@libres.co")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteEmpresa(libre.ID))
	_, err = repo.GetEmpresaByID(libre.ID)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
	// El representante cae con la empresa
	_, err = repo.GetRepresentante(libre.ID)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestSetRepresentanteReemplaza(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	primero, err := repo.SetRepresentante(base.Empresa.ID, "Laura Díaz", "52123456", "3152223344", "laura@norte.co")
	require.NoError(t, err)

	// Un segundo set reemplaza los datos sin crear otro registro
	segundo, err := repo.SetRepresentante(base.Empresa.ID, "Pedro Mora", "80654321", "3165556677", "pedro@norte.co")
	require.NoError(t, err)
	assert.Equal(t, primero.ID, segundo.ID)

	rep, err := repo.GetRepresentante(base.Empresa.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pedro Mora", rep.Nombre)
}

func TestGetRepresentanteSinAsignar(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	_, err := repo.GetRepresentante(base.Empresa.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	_, err = repo.SetRepresentante(9999, "Nadie", "0", "0", "nadie@x.co")
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}
