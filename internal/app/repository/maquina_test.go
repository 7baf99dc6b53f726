package repository

import (
	"testing"
	"time"

	"backend/internal/app/apperr"
	"backend/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMaquina(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	// Sin estado explícito queda disponible
	assert.Equal(t, ds.MaquinaDisponible, base.Maquina1.Estado)

	_, err := repo.CreateMaquina("compactadora", 9999, nil, "")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))

	_, err = repo.CreateMaquina("compactadora", base.Pesada.ID, nil, "vendida")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestUpdateMaquinaEstado(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	estado := ds.MaquinaReparacion
	actualizada, err := repo.UpdateMaquina(base.Maquina1.ID, ActualizarMaquina{Estado: &estado})
	require.NoError(t, err)
	assert.Equal(t, ds.MaquinaReparacion, actualizada.Estado)

	estado = "chatarra"
	_, err = repo.UpdateMaquina(base.Maquina1.ID, ActualizarMaquina{Estado: &estado})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestDeleteMaquinaReservada(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	_, err := repo.CreateSolicitud(nuevaSolicitudValida(base, "SOL-MAQ", []LineaSolicitud{
		{MaquinaID: base.Maquina1.ID, Cantidad: 1},
	}))
	require.NoError(t, err)

	err = repo.DeleteMaquina(base.Maquina1.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Referential))

	// La no reservada sí se borra
	require.NoError(t, repo.DeleteMaquina(base.Maquina2.ID))
	_, err = repo.GetMaquinaByID(base.Maquina2.ID)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestDeleteMaquinaConMantenimiento(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	_, err := repo.CreateMantenimiento(NuevoMantenimiento{
		Codigo:        "MTO-MAQ",
		Nombre:        "revisión anual",
		Costo:         200000,
		DuracionHoras: 16,
		FechaEntrega:  time.Now().Add(48 * time.Hour),
		MaquinaID:     base.Maquina2.ID,
	})
	require.NoError(t, err)

	err = repo.DeleteMaquina(base.Maquina2.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Referential))
}

func TestDeleteCategoriaConMaquinas(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	err := repo.DeleteCategoria(base.Pesada.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Referential))

	liviana, err := repo.CreateCategoria("liviana", "maquinaria liviana")
	require.NoError(t, err)
	require.NoError(t, repo.DeleteCategoria(liviana.ID))
}

func TestCreateCategoriaNombreDuplicado(t *testing.T) {
	repo := newTestRepo(t)
	seedBase(t, repo)

	_, err := repo.CreateCategoria("pesada", "otra descripción")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
}
