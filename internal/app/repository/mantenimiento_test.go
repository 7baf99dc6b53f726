package repository

import (
	"testing"
	"time"

	"backend/internal/app/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoMantenimientoValido(base datosBase, codigo string) NuevoMantenimiento {
	return NuevoMantenimiento{
		Codigo:        codigo,
		Nombre:        "cambio de aceite hidráulico",
		Descripcion:   "mantenimiento preventivo programado",
		Costo:         350000,
		DuracionHoras: 8,
		FechaEntrega:  time.Now().Add(120 * time.Hour),
		MaquinaID:     base.Maquina1.ID,
	}
}

func TestCreateMantenimiento(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	mantenimiento, err := repo.CreateMantenimiento(nuevoMantenimientoValido(base, "MTO-001"))
	require.NoError(t, err)
	assert.Equal(t, "MTO-001", mantenimiento.Codigo)
	assert.Nil(t, mantenimiento.SolicitudID)

	leido, err := repo.GetMantenimientoByID(mantenimiento.ID)
	require.NoError(t, err)
	assert.Equal(t, base.Maquina1.ID, leido.MaquinaID)
	assert.Equal(t, "retroexcavadora", leido.Maquina.Tipo)
}

func TestCreateMantenimientoDuracionFueraDeRango(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	casos := []struct {
		nombre string
		horas  int
		valido bool
	}{
		{"cero horas", 0, false},
		{"una hora", 1, true},
		{"máximo", 720, true},
		{"sobre el máximo", 721, false},
	}

	for i, caso := range casos {
		entrada := nuevoMantenimientoValido(base, "MTO-DUR-"+caso.nombre)
		entrada.DuracionHoras = caso.horas
		_, err := repo.CreateMantenimiento(entrada)
		if caso.valido {
			assert.NoError(t, err, "caso %d: %s", i, caso.nombre)
		} else {
			assert.True(t, apperr.IsKind(err, apperr.Validation), "caso %d: %s", i, caso.nombre)
		}
	}
}

func TestCreateMantenimientoCostoNegativo(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	entrada := nuevoMantenimientoValido(base, "MTO-NEG")
	entrada.Costo = -1
	_, err := repo.CreateMantenimiento(entrada)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))

	// Costo cero sí es válido (garantía, por ejemplo)
	entrada = nuevoMantenimientoValido(base, "MTO-CERO")
	entrada.Costo = 0
	_, err = repo.CreateMantenimiento(entrada)
	assert.NoError(t, err)
}

func TestCreateMantenimientoFechaPasada(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	entrada := nuevoMantenimientoValido(base, "MTO-PAS")
	entrada.FechaEntrega = time.Now().Add(-48 * time.Hour)
	_, err := repo.CreateMantenimiento(entrada)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestCreateMantenimientoCodigoDuplicado(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	_, err := repo.CreateMantenimiento(nuevoMantenimientoValido(base, "MTO-DUP"))
	require.NoError(t, err)

	_, err = repo.CreateMantenimiento(nuevoMantenimientoValido(base, "MTO-DUP"))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
}

func TestCreateMantenimientoEnlazaLineaDeSolicitud(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	solicitud, err := repo.CreateSolicitud(nuevaSolicitudValida(base, "SOL-ENL", []LineaSolicitud{
		{MaquinaID: base.Maquina1.ID, Cantidad: 1},
		{MaquinaID: base.Maquina2.ID, Cantidad: 1},
	}))
	require.NoError(t, err)

	entrada := nuevoMantenimientoValido(base, "MTO-ENL")
	entrada.SolicitudID = &solicitud.ID
	mantenimiento, err := repo.CreateMantenimiento(entrada)
	require.NoError(t, err)

	// Solo la línea de la misma máquina queda enlazada
	lineas, err := repo.GetLineasDeSolicitud(solicitud.ID)
	require.NoError(t, err)
	require.Len(t, lineas, 2)
	for _, linea := range lineas {
		if linea.MaquinaID == base.Maquina1.ID {
			require.NotNil(t, linea.MantenimientoID)
			assert.Equal(t, mantenimiento.ID, *linea.MantenimientoID)
		} else {
			assert.Nil(t, linea.MantenimientoID)
		}
	}
}

func TestUpdateMantenimientoParcial(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	mantenimiento, err := repo.CreateMantenimiento(nuevoMantenimientoValido(base, "MTO-UPD"))
	require.NoError(t, err)

	costo := 800000.0
	horas := 721
	_, err = repo.UpdateMantenimiento(mantenimiento.ID, ActualizarMantenimiento{DuracionHoras: &horas})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))

	actualizado, err := repo.UpdateMantenimiento(mantenimiento.ID, ActualizarMantenimiento{Costo: &costo})
	require.NoError(t, err)
	assert.Equal(t, 800000.0, actualizado.Costo)
	assert.Equal(t, mantenimiento.Codigo, actualizado.Codigo)
	assert.Equal(t, mantenimiento.DuracionHoras, actualizado.DuracionHoras)
}

func TestDeleteMantenimientoCascadaPagos(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	mantenimiento, err := repo.CreateMantenimiento(nuevoMantenimientoValido(base, "MTO-DEL"))
	require.NoError(t, err)

	pago, err := repo.CreatePago(NuevoPago{
		Codigo:          "PAG-DEL",
		FechaPago:       time.Now(),
		Monto:           350000,
		Metodo:          "efectivo",
		MantenimientoID: mantenimiento.ID,
		EmpresaID:       base.Empresa.ID,
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteMantenimiento(mantenimiento.ID))

	_, err = repo.GetMantenimientoByID(mantenimiento.ID)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	// Los pagos caen con el mantenimiento que cubrían
	_, err = repo.GetPagoByID(pago.ID)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestGetMantenimientoInexistente(t *testing.T) {
	repo := newTestRepo(t)
	seedBase(t, repo)

	_, err := repo.GetMantenimientoByID(9999)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}
