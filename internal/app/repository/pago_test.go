package repository

import (
	"testing"
	"time"

	"backend/internal/app/apperr"
	"backend/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMantenimiento(t *testing.T, repo *Repository, base datosBase) *ds.Mantenimiento {
	t.Helper()
	mantenimiento, err := repo.CreateMantenimiento(nuevoMantenimientoValido(base, "MTO-PAGO"))
	require.NoError(t, err)
	return mantenimiento
}

func nuevoPagoValido(base datosBase, mantenimientoID uint, codigo string) NuevoPago {
	return NuevoPago{
		Codigo:          codigo,
		FechaPago:       time.Now(),
		Monto:           350000,
		Metodo:          ds.PagoEfectivo,
		MantenimientoID: mantenimientoID,
		EmpresaID:       base.Empresa.ID,
	}
}

func TestCreatePago(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)
	mantenimiento := seedMantenimiento(t, repo, base)

	pago, err := repo.CreatePago(nuevoPagoValido(base, mantenimiento.ID, "PAG-001"))
	require.NoError(t, err)
	// Sin estado explícito arranca pendiente
	assert.Equal(t, ds.PagoPendiente, pago.Estado)

	leido, err := repo.GetPagoByID(pago.ID)
	require.NoError(t, err)
	assert.Equal(t, "PAG-001", leido.Codigo)
	assert.Equal(t, mantenimiento.ID, leido.MantenimientoID)
}

func TestCreatePagoMontoNegativo(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)
	mantenimiento := seedMantenimiento(t, repo, base)

	entrada := nuevoPagoValido(base, mantenimiento.ID, "PAG-NEG")
	entrada.Monto = -0.01
	_, err := repo.CreatePago(entrada)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))

	// Monto cero es legítimo (ajustes, notas crédito)
	entrada = nuevoPagoValido(base, mantenimiento.ID, "PAG-CERO")
	entrada.Monto = 0
	_, err = repo.CreatePago(entrada)
	assert.NoError(t, err)
}

func TestCreatePagoMetodoInvalido(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)
	mantenimiento := seedMantenimiento(t, repo, base)

	entrada := nuevoPagoValido(base, mantenimiento.ID, "PAG-MET")
	entrada.Metodo = "cheque"
	_, err := repo.CreatePago(entrada)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestCreatePagoMantenimientoInexistente(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)

	_, err := repo.CreatePago(nuevoPagoValido(base, 9999, "PAG-FK"))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestCreatePagoEmpresaInexistente(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)
	mantenimiento := seedMantenimiento(t, repo, base)

	entrada := nuevoPagoValido(base, mantenimiento.ID, "PAG-EMP")
	entrada.EmpresaID = 9999
	_, err := repo.CreatePago(entrada)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestCreatePagoCodigoDuplicado(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)
	mantenimiento := seedMantenimiento(t, repo, base)

	_, err := repo.CreatePago(nuevoPagoValido(base, mantenimiento.ID, "PAG-DUP"))
	require.NoError(t, err)

	_, err = repo.CreatePago(nuevoPagoValido(base, mantenimiento.ID, "PAG-DUP"))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
}

func TestUpdatePagoEstadoSinGuarda(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)
	mantenimiento := seedMantenimiento(t, repo, base)

	pago, err := repo.CreatePago(nuevoPagoValido(base, mantenimiento.ID, "PAG-EST"))
	require.NoError(t, err)

	// Cualquier salto dentro del enum es válido
	estado := ds.PagoRechazado
	actualizado, err := repo.UpdatePago(pago.ID, ActualizarPago{Estado: &estado})
	require.NoError(t, err)
	assert.Equal(t, ds.PagoRechazado, actualizado.Estado)

	estado = ds.PagoCompletado
	actualizado, err = repo.UpdatePago(pago.ID, ActualizarPago{Estado: &estado})
	require.NoError(t, err)
	assert.Equal(t, ds.PagoCompletado, actualizado.Estado)

	estado = "reembolsado"
	_, err = repo.UpdatePago(pago.ID, ActualizarPago{Estado: &estado})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestUpdatePagoMontoNegativo(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)
	mantenimiento := seedMantenimiento(t, repo, base)

	pago, err := repo.CreatePago(nuevoPagoValido(base, mantenimiento.ID, "PAG-UPDNEG"))
	require.NoError(t, err)

	monto := -100.0
	_, err = repo.UpdatePago(pago.ID, ActualizarPago{Monto: &monto})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestDeletePago(t *testing.T) {
	repo := newTestRepo(t)
	base := seedBase(t, repo)
	mantenimiento := seedMantenimiento(t, repo, base)

	pago, err := repo.CreatePago(nuevoPagoValido(base, mantenimiento.ID, "PAG-BORRAR"))
	require.NoError(t, err)

	require.NoError(t, repo.DeletePago(pago.ID))
	_, err = repo.GetPagoByID(pago.ID)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	// El mantenimiento no se ve afectado
	_, err = repo.GetMantenimientoByID(mantenimiento.ID)
	assert.NoError(t, err)

	err = repo.DeletePago(pago.ID)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}
