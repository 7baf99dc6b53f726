package repository

import (
	"fmt"
	"testing"

	"backend/internal/app/ds"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestRepo abre una base sqlite en memoria aislada por test
func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	dsnStr := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsnStr), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	repo, err := NewWithDB(db)
	require.NoError(t, err)
	return repo
}

// datosBase siembra empresa, categoría, máquinas, cargo y empleados
type datosBase struct {
	Empresa  *ds.Empresa
	Pesada   *ds.CategoriaMaquina
	Maquina1 *ds.Maquina
	Maquina2 *ds.Maquina
	Empleado *ds.Empleado
}

func seedBase(t *testing.T, repo *Repository) datosBase {
	t.Helper()

	empresa, err := repo.CreateEmpresa("900123456-1", "Construcciones del Norte", "Cra 10 #20-30", "Medellín", "3001234567")
	require.NoError(t, err)

	pesada, err := repo.CreateCategoria("pesada", "maquinaria pesada")
	require.NoError(t, err)

	maquina1, err := repo.CreateMaquina("retroexcavadora", pesada.ID, &empresa.ID, "")
	require.NoError(t, err)
	maquina2, err := repo.CreateMaquina("grúa torre", pesada.ID, nil, "")
	require.NoError(t, err)

	cargo, err := repo.CreateCargo("operario", "opera maquinaria")
	require.NoError(t, err)
	empleado, err := repo.CreateEmpleado("Ana Gómez", "1032456789", "3107654321", "ana@club.co", cargo.ID)
	require.NoError(t, err)

	return datosBase{
		Empresa:  empresa,
		Pesada:   pesada,
		Maquina1: maquina1,
		Maquina2: maquina2,
		Empleado: empleado,
	}
}
