package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/internal/app/config"
	"backend/internal/app/ds"
	"backend/internal/app/middleware"
	"backend/internal/app/repository"
	"backend/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestAPI levanta el router completo contra sqlite en memoria, sin
// Redis ni MinIO (ambos colaboradores son opcionales)
func setupTestAPI(t *testing.T) (*gin.Engine, *repository.Repository, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsnStr := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsnStr), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	repo, err := repository.NewWithDB(db)
	require.NoError(t, err)

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Token:         "test",
			ExpiresIn:     time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
		},
	}

	authHandler := NewAuthHandler(repo, nil, cfg)
	h := NewHandler(repo, nil, authHandler)

	router := gin.New()
	h.RegisterRoutes(router, middleware.NewAuthMiddleware(nil, cfg))
	return router, repo, cfg
}

// tokenConRol firma un JWT de prueba con el mismo secreto del middleware
func tokenConRol(t *testing.T, cfg *config.Config, rol role.Role) string {
	t.Helper()
	token := jwt.NewWithClaims(cfg.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(cfg.JWT.ExpiresIn).Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    "club-maquinaria",
		},
		UserID: 1,
		Role:   rol,
	})
	firmado, err := token.SignedString([]byte(cfg.JWT.Token))
	require.NoError(t, err)
	return firmado
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	router, _, _ := setupTestAPI(t)

	w := doJSON(router, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestEmpresaNoEncontrada(t *testing.T) {
	router, _, _ := setupTestAPI(t)

	w := doJSON(router, http.MethodGet, "/api/empresas/42", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "fail", resp["status"])
}

func TestCrearEmpresaRequiereAdmin(t *testing.T) {
	router, _, cfg := setupTestAPI(t)

	body := gin.H{"nit": "900123456-1", "nombre": "Construcciones del Norte"}

	// Sin token
	w := doJSON(router, http.MethodPost, "/api/empresas", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Con token de operador
	w = doJSON(router, http.MethodPost, "/api/empresas", tokenConRol(t, cfg, role.Operador), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Con token de administrador
	w = doJSON(router, http.MethodPost, "/api/empresas", tokenConRol(t, cfg, role.Admin), body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCrearEmpresaDuplicada(t *testing.T) {
	router, _, cfg := setupTestAPI(t)
	admin := tokenConRol(t, cfg, role.Admin)

	body := gin.H{"nit": "900123456-1", "nombre": "Construcciones del Norte"}
	w := doJSON(router, http.MethodPost, "/api/empresas", admin, body)
	require.Equal(t, http.StatusCreated, w.Code)

	// Mismo NIT: el índice único responde 409
	body["nombre"] = "Otro Nombre SAS"
	w = doJSON(router, http.MethodPost, "/api/empresas", admin, body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCrearEmpresaCuerpoInvalido(t *testing.T) {
	router, _, cfg := setupTestAPI(t)

	// Falta el nit obligatorio
	w := doJSON(router, http.MethodPost, "/api/empresas", tokenConRol(t, cfg, role.Admin),
		gin.H{"nombre": "Sin Nit"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// seedCatalogoAPI siembra por repositorio lo mínimo para crear solicitudes
func seedCatalogoAPI(t *testing.T, repo *repository.Repository) (empresaID, maquinaID, empleadoID uint) {
	t.Helper()
	empresa, err := repo.CreateEmpresa("900123456-1", "Construcciones del Norte", "Cra 10", "Medellín", "3001234567")
	require.NoError(t, err)
	categoria, err := repo.CreateCategoria("pesada", "maquinaria pesada")
	require.NoError(t, err)
	maquina, err := repo.CreateMaquina("retroexcavadora", categoria.ID, nil, "")
	require.NoError(t, err)
	cargo, err := repo.CreateCargo("operario", "")
	require.NoError(t, err)
	empleado, err := repo.CreateEmpleado("Ana Gómez", "1032456789", "", "", cargo.ID)
	require.NoError(t, err)
	return empresa.ID, maquina.ID, empleado.ID
}

func TestCrearYConsultarSolicitud(t *testing.T) {
	router, repo, cfg := setupTestAPI(t)
	empresaID, maquinaID, empleadoID := seedCatalogoAPI(t, repo)
	token := tokenConRol(t, cfg, role.Operador)

	w := doJSON(router, http.MethodPost, "/api/solicitudes", token, gin.H{
		"empresa_id":       empresaID,
		"codigo":           "SOL-API-1",
		"fecha_solicitud":  time.Now().Format(time.RFC3339),
		"fecha_programada": time.Now().Add(72 * time.Hour).Format(time.RFC3339),
		"descripcion":      "excavación",
		"maquinas":         []gin.H{{"maquina_id": maquinaID, "cantidad": 2}},
		"empleados":        []uint{empleadoID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var creada struct {
		Data struct {
			ID               uint   `json:"id"`
			Codigo           string `json:"codigo"`
			CantidadMaquinas int    `json:"cantidad_maquinas"`
			Estado           string `json:"estado"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &creada))
	assert.Equal(t, "SOL-API-1", creada.Data.Codigo)
	assert.Equal(t, 2, creada.Data.CantidadMaquinas)
	assert.Equal(t, "pendiente", creada.Data.Estado)

	// La lectura del agregado es pública y trae líneas y empleados
	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/solicitudes/%d", creada.Data.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detalle struct {
		Maquinas []struct {
			MaquinaID uint `json:"maquina_id"`
			Cantidad  int  `json:"cantidad"`
		} `json:"maquinas"`
		Empleados []struct {
			ID uint `json:"id"`
		} `json:"empleados"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detalle))
	require.Len(t, detalle.Maquinas, 1)
	assert.Equal(t, maquinaID, detalle.Maquinas[0].MaquinaID)
	assert.Equal(t, 2, detalle.Maquinas[0].Cantidad)
	require.Len(t, detalle.Empleados, 1)
	assert.Equal(t, empleadoID, detalle.Empleados[0].ID)
}

func TestCrearSolicitudMaquinaInexistente(t *testing.T) {
	router, repo, cfg := setupTestAPI(t)
	empresaID, _, _ := seedCatalogoAPI(t, repo)

	w := doJSON(router, http.MethodPost, "/api/solicitudes", tokenConRol(t, cfg, role.Operador), gin.H{
		"empresa_id":       empresaID,
		"codigo":           "SOL-API-2",
		"fecha_solicitud":  time.Now().Format(time.RFC3339),
		"fecha_programada": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"maquinas":         []gin.H{{"maquina_id": 9999, "cantidad": 1}},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// El 422 trae el mapa campo -> mensaje
	var resp struct {
		Status string            `json:"status"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "fail", resp.Status)
	assert.Contains(t, resp.Errors, "maquinas[0].maquina_id")
}

func TestCrearMantenimientoDuracionInvalida(t *testing.T) {
	router, repo, cfg := setupTestAPI(t)
	_, maquinaID, _ := seedCatalogoAPI(t, repo)

	w := doJSON(router, http.MethodPost, "/api/mantenimientos", tokenConRol(t, cfg, role.Gestor), gin.H{
		"codigo":         "MTO-API-1",
		"nombre":         "overhaul",
		"costo":          100000,
		"duracion_horas": 800,
		"fecha_entrega":  time.Now().Add(240 * time.Hour).Format(time.RFC3339),
		"maquina_id":     maquinaID,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "duracion_horas")
}

func TestRegistroYLogin(t *testing.T) {
	router, _, _ := setupTestAPI(t)

	w := doJSON(router, http.MethodPost, "/api/auth/register", "", gin.H{
		"login":           "gestor1",
		"password":        "secreto123",
		"nombre_completo": "Gestora Uno",
		"rol":             int(role.Gestor),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Login correcto devuelve token
	w = doJSON(router, http.MethodPost, "/api/auth/login", "", gin.H{
		"login":    "gestor1",
		"password": "secreto123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	// El token emitido pasa el middleware
	w = doJSON(router, http.MethodPost, "/api/solicitudes", login.Token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code) // autorizado, pero cuerpo vacío

	// Credenciales incorrectas
	w = doJSON(router, http.MethodPost, "/api/auth/login", "", gin.H{
		"login":    "gestor1",
		"password": "otra",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBorrarEmpresaConMaquinas(t *testing.T) {
	router, repo, cfg := setupTestAPI(t)

	empresa, err := repo.CreateEmpresa("800111222-3", "Dueña de Máquinas", "", "", "")
	require.NoError(t, err)
	categoria, err := repo.CreateCategoria("pesada", "")
	require.NoError(t, err)
	_, err = repo.CreateMaquina("bulldozer", categoria.ID, &empresa.ID, "")
	require.NoError(t, err)

	w := doJSON(router, http.MethodDelete, fmt.Sprintf("/api/empresas/%d", empresa.ID),
		tokenConRol(t, cfg, role.Admin), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}
