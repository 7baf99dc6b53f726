package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"backend/internal/app/config"
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/redis"
	"backend/internal/app/repository"
	"backend/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	Repository  *repository.Repository
	RedisClient *redis.Client
	Config      *config.Config
}

func NewAuthHandler(r *repository.Repository, redisClient *redis.Client, config *config.Config) *AuthHandler {
	return &AuthHandler{
		Repository:  r,
		RedisClient: redisClient,
		Config:      config,
	}
}

func (h *AuthHandler) errorHandler(ctx *gin.Context, statusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: err.Error(),
	})
}

// generateHashString genera un hash SHA-1 en hexadecimal
func generateHashString(s string) string {
	h := sha1.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

func (h *AuthHandler) generarToken(usuario *ds.Usuario) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(h.Config.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "club-maquinaria",
		},
		UserID: usuario.ID,
		Role:   role.Role(usuario.Rol),
	})

	return token.SignedString([]byte(h.Config.JWT.Token))
}

// RegisterUser registra un usuario y devuelve un JWT
// @Summary Registro de usuario
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Datos de registro"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) RegisterUser(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	exists, _ := h.Repository.UsuarioExisteByLogin(request.Login)
	if exists {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("ya existe un usuario con ese login"))
		return
	}

	rol := request.Rol
	if rol < int(role.Operador) || rol > int(role.Admin) {
		rol = int(role.Operador)
	}

	usuario, err := h.Repository.CreateUsuario(request.Login, generateHashString(request.Password),
		request.NombreCompleto, request.Correo, rol)
	if err != nil {
		logrus.Error("error creando usuario: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("error registrando el usuario"))
		return
	}

	accessToken, err := h.generarToken(usuario)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{
		Status:  "success",
		Message: "usuario registrado",
		Data: dto.LoginResponse{
			Token: accessToken,
			User: dto.UserResponse{
				ID:             usuario.ID,
				Login:          usuario.Login,
				NombreCompleto: usuario.NombreCompleto,
				Rol:            usuario.Rol,
			},
		},
	})
}

// LoginUser autentica y devuelve un JWT
// @Summary Inicio de sesión
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) LoginUser(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	usuario, err := h.Repository.GetUsuarioByLogin(request.Login)
	if err != nil || usuario.Password != generateHashString(request.Password) {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("credenciales incorrectas"))
		return
	}

	accessToken, err := h.generarToken(usuario)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token: accessToken,
		User: dto.UserResponse{
			ID:             usuario.ID,
			Login:          usuario.Login,
			NombreCompleto: usuario.NombreCompleto,
			Rol:            usuario.Rol,
		},
	})
}

// LogoutUser invalida el token metiéndolo en la blacklist de Redis
// @Summary Cierre de sesión
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) LogoutUser(ctx *gin.Context) {
	jwtStr := ctx.GetHeader("Authorization")
	jwtStr = strings.TrimPrefix(jwtStr, "Bearer ")
	if jwtStr == "" {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("falta el token"))
		return
	}

	if h.RedisClient != nil {
		err := h.RedisClient.WriteJWTToBlacklist(ctx.Request.Context(), jwtStr, h.Config.JWT.ExpiresIn)
		if err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Status:  "success",
		Message: "sesión cerrada",
	})
}
