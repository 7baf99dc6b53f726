package api

import (
	"context"

	"backend/internal/app/config"
	"backend/internal/app/dsn"
	"backend/internal/app/handler"
	"backend/internal/app/middleware"
	"backend/internal/app/redis"
	"backend/internal/app/repository"
	"backend/internal/app/storage"
	"backend/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StartServer arma todas las dependencias y levanta el servidor HTTP
func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("error leyendo configuración: ", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatal("error inicializando repositorio: ", err)
	}

	// Redis y MinIO son colaboradores: si no están, el API arranca sin
	// blacklist de tokens y sin carga de evidencias
	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Error("redis no disponible: ", err)
		redisClient = nil
	}

	minioClient, err := storage.NewMinIOClient(
		cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey,
		cfg.Minio.Bucket, cfg.Minio.UseSSL)
	if err != nil {
		logrus.Error("minio no disponible: ", err)
		minioClient = nil
	}

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	h := handler.NewHandler(repo, minioClient, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	r := gin.Default()
	r.Use(cors.Default())
	h.RegisterRoutes(r, authMiddleware)

	app := pkg.NewApp(cfg, r)
	app.RunApp()
}
