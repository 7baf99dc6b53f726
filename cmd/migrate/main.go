package main

import (
	"log"

	"backend/internal/app/ds"
	"backend/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	err = db.AutoMigrate(
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
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migration completed successfully")
}
