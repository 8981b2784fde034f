// @title Curso Backend API
// @version 1.0
// @description Servidor del curso de desarrollo frontend (es | pt): temario, quizzes, tareas y asistente de chat.

// @contact.name Soporte
// @contact.email soporte@example.com

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"curso_backend/internal/app"
	"curso_backend/internal/config"
	"curso_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "ejecutar solo la migración de la base de datos y salir")
	migrate := flag.Bool("migrate", false, "forzar la migración al arrancar, incluso en modo release")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("No se pudo cargar la configuración: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Migración completada, saliendo")
		return
	}

	application.Run()
}
