package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hospital-records-service/internal/api/handlers"
	"hospital-records-service/internal/config"
	"hospital-records-service/internal/domain/entities"
	"hospital-records-service/internal/domain/repositories"
	"hospital-records-service/internal/services"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg := config.Load(logger)

	patientStore, doctorStore, err := buildStores(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not initialize stores")
	}

	patientService := services.NewPatientService(patientStore, logger)
	doctorService := services.NewDoctorService(doctorStore, logger)

	app := fiber.New(fiber.Config{AppName: "hospital-records-service"})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hospital Management System is running")
	})
	handlers.RegisterPatientRoutes(app, handlers.NewPatientHandler(patientService, logger))
	handlers.RegisterDoctorRoutes(app, handlers.NewDoctorHandler(doctorService, logger))

	go func() {
		logger.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("server starting")
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown did not complete cleanly")
	}
}

func buildStores(cfg config.Config, logger zerolog.Logger) (repositories.PatientStoreContract, repositories.DoctorStoreContract, error) {
	switch cfg.StoreDriver {
	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{})
		if err != nil {
			return nil, nil, err
		}
		patientStore, err := repositories.NewGormStore[entities.Patient](db, "patients", logger)
		if err != nil {
			return nil, nil, err
		}
		doctorStore, err := repositories.NewGormStore[entities.Doctor](db, "doctors", logger)
		if err != nil {
			return nil, nil, err
		}
		return patientStore, doctorStore, nil
	default:
		patientStore := repositories.NewJSONFileStore[entities.Patient](filepath.Join(cfg.DataDir, "patients.json"), logger)
		doctorStore := repositories.NewJSONFileStore[entities.Doctor](filepath.Join(cfg.DataDir, "doctors.json"), logger)
		return patientStore, doctorStore, nil
	}
}
