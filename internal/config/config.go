package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config carries everything the server needs from the environment. A .env
// file in the working directory is honored when present.
type Config struct {
	Port        string
	DataDir     string
	StoreDriver string // "file" (default) or "postgres"

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

// Load reads the .env file (if any) and the process environment.
func Load(logger zerolog.Logger) Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Debug().Msg("no .env file loaded, using process environment")
	}

	return Config{
		Port:        getenv("PORT", "3000"),
		DataDir:     getenv("DATA_DIR", "data"),
		StoreDriver: getenv("STORE_DRIVER", "file"),
		DBHost:      os.Getenv("DB_HOST"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBPort:      os.Getenv("DB_PORT"),
	}
}

// PostgresDSN assembles the DSN for the gorm-backed store.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
