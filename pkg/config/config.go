package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	AppEnv          string
	DBDriver        string // postgres | sqlite
	DatabaseURL     string
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	SQLitePath      string
	MenuBaseURL     string
	SeedDemo        bool
	LowStockDefault float64
}

// Load reads .env when present and falls back to the process environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	port := GetEnv("PORT", "3000")
	return &Config{
		Port:            port,
		AppEnv:          GetEnv("APP_ENV", "development"),
		DBDriver:        GetEnv("DB_DRIVER", "sqlite"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DBHost:          GetEnv("DB_HOST", "localhost"),
		DBUser:          GetEnv("DB_USER", "postgres"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          GetEnv("DB_NAME", "comanda"),
		DBPort:          GetEnv("DB_PORT", "5432"),
		SQLitePath:      GetEnv("SQLITE_PATH", "./data/comanda.db"),
		MenuBaseURL:     GetEnv("MENU_BASE_URL", fmt.Sprintf("http://localhost:%s/cardapio", port)),
		SeedDemo:        getBool("SEED_DEMO", true),
		LowStockDefault: getFloat("LOW_STOCK_DEFAULT", 10),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// PostgresDSN prefers DATABASE_URL over the discrete DB_* settings
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
