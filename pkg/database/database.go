package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"comanda-pos/internal/model"
	"comanda-pos/pkg/config"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to postgres or to a local sqlite file depending on DB_DRIVER
func Open(cfg *config.Config) (*gorm.DB, error) {
	level := logger.Info
	if cfg.IsProduction() {
		level = logger.Warn
	}
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  !cfg.IsProduction(),
		},
	)

	switch cfg.DBDriver {
	case "postgres":
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.PostgresDSN(),
			PreferSimpleProtocol: true, // transaction-mode poolers reject prepared statements
		}), &gorm.Config{
			Logger:      newLogger,
			PrepareStmt: false,
		})
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
		return db, nil

	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{
			Logger:  newLogger,
			NowFunc: func() time.Time { return time.Now().UTC() },
		})

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// ConnectDB opens the database and migrates the persisted records or exits
func ConnectDB(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database. \n", err)
	}
	if err := Migrate(db); err != nil {
		log.Fatal("Failed to migrate database. \n", err)
	}
	log.Printf("Database connection established (%s)", cfg.DBDriver)
	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Sale{}, &model.SaleItem{}, &model.StockMovement{})
}
