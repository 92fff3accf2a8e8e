package database

import (
	"os"
	"path/filepath"

	"github.com/CEMAMI09/EVOQFORMS/internal/config"
	logging "github.com/CEMAMI09/EVOQFORMS/internal/logging"
	"github.com/CEMAMI09/EVOQFORMS/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbPath := config.Conf.Database.Path

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal("Failed to create database directory", zap.Error(err))
		}
	}

	// Create our custom GORM logger
	gormLogger := logging.NewGormZapLogger(log)
	gormLogger.LogLevel = logger.Warn

	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormLogger,
	})

	if err != nil {
		log.Fatal("Failed to open database", zap.String("path", dbPath), zap.Error(err))
	}

	log.Info("Database connection established successfully.", zap.String("path", dbPath))
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// GORM's AutoMigrate creates the two tables if they do not exist. It never
	// drops columns, so existing data.db files are safe to open.
	err := DB.AutoMigrate(
		&models.IntakeSubmission{},
		&models.QuizSubmission{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")
}
