// Command migrate rebuilds the intake_form table from scratch. It exists for
// deployments whose data.db predates the billing and wifi columns: the old
// table is DROPPED, data included, and recreated with the current schema.
package main

import (
	"fmt"
	"os"

	"github.com/CEMAMI09/EVOQFORMS/internal/config"
	logger "github.com/CEMAMI09/EVOQFORMS/internal/logging"
	"github.com/CEMAMI09/EVOQFORMS/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	log, err := logger.Init("logs")
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	if err := config.Init(".", log); err != nil {
		log.Error("Failed to load configuration", zap.Error(err))
		os.Exit(1)
	}

	dbPath := config.Conf.Database.Path
	log.Info("Starting intake_form rebuild", zap.String("path", dbPath))

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.NewGormZapLogger(log),
	})
	if err != nil {
		log.Error("Failed to open database", zap.Error(err))
		os.Exit(1)
	}

	migrator := db.Migrator()

	if err := migrator.DropTable(&models.IntakeSubmission{}); err != nil {
		log.Error("Failed to drop old intake_form table", zap.Error(err))
		os.Exit(1)
	}
	log.Info("Old intake_form table dropped")

	if err := migrator.CreateTable(&models.IntakeSubmission{}); err != nil {
		log.Error("Failed to create new intake_form table", zap.Error(err))
		os.Exit(1)
	}
	log.Info("New intake_form table created")

	columns, err := migrator.ColumnTypes(&models.IntakeSubmission{})
	if err != nil {
		log.Error("Failed to verify new table", zap.Error(err))
		os.Exit(1)
	}

	fmt.Println("New table structure:")
	for _, column := range columns {
		dbType, _ := column.ColumnType()
		fmt.Printf("  - %s (%s)\n", column.Name(), dbType)
	}

	log.Info("Migration complete. You can now restart the server.")
}
