package main

import (
	"github.com/CEMAMI09/EVOQFORMS/internal/config"
	"github.com/CEMAMI09/EVOQFORMS/internal/database"
	logger "github.com/CEMAMI09/EVOQFORMS/internal/logging"
	"github.com/CEMAMI09/EVOQFORMS/internal/router"
	"github.com/CEMAMI09/EVOQFORMS/internal/session"
	"github.com/CEMAMI09/EVOQFORMS/internal/storage"

	"go.uber.org/zap"
)

func main() {
	// Initialize Logger
	log, err := logger.Init("logs")
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Load configuration
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize Database
	database.Init(log)

	// Server-side session store; sessions expire after the configured TTL.
	sessionStore := session.NewStore(config.Conf.Session.TTL)

	// Upload placement for practice logos
	uploads, err := storage.NewUploadStore(config.Conf.Uploads.Directory)
	if err != nil {
		log.Fatal("Failed to initialize upload store", zap.Error(err))
	}

	// Setup router, passing the logger to it
	r := router.Setup(log, sessionStore, uploads)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
