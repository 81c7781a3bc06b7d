package main

import (
	"os"

	"github.com/yigit/studentrecords/internal/pkg/logger"
	"github.com/yigit/studentrecords/internal/server"
)

// @title Student Records API
// @version 1.0
// @description CRUD API for students, their academic records and medical information

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
