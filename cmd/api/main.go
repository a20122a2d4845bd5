package main

import (
	"os"

	"github.com/emre/yoklama/internal/pkg/logger"
	"github.com/emre/yoklama/internal/server"
)

// @title Yoklama API
// @version 1.0
// @description Attendance management backend for the university admin panel

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
