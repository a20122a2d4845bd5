package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/yoklama/internal/config"
	"github.com/emre/yoklama/internal/pkg/auth"
	"github.com/emre/yoklama/internal/pkg/logger"
)

var defaultDepartments = []string{
	"Computer Engineering",
	"Electrical Engineering",
	"Industrial Engineering",
	"Mathematics",
}

// CreateDefaultData inserts the default departments and the initial admin
// employee. Everything is best-effort and idempotent; errors are collected
// and returned but the caller only logs them.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config) error {
	var finalErr error

	for _, name := range defaultDepartments {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO department (department_name)
			VALUES ($1)
			ON CONFLICT (department_name) DO NOTHING
		`, name)
		if err != nil {
			logger.Error().Err(err).Str("department", name).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if cfg.Seed.AdminUsername != "" && cfg.Seed.AdminPassword != "" {
		var exists bool
		err := dbPool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM employee WHERE username = $1)`,
			cfg.Seed.AdminUsername).Scan(&exists)
		if err != nil {
			logger.Error().Err(err).Msg("Error checking admin employee")
			return errors.Join(finalErr, err)
		}
		if !exists {
			hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
			if err != nil {
				logger.Error().Err(err).Msg("Error hashing admin password")
				return errors.Join(finalErr, err)
			}
			_, err = dbPool.Exec(ctx, `
				INSERT INTO employee (username, password, email)
				VALUES ($1, $2, $3)
			`, cfg.Seed.AdminUsername, hashed, cfg.Seed.AdminEmail)
			if err != nil {
				logger.Error().Err(err).Msg("Error creating admin employee")
				finalErr = errors.Join(finalErr, err)
			} else {
				logger.Info().Str("username", cfg.Seed.AdminUsername).Msg("Default admin employee created")
			}
		}
	}

	return finalErr
}
