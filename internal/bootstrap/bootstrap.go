package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	appControllers "github.com/emre/yoklama/internal/app/controllers"
	appMigrations "github.com/emre/yoklama/internal/app/migrations"
	appRepos "github.com/emre/yoklama/internal/app/repositories"
	appRoutes "github.com/emre/yoklama/internal/app/routes"
	appServices "github.com/emre/yoklama/internal/app/services"
	"github.com/emre/yoklama/internal/config"
	"github.com/emre/yoklama/internal/db"
	"github.com/emre/yoklama/internal/middleware"
	"github.com/emre/yoklama/internal/pkg/auth"
	"github.com/emre/yoklama/internal/pkg/helpers"
	"github.com/emre/yoklama/internal/pkg/logger"
	"github.com/emre/yoklama/internal/seed"
)

// Dependencies holds the wired application graph.
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	JWTService     *auth.JWTService
	AuthMiddleware *middleware.AuthMiddleware

	AuthController       *appControllers.AuthController
	DepartmentController *appControllers.DepartmentController
	InstructorController *appControllers.InstructorController
	CourseController     *appControllers.CourseController
	StudentController    *appControllers.StudentController
	AttendanceController *appControllers.AttendanceController
	ReportController     *appControllers.ReportController
}

// LoadConfigAndSetupLogger loads configuration and configures the global
// logger from it.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().Str("level", cfg.Logging.Level).Str("format", cfg.Logging.Format).Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase connects to postgres, runs migrations and seeds default data.
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.ApplyDirectory(context.Background(), migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, cfg); err != nil {
		logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	return database, nil
}

// BuildDependencies wires repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) *Dependencies {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(database)

	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService)
	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.Services.DepartmentService)
	deps.InstructorController = appControllers.NewInstructorController(deps.Services.InstructorService)
	deps.CourseController = appControllers.NewCourseController(deps.Services.CourseService)
	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.Services.AttendanceService)
	deps.ReportController = appControllers.NewReportController(deps.Services.ReportService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.AuthMiddleware,
		deps.AuthController,
		deps.DepartmentController,
		deps.InstructorController,
		deps.CourseController,
		deps.StudentController,
		deps.AttendanceController,
		deps.ReportController,
	)

	return router
}
