package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/stit/internal/app/auth"
	appControllers "github.com/yigit/stit/internal/app/controllers"
	appMigrations "github.com/yigit/stit/internal/app/migrations"
	appRepos "github.com/yigit/stit/internal/app/repositories"
	appRoutes "github.com/yigit/stit/internal/app/routes"
	appServices "github.com/yigit/stit/internal/app/services"
	appViews "github.com/yigit/stit/internal/app/views"
	"github.com/yigit/stit/internal/config"
	"github.com/yigit/stit/internal/db"
	appMiddleware "github.com/yigit/stit/internal/middleware"
	"github.com/yigit/stit/internal/pkg/filestorage"
	"github.com/yigit/stit/internal/pkg/logger"
	"github.com/yigit/stit/internal/pkg/validation"
	"github.com/yigit/stit/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	FileStorage    *filestorage.LocalStorage
	AuthzService   *appAuth.AuthorizationService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath, ".env")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured store. For postgres it connects and runs the embedded
// migrations; the returned *db.PostgresDB is nil for the memory driver.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, *appRepos.Repositories, error) {
	if cfg.Database.Driver == config.DriverMemory {
		lgr.Warn().Msg("Using in-memory store; data is lost on restart")
		return nil, appRepos.NewMemoryRepositories(), nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database).Migrate(ctx, appMigrations.Embedded()); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, appRepos.NewRepositories(database.Pool), nil
}

// BuildDependencies initializes storage, services, middleware and controllers over repos.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	return buildDependencies(cfg, repos, appServices.Options{DataScience: cfg.Features.DataScience}, lgr)
}

func buildDependencies(cfg *config.Config, repos *appRepos.Repositories, opts appServices.Options, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Repos: repos, Logger: lgr}

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Services = appServices.NewServices(repos, deps.FileStorage, opts, lgr)
	deps.AuthzService = appAuth.NewAuthorizationService(repos.Users)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AuthzService)

	pages := appControllers.Pages{DataScience: opts.DataScience}
	deps.Controllers = appRoutes.Controllers{
		Auth:      appControllers.NewAuthController(deps.Services.Auth, pages, logger.WithComponent("auth")),
		Dashboard: appControllers.NewDashboardController(deps.Services.Dashboard, pages),
		Records: appControllers.NewRecordController(
			deps.Services.Submission,
			deps.Services.Verification,
			deps.FileStorage,
			pages,
			logger.WithComponent("records"),
		),
		Reports: appControllers.NewReportController(deps.Services.Report),
	}

	return deps, nil
}

// SeedData creates the configured faculty account.
func SeedData(ctx context.Context, cfg *config.Config, deps *Dependencies) error {
	return seed.FacultyAccount(ctx, deps.Services.Auth, cfg.Seed.FacultyUsername, cfg.Seed.FacultyPassword, deps.Logger)
}

// SetupRouter configures the Gin engine with middleware, templates and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterWithGin(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	tmpl, err := appViews.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(lgr),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.SecurityHeaders(),
		appMiddleware.Sessions(appMiddleware.SessionConfig{
			Name:   cfg.Session.Name,
			Secret: cfg.Session.Secret,
			MaxAge: cfg.SessionMaxAge(),
			Secure: cfg.Session.Secure,
		}),
	)
	router.SetHTMLTemplate(tmpl)
	router.MaxMultipartMemory = 8 << 20

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router, nil
}
