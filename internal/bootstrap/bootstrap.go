package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/studentrecords/internal/app/controllers"
	appMigrations "github.com/yigit/studentrecords/internal/app/migrations"
	appRepos "github.com/yigit/studentrecords/internal/app/repositories"
	"github.com/yigit/studentrecords/internal/app/repositories/memory"
	appRoutes "github.com/yigit/studentrecords/internal/app/routes"
	appServices "github.com/yigit/studentrecords/internal/app/services"
	"github.com/yigit/studentrecords/internal/config"
	"github.com/yigit/studentrecords/internal/db"
	appMiddleware "github.com/yigit/studentrecords/internal/middleware"
	"github.com/yigit/studentrecords/internal/pkg/logger"
	"github.com/yigit/studentrecords/internal/seed"
	schema "github.com/yigit/studentrecords/migrations"
)

// Storage is the backend selected by database.driver.
type Storage struct {
	// Postgres is nil when the in-memory driver is used.
	Postgres *db.PostgresDB
	Repos    appServices.Dependencies
}

// Close releases the connection pool, if any.
func (s *Storage) Close() {
	if s != nil && s.Postgres != nil {
		s.Postgres.Close()
	}
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services                     *appServices.Services
	StudentController            *appControllers.StudentController
	AcademicRecordController     *appControllers.AcademicRecordController
	MedicalInformationController *appControllers.MedicalInformationController
	ExportController             *appControllers.ExportController
	Storage                      *Storage
	Logger                       zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.ResolvePath()
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured storage backend and, for postgres, runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*Storage, error) {
	if cfg.Database.Driver == config.DriverMemory {
		lgr.Warn().Msg("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &Storage{Repos: appServices.Dependencies{
			Transactor:         store,
			Students:           store.Students(),
			AcademicRecords:    store.AcademicRecords(),
			MedicalInformation: store.MedicalInformation(),
		}}, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := appMigrations.NewMigrator(database.Pool, schema.FS, lgr).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	repos := appRepos.NewRepositories(database)
	return &Storage{
		Postgres: database,
		Repos: appServices.Dependencies{
			Transactor:         repos.Transactor,
			Students:           repos.Students,
			AcademicRecords:    repos.AcademicRecords,
			MedicalInformation: repos.MedicalInformation,
		},
	}, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, storage *Storage, lgr zerolog.Logger) (*Dependencies, error) {
	if storage == nil {
		return nil, fmt.Errorf("storage is not initialized")
	}

	deps := &Dependencies{Storage: storage, Logger: lgr}
	deps.Services = appServices.NewServices(storage.Repos)

	if cfg.Database.Seed {
		if err := seed.CreateDefaultData(context.Background(), deps.Services, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	deps.StudentController = appControllers.NewStudentController(deps.Services.Students)
	deps.AcademicRecordController = appControllers.NewAcademicRecordController(deps.Services.AcademicRecords)
	deps.MedicalInformationController = appControllers.NewMedicalInformationController(deps.Services.MedicalInformation)
	deps.ExportController = appControllers.NewExportController(deps.Services.Export)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, appRoutes.Controllers{
		Students:           deps.StudentController,
		AcademicRecords:    deps.AcademicRecordController,
		MedicalInformation: deps.MedicalInformationController,
		Export:             deps.ExportController,
	})

	return router
}
