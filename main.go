package main

import (
	"context"
	"database/sql"
	"log"
	"net"
	"net/http"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/alphanet-products/leonardo-backend/pkg/config"
	"github.com/alphanet-products/leonardo-backend/pkg/database"
	"github.com/alphanet-products/leonardo-backend/pkg/handlers"
	"github.com/alphanet-products/leonardo-backend/pkg/logging"
	"github.com/alphanet-products/leonardo-backend/pkg/middleware"
	"github.com/alphanet-products/leonardo-backend/pkg/repositories"
	"github.com/alphanet-products/leonardo-backend/pkg/services"
)

const appName = "leonardo-backend"

// Version is set at build time via ldflags
var Version = "1.0.0"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Profile)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded",
		zap.String("profile", cfg.Profile),
		zap.String("bind_addr", net.JoinHostPort(cfg.BindAddr, cfg.Port)),
		zap.String("database", logging.SanitizeConnectionString(cfg.Database.ConnectionString())),
		zap.Bool("security_enabled", cfg.API.SecurityEnabled),
		zap.String("api_key", logging.MaskAPIKey(cfg.API.Key)))

	ctx := context.Background()

	db, err := database.NewConnection(ctx, &cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := runMigrations(cfg, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	departmentRepo := repositories.NewDepartmentRepository(db)
	centerRepo := repositories.NewTrainingCenterRepository(db)
	programRepo := repositories.NewProgramRepository(db)
	instructorRepo := repositories.NewInstructorRepository(db)

	seeder := services.NewDataInitializer(db, departmentRepo, logger)
	if err := seeder.Run(ctx); err != nil {
		logger.Fatal("Failed to seed sample data", zap.Error(err))
	}

	mapper := services.NewMetricsMapper()
	metricsService := services.NewMetricsService(centerRepo, departmentRepo, programRepo, instructorRepo, mapper, logger)

	mux := http.NewServeMux()

	metricsHandler := handlers.NewMetricsHandler(metricsService, logger)
	metricsHandler.RegisterRoutes(mux)

	healthHandler := handlers.NewHealthHandler(appName, cfg.Version, cfg.Profile)
	healthHandler.RegisterRoutes(mux)

	docsHandler := handlers.NewDocsHandler(cfg.Version, cfg.Profile, cfg.API.SecurityEnabled)
	docsHandler.RegisterRoutes(mux)

	var handler http.Handler = mux
	if cfg.API.SecurityEnabled {
		auth := middleware.NewAPIKeyAuth(cfg.API.Key, cfg.API.RateLimit, logger)
		handler = auth.Handler(handler)
	} else {
		logger.Warn("API security is DISABLED, all endpoints are publicly accessible")
	}
	handler = middleware.Recover(logger)(handler)
	handler = middleware.RequestLogger(logger)(handler)

	addr := net.JoinHostPort(cfg.BindAddr, cfg.Port)
	logger.Info("Starting leonardo-backend",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func newLogger(profile string) (*zap.Logger, error) {
	if profile == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// runMigrations opens a separate database/sql connection for the migration
// tool and closes it once migrations have been applied.
func runMigrations(cfg *config.Config, logger *zap.Logger) error {
	migrationDB, err := sql.Open("pgx", cfg.Database.ConnectionString())
	if err != nil {
		return err
	}
	defer migrationDB.Close()

	path := cfg.Database.MigrationsPath
	if _, err := os.Stat(path); err != nil {
		return err
	}

	return database.RunMigrations(migrationDB, path, logger)
}
