package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pulse-auth/internal/config"
	"github.com/MKhiriev/pulse-auth/internal/handler"
	"github.com/MKhiriev/pulse-auth/internal/logger"
	"github.com/MKhiriev/pulse-auth/internal/server"
	"github.com/MKhiriev/pulse-auth/internal/service"
	"github.com/MKhiriev/pulse-auth/internal/store"
	"github.com/MKhiriev/pulse-auth/internal/utils"
	"github.com/MKhiriev/pulse-auth/models"
)

const loggerRole = "auth-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger(loggerRole, "")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.NewLogger(loggerRole, cfg.App.LogLevel)
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Dur("token_duration", cfg.App.TokenDuration).
		Int("password_hash_cost", cfg.App.PasswordHashCost).
		Str("version", cfg.App.Version).
		Msg("received configs")

	if err = run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// run owns the database handle for the lifetime of the process: it is opened
// and migrated before serving and closed after the servers stop.
func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to user store: %w", err)
	}
	defer db.Close()

	// creates the users table and its unique constraints if missing
	if err = db.Migrate(); err != nil {
		return fmt.Errorf("error migrating user store: %w", err)
	}

	hasher, err := utils.NewPasswordHasher(cfg.App.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("error creating password hasher: %w", err)
	}

	storages, err := store.NewStorages(db, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}

	services, err := service.NewServices(storages, hasher, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}
