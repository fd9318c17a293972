// Command api serves the shop records HTTP API.
//
// @title                       Shop Records API
// @version                     1.0
// @description                 Shops, employees and compliance documents with expiry tracking.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/shoprecords/records-api/internal/api"
	"github.com/shoprecords/records-api/internal/core/ports"
	"github.com/shoprecords/records-api/internal/core/service"
	"github.com/shoprecords/records-api/internal/infrastructure/config"
	mongostore "github.com/shoprecords/records-api/internal/infrastructure/db/mongo"
	"github.com/shoprecords/records-api/internal/infrastructure/db/postgres"
	redisstore "github.com/shoprecords/records-api/internal/infrastructure/db/redis"
	"github.com/shoprecords/records-api/internal/infrastructure/http/handlers"
	"github.com/shoprecords/records-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	migrateOnly := pflag.Bool("migrate-only", false, "apply database migrations and exit")
	noSeed := pflag.Bool("no-seed", false, "do not create the reserved admin account on startup")
	pflag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrateOnly, *noSeed); err != nil {
		fmt.Fprintln(os.Stderr, "records-api:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, migrateOnly, noSeed bool) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "records-api",
	})

	db, err := postgres.Open(ctx, postgres.Config{
		DSN:          cfg.Postgres.URL,
		MaxOpenConns: cfg.Postgres.MaxOpenConns,
		Debug:        cfg.LogLevel == "debug",
	})
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	log.Info().Msg("database migrations applied")
	if migrateOnly {
		return nil
	}

	// Optional side stores degrade to no-ops.
	var auditRepo ports.AuditRepository
	mdb, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Warn().Err(err).Msg("mongodb unavailable; audit trail disabled")
		mdb = nil
	}
	if mdb != nil {
		repo := mongostore.NewAuditRepository(mdb)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("audit indexes not created")
		}
		auditRepo = repo
		defer func() { _ = mongostore.Disconnect(context.Background(), mdb) }()
	}

	var idem ports.IdempotencyStore
	rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable; create idempotency disabled")
		rdb = nil
	}
	if rdb != nil {
		idem = redisstore.NewIdempotencyStore(rdb)
		defer func() { _ = rdb.Close() }()
	}

	shopRepo := postgres.NewShopRepository(db)
	employeeRepo := postgres.NewEmployeeRepository(db)
	documentRepo := postgres.NewDocumentRepository(db)
	userRepo := postgres.NewUserRepository(db)

	users := service.NewUserService(userRepo, auditRepo, logger.Component("users"))
	if !noSeed {
		if err := users.EnsureReservedAdmin(ctx, cfg.AdminPassword); err != nil {
			return err
		}
	}

	services := api.Services{
		Auth:      service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL),
		Shops:     service.NewShopService(shopRepo, employeeRepo, documentRepo, auditRepo, idem, logger.Component("shops")),
		Employees: service.NewEmployeeService(employeeRepo, shopRepo, documentRepo, auditRepo, idem, logger.Component("employees")),
		Documents: service.NewDocumentService(documentRepo, shopRepo, employeeRepo, auditRepo, idem, logger.Component("documents")),
		Users:     users,
		Uploads:   service.NewUploadService(cfg.UploadMaxBytes),
		Audit:     service.NewAuditService(auditRepo),
	}

	e := api.NewRouter(services, api.Options{
		CORSOrigins:    cfg.CORSOrigins,
		UploadMaxBytes: cfg.UploadMaxBytes,
		Readiness:      handlers.NewReadinessHandler(db, mdb, rdb),
	}, logger.Component("http"))

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
