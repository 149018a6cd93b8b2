// Package bootstrap opens the stores selected by configuration and wires
// them into the service container. The server and the CLIs share it.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tax_compliance_app/internal/core/ports/services"
	"github.com/SscSPs/tax_compliance_app/internal/core/services"
	"github.com/SscSPs/tax_compliance_app/internal/export"
	"github.com/SscSPs/tax_compliance_app/internal/platform/config"
	"github.com/SscSPs/tax_compliance_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/tax_compliance_app/internal/repositories/memory"
	redisrepo "github.com/SscSPs/tax_compliance_app/internal/repositories/redis"
	"github.com/SscSPs/tax_compliance_app/pkg/database"
)

const (
	redisTimeout = 5 * time.Second
	// lockWait is how long an export waits for another export of the same ledger.
	lockWait = 10 * time.Second
)

// App is the wired application core.
type App struct {
	Repos    portsrepo.RepositoryProvider
	Services *portssvc.ServiceContainer

	closers []func()
}

// Open connects the configured backends. Close must be called on success.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	app := &App{}
	ok := false
	defer func() {
		if !ok {
			app.Close()
		}
	}()

	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, pool.Close)
		logger.Info("Database connection pool established.")

		if cfg.RunMigrations {
			logger.Info("Running database migrations...")
			if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
				return nil, err
			}
		}
		app.Repos = pgsql.NewRepositoryProvider(pool)
	case config.StoreDriverMemory:
		app.Repos = memory.NewRepositoryProvider(true)
		logger.Warn("Using in-memory store; records are lost on restart.")
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	infra := services.Infrastructure{}
	if cfg.RedisAddr != "" {
		client, err := redisrepo.Connect(ctx, redisrepo.Config{Addr: cfg.RedisAddr, DB: cfg.RedisDB, Timeout: redisTimeout})
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, func() { _ = client.Close() })
		infra.Sessions = redisrepo.NewSessionStore(client)
		infra.Locker = redisrepo.NewLocker(client, lockWait)
		logger.Info("Redis connected for sessions and export locks.", slog.String("addr", cfg.RedisAddr))
	} else {
		infra.Sessions = memory.NewSessionStore()
		infra.Locker = memory.NewLocker(lockWait)
	}

	if cfg.ExportGCSBucket != "" {
		uploader, err := export.NewGCSUploader(ctx, cfg.ExportGCSBucket)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, func() { _ = uploader.Close() })
		infra.Uploader = uploader
	}

	app.Services = services.NewServiceContainer(cfg, app.Repos, infra)
	ok = true
	return app, nil
}

// Close releases connections in reverse order of opening.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
