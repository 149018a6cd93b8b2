// Command seed-admin creates the administrator account if it does not exist yet.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/SscSPs/tax_compliance_app/internal/apperrors"
	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	"github.com/SscSPs/tax_compliance_app/internal/platform/bootstrap"
	"github.com/SscSPs/tax_compliance_app/internal/platform/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.AdminPassword == "" {
		logger.Error("ADMIN_PASSWORD must be set")
		os.Exit(1)
	}
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("STORE_DRIVER=memory: the admin will vanish when this command exits")
	}

	ctx := context.Background()
	app, err := bootstrap.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize stores", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer app.Close()

	if _, err := app.Repos.UserRepo.FindUserByEmail(ctx, cfg.AdminEmail); err == nil {
		logger.Info("Admin user already exists", slog.String("email", cfg.AdminEmail))
		return
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to look up admin user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Bootstrapping actor: the first admin is created on behalf of the system.
	system := &domain.User{Email: "system", Role: domain.RoleAdmin}
	user, err := app.Services.Auth.Register(ctx, cfg.AdminEmail, cfg.AdminPassword, domain.RoleAdmin, system)
	if err != nil {
		logger.Error("Failed to create admin user", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Admin user created", slog.String("email", user.Email), slog.String("user_id", user.UserID))
}
