package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/autonomie/internal/api"
	"github.com/terraincognita07/autonomie/internal/cli"
	"github.com/terraincognita07/autonomie/internal/config"
	"github.com/terraincognita07/autonomie/internal/db"
	"github.com/terraincognita07/autonomie/internal/i18n"
	"github.com/terraincognita07/autonomie/internal/logging"
	"github.com/terraincognita07/autonomie/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "autonomie: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	database, err := db.Open(cfg, logger)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	repositories := db.NewRepositories(database, logger)
	clock := services.NewClock(cfg.Location)
	deps := api.NewServices(repositories, clock)
	setup := services.NewSetupService(repositories.Users, logger)

	if len(args) > 0 {
		runner := cli.Runner{Passwords: deps.Auth, Admins: setup, Stdin: os.Stdin, Stdout: os.Stdout}
		return runner.Run(args)
	}

	bootstrapOwner(setup, cfg.OwnerEmail, logger)
	return serve(cfg, database, deps, logger)
}

// bootstrapOwner grants the admin role to OWNER_EMAIL. A missing account is
// not fatal: the owner may register later and restart, or run promote-admin.
func bootstrapOwner(setup *services.SetupService, ownerEmail string, logger *zap.Logger) {
	if ownerEmail == "" {
		return
	}
	if _, err := setup.EnsureOwnerAdmin(ownerEmail); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			logger.Warn("owner account not registered yet", zap.String("email", ownerEmail))
			return
		}
		logger.Error("owner bootstrap failed", zap.Error(err))
	}
}

func serve(cfg *config.Config, database *gorm.DB, deps api.Services, logger *zap.Logger) error {
	i18nManager, err := i18n.NewEmbeddedManager(cfg.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	handler, err := api.NewHandler(deps, cfg.SecretKey, i18nManager, cfg.CookieSecure, logger)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Autonomie",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(api.RequestLogger(logger))
	app.Use(compress.New())
	app.Use(csrf.New(csrfMiddlewareConfig(cfg.CookieSecure)))
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("autonomie listening",
		zap.String("addr", "0.0.0.0:"+cfg.Port),
		zap.String("db_driver", cfg.DBDriver),
		zap.String("tz", cfg.Location.String()),
		zap.String("dialect", database.Dialector.Name()),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

// csrfMiddlewareConfig protects the cookie session: unsafe methods must echo
// the csrf cookie in the X-CSRF-Token header.
func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "header:" + csrf.HeaderName,
		CookieName:     "autonomie_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
		Expiration:     12 * time.Hour,
	}
}
