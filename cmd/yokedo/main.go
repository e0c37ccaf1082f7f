package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Pabloradio/yokedo/internal/api"
	"github.com/Pabloradio/yokedo/internal/config"
	"github.com/Pabloradio/yokedo/internal/db"
	"github.com/Pabloradio/yokedo/internal/logger"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger init error: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}

	handler := api.NewHandler(database, api.Options{
		SecretKey:       cfg.SecretKey,
		AccessTokenTTL:  time.Duration(cfg.AccessTokenTTL) * time.Minute,
		RefreshTokenTTL: time.Duration(cfg.RefreshTokenTTL) * 24 * time.Hour,
		DefaultLanguage: cfg.DefaultLanguage,
		DefaultTimezone: cfg.DefaultTimezone,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:               "Yokedo Availability Service",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	log.Info("yokedo listening",
		zap.String("port", cfg.Port),
		zap.String("db", cfg.DBPath),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
