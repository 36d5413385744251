package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Modular-CV/backend/docs"
	"github.com/Modular-CV/backend/internal/app"
	"github.com/Modular-CV/backend/internal/cache"
	"github.com/Modular-CV/backend/internal/config"
	"github.com/Modular-CV/backend/internal/db"
	"github.com/Modular-CV/backend/internal/logging"
	"github.com/Modular-CV/backend/internal/mail"
)

// @title Modular CV API
// @version 1.0
// @description Résumé builder API: accounts, sessions, sections and their typed entries.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	bootLogger := logging.NewLogger("info", os.Getenv("ENV"))

	cfg, err := config.Load()
	if err != nil {
		bootLogger.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := logging.NewLogger(cfg.LogLevel, cfg.Env)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseURL, cfg.DBLogSQL, logger)
	if err != nil {
		logger.Error("database init", "error", err)
		os.Exit(1)
	}

	// Drop tables if RESET_DB environment variable is set
	if cfg.ResetDB {
		logger.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			logger.Error("reset database", "error", err)
			os.Exit(1)
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		logger.Error("auto-migrate", "error", err)
		os.Exit(1)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		logger.Warn("redis unreachable, continuing without cache", "error", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	e, err := app.New(cfg, app.Deps{
		DB:    gormDB,
		Cache: cacheClient,
		Mailer: mail.New(mail.SMTPConfig{
			Host:   cfg.MailHost,
			Port:   cfg.MailPort,
			User:   cfg.MailUser,
			Pass:   cfg.MailPass,
			Sender: cfg.MailSender,
		}, logger),
		Logger:   logger,
		Registry: registry,
	})
	if err != nil {
		logger.Error("build application", "error", err)
		os.Exit(1)
	}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	}
	logger.Info("swagger documentation available", "url", swaggerURL(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.ServerPort
		logger.Info("server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server start", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
