package main

import (
	"context"
	"os"

	"github.com/Modular-CV/backend/internal/auth"
	"github.com/Modular-CV/backend/internal/config"
	"github.com/Modular-CV/backend/internal/db"
	"github.com/Modular-CV/backend/internal/logging"
	"github.com/Modular-CV/backend/internal/model"
	"github.com/Modular-CV/backend/internal/repository"
)

const (
	seedEmail    = "admin@test.com"
	seedPassword = "admin"
)

func main() {
	logger := logging.NewLogger("info", os.Getenv("ENV"))
	logger.Info("starting seed script")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	// Connect to database
	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseURL, cfg.DBLogSQL, logger)
	if err != nil {
		logger.Error("connect to database", "error", err)
		os.Exit(1)
	}

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		logger.Error("run migrations", "error", err)
		os.Exit(1)
	}

	hasher, err := auth.NewHasher(auth.DefaultHasherConfig(cfg.PepperSecret))
	if err != nil {
		logger.Error("build hasher", "error", err)
		os.Exit(1)
	}
	digest, err := hasher.Hash(seedPassword)
	if err != nil {
		logger.Error("hash password", "error", err)
		os.Exit(1)
	}

	repo := repository.NewAccountRepository(gormDB)
	err = repo.WithTransaction(context.Background(), func(ctx context.Context, tx repository.AccountRepository) error {
		account, err := tx.FindByEmailOrCreate(ctx, &model.Account{
			Email:      seedEmail,
			Password:   digest,
			IsVerified: true,
		})
		if err != nil {
			return err
		}
		account.Password = digest
		account.IsVerified = true
		return tx.Update(ctx, account)
	})
	if err != nil {
		logger.Error("seed account", "error", err)
		os.Exit(1)
	}

	logger.Info("seed completed", "email", seedEmail)
}
