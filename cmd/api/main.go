// SafeSpend API server entry point.
//
// @title        SafeSpend API
// @version      1.0
// @description  Personal finance and allergy tracking backend: expenses,
// @description  accounts, bill splitting with roommates, and an activity feed.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/safespend/safespend-api/internal/api"
	"github.com/safespend/safespend-api/internal/core/service"
	"github.com/safespend/safespend-api/internal/infrastructure/billing"
	"github.com/safespend/safespend-api/internal/infrastructure/config"
	"github.com/safespend/safespend-api/internal/infrastructure/db/memory"
	mongodb "github.com/safespend/safespend-api/internal/infrastructure/db/mongo"
	redisdb "github.com/safespend/safespend-api/internal/infrastructure/db/redis"
	"github.com/safespend/safespend-api/pkg/logger"
)

func main() {
	// Absent .env files are fine; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx := context.Background()

	deps := api.Deps{
		JWTSecret:          cfg.JWTSecret,
		StrictCustomSplits: cfg.StrictCustomSplits,
		Logger:             log,
	}

	switch cfg.StoreBackend {
	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to MongoDB")
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warn().Err(err).Msg("mongo disconnect failed")
			}
		}()

		users := mongodb.NewUserRepository(db)
		allergies := mongodb.NewAllergyRepository(db)
		expenses := mongodb.NewExpenseRepository(db)
		accounts := mongodb.NewAccountRepository(db)
		roommates := mongodb.NewRoommateRepository(db)
		billSplits := mongodb.NewBillSplitRepository(db)
		activities := mongodb.NewActivityRepository(db)
		budgets := mongodb.NewBudgetRepository(db)

		for name, ensure := range map[string]func(context.Context) error{
			"users":       users.EnsureIndexes,
			"expenses":    expenses.EnsureIndexes,
			"accounts":    accounts.EnsureIndexes,
			"bill_splits": billSplits.EnsureIndexes,
			"activities":  activities.EnsureIndexes,
		} {
			if err := ensure(ctx); err != nil {
				log.Fatal().Err(err).Str("collection", name).Msg("failed to ensure indexes")
			}
		}

		deps.Users = users
		deps.Allergies = allergies
		deps.Expenses = expenses
		deps.Accounts = accounts
		deps.Roommates = roommates
		deps.BillSplits = billSplits
		deps.Activities = activities
		deps.Budgets = budgets
		deps.Mongo = db

		log.Info().Str("backend", cfg.StoreBackend).Str("database", cfg.Mongo.Database).Msg("storage initialised")

	case config.StoreMemory:
		store := memory.NewStore()
		deps.Users = store.Users()
		deps.Allergies = store.Allergies()
		deps.Expenses = store.Expenses()
		deps.Accounts = store.Accounts()
		deps.Roommates = store.Roommates()
		deps.BillSplits = store.BillSplits()
		deps.Activities = store.Activities()
		deps.Budgets = store.Budgets()

		log.Info().Str("backend", cfg.StoreBackend).Msg("storage initialised, data will not survive restarts")

	default:
		log.Fatal().Str("backend", cfg.StoreBackend).Msg("unknown STORE_BACKEND")
	}

	// Redis is optional. Without it, webhook replay protection is held in
	// process memory only.
	var deduper service.WebhookDeduper = billing.NewLocalDeduper()
	if cfg.Redis.Enabled {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Warn().Err(err).Msg("redis close failed")
			}
		}()

		deduper = redisdb.NewWebhookDeduper(rdb)
		deps.Redis = rdb
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	}
	deps.WebhookDeduper = deduper
	deps.BillingProvider = billing.NewStubProvider(cfg.Billing.BaseURL, log)

	e := api.NewRouter(deps)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	log.Info().Msg("server stopped")
}
