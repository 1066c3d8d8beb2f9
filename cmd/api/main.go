package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passmeter/internal/config"
	"github.com/vaultpass/passmeter/internal/crypto"
	"github.com/vaultpass/passmeter/internal/handler"
	"github.com/vaultpass/passmeter/internal/history"
	"github.com/vaultpass/passmeter/internal/metrics"
	"github.com/vaultpass/passmeter/internal/middleware"
	"github.com/vaultpass/passmeter/internal/repository"
	"github.com/vaultpass/passmeter/internal/service"
)

const sessionIdleTimeout = time.Hour

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	reg, m := metrics.NewRegistry()

	var src crypto.Source = crypto.SecureSource{}
	if cfg.HasRandomSeed {
		slog.Warn("using seeded random source, generated passwords are reproducible", "seed", cfg.RandomSeed)
		src = crypto.NewLockedSource(crypto.NewSeededSource(cfg.RandomSeed))
	}

	store, db := newHistoryStore(ctx, cfg)
	if db != nil {
		defer db.Close()
	}

	histService := service.NewHistoryService(store)
	policy := service.LengthPolicy{Min: cfg.GenerateMinLength, Max: cfg.GenerateMaxLength}

	r := handler.NewRouter(handler.Routes{
		Strength:  handler.NewStrengthHandler(service.NewStrengthService(histService, m)),
		Generator: handler.NewGeneratorHandler(service.NewGeneratorService(src, policy, histService, m)),
		History:   handler.NewHistoryHandler(histService),
		Session:   handler.NewSessionHandler(service.NewSessionService(cfg.JWTSecret, cfg.JWTExpiry)),
		JWTSecret: cfg.JWTSecret,
		Metrics:   m,
		Gatherer:  reg,
		RateLimit: middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// newHistoryStore picks MySQL when DATABASE_DSN is set and reachable, and
// falls back to process memory otherwise. The returned *sql.DB is nil for
// the memory store.
func newHistoryStore(ctx context.Context, cfg config.Config) (service.HistoryStore, *sql.DB) {
	if cfg.DatabaseDSN != "" {
		store, db, err := newMySQLStore(ctx, cfg)
		if err == nil {
			slog.Info("history stored in database")
			return store, db
		}
		slog.Warn("database unavailable, keeping history in memory", "error", err)
	}

	mem := history.NewMemoryStore(cfg.HistorySize)
	go pruneSessions(ctx, mem)
	return mem, nil
}

func newMySQLStore(ctx context.Context, cfg config.Config) (service.HistoryStore, *sql.DB, error) {
	db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := repository.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}
	sealer, err := crypto.NewSealer(cfg.HistoryKey)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return repository.NewHistoryRepository(db, sealer, cfg.HistorySize), db, nil
}

func pruneSessions(ctx context.Context, mem *history.MemoryStore) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := mem.Prune(now.Add(-sessionIdleTimeout)); n > 0 {
				slog.Debug("pruned idle history sessions", "count", n)
			}
		}
	}
}
