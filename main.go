package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/council-vote/boltstore"
	"github.com/danielhkuo/council-vote/cliparse"
	"github.com/danielhkuo/council-vote/ledger"
	"github.com/danielhkuo/council-vote/middleware"
	"github.com/danielhkuo/council-vote/models"
	"github.com/danielhkuo/council-vote/router"
	"github.com/danielhkuo/council-vote/sqlstore"
)

func main() {
	var err error
	ctx := context.Background()

	// Pick up .env before reading the environment
	if err := cliparse.LoadEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the store
	store, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("store setup failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Store ready", "type", cfg.DatabaseType)

	l := ledger.New(store, ledger.Config{MaxAttempts: cfg.MaxAttempts})

	if cfg.SeedData {
		candidates, voters, err := l.Seed(ctx, ledger.DefaultCandidates, ledger.DefaultVoters)
		if err != nil {
			slog.Error("seeding failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Seed data loaded", "candidates", candidates, "voters", voters)
	}

	// Create router
	mux := router.NewRouter(l, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "admins", len(cfg.Admins))
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

func openStore(ctx context.Context, cfg cliparse.Config) (ledger.Store, error) {
	if cfg.DatabaseType == models.DatabaseBolt {
		return boltstore.Open(cfg.DatabaseURL)
	}
	return sqlstore.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
}
