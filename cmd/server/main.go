package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	httpadapter "cfomatch/internal/adapters/http"
	"cfomatch/internal/adapters/memory"
	pg "cfomatch/internal/adapters/postgres"
	"cfomatch/internal/config"
	"cfomatch/internal/fees"
	"cfomatch/internal/ports"
	"cfomatch/internal/services/applications"
	"cfomatch/internal/services/contracts"
	"cfomatch/internal/services/conversations"
	"cfomatch/internal/services/invoices"
	"cfomatch/internal/services/meetings"
	"cfomatch/internal/services/reviews"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	policy, err := fees.NewPolicy(cfg.ExitFeeRate)
	if err != nil {
		log.Fatalf("fee policy: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var store ports.Store
	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Printf("store: memory (data is lost on exit)")
		store = memory.New()
	default:
		db, err := pg.Connect(ctx, cfg.DatabaseURL, int32(cfg.DBMaxConns))
		if err != nil {
			log.Fatalf("db connect error: %v", err)
		}
		defer db.Close()
		if cfg.MigrateOnStart {
			if err := db.Migrate(ctx); err != nil {
				log.Fatalf("migrate: %v", err)
			}
			log.Printf("migrations applied")
		}
		log.Printf("store: postgres (max %d conns)", cfg.DBMaxConns)
		store = db
	}

	srv := httpadapter.New(httpadapter.Services{
		Applications:  applications.New(store, nil),
		Conversations: conversations.New(store, nil),
		Meetings:      meetings.New(store, nil),
		Contracts:     contracts.New(store, nil),
		Invoices:      invoices.New(store, nil),
		Reviews:       reviews.New(store, nil),
		Fees:          policy,
	}, cfg.AuthSecret)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	log.Printf("listening on %s (%s)", cfg.ListenAddr, cfg.Env)

	select {
	case <-ctx.Done():
		log.Printf("shutting down")
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
			os.Exit(1)
		}
	}
}
