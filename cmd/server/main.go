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

	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/api"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/clipboard"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/config"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/database"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/repository"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/scheduler"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/service"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/session"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/vat"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection; migrations run on open
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	var clip clipboard.Writer = clipboard.Disabled{}
	if cfg.Clipboard.Enabled {
		clip = clipboard.NewSystem()
	}

	// Create repositories
	preferenceRepo := repository.NewPreferenceRepository(db)

	// Create services
	systemService := service.NewSystemService(db, cfg.Clipboard.Enabled)
	preferenceService := service.NewPreferenceService(preferenceRepo, cfg.Preference.DefaultTheme)
	calculatorService := service.NewCalculatorService(
		session.NewStore(session.Options{Catalog: vat.DefaultRates}),
		clip,
		vat.DefaultRates,
	)

	sweeper, err := scheduler.New(cfg.Session.SweepSchedule, cfg.Session.IdleTimeout, calculatorService)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	// Create router
	router := api.NewRouter(systemService, calculatorService, preferenceService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Stop on interrupt signal for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return sweeper.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Printf("Server stopped with error: %v", err)
		db.Close()
		os.Exit(1)
	}

	log.Println("Server exited")
}
