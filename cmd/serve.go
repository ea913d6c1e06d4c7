package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/encore/internal/api"
	"github.com/zjrosen/encore/internal/cachemanager"
	"github.com/zjrosen/encore/internal/clock"
	"github.com/zjrosen/encore/internal/config"
	"github.com/zjrosen/encore/internal/infrastructure/sqlite"
	"github.com/zjrosen/encore/internal/log"
	"github.com/zjrosen/encore/internal/seating"
	"github.com/zjrosen/encore/internal/tracing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reservation HTTP API",
	Long: `Run the reservation API as a long-lived process. The API shares the
SQLite database with the kiosk, so kiosks with auto-refresh enabled pick
up reservations made over HTTP.

The server listens on the configured address (default: localhost:19990)
and provides REST endpoints for reserving, releasing, and listing seats.

Example:
  encore serve                     # Start on the configured address
  encore serve --addr :8080        # Start on port 8080`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if debugFlag || os.Getenv("ENCORE_DEBUG") != "" {
		logPath := os.Getenv("ENCORE_LOG")
		if logPath == "" {
			logPath = "debug.log"
		}
		cleanup, err := log.InitWithTeaLog(logPath, "encore-serve")
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer cleanup()

		log.Info(log.CatConfig, "Encore API starting", "debug", true, "logPath", logPath)
	}

	db, err := sqlite.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening reservations database: %w", err)
	}
	defer func() { _ = db.Close() }()

	seatCache := cachemanager.NewInMemoryCacheManager[string, []seating.Seat](
		"api-seats",
		cachemanager.DefaultExpiration,
		cachemanager.DefaultCleanupInterval,
	)

	// No broker: nothing in the serve process consumes seating events.
	boxOffice := seating.NewService(
		db.SeatRepository(),
		cfg.Venue.Capacity,
		seatCache,
		nil,
		clock.Real{},
	)

	provider, err := tracing.NewProvider(cfg.API.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.API.Addr
	}

	server, err := api.NewServer(api.ServerConfig{
		Addr:      addr,
		BoxOffice: boxOffice,
		Tracer:    provider.Tracer(),
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	fmt.Printf("Encore API started on port %d\n", server.Port())
	fmt.Println("Press Ctrl+C to stop")

	select {
	case sig := <-sigCh:
		fmt.Printf("\nReceived %s, shutting down...\n", sig)
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.Error(log.CatAPI, "Error stopping API server", "error", err)
	}
	if err := provider.Shutdown(shutdownCtx); err != nil {
		log.Error(log.CatAPI, "Error shutting down trace provider", "error", err)
	}

	fmt.Println("Server stopped")
	return nil
}
