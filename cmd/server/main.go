package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kallanseto/crypto-tracker/internal/api"
	"github.com/kallanseto/crypto-tracker/internal/chart"
	"github.com/kallanseto/crypto-tracker/internal/coingecko"
	"github.com/kallanseto/crypto-tracker/internal/config"
	"github.com/kallanseto/crypto-tracker/internal/database"
	"github.com/kallanseto/crypto-tracker/internal/icons"
	"github.com/kallanseto/crypto-tracker/internal/market"
	"github.com/kallanseto/crypto-tracker/internal/notify"
	"github.com/kallanseto/crypto-tracker/internal/watchlist"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	store := watchlist.NewStore(db)
	log.Printf("Watchlist loaded with %d coins", len(store.List()))

	client := coingecko.NewClient(coingecko.Options{
		BaseURL:           cfg.CoinGeckoBaseURL,
		APIKey:            cfg.CoinGeckoAPIKey,
		RequestsPerMinute: cfg.CoinGeckoRequestsPerMinute,
	})

	notifier := notify.NewCenter(cfg.NotificationTTL)
	marketService := market.NewService(client, cfg.RefreshInterval)
	session := chart.NewSession(client)

	iconService, err := icons.NewService(marketService)
	if err != nil {
		log.Fatalf("Failed to initialize icon service: %v", err)
	}

	// Create a cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start refresh worker in background with panic recovery
	worker := market.NewWorker(marketService, notifier, cfg.RefreshInterval)
	go func() {
		for {
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.Printf("PANIC in refresh worker: %v - restarting in 30 seconds", r)
					}
				}()
				worker.Start(ctx)
			}()

			select {
			case <-ctx.Done():
				return // Graceful shutdown
			case <-time.After(30 * time.Second):
				log.Println("Refresh worker restarting after panic recovery...")
			}
		}
	}()

	router := api.SetupRouter(api.RouterConfig{
		MarketService:    marketService,
		Watchlist:        store,
		ChartSession:     session,
		History:          client,
		Notifier:         notifier,
		Icons:            iconService,
		CORSOrigins:      cfg.CORSOrigins,
		FrontendDistPath: cfg.FrontendDistPath,
	})

	// Create HTTP server for graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel the context to stop the refresh worker
	cancel()

	// Give outstanding requests a deadline to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
