package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/cryptomarket/market-api/api"
	"github.com/cryptomarket/market-api/coingecko"
	"github.com/cryptomarket/market-api/config"
)

func main() {
	// Load .env if present; environment stays authoritative either way
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, stopping server...")
		cancel()
	}()

	// Create the upstream gateway and the HTTP server
	marketData := coingecko.NewService(cfg.CoinGecko)

	server := api.New(cfg.Port, marketData)
	if err := server.Start(); err != nil {
		log.Fatal("Server failed: ", err)
	}
	defer server.Stop()

	<-ctx.Done()
}
