package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stubdns/internal/composition"
	"stubdns/internal/config"
	"stubdns/internal/server"
)

var defaultConfigPath = "./configs/server.yaml"

func main() {

	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	resolverAddr := flag.String("resolver", "", "upstream resolver address (host:port); overrides the config file")
	flag.Parse()

	// Read + validate + unmarshall the config file
	loader := config.NewLoader(*configPath)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		fmt.Printf("Please create a config file and save it as: %s\n", *configPath)
		os.Exit(1)
	}

	// The --resolver flag forces forwarding mode regardless of config
	if *resolverAddr != "" {
		cfg.Resolver.Address = *resolverAddr
	}

	loader.PrintConfiguration()

	responder, err := composition.NewResponder(cfg)
	if err != nil {
		fmt.Printf("Failed to create responder: %v\n", err)
		os.Exit(1)
	}

	srv := server.New(cfg, responder)

	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		log.Printf("starting DNS server on %s", cfg.Server.Address())
		serverErr <- srv.Start(ctx)
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigChan:
		log.Printf("received signal: %v", sig.String())
	case err := <-serverErr:
		if err != nil {
			fmt.Printf("Failed to start server: %v\n", err)
			os.Exit(1)
		}
	}

	// Graceful shutdown
	log.Printf("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Printf("failed to stop server: %v", err)
		os.Exit(1)
	}

	log.Printf("server stopped")
}
