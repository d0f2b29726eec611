// Package main is the entry point for the taskcsv CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taskcsv/internal/backend/googletasks"
	"taskcsv/internal/cli"
	"taskcsv/internal/commands"
	"taskcsv/internal/config"
	"taskcsv/internal/service"

	// Import all command packages to register them via init()
	_ "taskcsv/internal/commands"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create service factory
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return googletasks.New(ctx, cfg)
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
