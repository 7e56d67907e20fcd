package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/liorb/inbox-assistant/internal/adapters/smtpsink"
	"github.com/liorb/inbox-assistant/internal/config"
	"github.com/liorb/inbox-assistant/internal/di"
	"github.com/liorb/inbox-assistant/internal/ports"
	"go.uber.org/zap"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	cfg *config.Config,
	logger *zap.Logger,
	server ports.DashboardServer,
	sink *smtpsink.Sink,
) error {
	defer logger.Sync()

	// Start the dashboard API
	if err := server.Start(); err != nil {
		logger.Fatal("Failed to start dashboard server", zap.Error(err))
		return err
	}

	// Start the dev mail sink when enabled
	devMail := cfg.GetDevMail()
	if devMail.Enabled {
		if err := sink.Start(); err != nil {
			logger.Error("Failed to start dev mail sink", zap.Error(err))
		}
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Info("Shutting down...")

	if devMail.Enabled {
		if err := sink.Stop(); err != nil {
			logger.Error("Failed to stop dev mail sink", zap.Error(err))
		}
	}

	if err := server.Stop(); err != nil {
		logger.Error("Failed to stop dashboard server", zap.Error(err))
	}

	logger.Info("Shutdown complete")
	return nil
}
