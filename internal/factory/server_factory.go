package factory

import (
	"fmt"

	"github.com/liorb/inbox-assistant/internal/adapters/httpapi"
	"github.com/liorb/inbox-assistant/internal/config"
	"github.com/liorb/inbox-assistant/internal/core"
	"github.com/liorb/inbox-assistant/internal/ports"
	"go.uber.org/zap"
)

// ServerFactory creates dashboard server surfaces based on configuration
type ServerFactory struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *core.AssistantService
}

// NewServerFactory creates a new server factory
func NewServerFactory(cfg *config.Config, logger *zap.Logger, service *core.AssistantService) *ServerFactory {
	return &ServerFactory{
		cfg:     cfg,
		logger:  logger,
		service: service,
	}
}

// CreateDashboardServer creates a dashboard server based on the configuration
func (f *ServerFactory) CreateDashboardServer() (ports.DashboardServer, error) {
	serverType := f.cfg.GetString("server.type")

	switch serverType {
	case "http":
		return httpapi.NewServer(
			f.service,
			f.logger,
			f.cfg.GetServer().ListenAddress,
		), nil
	default:
		return nil, fmt.Errorf("unsupported server type: %s", serverType)
	}
}
