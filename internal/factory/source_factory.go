package factory

import (
	"context"
	"fmt"

	"github.com/liorb/inbox-assistant/internal/adapters/gmailapi"
	"github.com/liorb/inbox-assistant/internal/adapters/mailbox"
	"github.com/liorb/inbox-assistant/internal/config"
	"github.com/liorb/inbox-assistant/internal/core"
	"go.uber.org/zap"
)

// SourceFactory creates message sources based on configuration
type SourceFactory struct {
	cfg    *config.Config
	logger *zap.Logger
	box    *mailbox.MemoryMailbox
}

// NewSourceFactory creates a new message source factory
func NewSourceFactory(cfg *config.Config, logger *zap.Logger, box *mailbox.MemoryMailbox) *SourceFactory {
	return &SourceFactory{
		cfg:    cfg,
		logger: logger,
		box:    box,
	}
}

// CreateMessageSource creates a message source based on the configuration
func (f *SourceFactory) CreateMessageSource() (core.MessageSource, error) {
	sourceType := f.cfg.GetString("source.type")

	switch sourceType {
	case "gmail":
		gmailCfg := f.cfg.GetGmail()
		return gmailapi.NewClient(
			context.Background(),
			gmailCfg.CredentialsFile,
			gmailCfg.TokenFile,
			gmailCfg.Query,
			f.logger,
		)
	case "memory":
		// Dev mode: the SMTP sink feeds the shared in-memory mailbox
		return f.box, nil
	default:
		return nil, fmt.Errorf("unsupported source type: %s", sourceType)
	}
}
