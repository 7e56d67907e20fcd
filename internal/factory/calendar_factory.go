package factory

import (
	"context"
	"fmt"

	"github.com/liorb/inbox-assistant/internal/adapters/gcal"
	"github.com/liorb/inbox-assistant/internal/adapters/gmailapi"
	"github.com/liorb/inbox-assistant/internal/config"
	"github.com/liorb/inbox-assistant/internal/core"
	"go.uber.org/zap"
)

// CalendarFactory creates calendar writers based on configuration
type CalendarFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewCalendarFactory creates a new calendar writer factory
func NewCalendarFactory(cfg *config.Config, logger *zap.Logger) *CalendarFactory {
	return &CalendarFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateCalendarWriter creates a calendar writer based on the configuration
func (f *CalendarFactory) CreateCalendarWriter() (core.CalendarWriter, error) {
	calendarCfg := f.cfg.GetCalendar()

	switch calendarCfg.Type {
	case "google":
		// The Google writer reuses the Gmail OAuth credentials; both scopes
		// are requested on the same token.
		gmailCfg := f.cfg.GetGmail()
		ctx := context.Background()
		httpClient, err := gmailapi.NewOAuthHTTPClient(ctx, gmailCfg.CredentialsFile, gmailCfg.TokenFile)
		if err != nil {
			return nil, err
		}
		return gcal.NewClient(ctx, httpClient, calendarCfg.CalendarID, f.logger)
	case "log":
		return gcal.NewLogWriter(f.logger), nil
	default:
		return nil, fmt.Errorf("unsupported calendar type: %s", calendarCfg.Type)
	}
}
