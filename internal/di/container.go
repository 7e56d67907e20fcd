package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/liorb/inbox-assistant/internal/adapters/mailbox"
	"github.com/liorb/inbox-assistant/internal/adapters/smtpsink"
	"github.com/liorb/inbox-assistant/internal/config"
	"github.com/liorb/inbox-assistant/internal/core"
	"github.com/liorb/inbox-assistant/internal/factory"
	"github.com/liorb/inbox-assistant/internal/logging"
	"github.com/liorb/inbox-assistant/internal/ports"
	"github.com/liorb/inbox-assistant/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register the shared in-memory mailbox (dev mode source + sink store)
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) *mailbox.MemoryMailbox {
		return mailbox.NewMemoryMailbox(logger, cfg.GetDevMail().MaxMessages)
	}); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewSourceFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCalendarFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewServerFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register message source
	if err := container.Provide(func(f *factory.SourceFactory) (core.MessageSource, error) {
		return f.CreateMessageSource()
	}); err != nil {
		return nil, err
	}

	// Register calendar writer
	if err := container.Provide(func(f *factory.CalendarFactory) (core.CalendarWriter, error) {
		return f.CreateCalendarWriter()
	}); err != nil {
		return nil, err
	}

	// Register event analyzer
	if err := container.Provide(func(cfg *config.Config, tp *utils.TextProcessor, logger *zap.Logger) *core.EventAnalyzer {
		analyzerCfg := cfg.GetAnalyzer()
		weights := core.ScoreWeights{
			Date:     analyzerCfg.DateWeight,
			Time:     analyzerCfg.TimeWeight,
			Keyword:  analyzerCfg.KeywordWeight,
			Location: analyzerCfg.LocationWeight,
		}
		return core.NewEventAnalyzer(weights, analyzerCfg.DetectThreshold, analyzerCfg.MaxSnippetSize, tp, logger)
	}); err != nil {
		return nil, err
	}

	// Register assistant service
	if err := container.Provide(func(
		cfg *config.Config,
		source core.MessageSource,
		calendar core.CalendarWriter,
		analyzer *core.EventAnalyzer,
		logger *zap.Logger,
	) (*core.AssistantService, error) {
		eventDuration, err := cfg.GetDuration("calendar.event_duration")
		if err != nil {
			return nil, err
		}
		mutedSenders := cfg.GetStringSlice("assistant.muted_senders")
		if len(mutedSenders) > 0 {
			logger.Info("Loaded muted senders", zap.Strings("senders", mutedSenders))
		}
		return core.NewAssistantService(
			source,
			calendar,
			analyzer,
			logger,
			cfg.GetAnalyzer().CreateThreshold,
			eventDuration,
			mutedSenders,
		), nil
	}); err != nil {
		return nil, err
	}

	// Register dashboard server
	if err := container.Provide(func(f *factory.ServerFactory) (ports.DashboardServer, error) {
		return f.CreateDashboardServer()
	}); err != nil {
		return nil, err
	}

	// Register dev mail sink
	if err := container.Provide(func(cfg *config.Config, box *mailbox.MemoryMailbox, logger *zap.Logger) *smtpsink.Sink {
		return smtpsink.NewSink(box, logger, cfg.GetDevMail().ListenAddress)
	}); err != nil {
		return nil, err
	}

	return container, nil
}
