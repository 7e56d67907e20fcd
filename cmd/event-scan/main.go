package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"net/mail"
	"os"
	"strings"
	"time"

	"github.com/liorb/inbox-assistant/internal/adapters/gcal"
	"github.com/liorb/inbox-assistant/internal/config"
	"github.com/liorb/inbox-assistant/internal/core"
	"github.com/liorb/inbox-assistant/internal/ignore"
	"github.com/liorb/inbox-assistant/internal/logging"
	"github.com/liorb/inbox-assistant/internal/utils"
	"go.uber.org/zap"
)

var (
	// Analyzer flags
	detectThreshold = flag.Float64("detect-threshold", 0.5, "Confidence threshold for event detection")
	createThreshold = flag.Float64("create-threshold", 0.6, "Confidence threshold for event creation")
	maxSnippetSize  = flag.Int("max-snippet-size", 500, "Maximum snippet size used in event descriptions")

	// Behavior flags
	createEvent  = flag.Bool("create", false, "Materialize the suggested event against the log-only calendar writer")
	mutedSenders = flag.String("muted", "", "Comma-separated list of muted sender entries")

	// Input flags
	inputFile  = flag.String("file", "", "Input email file (use stdin if not specified)")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "Output logs in JSON format")
	configFile = flag.String("config", "", "Path to config file (overrides command line flags)")
)

func main() {
	flag.Parse()

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration from file if specified
	var cfg *config.Config
	if *configFile != "" {
		cfg, err = config.New()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
	} else {
		cfg = createConfigFromFlags()
	}

	analyzerCfg := cfg.GetAnalyzer()
	textProcessor := utils.NewTextProcessor(logger)
	analyzer := core.NewEventAnalyzer(
		core.ScoreWeights{
			Date:     analyzerCfg.DateWeight,
			Time:     analyzerCfg.TimeWeight,
			Keyword:  analyzerCfg.KeywordWeight,
			Location: analyzerCfg.LocationWeight,
		},
		analyzerCfg.DetectThreshold,
		analyzerCfg.MaxSnippetSize,
		textProcessor,
		logger,
	)

	// Create muted-sender checker
	muted := ignore.NewChecker(cfg.GetStringSlice("assistant.muted_senders"), logger)

	// Read email from file or stdin
	var emailReader io.Reader
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			logger.Fatal("Failed to open input file", zap.Error(err), zap.String("file", *inputFile))
		}
		defer file.Close()
		emailReader = file
		logger.Info("Reading email from file", zap.String("file", *inputFile))
	} else {
		emailReader = os.Stdin
		logger.Info("Reading email from stdin")
	}

	msg, err := parseEmail(emailReader)
	if err != nil {
		logger.Fatal("Failed to parse email", zap.Error(err))
	}

	// Print email summary
	fmt.Printf("\n=== Email Summary ===\n")
	fmt.Printf("From: %s\n", msg.From)
	fmt.Printf("Subject: %s\n", msg.Subject)
	fmt.Printf("Snippet: %s\n", msg.Snippet)
	fmt.Printf("\n")

	if muted.IsMuted(msg.From) {
		fmt.Printf("=== Results ===\n")
		fmt.Printf("Sender is muted; message skipped\n")
		return
	}

	// Analyze email
	fmt.Printf("=== Analysis ===\n")
	fmt.Printf("Detect threshold: %.2f\n", analyzerCfg.DetectThreshold)
	fmt.Printf("Create threshold: %.2f\n", analyzerCfg.CreateThreshold)

	startTime := time.Now()
	analysis := analyzer.Analyze(msg)
	duration := time.Since(startTime)

	// Print results
	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Has event: %t\n", analysis.HasEvent)
	fmt.Printf("Confidence: %.2f\n", analysis.Confidence)
	if analysis.SuggestedEvent != nil {
		fmt.Printf("Title: %s\n", analysis.SuggestedEvent.Title)
		fmt.Printf("Type: %s\n", analysis.SuggestedEvent.Type)
		if analysis.SuggestedEvent.Date != "" {
			fmt.Printf("Date match: %s\n", analysis.SuggestedEvent.Date)
		}
		if analysis.SuggestedEvent.Time != "" {
			fmt.Printf("Time match: %s\n", analysis.SuggestedEvent.Time)
		}
		if analysis.SuggestedEvent.Location != "" {
			fmt.Printf("Location match: %s\n", analysis.SuggestedEvent.Location)
		}
	}
	fmt.Printf("Processing time: %v\n", duration)

	if *createEvent {
		writer := gcal.NewLogWriter(logger)
		eventDuration, err := cfg.GetDuration("calendar.event_duration")
		if err != nil {
			logger.Fatal("Invalid event duration", zap.Error(err))
		}
		service := core.NewAssistantService(
			nil, // no message source needed for direct materialization
			writer,
			analyzer,
			logger,
			analyzerCfg.CreateThreshold,
			eventDuration,
			nil,
		)
		created := service.CreateEventFromAnalysis(context.Background(), msg, nil)
		fmt.Printf("\n=== Materialization ===\n")
		fmt.Printf("Created: %t\n", created)
		for _, draft := range writer.Drafts() {
			fmt.Printf("Start: %s\n", draft.Start.Format(time.RFC3339))
			fmt.Printf("End: %s\n", draft.End.Format(time.RFC3339))
		}
	}
}

// parseEmail maps an RFC 5322 message onto the core message shape. The
// whole body stands in for the Gmail snippet.
func parseEmail(r io.Reader) (core.EmailMessage, error) {
	parsed, err := mail.ReadMessage(bufio.NewReader(r))
	if err != nil {
		return core.EmailMessage{}, err
	}

	bodyBytes, err := io.ReadAll(parsed.Body)
	if err != nil {
		return core.EmailMessage{}, err
	}

	msg := core.EmailMessage{
		ID:      parsed.Header.Get("Message-Id"),
		Subject: parsed.Header.Get("Subject"),
		From:    parsed.Header.Get("From"),
		Snippet: strings.Join(strings.Fields(string(bodyBytes)), " "),
		Date:    time.Now().Format(time.RFC3339),
	}
	if date, err := parsed.Header.Date(); err == nil {
		msg.Date = date.Format(time.RFC3339)
	}
	return msg, nil
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()

	v.Set("analyzer.detect_threshold", *detectThreshold)
	v.Set("analyzer.create_threshold", *createThreshold)
	v.Set("analyzer.max_snippet_size", *maxSnippetSize)

	if *mutedSenders != "" {
		senders := strings.Split(*mutedSenders, ",")
		for i, sender := range senders {
			senders[i] = strings.TrimSpace(sender)
		}
		v.Set("assistant.muted_senders", senders)
	} else {
		v.Set("assistant.muted_senders", []string{})
	}

	return config.NewFromViper(v)
}
