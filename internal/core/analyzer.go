package core

import (
	"fmt"

	"github.com/liorb/inbox-assistant/internal/utils"
	"go.uber.org/zap"
)

// fallbackTitle is used when the analyzed message has an empty subject
const fallbackTitle = "אירוע מ-Gmail"

// ScoreWeights holds the additive confidence contribution of each signal
// category. The table must sum to at most 1.0 by construction; no clamp is
// applied to the computed confidence.
type ScoreWeights struct {
	Date     float64
	Time     float64
	Keyword  float64
	Location float64
}

// DefaultScoreWeights returns the standard weight table
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Date:     0.4,
		Time:     0.3,
		Keyword:  0.2,
		Location: 0.1,
	}
}

// EventAnalyzer scores messages for schedulable-event signal
type EventAnalyzer struct {
	weights         ScoreWeights
	detectThreshold float64
	maxSnippetSize  int
	textProcessor   *utils.TextProcessor
	logger          *zap.Logger
}

// NewEventAnalyzer creates a new event analyzer
func NewEventAnalyzer(
	weights ScoreWeights,
	detectThreshold float64,
	maxSnippetSize int,
	textProcessor *utils.TextProcessor,
	logger *zap.Logger,
) *EventAnalyzer {
	return &EventAnalyzer{
		weights:         weights,
		detectThreshold: detectThreshold,
		maxSnippetSize:  maxSnippetSize,
		textProcessor:   textProcessor,
		logger:          logger,
	}
}

// Analyze scans a message for date, time, location and keyword signal and
// derives a suggested event when the combined confidence crosses the
// detection threshold. The analysis is a pure function of the message:
// nothing is cached, and concurrent calls need no coordination.
func (a *EventAnalyzer) Analyze(msg EmailMessage) EmailAnalysis {
	fullText := a.textProcessor.Normalize(msg.Subject + " " + msg.Snippet)

	dates := ExtractDates(fullText)
	times := ExtractTimes(fullText)
	locations := ExtractLocations(fullText)
	hasKeyword := containsEventKeyword(fullText)

	confidence := 0.0
	if len(dates) > 0 {
		confidence += a.weights.Date
	}
	if len(times) > 0 {
		confidence += a.weights.Time
	}
	if hasKeyword {
		confidence += a.weights.Keyword
	}
	if len(locations) > 0 {
		confidence += a.weights.Location
	}

	analysis := EmailAnalysis{
		HasEvent:   confidence >= a.detectThreshold,
		Confidence: confidence,
	}
	if !analysis.HasEvent {
		return analysis
	}

	suggested := &SuggestedEvent{
		Title:       msg.Subject,
		Description: a.buildDescription(msg),
		Type:        ClassifyEventType(msg.Subject, msg.Snippet),
	}
	if suggested.Title == "" {
		suggested.Title = fallbackTitle
	}
	if len(dates) > 0 {
		suggested.Date = dates[0]
	}
	if len(times) > 0 {
		suggested.Time = times[0]
	}
	if len(locations) > 0 {
		suggested.Location = locations[0]
	}
	analysis.SuggestedEvent = suggested

	a.logger.Debug("Detected suggested event",
		zap.String("message_id", msg.ID),
		zap.Float64("confidence", confidence),
		zap.String("type", string(suggested.Type)))

	return analysis
}

// buildDescription renders the fixed description template around the
// snippet and, when known, the sender
func (a *EventAnalyzer) buildDescription(msg EmailMessage) string {
	snippet := a.textProcessor.ProcessSnippet(msg.Snippet, a.maxSnippetSize)
	if msg.From != "" {
		return fmt.Sprintf("נוצר מתוך אימייל מאת %s: %s", msg.From, snippet)
	}
	return fmt.Sprintf("נוצר מתוך אימייל: %s", snippet)
}
