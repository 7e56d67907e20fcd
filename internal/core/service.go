package core

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// clockPattern extracts an H:MM sub-pattern from a matched time string
// during materialization. Dot-delimited matches deliberately do not
// qualify; they leave the start time-of-day untouched.
var clockPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

// looseDateLayouts are tried in order when resolving a matched date
// substring into an absolute date. Weekday names, month names and relative
// terms fail every layout and silently fall back to "now".
var looseDateLayouts = []string{
	"2/1/2006",
	"2/1/06",
	"2.1.2006",
	"2.1.06",
	"2-1-2006",
	"2-1-06",
	"2006-01-02",
	time.RFC3339,
}

// AssistantService is the core service turning mailbox messages into
// calendar-event suggestions and materialized events
type AssistantService struct {
	source          MessageSource
	calendar        CalendarWriter
	analyzer        *EventAnalyzer
	logger          *zap.Logger
	createThreshold float64
	eventDuration   time.Duration
	mutedSenders    []string
	now             func() time.Time
}

// NewAssistantService creates a new assistant service
func NewAssistantService(
	source MessageSource,
	calendar CalendarWriter,
	analyzer *EventAnalyzer,
	logger *zap.Logger,
	createThreshold float64,
	eventDuration time.Duration,
	mutedSenders []string,
) *AssistantService {
	return &AssistantService{
		source:          source,
		calendar:        calendar,
		analyzer:        analyzer,
		logger:          logger,
		createThreshold: createThreshold,
		eventDuration:   eventDuration,
		mutedSenders:    mutedSenders,
		now:             time.Now,
	}
}

// Analyze runs the event analyzer over a single message
func (s *AssistantService) Analyze(msg EmailMessage) EmailAnalysis {
	return s.analyzer.Analyze(msg)
}

// isMutedSender checks if the message sender matches a muted-sender entry
func (s *AssistantService) isMutedSender(from string) bool {
	lowered := strings.ToLower(from)
	for _, muted := range s.mutedSenders {
		if muted != "" && strings.Contains(lowered, strings.ToLower(muted)) {
			return true
		}
	}
	return false
}

// AnalyzeLatest fetches up to maxEmails messages and analyzes each one.
// It returns the messages whose analysis detected an event, in source
// order, together with the flat list of their suggested events. Messages
// without an event are dropped silently. A fetch failure degrades to
// empty results; a dashboard with no suggestions beats a crashed widget.
func (s *AssistantService) AnalyzeLatest(ctx context.Context, maxEmails int) ([]AnalyzedMessage, []SuggestedEvent) {
	messages, err := s.source.ListMessages(ctx, maxEmails)
	if err != nil {
		s.logger.Warn("Failed to list messages for batch analysis", zap.Error(err))
		return []AnalyzedMessage{}, []SuggestedEvent{}
	}

	withEvents := make([]AnalyzedMessage, 0, len(messages))
	suggestions := make([]SuggestedEvent, 0, len(messages))
	for _, msg := range messages {
		if s.isMutedSender(msg.From) {
			s.logger.Debug("Skipping message from muted sender",
				zap.String("message_id", msg.ID),
				zap.String("from", msg.From))
			continue
		}
		analysis := s.analyzer.Analyze(msg)
		if !analysis.HasEvent {
			continue
		}
		withEvents = append(withEvents, AnalyzedMessage{Message: msg, Analysis: analysis})
		suggestions = append(suggestions, *analysis.SuggestedEvent)
	}

	return withEvents, suggestions
}

// LatestWithAnalysis fetches the single most recent message and analyzes
// it. CanCreateEvent applies the stricter creation threshold on top of the
// analyzer's own detection threshold; both gates must pass. Fetch failures
// and an empty mailbox both yield the null result.
func (s *AssistantService) LatestWithAnalysis(ctx context.Context) LatestEmailResult {
	messages, err := s.source.ListMessages(ctx, 1)
	if err != nil {
		s.logger.Warn("Failed to fetch latest message", zap.Error(err))
		return LatestEmailResult{}
	}
	if len(messages) == 0 {
		return LatestEmailResult{}
	}

	msg := messages[0]
	analysis := s.analyzer.Analyze(msg)
	return LatestEmailResult{
		Message:        &msg,
		Analysis:       &analysis,
		CanCreateEvent: analysis.HasEvent && analysis.Confidence >= s.createThreshold,
	}
}

// CreateEventFromAnalysis re-analyzes the message and, when an event was
// detected, materializes it through the calendar writer. The analysis is
// recomputed here rather than reused from an earlier call. Returns the
// writer's verdict; every failure path maps to false.
func (s *AssistantService) CreateEventFromAnalysis(ctx context.Context, msg EmailMessage, overrides *EventOverrides) bool {
	analysis := s.analyzer.Analyze(msg)
	if !analysis.HasEvent {
		return false
	}
	suggested := analysis.SuggestedEvent

	start := s.resolveStart(suggested)
	draft := &CalendarEventDraft{
		Title:       suggested.Title,
		Description: suggested.Description,
		Start:       start,
		End:         start.Add(s.eventDuration),
		Location:    suggested.Location,
		Type:        suggested.Type,
	}
	if overrides != nil {
		if overrides.Title != nil {
			draft.Title = *overrides.Title
		}
		if overrides.Description != nil {
			draft.Description = *overrides.Description
		}
		if overrides.Location != nil {
			draft.Location = *overrides.Location
		}
	}

	created, err := s.calendar.CreateEvent(ctx, draft)
	if err != nil {
		s.logger.Warn("Calendar write failed",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		return false
	}
	return created
}

// resolveStart turns the raw matched date/time substrings into an absolute
// start timestamp. The default is "now"; a parseable date replaces it at
// midnight, and an H:MM sub-pattern in the time string then overwrites the
// hour and minute in place.
func (s *AssistantService) resolveStart(suggested *SuggestedEvent) time.Time {
	start := s.now()

	if suggested.Date != "" {
		for _, layout := range looseDateLayouts {
			if parsed, err := time.ParseInLocation(layout, suggested.Date, start.Location()); err == nil {
				start = parsed
				break
			}
		}
	}

	if suggested.Time != "" {
		if m := clockPattern.FindStringSubmatch(suggested.Time); m != nil {
			hour, _ := strconv.Atoi(m[1])
			minute, _ := strconv.Atoi(m[2])
			start = time.Date(start.Year(), start.Month(), start.Day(), hour, minute, 0, 0, start.Location())
		}
	}

	return start
}
