package core

import (
	"testing"

	"github.com/liorb/inbox-assistant/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAnalyzer() *EventAnalyzer {
	logger := zap.NewNop()
	return NewEventAnalyzer(DefaultScoreWeights(), 0.5, 500, utils.NewTextProcessor(logger), logger)
}

func TestAnalyzeUrgentHebrewMeeting(t *testing.T) {
	a := newTestAnalyzer()
	msg := EmailMessage{
		ID:      "m1",
		Subject: "פגישה דחופה מחר בשעה 14:00",
		From:    "dana@example.com",
		Snippet: "נפגש לפגישת צוות",
	}

	analysis := a.Analyze(msg)

	require.True(t, analysis.HasEvent)
	assert.GreaterOrEqual(t, analysis.Confidence, 0.9)
	require.NotNil(t, analysis.SuggestedEvent)
	assert.Equal(t, EventTypeMeeting, analysis.SuggestedEvent.Type)
	assert.Equal(t, msg.Subject, analysis.SuggestedEvent.Title)
	assert.Equal(t, "מחר", analysis.SuggestedEvent.Date)
	assert.Equal(t, "14:00", analysis.SuggestedEvent.Time)
	assert.Contains(t, analysis.SuggestedEvent.Description, msg.Snippet)
	assert.Contains(t, analysis.SuggestedEvent.Description, msg.From)
}

func TestAnalyzeNoSignal(t *testing.T) {
	a := newTestAnalyzer()
	analysis := a.Analyze(EmailMessage{Subject: "עדכון מערכת", Snippet: "הגרסה החדשה זמינה"})

	assert.False(t, analysis.HasEvent)
	assert.Equal(t, 0.0, analysis.Confidence)
	assert.Nil(t, analysis.SuggestedEvent)
}

func TestAnalyzeConfidenceIsSumOfWeights(t *testing.T) {
	a := newTestAnalyzer()
	tests := []struct {
		name     string
		subject  string
		snippet  string
		want     float64
		hasEvent bool
	}{
		{"date only", "12/05/2024", "", 0.4, false},
		{"time only", "9:30", "", 0.3, false},
		{"location only", "zoom", "", 0.1, false},
		{"date and location", "12/05/2024 zoom", "", 0.5, true},
		{"time and keyword", "meeting", "starts at 10:30", 0.5, true},
		{"date time keyword", "פגישה מחר", "בשעה 10:00", 0.9, true},
		{"all signals", "פגישה מחר בשעה 10:00", "zoom", 1.0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := a.Analyze(EmailMessage{Subject: tt.subject, Snippet: tt.snippet})
			assert.InDelta(t, tt.want, analysis.Confidence, 1e-9)
			assert.Equal(t, tt.hasEvent, analysis.HasEvent)
			if tt.hasEvent {
				assert.NotNil(t, analysis.SuggestedEvent)
			} else {
				assert.Nil(t, analysis.SuggestedEvent)
			}
		})
	}
}

func TestAnalyzeConfidenceMonotonicInSignal(t *testing.T) {
	a := newTestAnalyzer()
	texts := []string{
		"עדכון",
		"עדכון 12/05/2024",
		"עדכון 12/05/2024 בשעה 10:00",
		"עדכון פגישה 12/05/2024 בשעה 10:00",
		"עדכון פגישה 12/05/2024 בשעה 10:00 במשרד",
	}
	prev := -1.0
	for _, text := range texts {
		analysis := a.Analyze(EmailMessage{Subject: text})
		assert.GreaterOrEqual(t, analysis.Confidence, prev, "text: %s", text)
		prev = analysis.Confidence
	}
	assert.InDelta(t, 1.0, prev, 1e-9)
}

func TestAnalyzeSuggestedEventTypeMatchesClassifier(t *testing.T) {
	a := newTestAnalyzer()
	msg := EmailMessage{Subject: "תשלום חשבון מחר", Snippet: "תזכורת לתשלום בשעה 9:00"}
	analysis := a.Analyze(msg)

	require.True(t, analysis.HasEvent)
	assert.Equal(t, ClassifyEventType(msg.Subject, msg.Snippet), analysis.SuggestedEvent.Type)
	assert.Equal(t, EventTypePayment, analysis.SuggestedEvent.Type)
}

func TestAnalyzeFallbackTitleAndSenderlessDescription(t *testing.T) {
	a := newTestAnalyzer()
	analysis := a.Analyze(EmailMessage{Subject: "", Snippet: "פגישה מחר בשעה 10:00"})

	require.True(t, analysis.HasEvent)
	assert.Equal(t, "אירוע מ-Gmail", analysis.SuggestedEvent.Title)
	assert.Contains(t, analysis.SuggestedEvent.Description, "פגישה מחר בשעה 10:00")
}

func TestAnalyzeFirstMatchWins(t *testing.T) {
	a := newTestAnalyzer()
	analysis := a.Analyze(EmailMessage{
		Subject: "פגישה מחר או ביום שלישי",
		Snippet: "בשעה 10:00 או בשעה 15:30, במשרד או בבית",
	})

	require.True(t, analysis.HasEvent)
	// Numeric and weekday families run before relative terms, so the
	// weekday mention would win only if it appeared in an earlier family;
	// within each family text order decides.
	assert.Equal(t, "יום שלישי", analysis.SuggestedEvent.Date)
	assert.Equal(t, "10:00", analysis.SuggestedEvent.Time)
	assert.Equal(t, "במשרד", analysis.SuggestedEvent.Location)
}
