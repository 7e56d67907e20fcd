package core

import (
	"time"
)

// EventType classifies a suggested event for downstream display and filtering
type EventType string

const (
	EventTypeMeeting  EventType = "meeting"
	EventTypeTask     EventType = "task"
	EventTypePayment  EventType = "payment"
	EventTypeWork     EventType = "work"
	EventTypePersonal EventType = "personal"
)

// EmailMessage is a normalized email record as returned by a message source
type EmailMessage struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	From    string `json:"from"`
	Snippet string `json:"snippet"`
	Date    string `json:"date"` // ISO-8601 timestamp string
	Read    bool   `json:"read"`
}

// SuggestedEvent is a provisional calendar-event descriptor derived from
// email text. Date, Time and Location hold the raw matched substrings, not
// parsed values.
type SuggestedEvent struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date,omitempty"`
	Time        string    `json:"time,omitempty"`
	Location    string    `json:"location,omitempty"`
	Type        EventType `json:"type"`
}

// EmailAnalysis is the result of analyzing a single message. SuggestedEvent
// is nil exactly when HasEvent is false.
type EmailAnalysis struct {
	HasEvent       bool            `json:"hasEvent"`
	Confidence     float64         `json:"confidence"`
	SuggestedEvent *SuggestedEvent `json:"suggestedEvent,omitempty"`
}

// AnalyzedMessage pairs a message with its analysis
type AnalyzedMessage struct {
	Message  EmailMessage  `json:"message"`
	Analysis EmailAnalysis `json:"analysis"`
}

// CalendarEventDraft is a calendar-event write request with absolute
// timestamps
type CalendarEventDraft struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Location    string    `json:"location,omitempty"`
	Type        EventType `json:"type"`
}

// EventOverrides lets a caller replace individual fields of the suggestion
// when materializing an event. Nil fields keep the suggested value.
type EventOverrides struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// LatestEmailResult is the most recent message together with its analysis.
// Message and Analysis are nil when the mailbox is empty or the fetch failed.
type LatestEmailResult struct {
	Message        *EmailMessage  `json:"message"`
	Analysis       *EmailAnalysis `json:"analysis"`
	CanCreateEvent bool           `json:"canCreateEvent"`
}
