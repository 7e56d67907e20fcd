package core

import (
	"context"
)

// MessageSource defines the interface for listing mailbox messages
type MessageSource interface {
	// ListMessages returns up to maxResults messages, newest first. An empty
	// mailbox yields an empty slice, not an error.
	ListMessages(ctx context.Context, maxResults int) ([]EmailMessage, error)
}

// CalendarWriter defines the interface for writing calendar events
type CalendarWriter interface {
	// CreateEvent writes the draft to the calendar. Ordinary rejections
	// (rate limit, auth expiry) surface as false, not as an error.
	CreateEvent(ctx context.Context, draft *CalendarEventDraft) (bool, error)
}
