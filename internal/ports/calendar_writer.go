package ports

import (
	"context"

	"github.com/liorb/inbox-assistant/internal/core"
)

// CalendarWriter defines the interface for writing calendar events
type CalendarWriter interface {
	// CreateEvent writes the draft to the calendar and reports success
	CreateEvent(ctx context.Context, draft *core.CalendarEventDraft) (bool, error)
}
