package gcal

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/liorb/inbox-assistant/internal/core"
	"go.uber.org/zap"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// eventColors maps event types to Google Calendar color ids so suggestions
// are visually grouped on the calendar
var eventColors = map[core.EventType]string{
	core.EventTypeMeeting: "9",  // blueberry
	core.EventTypeTask:    "5",  // banana
	core.EventTypePayment: "11", // tomato
	core.EventTypeWork:    "7",  // peacock
}

// Client is a Google-Calendar-backed implementation of the CalendarWriter
// interface
type Client struct {
	srv        *calendar.Service
	calendarID string
	logger     *zap.Logger
}

// NewClient creates a new Google Calendar writer reusing the given
// authorized HTTP client
func NewClient(ctx context.Context, httpClient *http.Client, calendarID string, logger *zap.Logger) (*Client, error) {
	srv, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create Calendar service: %w", err)
	}

	return &Client{
		srv:        srv,
		calendarID: calendarID,
		logger:     logger,
	}, nil
}

// CreateEvent inserts the draft into the calendar. Ordinary API rejections
// (rate limit, expired auth) surface as false rather than an error, per
// the fail-soft contract.
func (c *Client) CreateEvent(ctx context.Context, draft *core.CalendarEventDraft) (bool, error) {
	event := &calendar.Event{
		Summary:     draft.Title,
		Description: draft.Description,
		Location:    draft.Location,
		ColorId:     eventColors[draft.Type],
		Start: &calendar.EventDateTime{
			DateTime: draft.Start.Format(time.RFC3339),
		},
		End: &calendar.EventDateTime{
			DateTime: draft.End.Format(time.RFC3339),
		},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{
				"category": string(draft.Type),
				"source":   "inbox-assistant",
			},
		},
	}

	created, err := c.srv.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		if apiErr, ok := err.(*googleapi.Error); ok {
			c.logger.Warn("Calendar API rejected event",
				zap.Int("code", apiErr.Code),
				zap.String("title", draft.Title))
			return false, nil
		}
		return false, fmt.Errorf("failed to create event: %w", err)
	}

	c.logger.Info("Created calendar event",
		zap.String("event_id", created.Id),
		zap.String("title", created.Summary))

	return true, nil
}
