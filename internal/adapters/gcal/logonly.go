package gcal

import (
	"context"
	"sync"

	"github.com/liorb/inbox-assistant/internal/core"
	"go.uber.org/zap"
)

// LogWriter is a CalendarWriter that records drafts in memory and to the
// log. It backs dev mode and the event-scan CLI; nothing leaves the
// process.
type LogWriter struct {
	logger *zap.Logger
	mu     sync.Mutex
	drafts []core.CalendarEventDraft
}

// NewLogWriter creates a new log-only calendar writer
func NewLogWriter(logger *zap.Logger) *LogWriter {
	return &LogWriter{logger: logger}
}

// CreateEvent records the draft and reports success
func (w *LogWriter) CreateEvent(_ context.Context, draft *core.CalendarEventDraft) (bool, error) {
	w.mu.Lock()
	w.drafts = append(w.drafts, *draft)
	w.mu.Unlock()

	w.logger.Info("Calendar event (log only)",
		zap.String("title", draft.Title),
		zap.Time("start", draft.Start),
		zap.Time("end", draft.End),
		zap.String("location", draft.Location),
		zap.String("type", string(draft.Type)))

	return true, nil
}

// Drafts returns a copy of the recorded drafts
func (w *LogWriter) Drafts() []core.CalendarEventDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]core.CalendarEventDraft, len(w.drafts))
	copy(out, w.drafts)
	return out
}
