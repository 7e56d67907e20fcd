package mailbox

import (
	"context"
	"sync"

	"github.com/liorb/inbox-assistant/internal/core"
	"go.uber.org/zap"
)

// MemoryMailbox is a bounded, newest-first, in-memory message store
// implementing the MessageSource interface. It backs the dev SMTP sink and
// keeps everything in volatile process memory; nothing is ever persisted.
type MemoryMailbox struct {
	messages    []core.EmailMessage
	mu          sync.RWMutex
	logger      *zap.Logger
	maxMessages int
}

// NewMemoryMailbox creates a new in-memory mailbox holding at most
// maxMessages messages. When the bound is exceeded the oldest messages are
// discarded.
func NewMemoryMailbox(logger *zap.Logger, maxMessages int) *MemoryMailbox {
	if maxMessages <= 0 {
		maxMessages = 200
	}
	return &MemoryMailbox{
		messages:    make([]core.EmailMessage, 0, maxMessages),
		logger:      logger,
		maxMessages: maxMessages,
	}
}

// Append adds a message at the newest position
func (m *MemoryMailbox) Append(msg core.EmailMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages = append([]core.EmailMessage{msg}, m.messages...)
	if len(m.messages) > m.maxMessages {
		m.messages = m.messages[:m.maxMessages]
	}

	m.logger.Debug("Stored message in memory mailbox",
		zap.String("message_id", msg.ID),
		zap.Int("stored", len(m.messages)))
}

// ListMessages returns up to maxResults messages, newest first
func (m *MemoryMailbox) ListMessages(_ context.Context, maxResults int) ([]core.EmailMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if maxResults <= 0 || maxResults > len(m.messages) {
		maxResults = len(m.messages)
	}

	out := make([]core.EmailMessage, maxResults)
	copy(out, m.messages[:maxResults])
	return out, nil
}

// Len returns the number of stored messages
func (m *MemoryMailbox) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.messages)
}
