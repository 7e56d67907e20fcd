package ports

import (
	"context"

	"github.com/liorb/inbox-assistant/internal/core"
)

// MessageSource defines the interface for listing mailbox messages
type MessageSource interface {
	// ListMessages returns up to maxResults messages, newest first
	ListMessages(ctx context.Context, maxResults int) ([]core.EmailMessage, error)
}
