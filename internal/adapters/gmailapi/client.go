package gmailapi

import (
	"context"
	"fmt"
	"time"

	"github.com/liorb/inbox-assistant/internal/core"
	"go.uber.org/zap"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const gmailUser = "me"

// Client is a Gmail-backed implementation of the MessageSource interface
type Client struct {
	srv    *gmail.Service
	query  string
	logger *zap.Logger
}

// NewClient creates a new Gmail message source
func NewClient(ctx context.Context, credentialsFile, tokenFile, query string, logger *zap.Logger) (*Client, error) {
	httpClient, err := NewOAuthHTTPClient(ctx, credentialsFile, tokenFile)
	if err != nil {
		return nil, err
	}

	srv, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail service: %w", err)
	}

	return &Client{
		srv:    srv,
		query:  query,
		logger: logger,
	}, nil
}

// ListMessages returns up to maxResults inbox messages, newest first as
// Gmail orders them. An empty mailbox yields an empty slice.
func (c *Client) ListMessages(ctx context.Context, maxResults int) ([]core.EmailMessage, error) {
	list, err := c.srv.Users.Messages.List(gmailUser).
		MaxResults(int64(maxResults)).
		Q(c.query).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]core.EmailMessage, 0, len(list.Messages))
	for _, ref := range list.Messages {
		full, err := c.srv.Users.Messages.Get(gmailUser, ref.Id).
			Format("metadata").
			MetadataHeaders("Subject", "From").
			Context(ctx).
			Do()
		if err != nil {
			// Skip messages that disappeared between list and get
			c.logger.Warn("Failed to fetch message metadata",
				zap.String("message_id", ref.Id),
				zap.Error(err))
			continue
		}
		messages = append(messages, normalizeMessage(full))
	}

	c.logger.Debug("Listed Gmail messages",
		zap.Int("requested", maxResults),
		zap.Int("returned", len(messages)))

	return messages, nil
}

// normalizeMessage maps a Gmail API message onto the core message record
func normalizeMessage(msg *gmail.Message) core.EmailMessage {
	email := core.EmailMessage{
		ID:      msg.Id,
		Snippet: msg.Snippet,
		Read:    true,
		Date:    time.UnixMilli(msg.InternalDate).Format(time.RFC3339),
	}

	if msg.Payload != nil {
		for _, header := range msg.Payload.Headers {
			switch header.Name {
			case "Subject":
				email.Subject = header.Value
			case "From":
				email.From = header.Value
			}
		}
	}

	for _, label := range msg.LabelIds {
		if label == "UNREAD" {
			email.Read = false
			break
		}
	}

	return email
}
