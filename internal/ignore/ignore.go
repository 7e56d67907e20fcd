package ignore

import (
	"strings"

	"go.uber.org/zap"
)

// Checker provides functionality to check if a sender is muted
type Checker struct {
	senders []string
	logger  *zap.Logger
}

// NewChecker creates a new muted-sender checker
func NewChecker(senders []string, logger *zap.Logger) *Checker {
	normalized := make([]string, 0, len(senders))
	for _, sender := range senders {
		sender = strings.ToLower(strings.TrimSpace(sender))
		if sender != "" {
			normalized = append(normalized, sender)
		}
	}

	if len(normalized) > 0 && logger != nil {
		logger.Info("Initialized muted-sender checker", zap.Strings("senders", normalized))
	}

	return &Checker{
		senders: normalized,
		logger:  logger,
	}
}

// IsMuted checks if the From header matches any muted-sender entry.
// Matching is substring based so an entry can be a full address, a bare
// domain, or a display-name fragment.
func (c *Checker) IsMuted(from string) bool {
	if len(c.senders) == 0 {
		return false
	}

	lowered := strings.ToLower(from)
	for _, muted := range c.senders {
		if strings.Contains(lowered, muted) {
			if c.logger != nil {
				c.logger.Debug("Sender is muted",
					zap.String("entry", muted),
					zap.String("from", from))
			}
			return true
		}
	}

	return false
}
