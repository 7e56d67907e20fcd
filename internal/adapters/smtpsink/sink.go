package smtpsink

import (
	"io"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/emersion/go-smtp"
	"github.com/google/uuid"
	"github.com/liorb/inbox-assistant/internal/adapters/mailbox"
	"github.com/liorb/inbox-assistant/internal/core"
	"go.uber.org/zap"
)

// snippetLength mirrors the length of the body preview Gmail returns
const snippetLength = 120

// Sink is a local SMTP server that accepts mail and stores it in an
// in-memory mailbox, so the dashboard can run end to end without Google
// OAuth. Messages live in process memory only.
type Sink struct {
	mailbox    *mailbox.MemoryMailbox
	logger     *zap.Logger
	listenAddr string
	server     *smtp.Server
}

// NewSink creates a new dev mail sink feeding the given mailbox
func NewSink(box *mailbox.MemoryMailbox, logger *zap.Logger, listenAddr string) *Sink {
	return &Sink{
		mailbox:    box,
		logger:     logger,
		listenAddr: listenAddr,
	}
}

// Start starts the SMTP server
func (s *Sink) Start() error {
	s.server = smtp.NewServer(&smtpBackend{sink: s})

	s.server.Addr = s.listenAddr
	s.server.Domain = "localhost"
	s.server.ReadTimeout = 30 * time.Second
	s.server.WriteTimeout = 30 * time.Second
	s.server.MaxMessageBytes = 10 * 1024 * 1024 // 10MB
	s.server.MaxRecipients = 10
	s.server.AllowInsecureAuth = true

	s.logger.Info("Dev mail sink starting", zap.String("address", s.listenAddr))

	go func() {
		if err := s.server.ListenAndServe(); err != nil {
			if err != smtp.ErrServerClosed {
				s.logger.Error("SMTP server error", zap.Error(err))
			}
		}
	}()

	return nil
}

// Stop stops the SMTP server
func (s *Sink) Stop() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}

// store parses raw message data and appends the normalized record to the
// mailbox. Unparseable mail is dropped with a warning; the sink never
// rejects a delivery.
func (s *Sink) store(sender string, raw []byte) {
	msg := core.EmailMessage{
		ID:   uuid.NewString(),
		From: sender,
		Date: time.Now().Format(time.RFC3339),
	}

	parsed, err := mail.ReadMessage(strings.NewReader(string(raw)))
	if err != nil {
		s.logger.Warn("Failed to parse incoming mail", zap.Error(err))
		return
	}

	msg.Subject = parsed.Header.Get("Subject")
	if from := parsed.Header.Get("From"); from != "" {
		msg.From = from
	}
	if date, err := parsed.Header.Date(); err == nil {
		msg.Date = date.Format(time.RFC3339)
	}

	body, err := io.ReadAll(parsed.Body)
	if err == nil {
		msg.Snippet = makeSnippet(string(body))
	}

	s.mailbox.Append(msg)
	s.logger.Debug("Accepted dev mail",
		zap.String("message_id", msg.ID),
		zap.String("subject", msg.Subject))
}

// makeSnippet collapses whitespace and truncates the body to a Gmail-sized
// preview
func makeSnippet(body string) string {
	snippet := strings.Join(strings.Fields(body), " ")
	if len(snippet) <= snippetLength {
		return snippet
	}
	cut := snippet[:snippetLength]
	for !utf8.ValidString(cut) && len(cut) > 0 {
		cut = cut[:len(cut)-1]
	}
	return cut
}

// smtpBackend implements the go-smtp Backend interface
type smtpBackend struct {
	sink *Sink
}

// NewSession creates a new SMTP session
func (b *smtpBackend) NewSession(_ *smtp.Conn) (smtp.Session, error) {
	return &smtpSession{sink: b.sink}, nil
}

// smtpSession implements the go-smtp Session interface
type smtpSession struct {
	sink   *Sink
	sender string
}

// Reset resets the session state
func (s *smtpSession) Reset() {
	s.sender = ""
}

// AuthPlain handles PLAIN authentication (not needed for the sink)
func (s *smtpSession) AuthPlain(_, _ string) error {
	return smtp.ErrAuthUnsupported
}

// Mail sets the sender address
func (s *smtpSession) Mail(from string, _ *smtp.MailOptions) error {
	s.sender = from
	return nil
}

// Rcpt accepts any recipient
func (s *smtpSession) Rcpt(_ string, _ *smtp.RcptOptions) error {
	return nil
}

// Data reads the message data and stores it
func (s *smtpSession) Data(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.sink.store(s.sender, raw)
	return nil
}

// Logout ends the session
func (s *smtpSession) Logout() error {
	return nil
}
