package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/liorb/inbox-assistant/internal/core"
	"go.uber.org/zap"
)

const defaultBatchSize = 10

// Server exposes the thin JSON routes the dashboard UI calls
type Server struct {
	service    *core.AssistantService
	logger     *zap.Logger
	listenAddr string
	httpServer *http.Server
}

// NewServer creates a new dashboard API server
func NewServer(service *core.AssistantService, logger *zap.Logger, listenAddr string) *Server {
	return &Server{
		service:    service,
		logger:     logger,
		listenAddr: listenAddr,
	}
}

// Handler returns the route mux, exposed separately for tests
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/suggestions", s.handleSuggestions)
	mux.HandleFunc("GET /api/latest", s.handleLatest)
	mux.HandleFunc("POST /api/events", s.handleCreateEvent)
	return mux
}

// Start starts serving requests
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.listenAddr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.logger.Info("Dashboard API starting", zap.String("address", s.listenAddr))

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	return nil
}

// Stop stops the server
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleSuggestions runs batch analysis over the latest messages. The
// fail-soft contract means a collaborator failure still answers 200 with
// empty arrays.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	maxEmails := defaultBatchSize
	if raw := r.URL.Query().Get("max"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			maxEmails = parsed
		}
	}

	withEvents, suggestions := s.service.AnalyzeLatest(r.Context(), maxEmails)
	writeJSON(w, s.logger, http.StatusOK, suggestionsResponse{
		Emails:      withEvents,
		Suggestions: suggestions,
	})
}

// handleLatest answers the latest message with its analysis and the
// creation gate
func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	result := s.service.LatestWithAnalysis(r.Context())
	writeJSON(w, s.logger, http.StatusOK, result)
}

// handleCreateEvent materializes a suggested event from the posted message
func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	req, parseErr := decodeCreateEventRequest(r)
	if parseErr != nil {
		writeJSON(w, s.logger, http.StatusBadRequest, errorResponse{Error: parseErr.Message})
		return
	}

	created := s.service.CreateEventFromAnalysis(r.Context(), req.Message, req.Overrides)
	writeJSON(w, s.logger, http.StatusOK, createEventResponse{Created: created})
}
