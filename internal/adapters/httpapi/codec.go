package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/liorb/inbox-assistant/internal/core"
	"go.uber.org/zap"
)

// createEventRequest is the body of POST /api/events
type createEventRequest struct {
	Message   core.EmailMessage    `json:"message"`
	Overrides *core.EventOverrides `json:"overrides,omitempty"`
}

type suggestionsResponse struct {
	Emails      []core.AnalyzedMessage `json:"emails"`
	Suggestions []core.SuggestedEvent  `json:"suggestions"`
}

type createEventResponse struct {
	Created bool `json:"created"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// parseError is the explicit failure branch of request decoding. Decoding
// either yields a request or a parseError; handlers never probe
// half-decoded fields.
type parseError struct {
	Message string
}

// decodeCreateEventRequest strictly decodes the request body
func decodeCreateEventRequest(r *http.Request) (*createEventRequest, *parseError) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req createEventRequest
	if err := dec.Decode(&req); err != nil {
		return nil, &parseError{Message: "invalid request body: " + err.Error()}
	}
	if req.Message.ID == "" && req.Message.Subject == "" && req.Message.Snippet == "" {
		return nil, &parseError{Message: "message is required"}
	}
	return &req, nil
}

// writeJSON encodes v as the response body
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}
