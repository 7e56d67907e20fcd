package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/liorb/inbox-assistant/internal/core"
	"github.com/liorb/inbox-assistant/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	messages []core.EmailMessage
	err      error
}

func (f *fakeSource) ListMessages(_ context.Context, maxResults int) ([]core.EmailMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	if maxResults < len(f.messages) {
		return f.messages[:maxResults], nil
	}
	return f.messages, nil
}

type fakeCalendar struct {
	created bool
	calls   int
}

func (f *fakeCalendar) CreateEvent(_ context.Context, _ *core.CalendarEventDraft) (bool, error) {
	f.calls++
	return f.created, nil
}

func newTestServer(source core.MessageSource, calendar core.CalendarWriter) *Server {
	logger := zap.NewNop()
	analyzer := core.NewEventAnalyzer(core.DefaultScoreWeights(), 0.5, 500, utils.NewTextProcessor(logger), logger)
	service := core.NewAssistantService(source, calendar, analyzer, logger, 0.6, time.Hour, nil)
	return NewServer(service, logger, "127.0.0.1:0")
}

func eventMessage(id string) core.EmailMessage {
	return core.EmailMessage{
		ID:      id,
		From:    "dana@example.com",
		Subject: "פגישה מחר בשעה 10:00",
		Snippet: "נתאם במשרד",
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(&fakeSource{}, &fakeCalendar{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestSuggestions(t *testing.T) {
	srv := newTestServer(&fakeSource{messages: []core.EmailMessage{
		eventMessage("a"),
		{ID: "b", Subject: "עדכון מערכת"},
	}}, &fakeCalendar{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/suggestions?max=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Emails      []core.AnalyzedMessage `json:"emails"`
		Suggestions []core.SuggestedEvent  `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Emails, 1)
	assert.Equal(t, "a", resp.Emails[0].Message.ID)
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, core.EventTypeMeeting, resp.Suggestions[0].Type)
}

func TestSuggestionsFetchFailureStays200(t *testing.T) {
	srv := newTestServer(&fakeSource{err: errors.New("transport down")}, &fakeCalendar{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/suggestions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"emails":[],"suggestions":[]}`, rec.Body.String())
}

func TestLatestEmptyMailbox(t *testing.T) {
	srv := newTestServer(&fakeSource{}, &fakeCalendar{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/latest", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":null,"analysis":null,"canCreateEvent":false}`, rec.Body.String())
}

func TestCreateEvent(t *testing.T) {
	calendar := &fakeCalendar{created: true}
	srv := newTestServer(&fakeSource{}, calendar)

	body, err := json.Marshal(map[string]any{"message": eventMessage("a")})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(string(body))))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"created":true}`, rec.Body.String())
	assert.Equal(t, 1, calendar.calls)
}

func TestCreateEventNoEventDetected(t *testing.T) {
	calendar := &fakeCalendar{created: true}
	srv := newTestServer(&fakeSource{}, calendar)

	body := `{"message":{"id":"b","subject":"עדכון מערכת","from":"","snippet":"","date":"","read":false}}`
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"created":false}`, rec.Body.String())
	assert.Equal(t, 0, calendar.calls)
}

func TestCreateEventMalformedBody(t *testing.T) {
	srv := newTestServer(&fakeSource{}, &fakeCalendar{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader("{not json")))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "invalid request body")
}

func TestCreateEventMissingMessage(t *testing.T) {
	srv := newTestServer(&fakeSource{}, &fakeCalendar{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader("{}")))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "message is required")
}
