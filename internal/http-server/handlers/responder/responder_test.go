package responder

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AgentDesk/entity"
	"AgentDesk/internal/lib/api/cont"
	responderservice "AgentDesk/internal/service/responder"
)

type stubCore struct {
	suggestion string
	summary    string
	err        error
}

func (s *stubCore) SuggestReply(context.Context, *entity.AuthUser, string) (string, error) {
	return s.suggestion, s.err
}

func (s *stubCore) SummarizeCall(context.Context, *entity.AuthUser, string) (string, error) {
	return s.summary, s.err
}

func doRequest(t *testing.T, h http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req = req.WithContext(cont.PutUser(req.Context(), &entity.AuthUser{ClientId: "client_001"}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSuggestReturnsSuggestion(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Suggest(log, &stubCore{suggestion: "Happy to help with that."})

	rec := doRequest(t, h, SuggestRequest{SessionId: "sess_a1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SuggestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Happy to help with that.", resp.Suggestion)
}

func TestSuggestUnconfiguredResponder(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Suggest(log, &stubCore{err: responderservice.ErrNotConfigured})

	rec := doRequest(t, h, SuggestRequest{SessionId: "sess_a1"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSummarizeUnconfiguredResponder(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Summarize(log, &stubCore{err: responderservice.ErrNotConfigured})

	rec := doRequest(t, h, SummarizeRequest{CallId: "cal_1"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
