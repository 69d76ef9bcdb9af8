package responder

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"AgentDesk/impl/core"
	"AgentDesk/internal/lib/api/cont"
	"AgentDesk/internal/lib/validate"
	responderservice "AgentDesk/internal/service/responder"
)

type SuggestRequest struct {
	SessionId string `json:"session_id" validate:"required"`
}

type SuggestResponse struct {
	Suggestion string `json:"suggestion"`
}

func Suggest(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req SuggestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		suggestion, err := handler.SuggestReply(r.Context(), user, req.SessionId)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				http.Error(w, "Session not found", http.StatusNotFound)
				return
			}
			if errors.Is(err, responderservice.ErrNotConfigured) {
				http.Error(w, "Responder not configured", http.StatusServiceUnavailable)
				return
			}
			log.Error("Failed to suggest reply", slog.Any("error", err))
			http.Error(w, "Failed to suggest reply", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SuggestResponse{Suggestion: suggestion})
	}
}
