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

type SummarizeRequest struct {
	CallId string `json:"call_id" validate:"required"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

func Summarize(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req SummarizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		summary, err := handler.SummarizeCall(r.Context(), user, req.CallId)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				http.Error(w, "Call not found", http.StatusNotFound)
				return
			}
			if errors.Is(err, responderservice.ErrNotConfigured) {
				http.Error(w, "Responder not configured", http.StatusServiceUnavailable)
				return
			}
			log.Error("Failed to summarize call", slog.Any("error", err))
			http.Error(w, "Failed to summarize call", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SummarizeResponse{Summary: summary})
	}
}
