package sessions

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"AgentDesk/impl/core"
	"AgentDesk/internal/lib/api/cont"
)

func Detail(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		sessionId := chi.URLParam(r, "id")

		detail, err := handler.GetSessionDetail(r.Context(), user, sessionId)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				http.Error(w, "Session not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to get session", slog.Any("error", err))
			http.Error(w, "Failed to get session", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(detail)
	}
}
