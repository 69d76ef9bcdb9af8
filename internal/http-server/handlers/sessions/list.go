package sessions

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"AgentDesk/internal/lib/api/cont"
)

func List(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		days := 0
		if raw := r.URL.Query().Get("days"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				days = parsed
			}
		}

		list, err := handler.ListSessions(r.Context(), user, days)
		if err != nil {
			log.Error("Failed to list sessions", slog.Any("error", err))
			http.Error(w, "Failed to list sessions", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(list)
	}
}
