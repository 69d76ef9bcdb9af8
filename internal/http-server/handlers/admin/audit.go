package admin

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"AgentDesk/internal/database"
	"AgentDesk/internal/lib/api/cont"
)

type AuditResponse struct {
	Events []repository.FallbackEvent `json:"events"`
}

// Audit serves GET /admin/fallbacks: the recent occasions the service
// answered from mock data instead of the table store.
func Audit(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil || !user.Admin {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		var limit int64
		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, _ = strconv.ParseInt(raw, 10, 64)
		}

		events, err := handler.ListFallbackEvents(limit)
		if err != nil {
			log.Error("Failed to list fallback events", slog.Any("error", err))
			http.Error(w, "Failed to list fallback events", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(AuditResponse{Events: events})
	}
}
