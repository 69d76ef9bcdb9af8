package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"AgentDesk/internal/lib/api/cont"
)

// defaultWindowDays is the trailing window charts use when the request
// does not ask for one. Zero days means no window at all.
const defaultWindowDays = 30

func windowDays(r *http.Request) int {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return defaultWindowDays
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 0 {
		return defaultWindowDays
	}
	return days
}

func Overview(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		overview, err := handler.DashboardOverview(r.Context(), user, windowDays(r))
		if err != nil {
			log.Error("Failed to build overview", slog.Any("error", err))
			http.Error(w, "Failed to build overview", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(overview)
	}
}
