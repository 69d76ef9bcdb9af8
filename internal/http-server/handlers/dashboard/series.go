package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"AgentDesk/internal/lib/api/cont"
)

func DailyMessages(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		series, err := handler.DailyMessageCounts(r.Context(), user, windowDays(r))
		if err != nil {
			log.Error("Failed to count daily messages", slog.Any("error", err))
			http.Error(w, "Failed to count daily messages", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(series)
	}
}

func DailyCalls(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		series, err := handler.DailyCallDurations(r.Context(), user, windowDays(r))
		if err != nil {
			log.Error("Failed to sum daily call durations", slog.Any("error", err))
			http.Error(w, "Failed to sum daily call durations", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(series)
	}
}

func Channels(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		series, err := handler.ChannelCounts(r.Context(), user, windowDays(r))
		if err != nil {
			log.Error("Failed to count channels", slog.Any("error", err))
			http.Error(w, "Failed to count channels", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(series)
	}
}

func LeadInterests(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		series, err := handler.LeadInterestCounts(r.Context(), user, windowDays(r))
		if err != nil {
			log.Error("Failed to count lead interests", slog.Any("error", err))
			http.Error(w, "Failed to count lead interests", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(series)
	}
}

func OfferStatuses(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		series, err := handler.OfferStatusBreakdown(r.Context(), user)
		if err != nil {
			log.Error("Failed to count offer statuses", slog.Any("error", err))
			http.Error(w, "Failed to count offer statuses", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(series)
	}
}
