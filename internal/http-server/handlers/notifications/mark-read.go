package notifications

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"AgentDesk/impl/core"
	"AgentDesk/internal/lib/api/cont"
)

func MarkRead(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		id := chi.URLParam(r, "id")

		res, err := handler.MarkNotificationRead(r.Context(), user, id)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				http.Error(w, "Notification not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to mark notification read", slog.Any("error", err))
			http.Error(w, "Failed to mark notification read", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(res)
	}
}
