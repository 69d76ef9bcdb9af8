package notifications

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"AgentDesk/entity"
	"AgentDesk/internal/datasource"
	"AgentDesk/internal/lib/api/cont"
)

type ListResponse struct {
	Notifications []entity.Record   `json:"notifications"`
	Source        datasource.Source `json:"source"`
}

// List serves GET /notifications. "?unread=true" narrows to unread only.
func List(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		unreadOnly := r.URL.Query().Get("unread") == "true"

		res, err := handler.ListNotifications(r.Context(), user, unreadOnly)
		if err != nil {
			log.Error("Failed to list notifications", slog.Any("error", err))
			http.Error(w, "Failed to list notifications", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ListResponse{
			Notifications: res.Records,
			Source:        res.Source,
		})
	}
}
