package records

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"AgentDesk/impl/core"
	"AgentDesk/internal/lib/api/cont"
	"AgentDesk/internal/tablestore"
)

// Delete serves DELETE /{collection}/{id}.
func Delete(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		collection := chi.URLParam(r, "collection")
		id := chi.URLParam(r, "id")

		res, err := handler.DeleteRecord(r.Context(), collection, id, user)
		if err != nil {
			if errors.Is(err, tablestore.ErrUnknownCollection) || errors.Is(err, core.ErrNotFound) {
				http.Error(w, "Record not found", http.StatusNotFound)
				return
			}
			if errors.Is(err, core.ErrForbidden) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			log.Error("Failed to delete record", slog.Any("error", err))
			http.Error(w, "Failed to delete record", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(res)
	}
}
