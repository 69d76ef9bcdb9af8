package records

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"AgentDesk/entity"
	"AgentDesk/impl/core"
	"AgentDesk/internal/lib/api/cont"
	"AgentDesk/internal/tablestore"
)

// Update serves PATCH /{collection}/{id}. Only the fields present in
// the body are touched.
func Update(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		collection := chi.URLParam(r, "collection")
		id := chi.URLParam(r, "id")

		var fields entity.Record
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		res, err := handler.UpdateRecord(r.Context(), collection, id, user, fields)
		if err != nil {
			if errors.Is(err, tablestore.ErrUnknownCollection) || errors.Is(err, core.ErrNotFound) {
				http.Error(w, "Record not found", http.StatusNotFound)
				return
			}
			if errors.Is(err, core.ErrForbidden) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			log.Error("Failed to update record", slog.Any("error", err))
			http.Error(w, "Failed to update record", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(res)
	}
}
