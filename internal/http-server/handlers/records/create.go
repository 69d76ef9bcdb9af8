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

// Create serves POST /{collection}. The body is the record itself; the
// payload is validated against the collection's schema before insert.
func Create(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		collection := chi.URLParam(r, "collection")

		var record entity.Record
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := validatePayload(collection, user, record); err != nil {
			http.Error(w, "Invalid record: "+err.Error(), http.StatusBadRequest)
			return
		}

		res, err := handler.CreateRecord(r.Context(), collection, user, record)
		if err != nil {
			if errors.Is(err, tablestore.ErrUnknownCollection) {
				http.Error(w, "Unknown collection", http.StatusNotFound)
				return
			}
			if errors.Is(err, core.ErrForbidden) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			log.Error("Failed to create record", slog.Any("error", err))
			http.Error(w, "Failed to create record", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(res)
	}
}
