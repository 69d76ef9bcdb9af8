package records

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"AgentDesk/entity"
	"AgentDesk/impl/core"
	"AgentDesk/internal/datasource"
	"AgentDesk/internal/lib/api/cont"
	"AgentDesk/internal/lib/dates"
	"AgentDesk/internal/query"
	"AgentDesk/internal/tablestore"
)

type ListResponse struct {
	Records []entity.Record   `json:"records"`
	Source  datasource.Source `json:"source"`
}

// List serves GET /{collection}. Filters come from query parameters:
// "where" in the (field,op,value)~and form, plus optional "start_date"
// and "end_date" (YYYY-MM-DD or DD-MM-YYYY).
func List(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		collection := chi.URLParam(r, "collection")

		opts := tablestore.Options{
			Where: query.Parse(r.URL.Query().Get("where")),
		}
		if raw := r.URL.Query().Get("start_date"); raw != "" {
			if t, ok := dates.Parse(raw); ok {
				opts.StartDate = dates.FormatDateInput(t)
			}
		}
		if raw := r.URL.Query().Get("end_date"); raw != "" {
			if t, ok := dates.Parse(raw); ok {
				opts.EndDate = dates.FormatDateInput(t)
			}
		}

		res, err := handler.ListRecords(r.Context(), collection, user, opts)
		if err != nil {
			if errors.Is(err, tablestore.ErrUnknownCollection) {
				http.Error(w, "Unknown collection", http.StatusNotFound)
				return
			}
			if errors.Is(err, core.ErrForbidden) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			log.Error("Failed to list records", slog.Any("error", err))
			http.Error(w, "Failed to list records", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ListResponse{
			Records: res.Records,
			Source:  res.Source,
		})
	}
}
