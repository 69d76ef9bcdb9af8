package key

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"AgentDesk/internal/lib/api/cont"
	"AgentDesk/internal/lib/validate"
)

type GenerateRequest struct {
	Username string `json:"username" validate:"required"`
}

type GenerateResponse struct {
	Username string `json:"username"`
	ApiKey   string `json:"api_key"`
}

// Generate mints a service API key. Admin only.
func Generate(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil || !user.Admin {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		apiKey, err := handler.GenerateApiKey(req.Username)
		if err != nil {
			log.Error("Failed to generate api key", slog.Any("error", err))
			http.Error(w, "Failed to generate api key", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(GenerateResponse{
			Username: req.Username,
			ApiKey:   apiKey,
		})
	}
}
