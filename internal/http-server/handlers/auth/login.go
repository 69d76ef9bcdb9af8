package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"AgentDesk/entity"
	"AgentDesk/internal/lib/validate"
	authservice "AgentDesk/internal/service/auth"
)

type LoginRequest struct {
	ClientId string `json:"client_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  entity.AuthUser `json:"user"`
}

func Login(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		session, err := handler.Login(r.Context(), req.ClientId, req.Password)
		if err != nil {
			if errors.Is(err, authservice.ErrInvalidCredentials) {
				http.Error(w, "Invalid credentials", http.StatusUnauthorized)
				return
			}
			log.Error("Failed to log in", slog.Any("error", err))
			http.Error(w, "Failed to log in", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(LoginResponse{
			Token: session.Token,
			User:  session.User,
		})
	}
}
