package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"AgentDesk/internal/lib/api/response"
)

func Logout(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if strings.Contains(header, "Bearer") {
			handler.Logout(strings.Split(header, " ")[1])
		}

		render.JSON(w, r, response.OK())
	}
}
