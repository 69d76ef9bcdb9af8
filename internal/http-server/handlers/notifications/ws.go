package notifications

import (
	"log/slog"
	"net/http"

	"AgentDesk/internal/ws"
)

// Ws upgrades to a websocket for live notification pushes. The token
// travels as a query parameter since browsers cannot set headers on
// websocket dials.
func Ws(log *slog.Logger, hub *ws.Hub, auth ws.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWs(hub, auth, log, w, r)
	}
}
