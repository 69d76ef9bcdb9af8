package api

import (
	"AgentDesk/internal/config"
	"AgentDesk/internal/http-server/handlers/admin"
	"AgentDesk/internal/http-server/handlers/auth"
	"AgentDesk/internal/http-server/handlers/dashboard"
	"AgentDesk/internal/http-server/handlers/errors"
	"AgentDesk/internal/http-server/handlers/key"
	"AgentDesk/internal/http-server/handlers/notifications"
	"AgentDesk/internal/http-server/handlers/records"
	"AgentDesk/internal/http-server/handlers/responder"
	"AgentDesk/internal/http-server/handlers/sessions"
	"AgentDesk/internal/http-server/middleware/authenticate"
	"AgentDesk/internal/http-server/middleware/timeout"
	"AgentDesk/internal/lib/sl"
	"AgentDesk/internal/ws"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net"
	"net/http"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	authenticate.Authenticate
	auth.Core
	records.Core
	dashboard.Core
	sessions.Core
	notifications.Core
	responder.Core
	admin.Core
	key.Core
}

func New(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(timeout.Timeout(15))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Route("/api/v1", func(v1 chi.Router) {
		// Login and the websocket upgrade carry their own credentials.
		v1.Group(func(open chi.Router) {
			open.Post("/auth/login", auth.Login(log, handler))
			open.Post("/auth/admin/login", auth.AdminLogin(log, handler))
			open.Get("/notifications/ws", notifications.Ws(log, hub, handler))
		})

		v1.Group(func(r chi.Router) {
			r.Use(authenticate.New(log, handler))

			r.Post("/auth/logout", auth.Logout(log, handler))

			r.Route("/dashboard", func(d chi.Router) {
				d.Get("/overview", dashboard.Overview(log, handler))
				d.Get("/daily-messages", dashboard.DailyMessages(log, handler))
				d.Get("/daily-calls", dashboard.DailyCalls(log, handler))
				d.Get("/channels", dashboard.Channels(log, handler))
				d.Get("/lead-interests", dashboard.LeadInterests(log, handler))
				d.Get("/offer-statuses", dashboard.OfferStatuses(log, handler))
			})

			r.Route("/sessions", func(s chi.Router) {
				s.Get("/", sessions.List(log, handler))
				s.Get("/{id}", sessions.Detail(log, handler))
			})

			r.Route("/notifications", func(n chi.Router) {
				n.Get("/", notifications.List(log, handler))
				n.Post("/{id}/read", notifications.MarkRead(log, handler))
			})

			r.Route("/responder", func(a chi.Router) {
				a.Post("/suggest", responder.Suggest(log, handler))
				a.Post("/summarize", responder.Summarize(log, handler))
			})

			r.Route("/admin", func(a chi.Router) {
				a.Get("/fallbacks", admin.Audit(log, handler))
			})

			r.Route("/key", func(k chi.Router) {
				k.Post("/new", key.Generate(log, handler))
			})

			// Generic record access goes last so named routes win.
			r.Route("/{collection}", func(c chi.Router) {
				c.Get("/", records.List(log, handler))
				c.Post("/", records.Create(log, handler))
				c.Patch("/{id}", records.Update(log, handler))
				c.Delete("/{id}", records.Delete(log, handler))
			})
		})
	})

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
