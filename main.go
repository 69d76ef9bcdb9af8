package main

import (
	"AgentDesk/impl/core"
	"AgentDesk/internal/config"
	"AgentDesk/internal/database"
	"AgentDesk/internal/datasource"
	"AgentDesk/internal/http-server/api"
	"AgentDesk/internal/lib/logger"
	"AgentDesk/internal/lib/sl"
	"AgentDesk/internal/mockstore"
	"AgentDesk/internal/service/auth"
	"AgentDesk/internal/service/notifier"
	"AgentDesk/internal/service/responder"
	"AgentDesk/internal/tablestore"
	"AgentDesk/internal/ws"
	"context"
	"flag"
	"log/slog"
	"time"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	// Escalate errors to Telegram if enabled
	if conf.Telegram.Enabled {
		alerter, err := logger.NewTgAlerter(conf.Telegram.ApiKey, conf.Telegram.AdminId)
		if err != nil {
			lg.Error("failed to initialize telegram alerter", slog.String("error", err.Error()))
		} else {
			lg = logger.SetupAlertHandler(lg, alerter, slog.LevelError)
			lg.With(
				slog.String("bot_name", conf.Telegram.BotName),
			).Info("telegram alerter initialized")
		}
	}

	lg.Info("starting agentdesk", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(lg)
	handler.SetAuthKey(conf.Listen.ApiKey)

	mock := mockstore.New(time.Duration(conf.Mock.LatencyMs) * time.Millisecond)
	if conf.Mock.Seed {
		mock.Seed(time.Now())
		lg.Info("mock store seeded")
	}

	var remote *tablestore.Store
	if conf.TableStore.BaseURL != "" {
		remote = tablestore.New(conf, lg)
		lg.With(
			slog.String("url", conf.TableStore.BaseURL),
			sl.Secret("token", conf.TableStore.Token),
		).Info("table store client initialized")
	}

	ds := datasource.New(remote, mock, conf.TableStore.ForceMock || remote == nil, lg)
	handler.SetDataSource(ds)

	authService := auth.NewAuthService(lg)
	authService.SetDataSource(ds)
	handler.SetAuthService(authService)

	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("mongo client")
	}
	if db != nil {
		ds.SetAuditor(db)
		handler.SetRepository(db)
		lg.With(
			slog.String("host", conf.Mongo.Host),
			slog.String("port", conf.Mongo.Port),
			slog.String("user", conf.Mongo.User),
			slog.String("database", conf.Mongo.Database),
		).Info("mongo client initialized")
	}

	rs := responder.NewService(conf, lg)
	if rs != nil {
		handler.SetResponder(rs)
		lg.With(
			sl.Secret("openai_key", conf.OpenAI.ApiKey),
			slog.String("model", conf.OpenAI.Model),
		).Info("responder initialized")
	}

	hub := ws.NewHub(lg)
	go hub.Run()

	if conf.Notifier.Enabled {
		interval := time.Duration(conf.Notifier.PollSeconds) * time.Second
		go notifier.NewService(ds, hub, interval, lg).Run(context.Background())
	}

	// *** blocking start with http server ***
	err = api.New(conf, lg, handler, hub)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
