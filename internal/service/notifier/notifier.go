package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"AgentDesk/entity"
	"AgentDesk/internal/datasource"
	"AgentDesk/internal/lib/sl"
	"AgentDesk/internal/query"
	"AgentDesk/internal/tablestore"
	"AgentDesk/internal/ws"
)

// DataSource is the slice of the datasource the poller needs.
type DataSource interface {
	Fetch(ctx context.Context, collection, tenantID string, opts tablestore.Options) (datasource.FetchResult, error)
}

// Service polls for unread notifications and pushes the ones it has not
// seen before to connected dashboards. A single ticker goroutine issues
// the polls, so they can never overlap.
type Service struct {
	ds       DataSource
	hub      *ws.Hub
	interval time.Duration
	mu       sync.Mutex
	seen     map[string]struct{}
	log      *slog.Logger
}

// defaultPollInterval is used when the configured interval is missing
// or nonsensical; a zero interval would panic the ticker.
const defaultPollInterval = 30 * time.Second

func NewService(ds DataSource, hub *ws.Hub, interval time.Duration, logger *slog.Logger) *Service {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Service{
		ds:       ds,
		hub:      hub,
		interval: interval,
		seen:     make(map[string]struct{}),
		log:      logger.With(sl.Module("notifier")),
	}
}

// Run blocks until the context is cancelled. Should be called in a
// goroutine.
func (s *Service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Prime the seen set so a restart does not replay every historic
	// unread notification.
	s.poll(ctx, false)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.poll(ctx, true)
		}
	}
}

func (s *Service) poll(ctx context.Context, push bool) {
	res, err := s.ds.Fetch(ctx, entity.CollectionNotifications, "", tablestore.Options{
		Where: []query.Condition{query.Eq("status", entity.NotificationUnread)},
	})
	if err != nil {
		s.log.Error("poll notifications", sl.Err(err))
		return
	}

	fresh := s.markSeen(res.Records)
	if !push {
		return
	}

	for _, r := range fresh {
		s.hub.Notify(entity.FieldString(r, "client_id"), &ws.Event{
			Type: "notification",
			Data: r,
		})
	}
	if len(fresh) > 0 {
		s.log.With(
			slog.Int("count", len(fresh)),
			slog.String("source", string(res.Source)),
		).Debug("pushed notifications")
	}
}

// markSeen returns the records whose ids were not seen before, recording
// them.
func (s *Service) markSeen(records []entity.Record) []entity.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh := make([]entity.Record, 0)
	for _, r := range records {
		id := entity.FieldString(r, "id")
		if id == "" {
			continue
		}
		if _, ok := s.seen[id]; ok {
			continue
		}
		s.seen[id] = struct{}{}
		fresh = append(fresh, r)
	}
	return fresh
}
