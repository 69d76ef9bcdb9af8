package notifier

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AgentDesk/entity"
	"AgentDesk/internal/datasource"
	"AgentDesk/internal/tablestore"
	"AgentDesk/internal/ws"
)

type fakeDataSource struct {
	records []entity.Record
}

func (f *fakeDataSource) Fetch(context.Context, string, string, tablestore.Options) (datasource.FetchResult, error) {
	return datasource.FetchResult{Records: f.records, Source: datasource.SourceLive}, nil
}

func TestNewServiceDefaultsInterval(t *testing.T) {
	ds := &fakeDataSource{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewService(ds, ws.NewHub(log), 0, log)
	assert.Equal(t, defaultPollInterval, svc.interval)

	svc = NewService(ds, ws.NewHub(log), -time.Second, log)
	assert.Equal(t, defaultPollInterval, svc.interval)
}

func TestMarkSeenDeduplicates(t *testing.T) {
	ds := &fakeDataSource{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(ds, ws.NewHub(log), 0, log)

	first := svc.markSeen([]entity.Record{
		{"id": "not_1", "client_id": "c"},
		{"id": "not_2", "client_id": "c"},
	})
	require.Len(t, first, 2)

	second := svc.markSeen([]entity.Record{
		{"id": "not_1", "client_id": "c"},
		{"id": "not_3", "client_id": "c"},
	})
	require.Len(t, second, 1)
	assert.Equal(t, "not_3", entity.FieldString(second[0], "id"))
}

func TestMarkSeenSkipsBlankIds(t *testing.T) {
	ds := &fakeDataSource{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(ds, ws.NewHub(log), 0, log)

	fresh := svc.markSeen([]entity.Record{{"client_id": "c"}})
	assert.Empty(t, fresh)
}
