package datasource

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AgentDesk/entity"
	"AgentDesk/internal/config"
	"AgentDesk/internal/mockstore"
	"AgentDesk/internal/tablestore"
)

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func remoteStore(t *testing.T, handler http.HandlerFunc) *tablestore.Store {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	conf := &config.Config{}
	conf.TableStore.BaseURL = srv.URL
	return tablestore.New(conf, discardLog())
}

func TestFetchLiveWhenRemoteHealthy(t *testing.T) {
	remote := remoteStore(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"list": []entity.Record{{"id": "lea_live", "client_id": "client_001"}},
		})
	})
	ds := New(remote, mockstore.New(0), false, discardLog())

	res, err := ds.Fetch(context.Background(), entity.CollectionLeads, "client_001", tablestore.Options{})
	require.NoError(t, err)
	assert.Equal(t, SourceLive, res.Source)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "lea_live", entity.FieldString(res.Records[0], "id"))
}

func TestFetchFallsBackOnRemoteError(t *testing.T) {
	remote := remoteStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mock := mockstore.New(0)
	mock.Seed(time.Now())
	ds := New(remote, mock, false, discardLog())

	res, err := ds.Fetch(context.Background(), entity.CollectionLeads, mockstore.SeedClientOne, tablestore.Options{})
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, res.Source)
	assert.NotEmpty(t, res.Records)
}

func TestForceMockSkipsRemote(t *testing.T) {
	var called bool
	remote := remoteStore(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	mock := mockstore.New(0)
	mock.Seed(time.Now())
	ds := New(remote, mock, true, discardLog())

	res, err := ds.Fetch(context.Background(), entity.CollectionInvoices, mockstore.SeedClientOne, tablestore.Options{})
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, res.Source)
	assert.False(t, called, "remote must not be called in force-mock mode")
}

func TestFallbackErrorsStillPropagate(t *testing.T) {
	remote := remoteStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	ds := New(remote, mockstore.New(0), false, discardLog())

	_, err := ds.Fetch(context.Background(), "bogus", "", tablestore.Options{})
	assert.ErrorIs(t, err, tablestore.ErrUnknownCollection)
}

type captureAuditor struct {
	mu    sync.Mutex
	calls []string
}

func (a *captureAuditor) RecordFallback(_ context.Context, collection, operation string, _ error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = append(a.calls, collection+"/"+operation)
}

func TestAuditorSeesFallbackDecisions(t *testing.T) {
	remote := remoteStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	mock := mockstore.New(0)
	ds := New(remote, mock, false, discardLog())
	auditor := &captureAuditor{}
	ds.SetAuditor(auditor)

	_, err := ds.Create(context.Background(), entity.CollectionLeads, entity.Record{"client_id": "c", "name": "x"})
	require.NoError(t, err)

	auditor.mu.Lock()
	defer auditor.mu.Unlock()
	require.Len(t, auditor.calls, 1)
	assert.Equal(t, "leads/create", auditor.calls[0])
}

func TestUpdateFallbackMissingIdYieldsNilRecord(t *testing.T) {
	remote := remoteStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	ds := New(remote, mockstore.New(0), false, discardLog())

	res, err := ds.Update(context.Background(), entity.CollectionLeads, "lea_missing", entity.Record{"name": "x"})
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, res.Source)
	assert.Nil(t, res.Record)
}
