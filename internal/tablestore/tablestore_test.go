package tablestore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AgentDesk/entity"
	"AgentDesk/internal/config"
	"AgentDesk/internal/query"
)

func newTestStore(t *testing.T, handler http.HandlerFunc) *Store {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf := &config.Config{}
	conf.TableStore.BaseURL = srv.URL
	conf.TableStore.Token = "test-token"

	return New(conf, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFetchAppendsTenantFilter(t *testing.T) {
	var gotWhere, gotToken string
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotWhere = r.URL.Query().Get("where")
		gotToken = r.Header.Get("xc-token")
		json.NewEncoder(w).Encode(map[string]any{
			"list": []entity.Record{{"id": "inv_1", "client_id": "client_001"}},
		})
	})

	records, err := store.Fetch(context.Background(), entity.CollectionInvoices, "client_001", Options{
		Where: []query.Condition{query.Eq("status", "Pending")},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "(client_id,eq,client_001)~and(status,eq,Pending)", gotWhere)
	assert.Equal(t, "test-token", gotToken)
}

func TestFetchWithoutTenantOmitsWhere(t *testing.T) {
	var hasWhere bool
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		hasWhere = r.URL.Query().Has("where")
		json.NewEncoder(w).Encode(map[string]any{"list": []entity.Record{}})
	})

	_, err := store.Fetch(context.Background(), entity.CollectionLeads, "", Options{})
	require.NoError(t, err)
	assert.False(t, hasWhere)
}

func TestFetchDateRangeParams(t *testing.T) {
	var start, end string
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		start = r.URL.Query().Get("startDate")
		end = r.URL.Query().Get("endDate")
		json.NewEncoder(w).Encode(map[string]any{"list": []entity.Record{}})
	})

	_, err := store.Fetch(context.Background(), entity.CollectionCalls, "client_001", Options{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", start)
	assert.Equal(t, "2024-01-31", end)
}

func TestCreateDropsEmptyId(t *testing.T) {
	var gotBody entity.Record
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(entity.Record{"id": "inv_new", "amount": 10.0})
	})

	created, err := store.Create(context.Background(), entity.CollectionInvoices, entity.Record{
		"id":     "",
		"amount": 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "inv_new", entity.FieldString(created, "id"))
	_, present := gotBody["id"]
	assert.False(t, present, "empty id must be omitted from the payload")
}

func TestUpdateSendsIdInBody(t *testing.T) {
	var gotBody entity.Record
	var gotMethod string
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(entity.Record{"id": "off_1", "status": "Accepted"})
	})

	_, err := store.Update(context.Background(), entity.CollectionOffers, "off_1", entity.Record{
		"status": "Accepted",
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "off_1", gotBody["Id"])
	assert.Equal(t, "Accepted", gotBody["status"])
}

func TestDeleteSendsIdInBody(t *testing.T) {
	var gotBody entity.Record
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	})

	ok, err := store.Delete(context.Background(), entity.CollectionPayments, "pay_1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "pay_1", gotBody["Id"])
}

func TestStatusErrorCarriesRemoteMessage(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid filter"})
	})

	_, err := store.Fetch(context.Background(), entity.CollectionUsers, "client_001", Options{})
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.Status)
	assert.Equal(t, "invalid filter", statusErr.Error())
}

func TestStatusErrorWithoutMessage(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := store.Fetch(context.Background(), entity.CollectionUsers, "", Options{})
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "http status 502", statusErr.Error())
}

func TestUnknownCollection(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not reach the server")
	})

	_, err := store.Fetch(context.Background(), "bogus", "", Options{})
	assert.ErrorIs(t, err, ErrUnknownCollection)
}
