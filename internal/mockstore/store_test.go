package mockstore

import (
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AgentDesk/entity"
	"AgentDesk/internal/lib/dates"
	"AgentDesk/internal/query"
	"AgentDesk/internal/tablestore"
)

func newStore() *Store {
	return New(0)
}

func TestFetchTenantIsolation(t *testing.T) {
	s := newStore()
	s.Seed(time.Now())

	records, err := s.Fetch(entity.CollectionMessages, SeedClientOne, tablestore.Options{})
	require.NoError(t, err)
	require.NotEmpty(t, records)
	for _, r := range records {
		assert.Equal(t, SeedClientOne, entity.FieldString(r, "client_id"))
	}
}

func TestFetchWhereConjunction(t *testing.T) {
	s := newStore()
	mustCreate(t, s, entity.CollectionInvoices, entity.Record{"client_id": "client_001", "status": "Pending"})
	mustCreate(t, s, entity.CollectionInvoices, entity.Record{"client_id": "client_001", "status": "Paid"})
	mustCreate(t, s, entity.CollectionInvoices, entity.Record{"client_id": "client_002", "status": "Pending"})
	mustCreate(t, s, entity.CollectionInvoices, entity.Record{"client_id": "client_001", "status": "pending"})

	records, err := s.Fetch(entity.CollectionInvoices, "", tablestore.Options{
		Where: query.Parse("(client_id,eq,client_001)~and(status,eq,Pending)"),
	})
	require.NoError(t, err)
	require.Len(t, records, 1, "equality is exact and case-sensitive")
	assert.Equal(t, "Pending", entity.FieldString(records[0], "status"))
}

func TestFetchUnknownOperatorIgnored(t *testing.T) {
	s := newStore()
	mustCreate(t, s, entity.CollectionLeads, entity.Record{"client_id": "client_001", "interest": "Pricing"})

	records, err := s.Fetch(entity.CollectionLeads, "", tablestore.Options{
		Where: query.Parse("(interest,gt,Pricing)"),
	})
	require.NoError(t, err)
	assert.Len(t, records, 1, "unknown ops must not filter anything out")
}

func TestFetchDateConditions(t *testing.T) {
	s := newStore()
	mustCreate(t, s, entity.CollectionCalls, entity.Record{"client_id": "c", "date": "2024-01-10"})
	mustCreate(t, s, entity.CollectionCalls, entity.Record{"client_id": "c", "date": "2024-02-10"})
	mustCreate(t, s, entity.CollectionCalls, entity.Record{"client_id": "c", "date": "2024-03-10"})

	records, err := s.Fetch(entity.CollectionCalls, "", tablestore.Options{
		Where: query.Parse("(date,ge,exactDate,2024-02-01)~and(date,le,exactDate,2024-02-28)"),
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-02-10", entity.FieldString(records[0], "date"))
}

func TestFetchDayLevelDateRange(t *testing.T) {
	s := newStore()
	// Inject rows the way Seed does: Create would stamp created_date with
	// "now", which outranks timestamp in the field priority.
	s.data[entity.CollectionMessages] = []entity.Record{
		{"id": "mes_1", "client_id": "c", "timestamp": "2024-05-01T23:50:00Z"},
		{"id": "mes_2", "client_id": "c", "timestamp": "2024-05-03T00:10:00Z"},
		{"id": "mes_3", "client_id": "c", "timestamp": "2024-05-09T12:00:00Z"},
		{"id": "mes_4", "client_id": "c"},
	}

	records, err := s.Fetch(entity.CollectionMessages, "", tablestore.Options{
		StartDate: "2024-05-01",
		EndDate:   "2024-05-03",
	})
	require.NoError(t, err)
	// Inclusive at day granularity on both ends; the dateless record is
	// excluded.
	assert.Len(t, records, 2)
}

func TestCreateSynthesizesIdAndCreatedDate(t *testing.T) {
	s := newStore()

	created, err := s.Create(entity.CollectionInvoices, entity.Record{"id": "", "amount": 10})
	require.NoError(t, err)

	id := entity.FieldString(created, "id")
	assert.Regexp(t, regexp.MustCompile(`^inv_[a-z0-9]{9}$`), id)

	createdAt, ok := dates.Parse(entity.FieldString(created, "created_date"))
	require.True(t, ok)
	assert.WithinDuration(t, time.Now(), createdAt, time.Minute)

	// Delete shrinks by exactly one, a second delete reports false.
	ok, err = s.Delete(entity.CollectionInvoices, id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Delete(entity.CollectionInvoices, id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateCallerFieldsWin(t *testing.T) {
	s := newStore()

	created, err := s.Create(entity.CollectionOffers, entity.Record{
		"id":     "off_custom",
		"title":  "Custom",
		"status": "Pending",
	})
	require.NoError(t, err)

	// id and created_date always come from the store.
	assert.NotEqual(t, "off_custom", entity.FieldString(created, "id"))
	assert.Equal(t, "Custom", entity.FieldString(created, "title"))
}

func TestUpdateMissingIdReturnsNil(t *testing.T) {
	s := newStore()

	updated, err := s.Update(entity.CollectionLeads, "lea_missing", entity.Record{"name": "x"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUpdateShallowMerge(t *testing.T) {
	s := newStore()
	created := mustCreate(t, s, entity.CollectionLeads, entity.Record{
		"client_id": "c", "name": "Ada", "interest": "Pricing",
	})
	id := entity.FieldString(created, "id")

	updated, err := s.Update(entity.CollectionLeads, id, entity.Record{"interest": "Integration"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Ada", entity.FieldString(updated, "name"))
	assert.Equal(t, "Integration", entity.FieldString(updated, "interest"))
}

func TestConcurrentUpdatesDoNotCorruptOtherRecords(t *testing.T) {
	s := newStore()
	a := mustCreate(t, s, entity.CollectionLeads, entity.Record{"client_id": "c", "name": "A", "n": 0})
	b := mustCreate(t, s, entity.CollectionLeads, entity.Record{"client_id": "c", "name": "B", "n": 0})
	idA := entity.FieldString(a, "id")
	idB := entity.FieldString(b, "id")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, err := s.Update(entity.CollectionLeads, idA, entity.Record{"n": i})
			assert.NoError(t, err)
		}(i)
		go func(i int) {
			defer wg.Done()
			_, err := s.Update(entity.CollectionLeads, idB, entity.Record{"n": i})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	records, err := s.Fetch(entity.CollectionLeads, "", tablestore.Options{})
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		name := entity.FieldString(r, "name")
		assert.Contains(t, []string{"A", "B"}, name)
	}
}

func TestUnknownCollection(t *testing.T) {
	s := newStore()

	_, err := s.Fetch("bogus", "", tablestore.Options{})
	assert.ErrorIs(t, err, tablestore.ErrUnknownCollection)

	_, err = s.Create("bogus", entity.Record{})
	assert.ErrorIs(t, err, tablestore.ErrUnknownCollection)
}

func TestResetRestoresEmptyCollections(t *testing.T) {
	s := newStore()
	s.Seed(time.Now())
	s.Reset()

	records, err := s.Fetch(entity.CollectionUsers, "", tablestore.Options{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func mustCreate(t *testing.T, s *Store, collection string, r entity.Record) entity.Record {
	t.Helper()
	created, err := s.Create(collection, r)
	require.NoError(t, err)
	return created
}
