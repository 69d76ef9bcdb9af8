// Package mockstore is the in-memory fallback dataset used when the
// remote table store is unreachable. It mirrors the gateway's four
// operations over seeded demo rows so dashboards keep rendering during
// outages.
package mockstore

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"AgentDesk/entity"
	"AgentDesk/internal/lib/dates"
	"AgentDesk/internal/query"
	"AgentDesk/internal/tablestore"
)

type Store struct {
	mu      sync.Mutex
	data    map[string][]entity.Record
	latency time.Duration
}

// New builds an empty store. Latency is applied to every operation to
// keep fallback responses from looking suspiciously instant next to real
// network calls.
func New(latency time.Duration) *Store {
	s := &Store{latency: latency}
	s.Reset()
	return s
}

// Reset drops every record and re-creates the empty collections. Tests
// rely on this for isolation.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string][]entity.Record, len(entity.Collections))
	for _, c := range entity.Collections {
		s.data[c] = []entity.Record{}
	}
}

func (s *Store) sleep() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}

func (s *Store) collection(name string) ([]entity.Record, error) {
	records, ok := s.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", tablestore.ErrUnknownCollection, name)
	}
	return records, nil
}

// Fetch filters a collection by tenant, inclusive day-level date range
// and the parsed where conditions, in that order.
func (s *Store) Fetch(collection, tenantID string, opts tablestore.Options) ([]entity.Record, error) {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	out := make([]entity.Record, 0, len(records))
	for _, r := range records {
		if tenantID != "" && entity.FieldString(r, "client_id") != tenantID {
			continue
		}
		if !inDateRange(r, opts.StartDate, opts.EndDate) {
			continue
		}
		if !matchesConditions(r, opts.Where) {
			continue
		}
		out = append(out, cloneRecord(r))
	}
	return out, nil
}

// Create synthesizes an id and created_date, letting caller fields win on
// every other key.
func (s *Store) Create(collection string, record entity.Record) (entity.Record, error) {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.collection(collection); err != nil {
		return nil, err
	}

	created := entity.Record{}
	for k, v := range record {
		created[k] = v
	}
	created["id"] = newId(collection)
	created["created_date"] = dates.FormatISO(time.Now())

	s.data[collection] = append(s.data[collection], created)
	return cloneRecord(created), nil
}

// Update shallow-merges fields over the first record with a matching id.
// A missing id yields (nil, nil): the caller decides whether that is an
// error.
func (s *Store) Update(collection, id string, fields entity.Record) (entity.Record, error) {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	for _, r := range records {
		if entity.FieldString(r, "id") != id {
			continue
		}
		for k, v := range fields {
			r[k] = v
		}
		return cloneRecord(r), nil
	}
	return nil, nil
}

// Delete removes every record with the id, reporting whether the
// collection shrank.
func (s *Store) Delete(collection, id string) (bool, error) {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.collection(collection)
	if err != nil {
		return false, err
	}

	kept := records[:0]
	for _, r := range records {
		if entity.FieldString(r, "id") != id {
			kept = append(kept, r)
		}
	}
	shrank := len(kept) < len(records)
	s.data[collection] = kept
	return shrank, nil
}

func inDateRange(r entity.Record, startDate, endDate string) bool {
	if startDate == "" || endDate == "" {
		return true
	}
	start, okStart := dates.Parse(startDate)
	end, okEnd := dates.Parse(endDate)
	if !okStart || !okEnd {
		return true
	}
	t, ok := dates.Parse(entity.FieldDate(r))
	if !ok {
		return false
	}
	return dates.SameOrAfterDay(t, start) && dates.SameOrBeforeDay(t, end)
}

func matchesConditions(r entity.Record, conds []query.Condition) bool {
	for _, c := range conds {
		switch c.Op {
		case query.OpEq:
			if entity.FieldString(r, c.Field) != c.CleanValue() {
				return false
			}
		case query.OpGe, query.OpLe:
			fieldTime, okField := dates.Parse(entity.FieldString(r, c.Field))
			condTime, okCond := dates.Parse(c.CleanValue())
			if !okField || !okCond {
				return false
			}
			if c.Op == query.OpGe && fieldTime.Before(condTime) {
				return false
			}
			if c.Op == query.OpLe && fieldTime.After(condTime) {
				return false
			}
		default:
			// Unrecognized operators apply no filter.
		}
	}
	return true
}

const base36 = "abcdefghijklmnopqrstuvwxyz0123456789"

func newId(collection string) string {
	prefix := collection
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return prefix + "_" + string(suffix)
}

func cloneRecord(r entity.Record) entity.Record {
	out := make(entity.Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
