package tablestore

import (
	"context"
	"net/http"

	"AgentDesk/entity"
)

// Create inserts one record. The store assigns ids itself, so an empty id
// field is dropped from the payload before sending.
func (s *Store) Create(ctx context.Context, collection string, record entity.Record) (entity.Record, error) {
	fullURL, err := s.recordsURL(collection, nil)
	if err != nil {
		return nil, err
	}

	payload := make(entity.Record, len(record))
	for k, v := range record {
		if k == "id" && entity.FieldString(record, "id") == "" {
			continue
		}
		payload[k] = v
	}

	var created entity.Record
	if err := s.do(ctx, http.MethodPost, fullURL, payload, &created); err != nil {
		return nil, err
	}
	return created, nil
}
