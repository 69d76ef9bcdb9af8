package tablestore

import (
	"context"
	"net/http"

	"AgentDesk/entity"
)

// Update patches a record by id. The store's update endpoint takes the
// identifier in the body as Id, not in the URL path.
func (s *Store) Update(ctx context.Context, collection, id string, fields entity.Record) (entity.Record, error) {
	fullURL, err := s.recordsURL(collection, nil)
	if err != nil {
		return nil, err
	}

	payload := make(entity.Record, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["Id"] = id

	var updated entity.Record
	if err := s.do(ctx, http.MethodPatch, fullURL, payload, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}
