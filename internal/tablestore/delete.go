package tablestore

import (
	"context"
	"net/http"

	"AgentDesk/entity"
)

// Delete removes a record by id, passed in the body as Id like Update.
func (s *Store) Delete(ctx context.Context, collection, id string) (bool, error) {
	fullURL, err := s.recordsURL(collection, nil)
	if err != nil {
		return false, err
	}

	payload := entity.Record{"Id": id}
	if err := s.do(ctx, http.MethodDelete, fullURL, payload, nil); err != nil {
		return false, err
	}
	return true, nil
}
