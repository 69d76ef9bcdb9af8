package tablestore

import (
	"context"
	"net/http"
	"net/url"

	"AgentDesk/entity"
	"AgentDesk/internal/query"
)

// Options narrows a Fetch: extra filter conditions and an inclusive
// day-level date range.
type Options struct {
	Where     []query.Condition
	StartDate string
	EndDate   string
}

// Fetch lists records from a collection. When tenantID is non-empty an
// equality predicate on client_id is appended to the filter expression so
// tenants never see each other's rows.
func (s *Store) Fetch(ctx context.Context, collection, tenantID string, opts Options) ([]entity.Record, error) {
	conds := make([]query.Condition, 0, len(opts.Where)+1)
	if tenantID != "" {
		conds = append(conds, query.Eq("client_id", tenantID))
	}
	conds = append(conds, opts.Where...)

	params := url.Values{}
	if where := query.Encode(conds); where != "" {
		params.Set("where", where)
	}
	if opts.StartDate != "" && opts.EndDate != "" {
		params.Set("startDate", opts.StartDate)
		params.Set("endDate", opts.EndDate)
	}

	fullURL, err := s.recordsURL(collection, params)
	if err != nil {
		return nil, err
	}

	var result struct {
		List []entity.Record `json:"list"`
	}
	if err := s.do(ctx, http.MethodGet, fullURL, nil, &result); err != nil {
		return nil, err
	}
	return result.List, nil
}
