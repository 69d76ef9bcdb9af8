// Package datasource wraps the remote table-store gateway with the mock
// fallback. Unlike the silent catch-and-substitute it replaces, every
// result is tagged with the source that produced it, so callers, logs and
// tests can tell live data from demo data.
package datasource

import (
	"context"
	"log/slog"

	"AgentDesk/entity"
	"AgentDesk/internal/lib/sl"
	"AgentDesk/internal/mockstore"
	"AgentDesk/internal/tablestore"
)

// Source tags which store produced a result.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Auditor records fallback decisions for later inspection. Optional.
type Auditor interface {
	RecordFallback(ctx context.Context, collection, operation string, cause error)
}

// FetchResult is a list response plus its source tag.
type FetchResult struct {
	Records []entity.Record `json:"records"`
	Source  Source          `json:"source"`
}

// RecordResult is a single-record response plus its source tag.
type RecordResult struct {
	Record entity.Record `json:"record"`
	Source Source        `json:"source"`
}

// DeleteResult reports a delete outcome plus its source tag.
type DeleteResult struct {
	Deleted bool   `json:"deleted"`
	Source  Source `json:"source"`
}

type DataSource struct {
	remote    *tablestore.Store
	mock      *mockstore.Store
	forceMock bool
	auditor   Auditor
	log       *slog.Logger
}

// New wires the wrapper. forceMock pins every operation to the mock store
// regardless of remote health (demo mode).
func New(remote *tablestore.Store, mock *mockstore.Store, forceMock bool, log *slog.Logger) *DataSource {
	return &DataSource{
		remote:    remote,
		mock:      mock,
		forceMock: forceMock,
		log:       log.With(sl.Module("datasource")),
	}
}

// SetAuditor attaches an optional fallback auditor.
func (d *DataSource) SetAuditor(a Auditor) {
	d.auditor = a
}

func (d *DataSource) fellBack(ctx context.Context, collection, operation string, cause error) {
	d.log.With(
		slog.String("collection", collection),
		slog.String("operation", operation),
		sl.Err(cause),
	).Warn("remote store failed, serving fallback data")
	if d.auditor != nil {
		d.auditor.RecordFallback(ctx, collection, operation, cause)
	}
}

// Fetch lists records, remote first. There is deliberately no retry or
// backoff: a single failure switches this call to the fallback store.
func (d *DataSource) Fetch(ctx context.Context, collection, tenantID string, opts tablestore.Options) (FetchResult, error) {
	if !d.forceMock {
		records, err := d.remote.Fetch(ctx, collection, tenantID, opts)
		if err == nil {
			return FetchResult{Records: records, Source: SourceLive}, nil
		}
		d.fellBack(ctx, collection, "fetch", err)
	}

	records, err := d.mock.Fetch(collection, tenantID, opts)
	if err != nil {
		return FetchResult{}, err
	}
	return FetchResult{Records: records, Source: SourceFallback}, nil
}

func (d *DataSource) Create(ctx context.Context, collection string, record entity.Record) (RecordResult, error) {
	if !d.forceMock {
		created, err := d.remote.Create(ctx, collection, record)
		if err == nil {
			return RecordResult{Record: created, Source: SourceLive}, nil
		}
		d.fellBack(ctx, collection, "create", err)
	}

	created, err := d.mock.Create(collection, record)
	if err != nil {
		return RecordResult{}, err
	}
	return RecordResult{Record: created, Source: SourceFallback}, nil
}

// Update patches a record. A nil Record in the result means the id was
// not found.
func (d *DataSource) Update(ctx context.Context, collection, id string, fields entity.Record) (RecordResult, error) {
	if !d.forceMock {
		updated, err := d.remote.Update(ctx, collection, id, fields)
		if err == nil {
			return RecordResult{Record: updated, Source: SourceLive}, nil
		}
		d.fellBack(ctx, collection, "update", err)
	}

	updated, err := d.mock.Update(collection, id, fields)
	if err != nil {
		return RecordResult{}, err
	}
	return RecordResult{Record: updated, Source: SourceFallback}, nil
}

func (d *DataSource) Delete(ctx context.Context, collection, id string) (DeleteResult, error) {
	if !d.forceMock {
		deleted, err := d.remote.Delete(ctx, collection, id)
		if err == nil {
			return DeleteResult{Deleted: deleted, Source: SourceLive}, nil
		}
		d.fellBack(ctx, collection, "delete", err)
	}

	deleted, err := d.mock.Delete(collection, id)
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{Deleted: deleted, Source: SourceFallback}, nil
}
