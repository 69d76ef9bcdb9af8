package records

import (
	"context"

	"AgentDesk/entity"
	"AgentDesk/internal/datasource"
	"AgentDesk/internal/tablestore"
)

type Core interface {
	ListRecords(ctx context.Context, collection string, user *entity.AuthUser, opts tablestore.Options) (datasource.FetchResult, error)
	CreateRecord(ctx context.Context, collection string, user *entity.AuthUser, record entity.Record) (datasource.RecordResult, error)
	UpdateRecord(ctx context.Context, collection, id string, user *entity.AuthUser, fields entity.Record) (datasource.RecordResult, error)
	DeleteRecord(ctx context.Context, collection, id string, user *entity.AuthUser) (datasource.DeleteResult, error)
}
