package core

import (
	"context"
	"fmt"

	"AgentDesk/entity"
	"AgentDesk/internal/datasource"
	"AgentDesk/internal/query"
	"AgentDesk/internal/service/auth"
	"AgentDesk/internal/tablestore"
)

// collectionAllowed rejects unknown collections up front and keeps the
// admins table away from tenant principals.
func collectionAllowed(collection string, user *entity.AuthUser) error {
	if !entity.KnownCollection(collection) {
		return fmt.Errorf("%w: %s", tablestore.ErrUnknownCollection, collection)
	}
	if collection == entity.CollectionAdmins && !user.Admin {
		return ErrForbidden
	}
	return nil
}

// ListRecords fetches a collection for a principal. Tenant principals are
// always pinned to their own client id, whatever the request asked for.
func (c *Core) ListRecords(ctx context.Context, collection string, user *entity.AuthUser, opts tablestore.Options) (datasource.FetchResult, error) {
	if err := collectionAllowed(collection, user); err != nil {
		return datasource.FetchResult{}, err
	}
	return c.ds.Fetch(ctx, collection, tenantFor(user), opts)
}

// CreateRecord inserts a record. For tenant principals the record's
// client_id is forced to their own. Plaintext "password" fields on user
// and admin records are hashed and never stored as sent.
func (c *Core) CreateRecord(ctx context.Context, collection string, user *entity.AuthUser, record entity.Record) (datasource.RecordResult, error) {
	if err := collectionAllowed(collection, user); err != nil {
		return datasource.RecordResult{}, err
	}

	if !user.Admin {
		record["client_id"] = user.ClientId
	}

	if collection == entity.CollectionUsers || collection == entity.CollectionAdmins {
		if password := entity.FieldString(record, "password"); password != "" {
			hash, err := auth.HashPassword(password)
			if err != nil {
				return datasource.RecordResult{}, err
			}
			delete(record, "password")
			record["password_hash"] = hash
		}
	}

	return c.ds.Create(ctx, collection, record)
}

// UpdateRecord patches a record by id after verifying the principal owns
// it. Ownership is checked with a tenant-scoped fetch; admins skip the
// check.
func (c *Core) UpdateRecord(ctx context.Context, collection, id string, user *entity.AuthUser, fields entity.Record) (datasource.RecordResult, error) {
	if err := collectionAllowed(collection, user); err != nil {
		return datasource.RecordResult{}, err
	}
	if err := c.checkOwnership(ctx, collection, id, user); err != nil {
		return datasource.RecordResult{}, err
	}

	// client_id is immutable through this surface.
	delete(fields, "client_id")
	delete(fields, "id")

	res, err := c.ds.Update(ctx, collection, id, fields)
	if err != nil {
		return datasource.RecordResult{}, err
	}
	if res.Record == nil {
		return datasource.RecordResult{}, ErrNotFound
	}
	return res, nil
}

// DeleteRecord removes a record by id, with the same ownership check as
// UpdateRecord.
func (c *Core) DeleteRecord(ctx context.Context, collection, id string, user *entity.AuthUser) (datasource.DeleteResult, error) {
	if err := collectionAllowed(collection, user); err != nil {
		return datasource.DeleteResult{}, err
	}
	if err := c.checkOwnership(ctx, collection, id, user); err != nil {
		return datasource.DeleteResult{}, err
	}

	res, err := c.ds.Delete(ctx, collection, id)
	if err != nil {
		return datasource.DeleteResult{}, err
	}
	if !res.Deleted {
		return datasource.DeleteResult{}, ErrNotFound
	}
	return res, nil
}

func (c *Core) checkOwnership(ctx context.Context, collection, id string, user *entity.AuthUser) error {
	if user.Admin {
		return nil
	}
	res, err := c.ds.Fetch(ctx, collection, user.ClientId, tablestore.Options{
		Where: []query.Condition{query.Eq("id", id)},
	})
	if err != nil {
		return err
	}
	if len(res.Records) == 0 {
		return ErrNotFound
	}
	return nil
}
