package core

import (
	"context"

	"AgentDesk/entity"
	"AgentDesk/internal/datasource"
	"AgentDesk/internal/query"
	"AgentDesk/internal/tablestore"
)

// ListNotifications returns the tenant's notifications, optionally only
// the unread ones.
func (c *Core) ListNotifications(ctx context.Context, user *entity.AuthUser, unreadOnly bool) (datasource.FetchResult, error) {
	opts := tablestore.Options{}
	if unreadOnly {
		opts.Where = []query.Condition{query.Eq("status", entity.NotificationUnread)}
	}
	return c.ds.Fetch(ctx, entity.CollectionNotifications, tenantFor(user), opts)
}

// MarkNotificationRead flips one notification to read, with the usual
// ownership check.
func (c *Core) MarkNotificationRead(ctx context.Context, user *entity.AuthUser, id string) (datasource.RecordResult, error) {
	if err := c.checkOwnership(ctx, entity.CollectionNotifications, id, user); err != nil {
		return datasource.RecordResult{}, err
	}

	res, err := c.ds.Update(ctx, entity.CollectionNotifications, id, entity.Record{
		"status": entity.NotificationRead,
	})
	if err != nil {
		return datasource.RecordResult{}, err
	}
	if res.Record == nil {
		return datasource.RecordResult{}, ErrNotFound
	}
	return res, nil
}
