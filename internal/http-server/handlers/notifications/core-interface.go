package notifications

import (
	"context"

	"AgentDesk/entity"
	"AgentDesk/internal/datasource"
)

type Core interface {
	ListNotifications(ctx context.Context, user *entity.AuthUser, unreadOnly bool) (datasource.FetchResult, error)
	MarkNotificationRead(ctx context.Context, user *entity.AuthUser, id string) (datasource.RecordResult, error)
}
