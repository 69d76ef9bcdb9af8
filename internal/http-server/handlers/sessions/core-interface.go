package sessions

import (
	"context"

	"AgentDesk/entity"
	"AgentDesk/impl/core"
)

type Core interface {
	ListSessions(ctx context.Context, user *entity.AuthUser, days int) (*core.SessionList, error)
	GetSessionDetail(ctx context.Context, user *entity.AuthUser, sessionId string) (*core.SessionDetail, error)
}
