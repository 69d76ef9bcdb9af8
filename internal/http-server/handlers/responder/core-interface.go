package responder

import (
	"context"

	"AgentDesk/entity"
)

type Core interface {
	SuggestReply(ctx context.Context, user *entity.AuthUser, sessionId string) (string, error)
	SummarizeCall(ctx context.Context, user *entity.AuthUser, callId string) (string, error)
}
