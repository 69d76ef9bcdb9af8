package cont

import (
	"context"

	"AgentDesk/entity"
)

type contextKey string

const userKey contextKey = "auth-user"

// PutUser attaches the authenticated principal to the request context.
func PutUser(ctx context.Context, user *entity.AuthUser) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser returns the authenticated principal, nil when absent.
func GetUser(ctx context.Context) *entity.AuthUser {
	user, ok := ctx.Value(userKey).(*entity.AuthUser)
	if !ok {
		return nil
	}
	return user
}
