package auth

import (
	"context"

	"AgentDesk/internal/service/auth"
)

type Core interface {
	Login(ctx context.Context, clientId, password string) (*auth.Session, error)
	AdminLogin(ctx context.Context, email, password string) (*auth.Session, error)
	Logout(token string)
}
