package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"AgentDesk/entity"
	"AgentDesk/internal/service/auth"
)

func (c *Core) Login(ctx context.Context, clientId, password string) (*auth.Session, error) {
	if c.authService == nil {
		return nil, fmt.Errorf("auth service not configured")
	}
	return c.authService.Login(ctx, clientId, password)
}

func (c *Core) AdminLogin(ctx context.Context, email, password string) (*auth.Session, error) {
	if c.authService == nil {
		return nil, fmt.Errorf("auth service not configured")
	}
	return c.authService.AdminLogin(ctx, email, password)
}

func (c *Core) Logout(token string) {
	if c.authService != nil {
		c.authService.Logout(token)
	}
}

// AuthenticateByToken resolves a bearer token in three steps: dashboard
// session, static service key from config, then Mongo-stored API keys.
// Key-authenticated callers act as service admins.
func (c *Core) AuthenticateByToken(token string) (*entity.AuthUser, error) {
	if c.authService != nil {
		if user, err := c.authService.AuthenticateByToken(token); err == nil {
			return user, nil
		}
	}

	if c.authKey != "" && token == c.authKey {
		return &entity.AuthUser{Name: "service", Admin: true}, nil
	}

	c.mu.Lock()
	for username, key := range c.keys {
		if key == token {
			c.mu.Unlock()
			return &entity.AuthUser{Name: username, Admin: true}, nil
		}
	}
	c.mu.Unlock()

	if c.repo != nil {
		username, err := c.repo.CheckApiKey(token)
		if err == nil && username != "" {
			return &entity.AuthUser{Name: username, Admin: true}, nil
		}
	}

	return nil, fmt.Errorf("token not recognized")
}

// GenerateApiKey mints (or returns) the API key for a service account.
// Without Mongo the key lives in memory for the process lifetime.
func (c *Core) GenerateApiKey(username string) (string, error) {
	if c.repo != nil {
		return c.repo.GenerateApiKey(username)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if key, ok := c.keys[username]; ok {
		return key, nil
	}
	key := uuid.NewString()
	c.keys[username] = key
	return key, nil
}
