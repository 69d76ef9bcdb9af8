package core

import (
	"context"

	"AgentDesk/entity"
	"AgentDesk/internal/analytics"
	"AgentDesk/internal/datasource"
	"AgentDesk/internal/tablestore"
)

// SessionList is the grouped conversation table.
type SessionList struct {
	Sessions []entity.Session  `json:"sessions"`
	Source   datasource.Source `json:"source"`
}

// SessionDetail is one thread in chronological order.
type SessionDetail struct {
	SessionId string            `json:"session_id"`
	Messages  []entity.Record   `json:"messages"`
	Source    datasource.Source `json:"source"`
}

func (c *Core) ListSessions(ctx context.Context, user *entity.AuthUser, days int) (*SessionList, error) {
	res, err := c.ds.Fetch(ctx, entity.CollectionMessages, tenantFor(user), rangeOptions(days))
	if err != nil {
		return nil, err
	}
	return &SessionList{
		Sessions: analytics.SessionGroups(res.Records),
		Source:   res.Source,
	}, nil
}

func (c *Core) GetSessionDetail(ctx context.Context, user *entity.AuthUser, sessionId string) (*SessionDetail, error) {
	res, err := c.ds.Fetch(ctx, entity.CollectionMessages, tenantFor(user), tablestore.Options{})
	if err != nil {
		return nil, err
	}

	messages := analytics.SessionMessages(res.Records, sessionId)
	if len(messages) == 0 {
		return nil, ErrNotFound
	}
	return &SessionDetail{
		SessionId: sessionId,
		Messages:  messages,
		Source:    res.Source,
	}, nil
}
