package core

import (
	"context"

	"AgentDesk/entity"
	"AgentDesk/internal/analytics"
	"AgentDesk/internal/lib/sl"
	"AgentDesk/internal/query"
	"AgentDesk/internal/service/responder"
	"AgentDesk/internal/tablestore"
)

// SuggestReply drafts an agent reply for one of the tenant's
// conversation threads.
func (c *Core) SuggestReply(ctx context.Context, user *entity.AuthUser, sessionId string) (string, error) {
	if c.responder == nil {
		return "", responder.ErrNotConfigured
	}

	res, err := c.ds.Fetch(ctx, entity.CollectionMessages, tenantFor(user), tablestore.Options{})
	if err != nil {
		return "", err
	}
	thread := analytics.SessionMessages(res.Records, sessionId)
	if len(thread) == 0 {
		return "", ErrNotFound
	}

	return c.responder.SuggestReply(ctx, thread)
}

// SummarizeCall produces a fresh summary for one of the tenant's calls
// and stores it on the record.
func (c *Core) SummarizeCall(ctx context.Context, user *entity.AuthUser, callId string) (string, error) {
	if c.responder == nil {
		return "", responder.ErrNotConfigured
	}

	res, err := c.ds.Fetch(ctx, entity.CollectionCalls, tenantFor(user), tablestore.Options{
		Where: []query.Condition{query.Eq("id", callId)},
	})
	if err != nil {
		return "", err
	}
	if len(res.Records) == 0 {
		return "", ErrNotFound
	}

	details := entity.FieldString(res.Records[0], "details")
	if details == "" {
		details = entity.FieldString(res.Records[0], "summary")
	}

	summary, err := c.responder.SummarizeCall(ctx, details)
	if err != nil {
		return "", err
	}

	if _, err := c.ds.Update(ctx, entity.CollectionCalls, callId, entity.Record{"summary": summary}); err != nil {
		// The summary was produced; failing to persist it should not
		// fail the request.
		c.log.Warn("store call summary failed", sl.Err(err))
	}
	return summary, nil
}
