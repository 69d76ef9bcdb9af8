package dashboard

import (
	"context"

	"AgentDesk/entity"
	"AgentDesk/impl/core"
	"AgentDesk/internal/analytics"
)

type Core interface {
	DashboardOverview(ctx context.Context, user *entity.AuthUser, days int) (*core.Overview, error)
	DailyMessageCounts(ctx context.Context, user *entity.AuthUser, days int) (*core.Series[analytics.DailyCount], error)
	DailyCallDurations(ctx context.Context, user *entity.AuthUser, days int) (*core.Series[analytics.DailyDuration], error)
	ChannelCounts(ctx context.Context, user *entity.AuthUser, days int) (*core.Series[analytics.CategoryCount], error)
	LeadInterestCounts(ctx context.Context, user *entity.AuthUser, days int) (*core.Series[analytics.CategoryCount], error)
	OfferStatusBreakdown(ctx context.Context, user *entity.AuthUser) (*core.Series[analytics.CategoryCount], error)
}
