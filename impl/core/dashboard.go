package core

import (
	"context"

	"AgentDesk/entity"
	"AgentDesk/internal/analytics"
	"AgentDesk/internal/datasource"
	"AgentDesk/internal/lib/dates"
	"AgentDesk/internal/tablestore"
)

// Overview is the headline card set of the dashboard's first tab.
type Overview struct {
	MessageCount      int                       `json:"message_count"`
	UniqueSessions    int                       `json:"unique_sessions"`
	CallCount         int                       `json:"call_count"`
	CallMinutes       float64                   `json:"call_minutes"`
	LeadCount         int                       `json:"lead_count"`
	OutstandingAmount float64                   `json:"outstanding_amount"`
	OfferStatuses     []analytics.CategoryCount `json:"offer_statuses"`
	Source            datasource.Source         `json:"source"`
}

// rangeOptions turns a trailing-days window into fetch options. Zero or
// negative days means no range filter.
func rangeOptions(days int) tablestore.Options {
	if days <= 0 {
		return tablestore.Options{}
	}
	return tablestore.Options{
		StartDate: dates.DaysAgo(days),
		EndDate:   dates.DaysAgo(0),
	}
}

// worstSource keeps the overview honest: if any of the underlying
// fetches fell back to mock data, the whole overview is tagged fallback.
func worstSource(sources ...datasource.Source) datasource.Source {
	for _, s := range sources {
		if s == datasource.SourceFallback {
			return datasource.SourceFallback
		}
	}
	return datasource.SourceLive
}

// DashboardOverview aggregates the headline numbers for one tenant over
// a trailing window of days.
func (c *Core) DashboardOverview(ctx context.Context, user *entity.AuthUser, days int) (*Overview, error) {
	tenant := tenantFor(user)
	opts := rangeOptions(days)

	messages, err := c.ds.Fetch(ctx, entity.CollectionMessages, tenant, opts)
	if err != nil {
		return nil, err
	}
	calls, err := c.ds.Fetch(ctx, entity.CollectionCalls, tenant, opts)
	if err != nil {
		return nil, err
	}
	leads, err := c.ds.Fetch(ctx, entity.CollectionLeads, tenant, opts)
	if err != nil {
		return nil, err
	}
	// Billing totals ignore the date window: an old unpaid invoice is
	// still outstanding.
	invoices, err := c.ds.Fetch(ctx, entity.CollectionInvoices, tenant, tablestore.Options{})
	if err != nil {
		return nil, err
	}
	offers, err := c.ds.Fetch(ctx, entity.CollectionOffers, tenant, tablestore.Options{})
	if err != nil {
		return nil, err
	}

	var minutes float64
	for _, d := range analytics.DailyDurations(calls.Records) {
		minutes += d.Minutes
	}

	return &Overview{
		MessageCount:      len(messages.Records),
		UniqueSessions:    analytics.UniqueSessionCount(messages.Records),
		CallCount:         len(calls.Records),
		CallMinutes:       minutes,
		LeadCount:         len(leads.Records),
		OutstandingAmount: analytics.OutstandingAmount(invoices.Records),
		OfferStatuses:     analytics.OfferStatusCounts(offers.Records),
		Source: worstSource(messages.Source, calls.Source, leads.Source,
			invoices.Source, offers.Source),
	}, nil
}

// Series is a tagged analytics response for one chart.
type Series[T any] struct {
	Points []T               `json:"points"`
	Source datasource.Source `json:"source"`
}

func (c *Core) DailyMessageCounts(ctx context.Context, user *entity.AuthUser, days int) (*Series[analytics.DailyCount], error) {
	res, err := c.ds.Fetch(ctx, entity.CollectionMessages, tenantFor(user), rangeOptions(days))
	if err != nil {
		return nil, err
	}
	return &Series[analytics.DailyCount]{
		Points: analytics.DailyCounts(res.Records),
		Source: res.Source,
	}, nil
}

func (c *Core) DailyCallDurations(ctx context.Context, user *entity.AuthUser, days int) (*Series[analytics.DailyDuration], error) {
	res, err := c.ds.Fetch(ctx, entity.CollectionCalls, tenantFor(user), rangeOptions(days))
	if err != nil {
		return nil, err
	}
	return &Series[analytics.DailyDuration]{
		Points: analytics.DailyDurations(res.Records),
		Source: res.Source,
	}, nil
}

func (c *Core) ChannelCounts(ctx context.Context, user *entity.AuthUser, days int) (*Series[analytics.CategoryCount], error) {
	res, err := c.ds.Fetch(ctx, entity.CollectionMessages, tenantFor(user), rangeOptions(days))
	if err != nil {
		return nil, err
	}
	return &Series[analytics.CategoryCount]{
		Points: analytics.CountByField(res.Records, "channel"),
		Source: res.Source,
	}, nil
}

func (c *Core) LeadInterestCounts(ctx context.Context, user *entity.AuthUser, days int) (*Series[analytics.CategoryCount], error) {
	res, err := c.ds.Fetch(ctx, entity.CollectionLeads, tenantFor(user), rangeOptions(days))
	if err != nil {
		return nil, err
	}
	return &Series[analytics.CategoryCount]{
		Points: analytics.CountByField(res.Records, "interest"),
		Source: res.Source,
	}, nil
}

func (c *Core) OfferStatusBreakdown(ctx context.Context, user *entity.AuthUser) (*Series[analytics.CategoryCount], error) {
	res, err := c.ds.Fetch(ctx, entity.CollectionOffers, tenantFor(user), tablestore.Options{})
	if err != nil {
		return nil, err
	}
	return &Series[analytics.CategoryCount]{
		Points: analytics.OfferStatusCounts(res.Records),
		Source: res.Source,
	}, nil
}
