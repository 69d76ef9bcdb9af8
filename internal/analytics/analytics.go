// Package analytics holds the pure data shaping behind the dashboard
// tabs: daily activity series, conversation grouping, billing totals and
// categorical chart counts. Everything operates on already-fetched
// records and never touches a store.
package analytics

import (
	"sort"
	"time"

	"AgentDesk/entity"
	"AgentDesk/internal/lib/dates"
)

// DailyCount is one point of a per-day activity series.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DailyCounts groups records by calendar day and counts them, ascending
// by date. Records without a parseable date field are excluded from every
// bucket rather than failing the series.
func DailyCounts(records []entity.Record) []DailyCount {
	buckets := make(map[string]int)
	for _, r := range records {
		t, ok := dates.Parse(entity.FieldDate(r))
		if !ok {
			continue
		}
		buckets[dates.Day(t)]++
	}
	out := make([]DailyCount, 0, len(buckets))
	for day, count := range buckets {
		out = append(out, DailyCount{Date: day, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// DailyDuration is one point of the per-day call minutes series.
type DailyDuration struct {
	Date    string  `json:"date"`
	Minutes float64 `json:"minutes"`
}

// DailyDurations groups calls by day and sums duration_minutes.
// Non-numeric durations count as zero.
func DailyDurations(calls []entity.Record) []DailyDuration {
	buckets := make(map[string]float64)
	for _, r := range calls {
		t, ok := dates.Parse(entity.FieldDate(r))
		if !ok {
			continue
		}
		buckets[dates.Day(t)] += entity.FieldNumber(r, "duration_minutes")
	}
	out := make([]DailyDuration, 0, len(buckets))
	for day, minutes := range buckets {
		out = append(out, DailyDuration{Date: day, Minutes: minutes})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// OutstandingAmount sums invoice amounts over every invoice whose status
// is not exactly "Paid". Legacy lowercase spellings such as "completed"
// deliberately count as outstanding until the status model is settled
// (see entity.NormalizeInvoiceStatus).
func OutstandingAmount(invoices []entity.Record) float64 {
	var total float64
	for _, r := range invoices {
		if entity.FieldString(r, "status") == entity.InvoicePaid {
			continue
		}
		total += entity.FieldNumber(r, "amount")
	}
	return total
}

// UniqueSessionCount counts distinct session_id values.
func UniqueSessionCount(messages []entity.Record) int {
	seen := make(map[string]struct{})
	for _, r := range messages {
		if id := entity.FieldString(r, "session_id"); id != "" {
			seen[id] = struct{}{}
		}
	}
	return len(seen)
}

// CategoryCount is one slice of a categorical chart (channel, interest).
type CategoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CountByField builds a frequency table over a field, descending by count
// with label order as tie-breaker so chart series are stable.
func CountByField(records []entity.Record, field string) []CategoryCount {
	counts := make(map[string]int)
	for _, r := range records {
		if v := entity.FieldString(r, field); v != "" {
			counts[v]++
		}
	}
	out := make([]CategoryCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, CategoryCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// OfferStatusCounts counts offers per status, zero-filled over the three
// known statuses in their canonical order.
func OfferStatusCounts(offers []entity.Record) []CategoryCount {
	counts := make(map[string]int, len(entity.OfferStatuses))
	for _, status := range entity.OfferStatuses {
		counts[status] = 0
	}
	for _, r := range offers {
		status := entity.FieldString(r, "status")
		if _, known := counts[status]; known {
			counts[status]++
		}
	}
	out := make([]CategoryCount, 0, len(entity.OfferStatuses))
	for _, status := range entity.OfferStatuses {
		out = append(out, CategoryCount{Label: status, Count: counts[status]})
	}
	return out
}

type sessionGroup struct {
	session entity.Session
	latest  time.Time
}

// SessionGroups folds messages into conversation threads by session_id:
// message count, the channel of the first message seen, and the maximum
// parsed timestamp as "latest". Groups are sorted most-recent first.
func SessionGroups(messages []entity.Record) []entity.Session {
	groups := make(map[string]*sessionGroup)
	order := make([]string, 0)

	for _, r := range messages {
		id := entity.FieldString(r, "session_id")
		if id == "" {
			continue
		}
		g, ok := groups[id]
		if !ok {
			g = &sessionGroup{session: entity.Session{
				SessionId: id,
				Channel:   entity.FieldString(r, "channel"),
			}}
			groups[id] = g
			order = append(order, id)
		}
		g.session.MessageCount++
		if t, ok := dates.Parse(entity.FieldString(r, "timestamp")); ok && t.After(g.latest) {
			g.latest = t
			g.session.LatestAt = dates.FormatDisplay(t)
		}
	}

	out := make([]*sessionGroup, 0, len(groups))
	for _, id := range order {
		out = append(out, groups[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].latest.After(out[j].latest) })

	sessions := make([]entity.Session, 0, len(out))
	for _, g := range out {
		sessions = append(sessions, g.session)
	}
	return sessions
}

// SessionMessages returns one thread's messages in chronological order.
// Messages without a parseable timestamp keep their fetch order at the
// front.
func SessionMessages(messages []entity.Record, sessionID string) []entity.Record {
	out := make([]entity.Record, 0)
	for _, r := range messages {
		if entity.FieldString(r, "session_id") == sessionID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := dates.Parse(entity.FieldString(out[i], "timestamp"))
		tj, _ := dates.Parse(entity.FieldString(out[j], "timestamp"))
		return ti.Before(tj)
	})
	return out
}
