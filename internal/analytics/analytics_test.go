package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AgentDesk/entity"
)

func TestDailyCountsExcludesUndatedRecords(t *testing.T) {
	records := []entity.Record{
		{"id": "1", "created_date": "2024-01-01T10:00:00Z"},
		{"id": "2", "created_date": "2024-01-01T18:00:00Z"},
		{"id": "3", "timestamp": "02-01-2024 09:00"},
		{"id": "4", "note": "no date at all"},
		{"id": "5", "created_date": "not a date"},
	}

	counts := DailyCounts(records)

	require.Len(t, counts, 2)
	assert.Equal(t, DailyCount{Date: "2024-01-01", Count: 2}, counts[0])
	assert.Equal(t, DailyCount{Date: "2024-01-02", Count: 1}, counts[1])
}

func TestDailyCountsEmpty(t *testing.T) {
	assert.Empty(t, DailyCounts(nil))
}

func TestSessionGroups(t *testing.T) {
	messages := []entity.Record{
		{"session_id": "a", "timestamp": "01-01-2024 10:00", "channel": "web"},
		{"session_id": "a", "timestamp": "01-01-2024 10:05", "channel": "web"},
		{"session_id": "b", "timestamp": "02-01-2024 09:00", "channel": "whatsapp"},
	}

	groups := SessionGroups(messages)

	require.Len(t, groups, 2)
	// b has the later latest timestamp, so it comes first.
	assert.Equal(t, "b", groups[0].SessionId)
	assert.Equal(t, "a", groups[1].SessionId)
	assert.Equal(t, 2, groups[1].MessageCount)
	assert.Equal(t, "01-01-2024 10:05", groups[1].LatestAt)
	assert.Equal(t, "web", groups[1].Channel)
}

func TestSessionGroupsIgnoresBlankSessionIds(t *testing.T) {
	messages := []entity.Record{
		{"session_id": "", "timestamp": "01-01-2024 10:00"},
		{"session_id": "a", "timestamp": "01-01-2024 10:00"},
	}

	groups := SessionGroups(messages)
	require.Len(t, groups, 1)
	assert.Equal(t, "a", groups[0].SessionId)
}

func TestSessionMessagesChronological(t *testing.T) {
	messages := []entity.Record{
		{"session_id": "a", "timestamp": "01-01-2024 10:05", "user_message": "second"},
		{"session_id": "b", "timestamp": "01-01-2024 09:00", "user_message": "other thread"},
		{"session_id": "a", "timestamp": "01-01-2024 10:00", "user_message": "first"},
	}

	thread := SessionMessages(messages, "a")

	require.Len(t, thread, 2)
	assert.Equal(t, "first", entity.FieldString(thread[0], "user_message"))
	assert.Equal(t, "second", entity.FieldString(thread[1], "user_message"))
}

func TestOutstandingAmount(t *testing.T) {
	invoices := []entity.Record{
		{"amount": 100.0, "status": "Paid"},
		{"amount": 50.0, "status": "Pending"},
		{"amount": 25.0, "status": "Overdue"},
	}

	assert.InDelta(t, 75.0, OutstandingAmount(invoices), 0.001)
}

func TestOutstandingAmountLegacyCasingCountsAsUnpaid(t *testing.T) {
	invoices := []entity.Record{
		{"amount": 100.0, "status": "completed"},
		{"amount": 10.0, "status": "paid"},
	}

	// Only the exact "Paid" string is recognized as settled.
	assert.InDelta(t, 110.0, OutstandingAmount(invoices), 0.001)
}

func TestOutstandingAmountCoercesAmounts(t *testing.T) {
	invoices := []entity.Record{
		{"amount": "40.5", "status": "Pending"},
		{"amount": "not a number", "status": "Pending"},
		{"amount": 9, "status": "Pending"},
	}

	assert.InDelta(t, 49.5, OutstandingAmount(invoices), 0.001)
}

func TestUniqueSessionCount(t *testing.T) {
	messages := []entity.Record{
		{"session_id": "a"},
		{"session_id": "a"},
		{"session_id": "b"},
		{"session_id": ""},
	}

	assert.Equal(t, 2, UniqueSessionCount(messages))
}

func TestCountByField(t *testing.T) {
	records := []entity.Record{
		{"channel": "web"},
		{"channel": "web"},
		{"channel": "whatsapp"},
		{"channel": ""},
	}

	counts := CountByField(records, "channel")

	require.Len(t, counts, 2)
	assert.Equal(t, CategoryCount{Label: "web", Count: 2}, counts[0])
	assert.Equal(t, CategoryCount{Label: "whatsapp", Count: 1}, counts[1])
}

func TestOfferStatusCountsZeroFilled(t *testing.T) {
	offers := []entity.Record{
		{"status": "Accepted"},
		{"status": "Accepted"},
		{"status": "bogus"},
	}

	counts := OfferStatusCounts(offers)

	require.Len(t, counts, 3)
	assert.Equal(t, CategoryCount{Label: "Pending", Count: 0}, counts[0])
	assert.Equal(t, CategoryCount{Label: "Accepted", Count: 2}, counts[1])
	assert.Equal(t, CategoryCount{Label: "Rejected", Count: 0}, counts[2])
}

func TestDailyDurations(t *testing.T) {
	calls := []entity.Record{
		{"date": "2024-01-01", "duration_minutes": 7.0},
		{"date": "2024-01-01", "duration_minutes": "3"},
		{"date": "2024-01-02", "duration_minutes": "broken"},
		{"no_date": true, "duration_minutes": 99.0},
	}

	series := DailyDurations(calls)

	require.Len(t, series, 2)
	assert.InDelta(t, 10.0, series[0].Minutes, 0.001)
	assert.InDelta(t, 0.0, series[1].Minutes, 0.001)
}
