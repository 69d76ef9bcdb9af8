package entity

import (
	"strconv"
)

// Record is a raw row as the table store returns it. The remote store is
// schemaless, so generic CRUD and the analytics layer work on Record and
// the typed structs are used at the API boundary only.
type Record = map[string]any

// Collection names accepted by the gateway and the mock store.
const (
	CollectionUsers         = "users"
	CollectionMessages      = "messages"
	CollectionCalls         = "calls"
	CollectionLeads         = "leads"
	CollectionOffers        = "offers"
	CollectionInvoices      = "invoices"
	CollectionPayments      = "payments"
	CollectionNotifications = "notifications"
	CollectionAdmins        = "admins"
	CollectionDashboardLogs = "dashboard_logs"
)

// Collections lists every known collection. Admins is the only one not
// carrying a client_id.
var Collections = []string{
	CollectionUsers,
	CollectionMessages,
	CollectionCalls,
	CollectionLeads,
	CollectionOffers,
	CollectionInvoices,
	CollectionPayments,
	CollectionNotifications,
	CollectionAdmins,
	CollectionDashboardLogs,
}

func KnownCollection(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}

// FieldString reads a field as a string, tolerating numeric ids.
func FieldString(r Record, field string) string {
	switch v := r[field].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// FieldNumber reads a field as a number; anything non-numeric counts as 0.
func FieldNumber(r Record, field string) float64 {
	switch v := r[field].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// DateFields is the priority order used when a record's date has to be
// guessed: dashboards mix collections keyed by created_date, timestamp
// or date depending on the entity.
var DateFields = []string{"created_date", "timestamp", "date"}

// FieldDate returns the first present date-like field value, raw.
func FieldDate(r Record) string {
	for _, f := range DateFields {
		if s := FieldString(r, f); s != "" {
			return s
		}
	}
	return ""
}
