package mockstore

import (
	"time"

	"AgentDesk/entity"
	"AgentDesk/internal/lib/dates"
)

// Demo tenants the seed data belongs to.
const (
	SeedClientOne = "client_001"
	SeedClientTwo = "client_002"
)

// Seed fills the store with demo rows timestamped relative to now, so the
// dashboard ranges ("last 7 days", "last 30 days") always have content.
func (s *Store) Seed(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	iso := func(d time.Duration) string { return dates.FormatISO(now.Add(-d)) }
	day := func(n int) string { return dates.FormatISO(now.AddDate(0, 0, -n)) }

	s.data[entity.CollectionUsers] = []entity.Record{
		{"id": "use_demo00001", "name": "Marta Jensen", "email": "marta@northwind.example",
			"password_hash": "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
			"company_name":  "Northwind Consulting", "client_id": SeedClientOne, "created_date": day(90)},
		{"id": "use_demo00002", "name": "Theo Brandt", "email": "theo@acme.example",
			"password_hash": "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
			"company_name":  "Acme Logistics", "client_id": SeedClientTwo, "created_date": day(45)},
	}

	s.data[entity.CollectionMessages] = []entity.Record{
		{"id": "mes_demo00001", "client_id": SeedClientOne, "session_id": "sess_a1",
			"timestamp": iso(2 * time.Hour), "channel": "web",
			"user_message": "What are your opening hours?", "ai_response": "We are available 24/7 through this assistant."},
		{"id": "mes_demo00002", "client_id": SeedClientOne, "session_id": "sess_a1",
			"timestamp": iso(110 * time.Minute), "channel": "web",
			"user_message": "Can I book a call?", "ai_response": "Of course, I can schedule one for you."},
		{"id": "mes_demo00003", "client_id": SeedClientOne, "session_id": "sess_b2",
			"timestamp": day(1), "channel": "whatsapp",
			"user_message": "Do you ship to Norway?", "ai_response": "Yes, shipping to Norway takes 3-5 days."},
		{"id": "mes_demo00004", "client_id": SeedClientOne, "session_id": "sess_c3",
			"timestamp": day(3), "channel": "phone",
			"user_message": "I'd like a quote for 200 units.", "ai_response": "I've noted your request and a proposal will follow."},
		{"id": "mes_demo00005", "client_id": SeedClientTwo, "session_id": "sess_z9",
			"timestamp": day(2), "channel": "web",
			"user_message": "Where is my invoice?", "ai_response": "Your latest invoice is available in the billing tab."},
	}

	s.data[entity.CollectionCalls] = []entity.Record{
		{"id": "cal_demo00001", "client_id": SeedClientOne, "date": day(1),
			"duration": 420.0, "duration_minutes": 7.0,
			"summary": "Demo walkthrough of the dashboard", "details": "Prospect asked about channel reports and lead exports.",
			"audio_url": "https://cdn.agentdesk.example/audio/cal_demo00001.mp3"},
		{"id": "cal_demo00002", "client_id": SeedClientOne, "date": day(4),
			"duration": 960.0, "duration_minutes": 16.0,
			"summary": "Follow-up on proposal", "details": "Discussed payment terms and onboarding.",
			"audio_url": "https://cdn.agentdesk.example/audio/cal_demo00002.mp3"},
		{"id": "cal_demo00003", "client_id": SeedClientTwo, "date": day(6),
			"duration": 300.0, "duration_minutes": 5.0,
			"summary": "Support call", "details": "Resolved webhook configuration issue.",
			"audio_url": ""},
	}

	s.data[entity.CollectionLeads] = []entity.Record{
		{"id": "lea_demo00001", "client_id": SeedClientOne, "name": "Ingrid Olsen",
			"email": "ingrid@fjordware.example", "phone": "+47 555 0101",
			"interest": "Pricing", "timestamp": day(2)},
		{"id": "lea_demo00002", "client_id": SeedClientOne, "name": "Pavel Novak",
			"email": "pavel@cz-retail.example", "phone": "+420 555 0102",
			"interest": "Integration", "timestamp": day(5)},
		{"id": "lea_demo00003", "client_id": SeedClientTwo, "name": "Sofia Marin",
			"email": "sofia@marin.example", "phone": "+34 555 0103",
			"interest": "Pricing", "timestamp": day(1)},
	}

	s.data[entity.CollectionOffers] = []entity.Record{
		{"id": "off_demo00001", "client_id": SeedClientOne, "title": "Starter plan, annual",
			"amount": 1200.0, "status": entity.OfferPending, "sent_at": day(3),
			"offer_url": "https://docs.agentdesk.example/offers/off_demo00001", "payment_link": ""},
		{"id": "off_demo00002", "client_id": SeedClientOne, "title": "Custom voice agent",
			"amount": 4800.0, "status": entity.OfferAccepted, "sent_at": day(12),
			"offer_url": "https://docs.agentdesk.example/offers/off_demo00002",
			"payment_link": "https://pay.agentdesk.example/off_demo00002"},
		{"id": "off_demo00003", "client_id": SeedClientTwo, "title": "Pilot project",
			"amount": 900.0, "status": entity.OfferRejected, "sent_at": day(20),
			"offer_url": "https://docs.agentdesk.example/offers/off_demo00003", "payment_link": ""},
	}

	s.data[entity.CollectionInvoices] = []entity.Record{
		{"id": "inv_demo00001", "client_id": SeedClientOne, "invoice_number": "2025-0012",
			"amount": 1200.0, "status": entity.InvoicePaid,
			"invoice_url": "https://docs.agentdesk.example/invoices/2025-0012", "issued_at": day(30)},
		{"id": "inv_demo00002", "client_id": SeedClientOne, "invoice_number": "2025-0019",
			"amount": 480.0, "status": entity.InvoicePending,
			"invoice_url": "https://docs.agentdesk.example/invoices/2025-0019", "issued_at": day(10)},
		{"id": "inv_demo00003", "client_id": SeedClientOne, "invoice_number": "2025-0007",
			"amount": 250.0, "status": entity.InvoiceOverdue,
			"invoice_url": "https://docs.agentdesk.example/invoices/2025-0007", "issued_at": day(60)},
		// Legacy row imported from the old billing system; lowercase status
		// is preserved on purpose (see entity.NormalizeInvoiceStatus).
		{"id": "inv_demo00004", "client_id": SeedClientTwo, "invoice_number": "2024-0088",
			"amount": 310.0, "status": "completed",
			"invoice_url": "https://docs.agentdesk.example/invoices/2024-0088", "issued_at": day(120)},
	}

	s.data[entity.CollectionPayments] = []entity.Record{
		{"id": "pay_demo00001", "client_id": SeedClientOne, "invoice_id": "inv_demo00001",
			"amount": 1200.0, "status": "completed", "payment_date": day(25), "method": "card"},
		{"id": "pay_demo00002", "client_id": SeedClientTwo, "invoice_id": "inv_demo00004",
			"amount": 310.0, "status": "completed", "payment_date": day(118), "method": "bank_transfer"},
	}

	s.data[entity.CollectionNotifications] = []entity.Record{
		{"id": "not_demo00001", "client_id": SeedClientOne, "type": "lead",
			"title": "New lead captured", "description": "Ingrid Olsen asked about pricing.",
			"status": entity.NotificationUnread, "created_date": iso(3 * time.Hour),
			"link": "/leads/lea_demo00001", "priority": "high", "source_id": "lea_demo00001"},
		{"id": "not_demo00002", "client_id": SeedClientOne, "type": "invoice",
			"title": "Invoice overdue", "description": "Invoice 2025-0007 passed its due date.",
			"status": entity.NotificationRead, "created_date": day(2),
			"link": "/invoices/inv_demo00003", "priority": "normal", "source_id": "inv_demo00003"},
		{"id": "not_demo00003", "client_id": SeedClientTwo, "type": "offer",
			"title": "Offer rejected", "description": "Pilot project was declined.",
			"status": entity.NotificationUnread, "created_date": day(1),
			"link": "/offers/off_demo00003", "priority": "normal", "source_id": "off_demo00003"},
	}

	s.data[entity.CollectionAdmins] = []entity.Record{
		{"id": "adm_demo00001", "name": "Ops Admin", "email": "ops@agentdesk.example",
			"password_hash": "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
			"created_date":  day(365)},
	}

	s.data[entity.CollectionDashboardLogs] = []entity.Record{
		{"id": "das_demo00001", "client_id": SeedClientOne, "date": day(1),
			"message_count": 14, "call_count": 2, "avg_response_time": 1.8},
		{"id": "das_demo00002", "client_id": SeedClientOne, "date": day(2),
			"message_count": 9, "call_count": 1, "avg_response_time": 2.1},
	}
}
