package records

import (
	"encoding/json"
	"fmt"

	"AgentDesk/entity"
	"AgentDesk/internal/lib/validate"
)

// prototypes maps a collection to its typed payload for validation.
var prototypes = map[string]func() any{
	entity.CollectionUsers:         func() any { return &entity.User{} },
	entity.CollectionOffers:        func() any { return &entity.Offer{} },
	entity.CollectionInvoices:      func() any { return &entity.Invoice{} },
	entity.CollectionMessages:      func() any { return &entity.Message{} },
	entity.CollectionCalls:         func() any { return &entity.Call{} },
	entity.CollectionLeads:         func() any { return &entity.Lead{} },
	entity.CollectionPayments:      func() any { return &entity.Payment{} },
	entity.CollectionNotifications: func() any { return &entity.Notification{} },
	entity.CollectionDashboardLogs: func() any { return &entity.DashboardLog{} },
	entity.CollectionAdmins:        func() any { return &entity.Admin{} },
}

// validatePayload checks an incoming record against the collection's
// typed schema. Tenant principals may omit client_id; it gets pinned to
// their own downstream anyway.
func validatePayload(collection string, user *entity.AuthUser, record entity.Record) error {
	proto, ok := prototypes[collection]
	if !ok {
		return nil
	}

	checked := make(entity.Record, len(record)+1)
	for k, v := range record {
		checked[k] = v
	}
	if entity.FieldString(checked, "client_id") == "" && user.ClientId != "" {
		checked["client_id"] = user.ClientId
	}

	raw, err := json.Marshal(checked)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	target := proto()
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("record does not match %s schema: %w", collection, err)
	}
	return validate.Struct(target)
}
