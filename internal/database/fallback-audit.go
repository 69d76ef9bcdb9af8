package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"AgentDesk/internal/lib/sl"
)

// FallbackEvent is one recorded fallback decision: the datasource served
// mock data because the remote store failed.
type FallbackEvent struct {
	Collection string    `bson:"collection" json:"collection"`
	Operation  string    `bson:"operation" json:"operation"`
	Cause      string    `bson:"cause" json:"cause"`
	At         time.Time `bson:"at" json:"at"`
}

// RecordFallback persists a fallback event. Implements the datasource
// Auditor; failures only log, an audit outage must not break serving.
func (m *MongoDB) RecordFallback(_ context.Context, collection, operation string, cause error) {
	connection, err := m.connect()
	if err != nil {
		m.log.Error("record fallback", sl.Err(err))
		return
	}
	defer m.disconnect(connection)

	coll := connection.Database(m.database).Collection(fallbackAuditCollection)
	_, err = coll.InsertOne(m.ctx, FallbackEvent{
		Collection: collection,
		Operation:  operation,
		Cause:      cause.Error(),
		At:         time.Now(),
	})
	if err != nil {
		m.log.Error("record fallback", sl.Err(fmt.Errorf("mongodb insert error: %w", err)))
	}
}

// RecentFallbacks lists the newest audit entries for the admin panel.
func (m *MongoDB) RecentFallbacks(limit int64) ([]FallbackEvent, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	coll := connection.Database(m.database).Collection(fallbackAuditCollection)
	opts := options.Find().
		SetSort(bson.D{{Key: "at", Value: -1}}).
		SetLimit(limit)

	cursor, err := coll.Find(m.ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb find error: %w", err)
	}
	defer cursor.Close(m.ctx)

	var events []FallbackEvent
	if err := cursor.All(m.ctx, &events); err != nil {
		return nil, fmt.Errorf("mongodb cursor error: %w", err)
	}
	return events, nil
}
