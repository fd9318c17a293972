package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shoprecords/records-api/internal/core/domain"
)

const auditCollection = "audit_log"

// AuditRepository implements ports.AuditRepository on an append-only
// collection.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEntry struct {
	Entity        string    `bson:"entity"`
	EntityID      int64     `bson:"entity_id"`
	Action        string    `bson:"action"`
	ActorID       int64     `bson:"actor_id,omitempty"`
	ActorUsername string    `bson:"actor_username,omitempty"`
	At            time.Time `bson:"at"`
}

// EnsureIndexes creates the lookup index used by List.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "entity", Value: 1}, {Key: "entity_id", Value: 1}, {Key: "at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create audit index: %w", err)
	}
	return nil
}

func (r *AuditRepository) Record(ctx context.Context, entry domain.AuditEntry) error {
	doc := mongoAuditEntry{
		Entity:        entry.Entity,
		EntityID:      entry.EntityID,
		Action:        string(entry.Action),
		ActorID:       entry.ActorID,
		ActorUsername: entry.ActorUsername,
		At:            entry.At.UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// List returns matching entries newest first.
func (r *AuditRepository) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "at", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cur, err := r.coll.Find(ctx, auditQuery(f), opts)
	if err != nil {
		return nil, fmt.Errorf("find audit entries: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoAuditEntry
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode audit entries: %w", err)
	}

	entries := make([]domain.AuditEntry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, domain.AuditEntry{
			Entity:        d.Entity,
			EntityID:      d.EntityID,
			Action:        domain.AuditAction(d.Action),
			ActorID:       d.ActorID,
			ActorUsername: d.ActorUsername,
			At:            d.At,
		})
	}
	return entries, nil
}

func auditQuery(f domain.AuditFilter) bson.M {
	q := bson.M{}
	if f.Entity != "" {
		q["entity"] = f.Entity
	}
	if f.EntityID != 0 {
		q["entity_id"] = f.EntityID
	}
	return q
}
