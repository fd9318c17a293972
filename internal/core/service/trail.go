package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shoprecords/records-api/internal/core/domain"
	"github.com/shoprecords/records-api/internal/core/ports"
)

type nopAudit struct{}

func (nopAudit) Record(context.Context, domain.AuditEntry) error { return nil }

func (nopAudit) List(context.Context, domain.AuditFilter) ([]domain.AuditEntry, error) {
	return []domain.AuditEntry{}, nil
}

type nopIdempotency struct{}

func (nopIdempotency) Lookup(context.Context, string, string) (int64, bool, error) {
	return 0, false, nil
}

func (nopIdempotency) Remember(context.Context, string, string, int64) error { return nil }

// trail records audit entries and idempotency keys around a mutation.
// Neither store is authoritative: failures are logged and the mutation
// stands.
type trail struct {
	audit ports.AuditRepository
	idem  ports.IdempotencyStore
	log   zerolog.Logger
	now   func() time.Time
}

func newTrail(audit ports.AuditRepository, idem ports.IdempotencyStore, log zerolog.Logger) trail {
	if audit == nil {
		audit = nopAudit{}
	}
	if idem == nil {
		idem = nopIdempotency{}
	}
	return trail{audit: audit, idem: idem, log: log, now: time.Now}
}

func (t trail) record(ctx context.Context, entity string, id int64, action domain.AuditAction) {
	entry := domain.AuditEntry{
		Entity:   entity,
		EntityID: id,
		Action:   action,
		At:       t.now().UTC(),
	}
	if who, ok := domain.IdentityFrom(ctx); ok {
		entry.ActorID = who.ID
		entry.ActorUsername = who.Username
	}
	if err := t.audit.Record(ctx, entry); err != nil {
		t.log.Warn().Err(err).Str("entity", entity).Int64("id", id).Msg("failed to write audit entry")
	}
}

// replayed returns the id a previous create stored under key.
func (t trail) replayed(ctx context.Context, entity, key string) (int64, bool) {
	if key == "" {
		return 0, false
	}
	id, found, err := t.idem.Lookup(ctx, entity, key)
	if err != nil {
		t.log.Warn().Err(err).Str("entity", entity).Msg("idempotency lookup failed, creating anyway")
		return 0, false
	}
	return id, found
}

func (t trail) remember(ctx context.Context, entity, key string, id int64) {
	if key == "" {
		return
	}
	if err := t.idem.Remember(ctx, entity, key, id); err != nil {
		t.log.Warn().Err(err).Str("entity", entity).Int64("id", id).Msg("failed to store idempotency key")
	}
}
