package mongo

import (
	"testing"

	"github.com/shoprecords/records-api/internal/core/domain"
)

func TestAuditQuery(t *testing.T) {
	if q := auditQuery(domain.AuditFilter{}); len(q) != 0 {
		t.Fatalf("expected empty filter, got %v", q)
	}

	q := auditQuery(domain.AuditFilter{Entity: domain.EntityShop, EntityID: 4, Limit: 10})
	if q["entity"] != domain.EntityShop || q["entity_id"] != int64(4) {
		t.Fatalf("unexpected filter: %v", q)
	}
	if _, ok := q["limit"]; ok {
		t.Fatalf("limit belongs to find options, not the filter")
	}
}
