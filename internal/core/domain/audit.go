package domain

import "time"

type AuditAction string

const (
	AuditCreate AuditAction = "create"
	AuditUpdate AuditAction = "update"
	AuditDelete AuditAction = "delete"
)

// Audited entity names.
const (
	EntityShop     = "shop"
	EntityEmployee = "employee"
	EntityDocument = "document"
	EntityUser     = "user"
)

// AuditEntry records one successful mutation.
type AuditEntry struct {
	Entity        string      `json:"entity"`
	EntityID      int64       `json:"entity_id"`
	Action        AuditAction `json:"action"`
	ActorID       int64       `json:"actor_id,omitempty"`
	ActorUsername string      `json:"actor_username,omitempty"`
	At            time.Time   `json:"at"`
}

// AuditFilter narrows audit listings.
type AuditFilter struct {
	Entity   string
	EntityID int64
	Limit    int
}
