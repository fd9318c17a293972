package service

import (
	"context"

	"github.com/shoprecords/records-api/internal/core/domain"
	"github.com/shoprecords/records-api/internal/core/ports"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

type AuditService struct {
	repo ports.AuditRepository
}

// NewAuditService returns an AuditService. A nil repo yields empty listings.
func NewAuditService(repo ports.AuditRepository) *AuditService {
	if repo == nil {
		repo = nopAudit{}
	}
	return &AuditService{repo: repo}
}

// List returns entries newest first, clamping the limit to [1, 200].
func (s *AuditService) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultAuditLimit
	case filter.Limit > maxAuditLimit:
		filter.Limit = maxAuditLimit
	}
	return s.repo.List(ctx, filter)
}
