package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shoprecords/records-api/internal/core/domain"
	"github.com/shoprecords/records-api/internal/core/ports"
)

type DocumentService struct {
	documents ports.DocumentRepository
	shops     ports.ShopRepository
	employees ports.EmployeeRepository
	trail     trail
	log       zerolog.Logger
	now       func() time.Time
}

func NewDocumentService(
	documents ports.DocumentRepository,
	shops ports.ShopRepository,
	employees ports.EmployeeRepository,
	audit ports.AuditRepository,
	idem ports.IdempotencyStore,
	log zerolog.Logger,
) *DocumentService {
	return &DocumentService{
		documents: documents,
		shops:     shops,
		employees: employees,
		trail:     newTrail(audit, idem, log),
		log:       log,
		now:       time.Now,
	}
}

func (s *DocumentService) List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error) {
	return s.documents.List(ctx, filter)
}

func (s *DocumentService) Get(ctx context.Context, id int64) (*domain.Document, error) {
	return s.documents.FindByID(ctx, id)
}

func (s *DocumentService) ListTypes(ctx context.Context) ([]domain.DocumentType, error) {
	return s.documents.ListTypes(ctx)
}

func (s *DocumentService) Create(ctx context.Context, in ports.DocumentInput) (*domain.Document, error) {
	if id, ok := s.trail.replayed(ctx, domain.EntityDocument, in.IdempotencyKey); ok {
		if existing, err := s.documents.FindByID(ctx, id); err == nil {
			s.log.Info().Str("idempotency_key", in.IdempotencyKey).Int64("document_id", id).Msg("idempotent replay")
			return existing, nil
		}
	}

	d := documentFromInput(in)
	if err := s.check(ctx, d); err != nil {
		return nil, err
	}

	res, err := s.documents.Create(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	s.trail.remember(ctx, domain.EntityDocument, in.IdempotencyKey, res.InsertedID)
	s.trail.record(ctx, domain.EntityDocument, res.InsertedID, domain.AuditCreate)
	s.log.Info().
		Int64("document_id", res.InsertedID).
		Int64("shop_id", d.ShopID).
		Str("document_type", d.DocumentType).
		Msg("document created")

	return s.documents.FindByID(ctx, res.InsertedID)
}

func (s *DocumentService) Update(ctx context.Context, id int64, in ports.DocumentInput) (*domain.Document, error) {
	d := documentFromInput(in)
	if err := s.check(ctx, d); err != nil {
		return nil, err
	}
	d.ID = id

	res, err := s.documents.Update(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrDocumentNotFound
	}

	s.trail.record(ctx, domain.EntityDocument, id, domain.AuditUpdate)
	return s.documents.FindByID(ctx, id)
}

// Delete removes document id. Nothing references documents, so there is no
// guard.
func (s *DocumentService) Delete(ctx context.Context, id int64) error {
	res, err := s.documents.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if res.RowsAffected == 0 {
		return domain.ErrDocumentNotFound
	}

	s.trail.record(ctx, domain.EntityDocument, id, domain.AuditDelete)
	return nil
}

// StatsSummary counts documents by status and expiry, optionally for a
// single shop (shopID 0 = all).
func (s *DocumentService) StatsSummary(ctx context.Context, shopID int64) (*domain.DocumentStats, error) {
	states, err := s.documents.States(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("document stats: %w", err)
	}
	stats := domain.SummarizeDocuments(states, domain.NewDate(s.now()))
	return &stats, nil
}

// check validates required fields, then the shop reference, then that the
// employee (if any) belongs to that same shop.
func (s *DocumentService) check(ctx context.Context, d *domain.Document) error {
	if err := d.Validate(); err != nil {
		return err
	}

	ok, err := s.shops.Exists(ctx, d.ShopID)
	if err != nil {
		return fmt.Errorf("check shop %d: %w", d.ShopID, err)
	}
	if !ok {
		return domain.ErrShopReference
	}

	if d.EmployeeID == nil {
		return nil
	}
	ok, err = s.employees.ExistsInShop(ctx, *d.EmployeeID, d.ShopID)
	if err != nil {
		return fmt.Errorf("check employee %d: %w", *d.EmployeeID, err)
	}
	if !ok {
		return domain.ErrEmployeeReference
	}
	return nil
}

func documentFromInput(in ports.DocumentInput) *domain.Document {
	return &domain.Document{
		ShopID:         in.ShopID,
		EmployeeID:     in.EmployeeID,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		Title:          in.Title,
		Description:    in.Description,
		IssueDate:      in.IssueDate,
		ExpiryDate:     in.ExpiryDate,
		Status:         in.Status,
		FileData:       in.FileData,
		FileName:       in.FileName,
		FileType:       in.FileType,
		Notes:          in.Notes,
	}
}
