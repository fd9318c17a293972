package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shoprecords/records-api/internal/core/domain"
	"github.com/shoprecords/records-api/internal/core/ports"
)

type ShopService struct {
	shops     ports.ShopRepository
	employees ports.EmployeeRepository
	documents ports.DocumentRepository
	trail     trail
	log       zerolog.Logger
}

func NewShopService(
	shops ports.ShopRepository,
	employees ports.EmployeeRepository,
	documents ports.DocumentRepository,
	audit ports.AuditRepository,
	idem ports.IdempotencyStore,
	log zerolog.Logger,
) *ShopService {
	return &ShopService{
		shops:     shops,
		employees: employees,
		documents: documents,
		trail:     newTrail(audit, idem, log),
		log:       log,
	}
}

func (s *ShopService) List(ctx context.Context) ([]domain.Shop, error) {
	return s.shops.List(ctx)
}

func (s *ShopService) Get(ctx context.Context, id int64) (*domain.Shop, error) {
	return s.shops.FindByID(ctx, id)
}

// Create inserts a shop. A repeated idempotency key returns the shop the
// first request created.
func (s *ShopService) Create(ctx context.Context, in ports.ShopInput) (*domain.Shop, error) {
	if id, ok := s.trail.replayed(ctx, domain.EntityShop, in.IdempotencyKey); ok {
		if existing, err := s.shops.FindByID(ctx, id); err == nil {
			s.log.Info().Str("idempotency_key", in.IdempotencyKey).Int64("shop_id", id).Msg("idempotent replay")
			return existing, nil
		}
	}

	shop := shopFromInput(in)
	if err := shop.Validate(); err != nil {
		return nil, err
	}

	res, err := s.shops.Create(ctx, shop)
	if err != nil {
		return nil, fmt.Errorf("create shop: %w", err)
	}

	s.trail.remember(ctx, domain.EntityShop, in.IdempotencyKey, res.InsertedID)
	s.trail.record(ctx, domain.EntityShop, res.InsertedID, domain.AuditCreate)
	s.log.Info().Int64("shop_id", res.InsertedID).Msg("shop created")

	return s.shops.FindByID(ctx, res.InsertedID)
}

// Update replaces every writable field of shop id.
func (s *ShopService) Update(ctx context.Context, id int64, in ports.ShopInput) (*domain.Shop, error) {
	shop := shopFromInput(in)
	if err := shop.Validate(); err != nil {
		return nil, err
	}
	shop.ID = id

	res, err := s.shops.Update(ctx, shop)
	if err != nil {
		return nil, fmt.Errorf("update shop: %w", err)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrShopNotFound
	}

	s.trail.record(ctx, domain.EntityShop, id, domain.AuditUpdate)
	return s.shops.FindByID(ctx, id)
}

// Delete removes shop id. Employees are checked before documents and the
// first blocking reference wins.
func (s *ShopService) Delete(ctx context.Context, id int64) error {
	n, err := s.employees.CountByShop(ctx, id)
	if err != nil {
		return fmt.Errorf("delete shop: count employees: %w", err)
	}
	if n > 0 {
		return domain.ErrShopHasEmployees
	}

	n, err = s.documents.CountByShop(ctx, id)
	if err != nil {
		return fmt.Errorf("delete shop: count documents: %w", err)
	}
	if n > 0 {
		return domain.ErrShopHasDocuments
	}

	res, err := s.shops.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete shop: %w", err)
	}
	if res.RowsAffected == 0 {
		return domain.ErrShopNotFound
	}

	s.trail.record(ctx, domain.EntityShop, id, domain.AuditDelete)
	return nil
}

func shopFromInput(in ports.ShopInput) *domain.Shop {
	return &domain.Shop{
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
		Email:   in.Email,
	}
}
