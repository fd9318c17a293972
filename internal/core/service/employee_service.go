package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shoprecords/records-api/internal/core/domain"
	"github.com/shoprecords/records-api/internal/core/ports"
)

type EmployeeService struct {
	employees ports.EmployeeRepository
	shops     ports.ShopRepository
	documents ports.DocumentRepository
	trail     trail
	log       zerolog.Logger
}

func NewEmployeeService(
	employees ports.EmployeeRepository,
	shops ports.ShopRepository,
	documents ports.DocumentRepository,
	audit ports.AuditRepository,
	idem ports.IdempotencyStore,
	log zerolog.Logger,
) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		shops:     shops,
		documents: documents,
		trail:     newTrail(audit, idem, log),
		log:       log,
	}
}

func (s *EmployeeService) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	return s.employees.List(ctx, filter)
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.employees.FindByID(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	if id, ok := s.trail.replayed(ctx, domain.EntityEmployee, in.IdempotencyKey); ok {
		if existing, err := s.employees.FindByID(ctx, id); err == nil {
			s.log.Info().Str("idempotency_key", in.IdempotencyKey).Int64("employee_id", id).Msg("idempotent replay")
			return existing, nil
		}
	}

	e := employeeFromInput(in)
	if err := s.check(ctx, e); err != nil {
		return nil, err
	}

	res, err := s.employees.Create(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}

	s.trail.remember(ctx, domain.EntityEmployee, in.IdempotencyKey, res.InsertedID)
	s.trail.record(ctx, domain.EntityEmployee, res.InsertedID, domain.AuditCreate)
	s.log.Info().Int64("employee_id", res.InsertedID).Int64("shop_id", e.ShopID).Msg("employee created")

	return s.employees.FindByID(ctx, res.InsertedID)
}

// Update replaces every writable field of employee id, status included.
func (s *EmployeeService) Update(ctx context.Context, id int64, in ports.EmployeeInput) (*domain.Employee, error) {
	e := employeeFromInput(in)
	if err := s.check(ctx, e); err != nil {
		return nil, err
	}
	e.ID = id

	res, err := s.employees.Update(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrEmployeeNotFound
	}

	s.trail.record(ctx, domain.EntityEmployee, id, domain.AuditUpdate)
	return s.employees.FindByID(ctx, id)
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	n, err := s.documents.CountByEmployee(ctx, id)
	if err != nil {
		return fmt.Errorf("delete employee: count documents: %w", err)
	}
	if n > 0 {
		return domain.ErrEmployeeHasDocuments
	}

	res, err := s.employees.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}

	s.trail.record(ctx, domain.EntityEmployee, id, domain.AuditDelete)
	return nil
}

// check validates required fields, then the shop reference.
func (s *EmployeeService) check(ctx context.Context, e *domain.Employee) error {
	if err := e.Validate(); err != nil {
		return err
	}
	ok, err := s.shops.Exists(ctx, e.ShopID)
	if err != nil {
		return fmt.Errorf("check shop %d: %w", e.ShopID, err)
	}
	if !ok {
		return domain.ErrShopReference
	}
	return nil
}

func employeeFromInput(in ports.EmployeeInput) *domain.Employee {
	return &domain.Employee{
		ShopID:   in.ShopID,
		Name:     in.Name,
		Position: in.Position,
		Phone:    in.Phone,
		Email:    in.Email,
		IDNumber: in.IDNumber,
		HireDate: in.HireDate,
		Status:   in.Status,
	}
}
