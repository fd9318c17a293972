package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shoprecords/records-api/internal/core/domain"
	"github.com/shoprecords/records-api/internal/core/ports"
)

type UserService struct {
	repo  ports.UserRepository
	trail trail
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, audit ports.AuditRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, trail: newTrail(audit, nil, log), log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.NewValidationError("username, password and name are required")
	}
	if err := domain.CheckPassword(in.Password); err != nil {
		return nil, err
	}
	role, err := domain.NormalizeRole(in.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		Email:        in.Email,
	}
	res, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.trail.record(ctx, domain.EntityUser, res.InsertedID, domain.AuditCreate)
	s.log.Info().Int64("user_id", res.InsertedID).Str("role", role).Msg("user created")

	return s.repo.FindByID(ctx, res.InsertedID)
}

// Update changes name, role and email. Username and password change only
// when supplied; a new password is re-hashed. The reserved admin keeps its
// username and the admin role.
func (s *UserService) Update(ctx context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.NewValidationError("name is required")
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(in.Username)
	role := strings.TrimSpace(in.Role)
	if current.IsReservedAdmin() {
		if username != "" && username != domain.ReservedAdminUsername {
			return nil, domain.ErrPinnedAccount
		}
		if role != "" && role != domain.RoleAdmin {
			return nil, domain.ErrPinnedAccount
		}
		role = domain.RoleAdmin
	}
	role, err = domain.NormalizeRole(role)
	if err != nil {
		return nil, err
	}

	changes := ports.UserChanges{Name: in.Name, Role: role, Email: in.Email}
	if username != "" {
		changes.Username = &username
	}
	if in.Password != "" {
		if err := domain.CheckPassword(in.Password); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		h := string(hash)
		changes.PasswordHash = &h
	}

	res, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}

	s.trail.record(ctx, domain.EntityUser, id, domain.AuditUpdate)
	return s.repo.FindByID(ctx, id)
}

// Delete removes user id. The reserved admin account is refused whoever
// asks.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.IsReservedAdmin() {
		return domain.ErrProtectedAccount
	}

	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}

	s.trail.record(ctx, domain.EntityUser, id, domain.AuditDelete)
	return nil
}

// EnsureReservedAdmin creates the reserved admin account when it is
// missing. An existing account is left untouched, password included.
func (s *UserService) EnsureReservedAdmin(ctx context.Context, password string) error {
	_, err := s.repo.FindByUsername(ctx, domain.ReservedAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("look up reserved admin: %w", err)
	}
	if password == "" {
		s.log.Warn().Msg("reserved admin account missing and ADMIN_PASSWORD unset; skipping bootstrap")
		return nil
	}

	_, err = s.Create(ctx, ports.CreateUserInput{
		Username: domain.ReservedAdminUsername,
		Password: password,
		Name:     "Administrator",
		Role:     domain.RoleAdmin,
	})
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	return err
}
