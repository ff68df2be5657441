package service

import (
	"context"
	"strings"

	"github.com/Kevin6098/roomi-sub001/internal/auth"
	"github.com/Kevin6098/roomi-sub001/internal/config"
	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/internal/repository"
	"github.com/Kevin6098/roomi-sub001/pkg/apierror"
)

// UserService manages operator accounts. All of its operations sit behind
// the owner gate.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// UserCreateInput describes a new operator account.
type UserCreateInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// UserUpdateInput describes an account update. A nil Password leaves the
// hash untouched.
type UserUpdateInput struct {
	Name     string
	Email    string
	Password *string
	Role     domain.Role
}

// NewUserService constructs the service.
func NewUserService(cfg config.AuthConfig, users repository.UserRepository) *UserService {
	return &UserService{users: users, bcryptCost: cfg.BcryptCost}
}

// List returns all operator accounts.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Get returns a single account.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// Create hashes the password and stores the account.
func (s *UserService) Create(ctx context.Context, input UserCreateInput) (*domain.User, error) {
	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		Role:         input.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apierror.NewConflict("email already registered")
		}
		return nil, err
	}
	return user, nil
}

// Update modifies an account, rehashing the password only when a new one
// is supplied.
func (s *UserService) Update(ctx context.Context, id string, input UserUpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = input.Name
	user.Email = strings.ToLower(strings.TrimSpace(input.Email))
	user.Role = input.Role
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apierror.NewConflict("email already registered")
		}
		return nil, err
	}
	return user, nil
}

// Delete removes an account. An owner cannot delete their own account.
func (s *UserService) Delete(ctx context.Context, actor *domain.Identity, id string) error {
	if actor != nil && actor.ID == id {
		return apierror.NewConflict("cannot delete your own account")
	}
	return s.users.Delete(ctx, id)
}
