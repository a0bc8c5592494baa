package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"bustrip-backend/internal/database/models"
	apperrors "bustrip-backend/internal/errors"
	"bustrip-backend/internal/logger"
	"bustrip-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationBootstrapper gives new users their personal organization using
// the repositories of the caller's transaction
type OrganizationBootstrapper interface {
	BootstrapDefaultOrganization(ctx context.Context, repos *repository.Repositories, user *models.AppUser) (*OrganizationResponse, error)
}

// RegisterUserRequest represents a self-registration
type RegisterUserRequest struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	FullName    string `json:"full_name" validate:"required,max=200"`
	PhoneNumber string `json:"phone_number,omitempty" validate:"max=20"`
}

// CreateUserRequest represents the request of a system admin to create a user with any role
type CreateUserRequest struct {
	Email       string            `json:"email" validate:"required,email,max=255"`
	FullName    string            `json:"full_name" validate:"required,max=200"`
	PhoneNumber string            `json:"phone_number,omitempty" validate:"max=20"`
	Role        models.SystemRole `json:"role" validate:"required,oneof=admin user driver"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID                  uuid.UUID             `json:"id"`
	Email               string                `json:"email"`
	FullName            string                `json:"full_name"`
	PhoneNumber         string                `json:"phone_number,omitempty"`
	Role                models.SystemRole     `json:"role"`
	IsActive            bool                  `json:"is_active"`
	DefaultOrganization *OrganizationResponse `json:"default_organization,omitempty"`
	CreatedAt           string                `json:"created_at"`
}

// UserService handles business logic for user accounts
type UserService struct {
	users        repository.UserRepositoryInterface
	tx           repository.TxManager
	bootstrapper OrganizationBootstrapper
	validator    *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepositoryInterface, tx repository.TxManager, bootstrapper OrganizationBootstrapper, validator *validator.Validate) *UserService {
	return &UserService{
		users:        users,
		tx:           tx,
		bootstrapper: bootstrapper,
		validator:    validator,
	}
}

// Register creates a user with the default role and bootstraps their personal
// organization. Both happen in one transaction, a failed bootstrap leaves no user behind.
func (s *UserService) Register(ctx context.Context, req *RegisterUserRequest) (*UserResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	var (
		user *models.AppUser
		org  *OrganizationResponse
	)
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		var err error
		user, err = createUser(repos.Users, req.Email, req.FullName, req.PhoneNumber, models.SystemRoleUser, "self")
		if err != nil {
			return err
		}
		org, err = s.bootstrapper.BootstrapDefaultOrganization(ctx, repos, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("new_user_id", user.ID.String()).Info("user registered")
	resp := toUserResponse(user)
	resp.DefaultOrganization = org
	return resp, nil
}

// CreateUser creates a user with an explicit system role. Only system admins may do this.
func (s *UserService) CreateUser(ctx context.Context, actor Actor, req *CreateUserRequest) (*UserResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.requireSystemAdmin(actor); err != nil {
		return nil, err
	}

	user, err := createUser(s.users, req.Email, req.FullName, req.PhoneNumber, req.Role, actor.audit())
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"new_user_id": user.ID.String(),
		"role":        string(user.Role),
	}).Info("user created")
	return toUserResponse(user), nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserResponse(user), nil
}

// DeleteUser deletes an account that nothing references anymore. Users may
// delete themselves, system admins may delete anyone.
func (s *UserService) DeleteUser(ctx context.Context, actor Actor, id uuid.UUID) error {
	if actor.UserID != id {
		if err := s.requireSystemAdmin(actor); err != nil {
			return err
		}
	}

	if _, err := s.users.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	refs, err := s.users.CountReferences(id)
	if err != nil {
		return fmt.Errorf("failed to count user references: %w", err)
	}
	if len(refs) > 0 {
		labels := make([]string, 0, len(refs))
		for label := range refs {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		return apperrors.NewReferencedEntityError("user", strings.Join(labels, ", "))
	}

	if err := s.users.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	logger.WithContext(ctx).WithField("deleted_user_id", id.String()).Info("user deleted")
	return nil
}

func createUser(users repository.UserRepositoryInterface, email, fullName, phone string, role models.SystemRole, audit string) (*models.AppUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := users.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user by email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	user := &models.AppUser{
		BaseModel:   models.BaseModel{CreatedBy: audit, UpdatedBy: audit},
		Email:       email,
		FullName:    fullName,
		PhoneNumber: phone,
		Role:        role,
		IsActive:    true,
	}
	if err := users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// requireSystemAdmin allows the system actor and users with the admin system role
func (s *UserService) requireSystemAdmin(actor Actor) error {
	return requireSystemAdmin(s.users, actor)
}

func requireSystemAdmin(users repository.UserRepositoryInterface, actor Actor) error {
	if actor.System {
		return nil
	}
	if actor.UserID == uuid.Nil {
		return apperrors.ErrMissingActor
	}

	user, err := users.GetByID(actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMissingActor
		}
		return fmt.Errorf("failed to get acting user: %w", err)
	}
	if user.Role != models.SystemRoleAdmin {
		return fmt.Errorf("%w: system admin role required", apperrors.ErrNotPermitted)
	}
	return nil
}

func toUserResponse(user *models.AppUser) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}
}
