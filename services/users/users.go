package users

import (
	"context"
	"errors"
	"fmt"

	userRepo "weddingplanner/database/repository/users"
	"weddingplanner/models"
	"weddingplanner/utils"
)

// UserService defines business logic for account profiles and roles.
type UserService interface {
	// Register creates the user once per email. A second registration for
	// the same email is acknowledged without mutating the existing account.
	Register(ctx context.Context, user models.User) (*models.InsertResult, error)
	List(ctx context.Context) ([]models.User, error)
	// GetRole resolves the role for an email, defaulting to "user" when
	// the email matches no account.
	GetRole(ctx context.Context, email string) (string, error)
	UpdateRole(ctx context.Context, id string, role string) (*models.UpdateResult, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Register(ctx context.Context, user models.User) (*models.InsertResult, error) {
	if user.Email == "" {
		return nil, fmt.Errorf("%w: email is required", utils.ErrInvalidInput)
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	res, err := s.Repo.Insert(ctx, user)
	if err != nil {
		// The unique email index reports the duplicate; the existing
		// account is left untouched.
		if errors.Is(err, utils.ErrConflict) {
			return &models.InsertResult{Acknowledged: true}, nil
		}
		return nil, err
	}
	return res, nil
}

func (s *DefaultUserService) List(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultUserService) GetRole(ctx context.Context, email string) (string, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || user.Role == "" {
		return models.RoleUser, nil
	}
	return user.Role, nil
}

func (s *DefaultUserService) UpdateRole(ctx context.Context, id string, role string) (*models.UpdateResult, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	if role != models.RoleAdmin && role != models.RoleUser {
		return nil, fmt.Errorf("%w: unknown role %q", utils.ErrInvalidInput, role)
	}
	return s.Repo.UpdateRole(ctx, oid, role)
}

func (s *DefaultUserService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.Repo.Delete(ctx, oid)
}
