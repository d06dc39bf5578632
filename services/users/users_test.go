package users

import (
	"context"
	"fmt"
	"testing"

	"weddingplanner/models"
	"weddingplanner/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockUserRepository struct {
	insertFunc     func(ctx context.Context, user models.User) (*models.InsertResult, error)
	getByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	updateRoleFunc func(ctx context.Context, id primitive.ObjectID, role string) (*models.UpdateResult, error)
	deleteFunc     func(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

func (m *mockUserRepository) Insert(ctx context.Context, user models.User) (*models.InsertResult, error) {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, user)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*models.UpdateResult, error) {
	if m.updateRoleFunc != nil {
		return m.updateRoleFunc(ctx, id, role)
	}
	return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return &models.DeleteResult{DeletedCount: 1}, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func TestRegister_NewUser(t *testing.T) {
	var inserted models.User
	repo := &mockUserRepository{
		insertFunc: func(ctx context.Context, user models.User) (*models.InsertResult, error) {
			inserted = user
			return &models.InsertResult{Acknowledged: true, InsertedID: primitive.NewObjectID()}, nil
		},
	}
	svc := &DefaultUserService{Repo: repo}

	res, err := svc.Register(context.Background(), models.User{Email: "bride@example.com", Name: "Bride"})

	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.NotNil(t, res.InsertedID)
	assert.Equal(t, models.RoleUser, inserted.Role, "role should default to user")
}

func TestRegister_DuplicateEmailIsAcknowledged(t *testing.T) {
	repo := &mockUserRepository{
		insertFunc: func(ctx context.Context, user models.User) (*models.InsertResult, error) {
			return nil, fmt.Errorf("user with email %s already exists: %w", user.Email, utils.ErrConflict)
		},
	}
	svc := &DefaultUserService{Repo: repo}

	res, err := svc.Register(context.Background(), models.User{Email: "bride@example.com"})

	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.Nil(t, res.InsertedID, "no new document for a duplicate registration")
}

func TestRegister_MissingEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: &mockUserRepository{}}

	_, err := svc.Register(context.Background(), models.User{Name: "No Email"})

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGetRole_UnknownEmailDefaultsToUser(t *testing.T) {
	svc := &DefaultUserService{Repo: &mockUserRepository{}}

	role, err := svc.GetRole(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)
}

func TestGetRole_Admin(t *testing.T) {
	repo := &mockUserRepository{
		getByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{Email: email, Role: models.RoleAdmin}, nil
		},
	}
	svc := &DefaultUserService{Repo: repo}

	role, err := svc.GetRole(context.Background(), "boss@example.com")

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestUpdateRole_RejectsUnknownRole(t *testing.T) {
	svc := &DefaultUserService{Repo: &mockUserRepository{}}

	_, err := svc.UpdateRole(context.Background(), primitive.NewObjectID().Hex(), "superuser")

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestUpdateRole_InvalidIDShortCircuits(t *testing.T) {
	called := false
	repo := &mockUserRepository{
		updateRoleFunc: func(ctx context.Context, id primitive.ObjectID, role string) (*models.UpdateResult, error) {
			called = true
			return nil, nil
		},
	}
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.UpdateRole(context.Background(), "undefined", models.RoleAdmin)

	assert.ErrorIs(t, err, utils.ErrInvalidID)
	assert.False(t, called, "invalid id must never reach the store")
}
