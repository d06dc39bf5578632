package carts

import (
	"context"
	"fmt"

	cartRepo "weddingplanner/database/repository/carts"
	"weddingplanner/models"
	"weddingplanner/utils"

	"github.com/go-playground/validator/v10"
)

// CartService defines business logic for per-email carts.
type CartService interface {
	// Save upserts the cart for req.Email: created on first write, replaced
	// wholesale afterwards.
	Save(ctx context.Context, req models.CartRequest) (*models.UpdateResult, error)
	// Get returns the cart for the email, or an empty cart shape when none
	// exists.
	Get(ctx context.Context, email string) (*models.Cart, error)
}

// DefaultCartService is the production implementation.
type DefaultCartService struct {
	Repo     cartRepo.CartRepository
	Validate *validator.Validate
}

var defaultValidate = validator.New()

// validate must not write s.Validate: handlers call Save concurrently.
func (s *DefaultCartService) validate() *validator.Validate {
	if s.Validate != nil {
		return s.Validate
	}
	return defaultValidate
}

func (s *DefaultCartService) Save(ctx context.Context, req models.CartRequest) (*models.UpdateResult, error) {
	if err := s.validate().Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}
	items := req.CartItems
	if items == nil {
		items = []map[string]any{}
	}
	return s.Repo.Upsert(ctx, req.Email, items)
}

func (s *DefaultCartService) Get(ctx context.Context, email string) (*models.Cart, error) {
	cart, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		// A missing cart is an empty cart, not a 404.
		return &models.Cart{Email: email, CartItems: []map[string]any{}}, nil
	}
	if cart.CartItems == nil {
		cart.CartItems = []map[string]any{}
	}
	return cart, nil
}
