package reviews

import (
	"context"

	reviewRepo "weddingplanner/database/repository/reviews"
	"weddingplanner/models"
	"weddingplanner/utils"
)

// ReviewService defines business logic for client reviews.
type ReviewService interface {
	Create(ctx context.Context, review models.Review) (*models.InsertResult, error)
	List(ctx context.Context) ([]models.Review, error)
	ListPinned(ctx context.Context) ([]models.Review, error)
	SetPinned(ctx context.Context, id string, pinned bool) (*models.UpdateResult, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo reviewRepo.ReviewRepository
}

func (s *DefaultReviewService) Create(ctx context.Context, review models.Review) (*models.InsertResult, error) {
	// New reviews never start pinned; an admin pins them later.
	review.IsPinned = false
	return s.Repo.Insert(ctx, review)
}

func (s *DefaultReviewService) List(ctx context.Context) ([]models.Review, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultReviewService) ListPinned(ctx context.Context) ([]models.Review, error) {
	return s.Repo.GetPinned(ctx)
}

func (s *DefaultReviewService) SetPinned(ctx context.Context, id string, pinned bool) (*models.UpdateResult, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.Repo.SetPinned(ctx, oid, pinned)
}

func (s *DefaultReviewService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.Repo.Delete(ctx, oid)
}
