package reviewRepo

import (
	"context"

	"weddingplanner/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewRepository is the data-access contract for client reviews.
type ReviewRepository interface {
	Insert(ctx context.Context, review models.Review) (*models.InsertResult, error)
	GetAll(ctx context.Context) ([]models.Review, error)
	GetPinned(ctx context.Context) ([]models.Review, error)
	SetPinned(ctx context.Context, id primitive.ObjectID, pinned bool) (*models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
}
