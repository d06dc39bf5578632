package premium

import (
	"context"
	"fmt"
	"strings"
	"time"

	premiumRepo "weddingplanner/database/repository/premium"
	"weddingplanner/models"
	"weddingplanner/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
)

// PremiumService defines business logic for biodata profiles and the
// unlock-premium workflow.
type PremiumService interface {
	CreateBiodata(ctx context.Context, doc bson.M) (*models.InsertResult, error)
	// ListBiodata returns every profile with its read-time premiumCount.
	ListBiodata(ctx context.Context) ([]bson.M, error)
	GetBiodata(ctx context.Context, id string) (bson.M, error)
	UpsertBiodata(ctx context.Context, id string, fields bson.M) (*models.UpdateResult, error)
	DeleteBiodata(ctx context.Context, id string) (*models.DeleteResult, error)

	// Unlock records that the user paid to view a profile. Unlocking the
	// same profile twice is a conflict.
	Unlock(ctx context.Context, req models.UnlockRequest) (*models.InsertResult, error)
	UnlocksForEmail(ctx context.Context, email string) ([]models.UnlockRecord, error)
	AllUnlocks(ctx context.Context) ([]models.UnlockRecord, error)
	DeleteUnlock(ctx context.Context, id string) (*models.DeleteResult, error)
}

// DefaultPremiumService is the production implementation.
type DefaultPremiumService struct {
	Biodata  premiumRepo.BiodataRepository
	Unlocks  premiumRepo.UnlockRepository
	Validate *validator.Validate
}

var defaultValidate = validator.New()

// validate must not write s.Validate: handlers call Unlock concurrently.
func (s *DefaultPremiumService) validate() *validator.Validate {
	if s.Validate != nil {
		return s.Validate
	}
	return defaultValidate
}

func (s *DefaultPremiumService) CreateBiodata(ctx context.Context, doc bson.M) (*models.InsertResult, error) {
	if doc == nil {
		doc = bson.M{}
	}
	doc["createdAt"] = time.Now()
	return s.Biodata.Insert(ctx, doc)
}

func (s *DefaultPremiumService) ListBiodata(ctx context.Context) ([]bson.M, error) {
	return s.Biodata.GetAll(ctx)
}

func (s *DefaultPremiumService) GetBiodata(ctx context.Context, id string) (bson.M, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.Biodata.GetByID(ctx, oid)
}

func (s *DefaultPremiumService) UpsertBiodata(ctx context.Context, id string, fields bson.M) (*models.UpdateResult, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty update", utils.ErrInvalidInput)
	}
	return s.Biodata.Upsert(ctx, oid, fields)
}

func (s *DefaultPremiumService) DeleteBiodata(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.Biodata.Delete(ctx, oid)
}

// Unlock validates the caller's identity, normalizes the email, and inserts
// the unlock record. The sentinel strings "undefined" and "null" mean the
// frontend had no signed-in user, so they map to unauthorized rather than
// bad input.
func (s *DefaultPremiumService) Unlock(ctx context.Context, req models.UnlockRequest) (*models.InsertResult, error) {
	email := strings.TrimSpace(req.UserEmail)
	if email == "undefined" || email == "null" {
		return nil, fmt.Errorf("%w: no signed-in user", utils.ErrUnauthorized)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: userEmail %q is not a valid email", utils.ErrInvalidInput, email)
	}
	if err := s.validate().Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	rec := models.UnlockRecord{
		UserEmail:      strings.ToLower(email),
		BiodataID:      req.BiodataID,
		BiodataName:    req.BiodataName,
		BiodataImage:   req.BiodataImage,
		BiodataAddress: req.BiodataAddress,
		UnlockDate:     time.Now(),
		Status:         models.UnlockStatusUnlocked,
	}
	return s.Unlocks.Insert(ctx, rec)
}

func (s *DefaultPremiumService) UnlocksForEmail(ctx context.Context, email string) ([]models.UnlockRecord, error) {
	return s.Unlocks.GetByEmail(ctx, strings.ToLower(email))
}

func (s *DefaultPremiumService) AllUnlocks(ctx context.Context) ([]models.UnlockRecord, error) {
	return s.Unlocks.GetAll(ctx)
}

func (s *DefaultPremiumService) DeleteUnlock(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.Unlocks.Delete(ctx, oid)
}
