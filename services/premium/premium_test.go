package premium

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"weddingplanner/models"
	"weddingplanner/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockBiodataRepository struct {
	getAllFunc func(ctx context.Context) ([]bson.M, error)
	calls      int
}

func (m *mockBiodataRepository) Insert(ctx context.Context, doc bson.M) (*models.InsertResult, error) {
	m.calls++
	return &models.InsertResult{Acknowledged: true, InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockBiodataRepository) GetAll(ctx context.Context) ([]bson.M, error) {
	m.calls++
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockBiodataRepository) GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	m.calls++
	return bson.M{"_id": id}, nil
}

func (m *mockBiodataRepository) Upsert(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error) {
	m.calls++
	return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockBiodataRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	m.calls++
	return &models.DeleteResult{DeletedCount: 1}, nil
}

type mockUnlockRepository struct {
	insertFunc func(ctx context.Context, rec models.UnlockRecord) (*models.InsertResult, error)
	byEmail    string
	calls      int
}

func (m *mockUnlockRepository) Insert(ctx context.Context, rec models.UnlockRecord) (*models.InsertResult, error) {
	m.calls++
	if m.insertFunc != nil {
		return m.insertFunc(ctx, rec)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockUnlockRepository) GetByEmail(ctx context.Context, email string) ([]models.UnlockRecord, error) {
	m.calls++
	m.byEmail = email
	return nil, nil
}

func (m *mockUnlockRepository) GetAll(ctx context.Context) ([]models.UnlockRecord, error) {
	m.calls++
	return nil, nil
}

func (m *mockUnlockRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	m.calls++
	return &models.DeleteResult{DeletedCount: 1}, nil
}

func newService(unlocks *mockUnlockRepository) *DefaultPremiumService {
	return &DefaultPremiumService{Biodata: &mockBiodataRepository{}, Unlocks: unlocks}
}

func TestUnlock_SentinelEmailIsUnauthorized(t *testing.T) {
	for _, email := range []string{"undefined", "null"} {
		t.Run(email, func(t *testing.T) {
			unlocks := &mockUnlockRepository{}
			svc := newService(unlocks)

			_, err := svc.Unlock(context.Background(), models.UnlockRequest{
				UserEmail: email,
				BiodataID: primitive.NewObjectID().Hex(),
			})

			assert.ErrorIs(t, err, utils.ErrUnauthorized)
			assert.Zero(t, unlocks.calls, "sentinel identity must never reach the store")
		})
	}
}

func TestUnlock_MalformedEmailIsBadInput(t *testing.T) {
	for _, email := range []string{"", "not-an-email"} {
		unlocks := &mockUnlockRepository{}
		svc := newService(unlocks)

		_, err := svc.Unlock(context.Background(), models.UnlockRequest{
			UserEmail: email,
			BiodataID: primitive.NewObjectID().Hex(),
		})

		assert.ErrorIs(t, err, utils.ErrInvalidInput)
		assert.Zero(t, unlocks.calls)
	}
}

func TestUnlock_MissingBiodataIDIsBadInput(t *testing.T) {
	svc := newService(&mockUnlockRepository{})

	_, err := svc.Unlock(context.Background(), models.UnlockRequest{UserEmail: "guest@example.com"})

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestUnlock_NormalizesEmailAndSetsRecordFields(t *testing.T) {
	var got models.UnlockRecord
	unlocks := &mockUnlockRepository{
		insertFunc: func(ctx context.Context, rec models.UnlockRecord) (*models.InsertResult, error) {
			got = rec
			return &models.InsertResult{Acknowledged: true, InsertedID: primitive.NewObjectID()}, nil
		},
	}
	svc := newService(unlocks)
	biodataID := primitive.NewObjectID().Hex()

	_, err := svc.Unlock(context.Background(), models.UnlockRequest{
		UserEmail:   "Guest@Example.COM",
		BiodataID:   biodataID,
		BiodataName: "Profile 12",
	})

	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", got.UserEmail)
	assert.Equal(t, biodataID, got.BiodataID)
	assert.Equal(t, models.UnlockStatusUnlocked, got.Status)
	assert.False(t, got.UnlockDate.IsZero(), "unlockDate is server-assigned")
}

func TestUnlock_DuplicateIsConflict(t *testing.T) {
	unlocks := &mockUnlockRepository{
		insertFunc: func(ctx context.Context, rec models.UnlockRecord) (*models.InsertResult, error) {
			return nil, fmt.Errorf("profile already unlocked: %w", utils.ErrConflict)
		},
	}
	svc := newService(unlocks)

	_, err := svc.Unlock(context.Background(), models.UnlockRequest{
		UserEmail: "guest@example.com",
		BiodataID: primitive.NewObjectID().Hex(),
	})

	assert.ErrorIs(t, err, utils.ErrConflict)
}

type countingUnlockRepository struct {
	inserts atomic.Int64
}

func (m *countingUnlockRepository) Insert(ctx context.Context, rec models.UnlockRecord) (*models.InsertResult, error) {
	m.inserts.Add(1)
	return &models.InsertResult{Acknowledged: true, InsertedID: primitive.NewObjectID()}, nil
}

func (m *countingUnlockRepository) GetByEmail(ctx context.Context, email string) ([]models.UnlockRecord, error) {
	return nil, nil
}

func (m *countingUnlockRepository) GetAll(ctx context.Context) ([]models.UnlockRecord, error) {
	return nil, nil
}

func (m *countingUnlockRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	return &models.DeleteResult{DeletedCount: 1}, nil
}

// A burst of first requests against a freshly wired service must share the
// validator safely.
func TestUnlock_ConcurrentFirstRequests(t *testing.T) {
	unlocks := &countingUnlockRepository{}
	svc := &DefaultPremiumService{Biodata: &mockBiodataRepository{}, Unlocks: unlocks}

	const requests = 16
	errs := make([]error, requests)
	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Unlock(context.Background(), models.UnlockRequest{
				UserEmail: fmt.Sprintf("guest%d@example.com", i),
				BiodataID: primitive.NewObjectID().Hex(),
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.EqualValues(t, requests, unlocks.inserts.Load())
}

func TestUnlocksForEmail_Lowercases(t *testing.T) {
	unlocks := &mockUnlockRepository{}
	svc := newService(unlocks)

	_, err := svc.UnlocksForEmail(context.Background(), "Guest@Example.COM")

	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", unlocks.byEmail)
}

func TestGetBiodata_InvalidIDShortCircuits(t *testing.T) {
	biodata := &mockBiodataRepository{}
	svc := &DefaultPremiumService{Biodata: biodata, Unlocks: &mockUnlockRepository{}}

	_, err := svc.GetBiodata(context.Background(), "undefined")

	assert.ErrorIs(t, err, utils.ErrInvalidID)
	assert.Zero(t, biodata.calls)
}

func TestListBiodata_PassesPremiumCountThrough(t *testing.T) {
	biodata := &mockBiodataRepository{
		getAllFunc: func(ctx context.Context) ([]bson.M, error) {
			return []bson.M{{"name": "Profile 1", "premiumCount": int32(3)}}, nil
		},
	}
	svc := &DefaultPremiumService{Biodata: biodata, Unlocks: &mockUnlockRepository{}}

	docs, err := svc.ListBiodata(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, int32(3), docs[0]["premiumCount"])
}
