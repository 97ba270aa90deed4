package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/models"
)

type fakeStore struct {
	created     *models.CreateReviewRequest
	createRes   *models.Review
	createErr   error
	lookedUp    int64
	byOrderRes  *models.Review
	byOrderErr  error
}

func (f *fakeStore) CreateReview(_ context.Context, req *models.CreateReviewRequest) (*models.Review, error) {
	f.created = req
	return f.createRes, f.createErr
}

func (f *fakeStore) ReviewByOrder(_ context.Context, orderID int64) (*models.Review, error) {
	f.lookedUp = orderID
	return f.byOrderRes, f.byOrderErr
}

func TestCreateReviewRatingBounds(t *testing.T) {
	tests := []struct {
		rating  int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{3, false},
		{5, false},
		{6, true},
		{-1, true},
	}

	for _, tt := range tests {
		store := &fakeStore{createRes: &models.Review{ID: 1}}
		svc := NewService(store, logger.New("review-test"))

		_, err := svc.CreateReview(context.Background(), &models.CreateReviewRequest{
			OrderID: 9,
			Rating:  tt.rating,
		})
		if tt.wantErr {
			require.Error(t, err, "rating %d", tt.rating)
			assert.True(t, models.IsValidation(err))
			assert.Nil(t, store.created)
		} else {
			assert.NoError(t, err, "rating %d", tt.rating)
		}
	}
}

func TestCreateReviewRequiresOrder(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, logger.New("review-test"))

	_, err := svc.CreateReview(context.Background(), &models.CreateReviewRequest{Rating: 4})
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
}

func TestCreateReviewPropagatesConflict(t *testing.T) {
	store := &fakeStore{createErr: models.ErrConflict}
	svc := NewService(store, logger.New("review-test"))

	_, err := svc.CreateReview(context.Background(), &models.CreateReviewRequest{
		OrderID: 9,
		Rating:  4,
	})
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestReviewByOrderDelegates(t *testing.T) {
	store := &fakeStore{byOrderRes: &models.Review{ID: 2, OrderID: 9}}
	svc := NewService(store, logger.New("review-test"))

	review, err := svc.ReviewByOrder(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), store.lookedUp)
	assert.Equal(t, int64(2), review.ID)
}
