package review

import (
	"context"
	"errors"
	"testing"

	"bookmyservice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewStore struct {
	reviews map[string]models.Review
}

func (f *fakeReviewStore) GetByID(id string) (*models.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeReviewStore) ListByMinRating(minRating float64) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if r.Rating >= minRating {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewStore) Create(rev *models.Review) error {
	f.reviews[rev.ID] = *rev
	return nil
}

func (f *fakeReviewStore) Update(rev *models.Review) error {
	if _, ok := f.reviews[rev.ID]; !ok {
		return errors.New("review not found")
	}
	f.reviews[rev.ID] = *rev
	return nil
}

func (f *fakeReviewStore) Delete(id string) error {
	delete(f.reviews, id)
	return nil
}

func newTestService() (*DefaultReviewService, *fakeReviewStore) {
	store := &fakeReviewStore{reviews: map[string]models.Review{}}
	return &DefaultReviewService{Repo: store}, store
}

func reviewInput(rating float64) models.ReviewInput {
	visible := true
	return models.ReviewInput{
		ConsumerID:     "cons-1",
		ProviderID:     "prov-1",
		ServiceID:      "svc-1",
		Rating:         rating,
		ReviewText:     "solid work",
		VisibleToAdmin: &visible,
	}
}

var (
	consumer = models.Identity{ID: "cons-1", Role: models.RoleConsumer}
	admin    = models.Identity{ID: "adm-1", Role: models.RoleAdmin}
)

func TestCreateReview(t *testing.T) {
	svc, store := newTestService()

	created, err := svc.Create(context.Background(), consumer, reviewInput(4.5))
	require.NoError(t, err)
	assert.Equal(t, "cons-1", created.ConsumerID)
	assert.Equal(t, 4.5, created.Rating)
	assert.Len(t, store.reviews, 1)
}

func TestCreateReviewRejectsProviders(t *testing.T) {
	svc, _ := newTestService()

	provider := models.Identity{ID: "prov-1", Role: models.RoleProvider}
	_, err := svc.Create(context.Background(), provider, reviewInput(4))
	assert.EqualError(t, err, "Forbidden: Only consumers can leave reviews")
}

func TestCreateReviewPinsConsumerID(t *testing.T) {
	svc, _ := newTestService()

	// A consumer cannot review as someone else.
	in := reviewInput(4)
	in.ConsumerID = "cons-9"
	created, err := svc.Create(context.Background(), consumer, in)
	require.NoError(t, err)
	assert.Equal(t, "cons-1", created.ConsumerID)

	// Admins may record on the named consumer's behalf.
	created, err = svc.Create(context.Background(), admin, in)
	require.NoError(t, err)
	assert.Equal(t, "cons-9", created.ConsumerID)
}

func TestReviewVisibilityFlagOptional(t *testing.T) {
	svc, _ := newTestService()

	// An absent flag defaults to hidden on create.
	in := reviewInput(4)
	in.VisibleToAdmin = nil
	created, err := svc.Create(context.Background(), consumer, in)
	require.NoError(t, err)
	assert.False(t, created.VisibleToAdmin)

	// And leaves the stored value untouched on edit.
	visible := true
	in.VisibleToAdmin = &visible
	updated, err := svc.Edit(context.Background(), consumer, created.ID, in)
	require.NoError(t, err)
	assert.True(t, updated.VisibleToAdmin)

	in.VisibleToAdmin = nil
	updated, err = svc.Edit(context.Background(), consumer, created.ID, in)
	require.NoError(t, err)
	assert.True(t, updated.VisibleToAdmin)
}

func TestEditReviewAuthorization(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), consumer, reviewInput(3))
	require.NoError(t, err)

	other := models.Identity{ID: "cons-2", Role: models.RoleConsumer}
	_, err = svc.Edit(context.Background(), other, created.ID, reviewInput(1))
	assert.EqualError(t, err, "Forbidden: You do not have permission to edit this review")

	updated, err := svc.Edit(context.Background(), consumer, created.ID, reviewInput(5))
	require.NoError(t, err)
	assert.Equal(t, 5.0, updated.Rating)
}

func TestDeleteReview(t *testing.T) {
	svc, store := newTestService()

	created, err := svc.Create(context.Background(), consumer, reviewInput(3))
	require.NoError(t, err)

	other := models.Identity{ID: "cons-2", Role: models.RoleConsumer}
	err = svc.Delete(context.Background(), other, created.ID)
	assert.EqualError(t, err, "Forbidden: You do not have permission to delete this review")

	require.NoError(t, svc.Delete(context.Background(), consumer, created.ID))
	assert.Empty(t, store.reviews)

	err = svc.Delete(context.Background(), consumer, created.ID)
	assert.EqualError(t, err, "Review not found")
}

func TestListByMinRating(t *testing.T) {
	svc, _ := newTestService()

	for _, rating := range []float64{2, 3.5, 5} {
		_, err := svc.Create(context.Background(), consumer, reviewInput(rating))
		require.NoError(t, err)
	}

	reviews, err := svc.ListByMinRating(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
