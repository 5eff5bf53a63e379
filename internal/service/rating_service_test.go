package service

import (
	"movie_tracker/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertRatingCreatesThenUpdates(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")
	viewing := registerTestViewing(t, s, user.UserId, 27205, model.ContentTypeMovie)

	created, err := s.rating.UpsertRating(user.UserId, &model.RatingRequest{
		ViewingId: viewing.ViewingId,
		Score:     7.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 7.5, created.Score)

	updated, err := s.rating.UpsertRating(user.UserId, &model.RatingRequest{
		ViewingId: viewing.ViewingId,
		Score:     9,
	})
	require.NoError(t, err)
	assert.Equal(t, 9.0, updated.Score)
	// replace keeps the identity and the original creation date
	assert.Equal(t, created.RatingId, updated.RatingId)
	assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Second)

	var count int64
	s.db.Model(&model.Rating{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpsertRatingScoreBounds(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")
	viewing := registerTestViewing(t, s, user.UserId, 27205, model.ContentTypeMovie)

	for _, score := range []float64{0, 0.9, 10.1, -3} {
		_, err := s.rating.UpsertRating(user.UserId, &model.RatingRequest{
			ViewingId: viewing.ViewingId,
			Score:     score,
		})
		assert.True(t, IsValidationError(err), "score %v must be rejected", score)
	}
}

func TestUpsertRatingOwnership(t *testing.T) {
	s := newTestServices(t)
	owner := registerTestUser(t, s, "maria")
	intruder := registerTestUser(t, s, "carlos")
	viewing := registerTestViewing(t, s, owner.UserId, 27205, model.ContentTypeMovie)

	_, err := s.rating.UpsertRating(intruder.UserId, &model.RatingRequest{
		ViewingId: viewing.ViewingId,
		Score:     8,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetRatingNotFound(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")
	viewing := registerTestViewing(t, s, user.UserId, 27205, model.ContentTypeMovie)

	_, err := s.rating.GetRating(user.UserId, viewing.ViewingId)
	assert.ErrorIs(t, err, ErrRatingNotFound)
}

func TestDeleteRating(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")
	viewing := registerTestViewing(t, s, user.UserId, 27205, model.ContentTypeMovie)

	_, err := s.rating.UpsertRating(user.UserId, &model.RatingRequest{ViewingId: viewing.ViewingId, Score: 8})
	require.NoError(t, err)

	require.NoError(t, s.rating.DeleteRating(user.UserId, viewing.ViewingId))
	assert.ErrorIs(t, s.rating.DeleteRating(user.UserId, viewing.ViewingId), ErrRatingNotFound)
}

func TestAverageForContentEmpty(t *testing.T) {
	s := newTestServices(t)

	res, err := s.rating.AverageForContent(27205)
	require.NoError(t, err)
	assert.Nil(t, res.Average)
	assert.EqualValues(t, 0, res.TotalRatings)
}

func TestAverageForContent(t *testing.T) {
	s := newTestServices(t)
	scores := []float64{7, 8, 9}
	usernames := []string{"maria", "carlos", "lucia"}

	for i, username := range usernames {
		user := registerTestUser(t, s, username)
		viewing := registerTestViewing(t, s, user.UserId, 27205, model.ContentTypeMovie)
		_, err := s.rating.UpsertRating(user.UserId, &model.RatingRequest{
			ViewingId: viewing.ViewingId,
			Score:     scores[i],
		})
		require.NoError(t, err)
	}

	res, err := s.rating.AverageForContent(27205)
	require.NoError(t, err)
	require.NotNil(t, res.Average)
	assert.Equal(t, 8.0, *res.Average)
	assert.EqualValues(t, 3, res.TotalRatings)
}
