package service

import (
	"movie_tracker/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertReviewCreatesThenUpdates(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")
	viewing := registerTestViewing(t, s, user.UserId, 27205, model.ContentTypeMovie)

	created, err := s.review.UpsertReview(user.UserId, &model.ReviewRequest{
		ViewingId: viewing.ViewingId,
		Text:      "Primera impresión",
	})
	require.NoError(t, err)

	updated, err := s.review.UpsertReview(user.UserId, &model.ReviewRequest{
		ViewingId:   viewing.ViewingId,
		Text:        "Segunda impresión",
		HasSpoilers: true,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ReviewId, updated.ReviewId)
	assert.Equal(t, "Segunda impresión", updated.Text)
	assert.True(t, updated.HasSpoilers)
	assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Second)

	var count int64
	s.db.Model(&model.Review{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpsertReviewRequiresText(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")
	viewing := registerTestViewing(t, s, user.UserId, 27205, model.ContentTypeMovie)

	_, err := s.review.UpsertReview(user.UserId, &model.ReviewRequest{
		ViewingId: viewing.ViewingId,
		Text:      "   ",
	})
	assert.True(t, IsValidationError(err))
}

func TestUpsertReviewOwnership(t *testing.T) {
	s := newTestServices(t)
	owner := registerTestUser(t, s, "maria")
	intruder := registerTestUser(t, s, "carlos")
	viewing := registerTestViewing(t, s, owner.UserId, 27205, model.ContentTypeMovie)

	_, err := s.review.UpsertReview(intruder.UserId, &model.ReviewRequest{
		ViewingId: viewing.ViewingId,
		Text:      "No es mía",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReview(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")
	viewing := registerTestViewing(t, s, user.UserId, 27205, model.ContentTypeMovie)

	_, err := s.review.UpsertReview(user.UserId, &model.ReviewRequest{ViewingId: viewing.ViewingId, Text: "Buena"})
	require.NoError(t, err)

	require.NoError(t, s.review.DeleteReview(user.UserId, viewing.ViewingId))
	assert.ErrorIs(t, s.review.DeleteReview(user.UserId, viewing.ViewingId), ErrReviewNotFound)
}

func TestPublicByContentMasksSpoilers(t *testing.T) {
	s := newTestServices(t)
	first := registerTestUser(t, s, "maria")
	second := registerTestUser(t, s, "carlos")

	firstViewing := registerTestViewing(t, s, first.UserId, 27205, model.ContentTypeMovie)
	secondViewing := registerTestViewing(t, s, second.UserId, 27205, model.ContentTypeMovie)

	_, err := s.review.UpsertReview(first.UserId, &model.ReviewRequest{
		ViewingId:   firstViewing.ViewingId,
		Text:        "Al final muere el protagonista",
		HasSpoilers: true,
	})
	require.NoError(t, err)
	_, err = s.review.UpsertReview(second.UserId, &model.ReviewRequest{
		ViewingId: secondViewing.ViewingId,
		Text:      "Sin revelar nada, me encantó",
	})
	require.NoError(t, err)
	_, err = s.rating.UpsertRating(first.UserId, &model.RatingRequest{ViewingId: firstViewing.ViewingId, Score: 9})
	require.NoError(t, err)

	res, err := s.review.PublicByContent(27205, true)
	require.NoError(t, err)
	require.Len(t, res, 2)

	for _, item := range res {
		assert.Equal(t, 27205, item.ContentId)
		if item.HasSpoilers {
			assert.Equal(t, SpoilerPlaceholder, item.Text)
			assert.Equal(t, "maria", item.Username)
			require.NotNil(t, item.Score)
			assert.Equal(t, 9.0, *item.Score)
		} else {
			assert.Equal(t, "Sin revelar nada, me encantó", item.Text)
			assert.Equal(t, "carlos", item.Username)
			assert.Nil(t, item.Score)
		}
	}
}

func TestPublicByContentUnmasked(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")
	viewing := registerTestViewing(t, s, user.UserId, 27205, model.ContentTypeMovie)

	_, err := s.review.UpsertReview(user.UserId, &model.ReviewRequest{
		ViewingId:   viewing.ViewingId,
		Text:        "Spoiler gigante",
		HasSpoilers: true,
	})
	require.NoError(t, err)

	res, err := s.review.PublicByContent(27205, false)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Spoiler gigante", res[0].Text)
	assert.True(t, res[0].HasSpoilers)
}

func TestRecentReviews(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")

	for _, contentId := range []int{100, 200, 300} {
		viewing := registerTestViewing(t, s, user.UserId, contentId, model.ContentTypeMovie)
		_, err := s.review.UpsertReview(user.UserId, &model.ReviewRequest{
			ViewingId: viewing.ViewingId,
			Text:      "Reseña",
		})
		require.NoError(t, err)
	}

	res, err := s.review.Recent(2, true)
	require.NoError(t, err)
	assert.Len(t, res, 2)

	// out-of-range limits fall back to the default
	res, err = s.review.Recent(0, true)
	require.NoError(t, err)
	assert.Len(t, res, 3)
}
