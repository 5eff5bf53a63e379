package service

import (
	"movie_tracker/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterViewing(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")

	title := "Inception"
	runtime := 148
	res, err := s.viewing.RegisterViewing(user.UserId, &model.RegisterViewingRequest{
		ContentId:  27205,
		TypeId:     model.ContentTypeMovie,
		Title:      &title,
		RuntimeMin: &runtime,
	})
	require.NoError(t, err)
	assert.NotZero(t, res.ViewingId)
	assert.Equal(t, 27205, res.ContentId)
	assert.Equal(t, "Película", res.ContentType)
	require.NotNil(t, res.Title)
	assert.Equal(t, "Inception", *res.Title)
	assert.NotNil(t, res.EpisodesWatched)
	assert.Empty(t, res.EpisodesWatched)

	// the timestamp must round-trip through the database
	fetched, err := s.viewing.GetViewing(user.UserId, res.ViewingId)
	require.NoError(t, err)
	assert.False(t, fetched.WatchedAt.IsZero())
}

func TestRegisterViewingRejectsDuplicate(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")
	registerTestViewing(t, s, user.UserId, 27205, model.ContentTypeMovie)

	_, err := s.viewing.RegisterViewing(user.UserId, &model.RegisterViewingRequest{
		ContentId: 27205,
		TypeId:    model.ContentTypeMovie,
	})
	assert.ErrorIs(t, err, ErrDuplicateViewing)
}

func TestRegisterViewingSameContentDifferentUsers(t *testing.T) {
	s := newTestServices(t)
	first := registerTestUser(t, s, "maria")
	second := registerTestUser(t, s, "carlos")

	registerTestViewing(t, s, first.UserId, 27205, model.ContentTypeMovie)
	registerTestViewing(t, s, second.UserId, 27205, model.ContentTypeMovie)
}

func TestRegisterViewingInvalidType(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")

	_, err := s.viewing.RegisterViewing(user.UserId, &model.RegisterViewingRequest{
		ContentId: 27205,
		TypeId:    7,
	})
	assert.True(t, IsValidationError(err))
}

func TestContentCacheFirstWriteWins(t *testing.T) {
	s := newTestServices(t)
	first := registerTestUser(t, s, "maria")
	second := registerTestUser(t, s, "carlos")

	original := "Título original"
	res, err := s.viewing.RegisterViewing(first.UserId, &model.RegisterViewingRequest{
		ContentId: 550,
		TypeId:    model.ContentTypeMovie,
		Title:     &original,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Title)

	changed := "Título cambiado"
	res2, err := s.viewing.RegisterViewing(second.UserId, &model.RegisterViewingRequest{
		ContentId: 550,
		TypeId:    model.ContentTypeMovie,
		Title:     &changed,
	})
	require.NoError(t, err)
	require.NotNil(t, res2.Title)
	assert.Equal(t, "Título original", *res2.Title)
}

func TestGetViewingOwnership(t *testing.T) {
	s := newTestServices(t)
	owner := registerTestUser(t, s, "maria")
	intruder := registerTestUser(t, s, "carlos")
	viewing := registerTestViewing(t, s, owner.UserId, 27205, model.ContentTypeMovie)

	res, err := s.viewing.GetViewing(owner.UserId, viewing.ViewingId)
	require.NoError(t, err)
	assert.Equal(t, viewing.ViewingId, res.ViewingId)

	// someone else's record looks exactly like a missing one
	_, err = s.viewing.GetViewing(intruder.UserId, viewing.ViewingId)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListViewings(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")
	registerTestViewing(t, s, user.UserId, 27205, model.ContentTypeMovie)
	registerTestViewing(t, s, user.UserId, 1399, model.ContentTypeSeries)

	res, err := s.viewing.ListViewings(user.UserId)
	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestRemoveViewingCascades(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")
	viewing := registerTestViewing(t, s, user.UserId, 1399, model.ContentTypeSeries)

	_, err := s.rating.UpsertRating(user.UserId, &model.RatingRequest{ViewingId: viewing.ViewingId, Score: 9})
	require.NoError(t, err)
	_, err = s.review.UpsertReview(user.UserId, &model.ReviewRequest{ViewingId: viewing.ViewingId, Text: "Muy buena"})
	require.NoError(t, err)
	_, err = s.episode.MarkWatched(user.UserId, &model.EpisodeWatchedRequest{ViewingId: viewing.ViewingId, SeasonTmdbId: 3624, EpisodeTmdbId: 63056})
	require.NoError(t, err)

	require.NoError(t, s.viewing.RemoveViewing(user.UserId, viewing.ViewingId))

	_, err = s.viewing.GetViewing(user.UserId, viewing.ViewingId)
	assert.ErrorIs(t, err, ErrNotFound)

	var ratings, reviews, episodes int64
	s.db.Model(&model.Rating{}).Count(&ratings)
	s.db.Model(&model.Review{}).Count(&reviews)
	s.db.Model(&model.EpisodeWatched{}).Count(&episodes)
	assert.Zero(t, ratings)
	assert.Zero(t, reviews)
	assert.Zero(t, episodes)
}

func TestRemoveViewingOwnership(t *testing.T) {
	s := newTestServices(t)
	owner := registerTestUser(t, s, "maria")
	intruder := registerTestUser(t, s, "carlos")
	viewing := registerTestViewing(t, s, owner.UserId, 27205, model.ContentTypeMovie)

	err := s.viewing.RemoveViewing(intruder.UserId, viewing.ViewingId)
	assert.ErrorIs(t, err, ErrNotFound)

	// still there for the owner
	_, err = s.viewing.GetViewing(owner.UserId, viewing.ViewingId)
	assert.NoError(t, err)
}
