package service

import (
	"movie_tracker/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicStatsEmpty(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")

	res, err := s.stats.BasicStats(user.UserId)
	require.NoError(t, err)
	assert.Zero(t, res.TotalWatched)
	assert.Zero(t, res.TotalMovies)
	assert.Zero(t, res.TotalSeries)
	assert.Nil(t, res.AverageRating)
	assert.Zero(t, res.TotalReviews)
	assert.Zero(t, res.TotalEpisodes)
}

func TestBasicStats(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")

	movie := registerTestViewing(t, s, user.UserId, 27205, model.ContentTypeMovie)
	series := registerTestViewing(t, s, user.UserId, 1399, model.ContentTypeSeries)

	_, err := s.rating.UpsertRating(user.UserId, &model.RatingRequest{ViewingId: movie.ViewingId, Score: 7})
	require.NoError(t, err)
	_, err = s.rating.UpsertRating(user.UserId, &model.RatingRequest{ViewingId: series.ViewingId, Score: 8})
	require.NoError(t, err)
	_, err = s.review.UpsertReview(user.UserId, &model.ReviewRequest{ViewingId: movie.ViewingId, Text: "Buena"})
	require.NoError(t, err)
	_, err = s.episode.MarkWatched(user.UserId, &model.EpisodeWatchedRequest{ViewingId: series.ViewingId, SeasonTmdbId: 1, EpisodeTmdbId: 1})
	require.NoError(t, err)
	_, err = s.episode.MarkWatched(user.UserId, &model.EpisodeWatchedRequest{ViewingId: series.ViewingId, SeasonTmdbId: 1, EpisodeTmdbId: 2})
	require.NoError(t, err)

	res, err := s.stats.BasicStats(user.UserId)
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.TotalWatched)
	assert.EqualValues(t, 1, res.TotalMovies)
	assert.EqualValues(t, 1, res.TotalSeries)
	require.NotNil(t, res.AverageRating)
	assert.Equal(t, 7.5, *res.AverageRating)
	assert.EqualValues(t, 1, res.TotalReviews)
	assert.EqualValues(t, 2, res.TotalEpisodes)
}

func TestBasicStatsIsolatedPerUser(t *testing.T) {
	s := newTestServices(t)
	first := registerTestUser(t, s, "maria")
	second := registerTestUser(t, s, "carlos")
	registerTestViewing(t, s, first.UserId, 27205, model.ContentTypeMovie)

	res, err := s.stats.BasicStats(second.UserId)
	require.NoError(t, err)
	assert.Zero(t, res.TotalWatched)
}

func TestDetailedStatsEstimatedMinutes(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")

	// movie with a runtime snapshot
	title := "Inception"
	runtime := 148
	_, err := s.viewing.RegisterViewing(user.UserId, &model.RegisterViewingRequest{
		ContentId:  27205,
		TypeId:     model.ContentTypeMovie,
		Title:      &title,
		RuntimeMin: &runtime,
	})
	require.NoError(t, err)

	// movie without one falls back to the configured default (120)
	registerTestViewing(t, s, user.UserId, 550, model.ContentTypeMovie)

	// two episodes at the configured default (45 each)
	series := registerTestViewing(t, s, user.UserId, 1399, model.ContentTypeSeries)
	_, err = s.episode.MarkWatched(user.UserId, &model.EpisodeWatchedRequest{ViewingId: series.ViewingId, SeasonTmdbId: 1, EpisodeTmdbId: 1})
	require.NoError(t, err)
	_, err = s.episode.MarkWatched(user.UserId, &model.EpisodeWatchedRequest{ViewingId: series.ViewingId, SeasonTmdbId: 1, EpisodeTmdbId: 2})
	require.NoError(t, err)

	res, err := s.stats.DetailedStats(user.UserId)
	require.NoError(t, err)
	assert.EqualValues(t, 148+120+2*45, res.EstimatedMinutes)
	assert.EqualValues(t, res.EstimatedMinutes/60, res.EstimatedHours)
	assert.EqualValues(t, res.EstimatedHours/24, res.EstimatedDays)
}

func TestDetailedStatsRatingDistribution(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")

	scores := map[int]float64{100: 7.4, 200: 7.5, 300: 10}
	for contentId, score := range scores {
		viewing := registerTestViewing(t, s, user.UserId, contentId, model.ContentTypeMovie)
		_, err := s.rating.UpsertRating(user.UserId, &model.RatingRequest{ViewingId: viewing.ViewingId, Score: score})
		require.NoError(t, err)
	}

	res, err := s.stats.DetailedStats(user.UserId)
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.TotalRatings)

	require.Len(t, res.RatingDistribution, 10)
	counts := map[int]int64{}
	for _, bucket := range res.RatingDistribution {
		counts[bucket.Score] = bucket.Count
	}
	// 7.4 rounds down, 7.5 rounds up
	assert.EqualValues(t, 1, counts[7])
	assert.EqualValues(t, 1, counts[8])
	assert.EqualValues(t, 1, counts[10])
	assert.EqualValues(t, 0, counts[1])
}

func TestDetailedStatsHighlights(t *testing.T) {
	s := newTestServices(t)
	user := registerTestUser(t, s, "maria")

	scores := []float64{6, 9, 9, 7}
	for i, score := range scores {
		viewing := registerTestViewing(t, s, user.UserId, 1000+i, model.ContentTypeMovie)
		_, err := s.rating.UpsertRating(user.UserId, &model.RatingRequest{ViewingId: viewing.ViewingId, Score: score})
		require.NoError(t, err)
	}

	res, err := s.stats.DetailedStats(user.UserId)
	require.NoError(t, err)

	require.Len(t, res.TopRated, 4)
	require.NotNil(t, res.TopRated[0].Score)
	assert.Equal(t, 9.0, *res.TopRated[0].Score)
	assert.Equal(t, 9.0, *res.TopRated[1].Score)
	// equal scores resolve by registration order
	assert.Equal(t, 1001, res.TopRated[0].ContentId)
	assert.Equal(t, 1002, res.TopRated[1].ContentId)
	assert.Equal(t, 7.0, *res.TopRated[2].Score)
	assert.Equal(t, 6.0, *res.TopRated[3].Score)

	assert.Len(t, res.RecentlyWatched, 4)
	for _, item := range res.RecentlyWatched {
		assert.NotNil(t, item.WatchedAt)
	}
}

func TestMonthlyActivityZeroFilled(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	viewings := []model.ViewingRecord{
		{TypeId: model.ContentTypeMovie, WatchedAt: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)},
		{TypeId: model.ContentTypeSeries, WatchedAt: time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC)},
		{TypeId: model.ContentTypeMovie, WatchedAt: time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC)},
		// too old, outside the trailing year
		{TypeId: model.ContentTypeMovie, WatchedAt: time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)},
	}

	months := buildMonthlyActivity(viewings, now)
	require.Len(t, months, 12)
	assert.Equal(t, "2025-09", months[0].Month)
	assert.Equal(t, "2026-08", months[11].Month)

	assert.EqualValues(t, 1, months[0].Movies)
	assert.EqualValues(t, 1, months[11].Movies)
	assert.EqualValues(t, 1, months[11].Series)
	assert.EqualValues(t, 2, months[11].Total)

	var total int64
	for _, month := range months {
		total += month.Total
	}
	assert.EqualValues(t, 3, total)

	// empty months stay present with zero counts
	assert.EqualValues(t, 0, months[5].Total)
}
