package service

import (
	"movie_tracker/configs"
	moviedb "movie_tracker/db"
	"movie_tracker/internal/repository"
	"movie_tracker/model"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	configs.LoadEnvVariables()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.ContentType{},
		&model.CachedContent{},
		&model.ViewingRecord{},
		&model.Rating{},
		&model.Review{},
		&model.EpisodeWatched{},
	)
	require.NoError(t, err)
	require.NoError(t, moviedb.SeedContentTypes(db))
	return db
}

type testServices struct {
	db      *gorm.DB
	auth    *AuthService
	viewing *ViewingService
	rating  *RatingService
	review  *ReviewService
	episode *EpisodeService
	stats   *StatsService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db := newTestDB(t)

	userRep := repository.NewUserRepository(db)
	viewingRep := repository.NewViewingRepository(db)
	ratingRep := repository.NewRatingRepository(db)
	reviewRep := repository.NewReviewRepository(db)
	episodeRep := repository.NewEpisodeRepository(db)
	statsRep := repository.NewStatsRepository(db)

	return &testServices{
		db:      db,
		auth:    NewAuthService(userRep),
		viewing: NewViewingService(viewingRep),
		rating:  NewRatingService(ratingRep, viewingRep),
		review:  NewReviewService(reviewRep, viewingRep),
		episode: NewEpisodeService(episodeRep, viewingRep),
		stats:   NewStatsService(statsRep),
	}
}

func registerTestUser(t *testing.T, s *testServices, username string) *model.User {
	t.Helper()
	user, _, err := s.auth.Register(&model.RegisterRequest{
		Username: username,
		Password: "secreto123",
		Age:      30,
	})
	require.NoError(t, err)
	return user
}

func registerTestViewing(t *testing.T, s *testServices, userId int, contentId int, typeId int) *model.ViewingResponse {
	t.Helper()
	title := "Contenido de prueba"
	viewing, err := s.viewing.RegisterViewing(userId, &model.RegisterViewingRequest{
		ContentId: contentId,
		TypeId:    typeId,
		Title:     &title,
	})
	require.NoError(t, err)
	return viewing
}
