package main

import (
	"log"
	"movie_tracker/api"
	"movie_tracker/configs"
	"movie_tracker/db"
	"movie_tracker/db/redis"
	"movie_tracker/internal/handler"
	"movie_tracker/internal/repository"
	"movie_tracker/internal/service"
	"time"

	"github.com/getsentry/sentry-go"
)

// @title						Movie Tracker
// @version					1.0
// @description				Catalog tracking service: viewings, ratings, reviews and episode progress.
// @contact.name				API Support
// @host						api.movieTracker.site
// @BasePath					/
// @schemes					https
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              configs.GetConfigs().SentryDns,
		Release:          configs.GetConfigs().SentryRelease,
		TracesSampleRate: 1,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	go redis.ConnectRedis()

	database, err := db.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize database connection: %s", err)
	}
	defer database.Close()

	if err := database.AutoMigrate(); err != nil {
		log.Fatalf("could not migrate database: %s", err)
	}

	userRep := repository.NewUserRepository(database.GetDB())
	viewingRep := repository.NewViewingRepository(database.GetDB())
	ratingRep := repository.NewRatingRepository(database.GetDB())
	reviewRep := repository.NewReviewRepository(database.GetDB())
	episodeRep := repository.NewEpisodeRepository(database.GetDB())
	statsRep := repository.NewStatsRepository(database.GetDB())

	authSvc := service.NewAuthService(userRep)
	viewingSvc := service.NewViewingService(viewingRep)
	ratingSvc := service.NewRatingService(ratingRep, viewingRep)
	reviewSvc := service.NewReviewService(reviewRep, viewingRep)
	episodeSvc := service.NewEpisodeService(episodeRep, viewingRep)
	statsSvc := service.NewStatsService(statsRep)
	tmdbSvc := service.NewTmdbService()

	handlers := &api.Handlers{
		AuthHandler:    handler.NewAuthHandler(authSvc),
		ViewingHandler: handler.NewViewingHandler(viewingSvc, statsSvc),
		RatingHandler:  handler.NewRatingHandler(ratingSvc),
		ReviewHandler:  handler.NewReviewHandler(reviewSvc),
		EpisodeHandler: handler.NewEpisodeHandler(episodeSvc),
		MovieHandler:   handler.NewMovieHandler(tmdbSvc),
		TvShowHandler:  handler.NewTvShowHandler(tmdbSvc),
		SearchHandler:  handler.NewSearchHandler(tmdbSvc),
	}

	api.InitRouter(handlers)
	api.Start("0.0.0.0:" + configs.GetConfigs().Port)
}
