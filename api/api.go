package api

import (
	"errors"
	"fmt"
	"movie_tracker/api/middleware"
	"movie_tracker/configs"
	_ "movie_tracker/docs"
	"movie_tracker/internal/handler"
	"movie_tracker/pkg/response"
	"slices"
	"strings"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

var router *fiber.App

type Handlers struct {
	AuthHandler    *handler.AuthHandler
	ViewingHandler *handler.ViewingHandler
	RatingHandler  *handler.RatingHandler
	ReviewHandler  *handler.ReviewHandler
	EpisodeHandler *handler.EpisodeHandler
	MovieHandler   *handler.MovieHandler
	TvShowHandler  *handler.TvShowHandler
	SearchHandler  *handler.SearchHandler
}

func InitRouter(h *Handlers) {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			fmt.Println(err.Error())
		}

		return response.ResponseError(c, response.ServerError, code)
	}

	router = fiber.New(fiber.Config{
		UnescapePath: true,
		ErrorHandler: defaultErrorHandler,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1
		},
		AllowCredentials: true,
	}))
	router.Use(recover.New())
	router.Use(compress.New())

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	authRoutes := router.Group("auth")
	{
		authRoutes.Post("/register", h.AuthHandler.Register)
		authRoutes.Post("/login", h.AuthHandler.Login)
		authRoutes.Get("/profile", middleware.AuthMiddleware, h.AuthHandler.Profile)
		authRoutes.Get("/verify", middleware.AuthMiddleware, h.AuthHandler.Verify)
		authRoutes.Post("/logout", middleware.AuthMiddleware, h.AuthHandler.Logout)
	}

	viewingRoutes := router.Group("viewings")
	{
		viewingRoutes.Post("/", middleware.AuthMiddleware, h.ViewingHandler.RegisterViewing)
		viewingRoutes.Get("/", middleware.AuthMiddleware, h.ViewingHandler.ListViewings)
		// stats paths must register before the :id wildcard
		viewingRoutes.Get("/estadisticas", middleware.AuthMiddleware, h.ViewingHandler.BasicStats)
		viewingRoutes.Get("/estadisticas/detalladas", middleware.AuthMiddleware, h.ViewingHandler.DetailedStats)
		viewingRoutes.Get("/:id", middleware.AuthMiddleware, h.ViewingHandler.GetViewing)
		viewingRoutes.Delete("/:id", middleware.AuthMiddleware, h.ViewingHandler.RemoveViewing)
	}

	ratingRoutes := router.Group("ratings")
	{
		ratingRoutes.Post("/", middleware.AuthMiddleware, h.RatingHandler.UpsertRating)
		ratingRoutes.Get("/content/:contentId/average", h.RatingHandler.AverageForContent)
		ratingRoutes.Get("/:viewingId", middleware.AuthMiddleware, h.RatingHandler.GetRating)
		ratingRoutes.Delete("/:viewingId", middleware.AuthMiddleware, h.RatingHandler.DeleteRating)
	}

	reviewRoutes := router.Group("reviews")
	{
		reviewRoutes.Post("/", middleware.AuthMiddleware, h.ReviewHandler.UpsertReview)
		reviewRoutes.Get("/content/:contentId", h.ReviewHandler.PublicByContent)
		reviewRoutes.Get("/recent", h.ReviewHandler.Recent)
		reviewRoutes.Get("/:viewingId", middleware.AuthMiddleware, h.ReviewHandler.GetReview)
		reviewRoutes.Delete("/:viewingId", middleware.AuthMiddleware, h.ReviewHandler.DeleteReview)
	}

	episodeRoutes := router.Group("episodes")
	{
		episodeRoutes.Post("/", middleware.AuthMiddleware, h.EpisodeHandler.MarkWatched)
		episodeRoutes.Post("/bulk", middleware.AuthMiddleware, h.EpisodeHandler.MarkWatchedBulk)
		episodeRoutes.Get("/viewing/:viewingId", middleware.AuthMiddleware, h.EpisodeHandler.ListWatched)
		episodeRoutes.Delete("/viewing/:viewingId/season/:seasonId/episode/:episodeId", middleware.AuthMiddleware, h.EpisodeHandler.UnmarkByComposite)
		episodeRoutes.Delete("/:id", middleware.AuthMiddleware, h.EpisodeHandler.Unmark)
	}

	movieRoutes := router.Group("movies")
	{
		movieRoutes.Get("/popular", h.MovieHandler.Popular)
		movieRoutes.Get("/top-rated", h.MovieHandler.TopRated)
		movieRoutes.Get("/now-playing", h.MovieHandler.NowPlaying)
		movieRoutes.Get("/upcoming", h.MovieHandler.Upcoming)
		movieRoutes.Get("/search", h.MovieHandler.Search)
		movieRoutes.Get("/genres", h.MovieHandler.Genres)
		movieRoutes.Get("/:movieId", h.MovieHandler.Details)
	}

	tvShowRoutes := router.Group("tvshows")
	{
		tvShowRoutes.Get("/popular", h.TvShowHandler.Popular)
		tvShowRoutes.Get("/top-rated", h.TvShowHandler.TopRated)
		tvShowRoutes.Get("/on-the-air", h.TvShowHandler.OnTheAir)
		tvShowRoutes.Get("/search", h.TvShowHandler.Search)
		tvShowRoutes.Get("/genres", h.TvShowHandler.Genres)
		tvShowRoutes.Get("/:tvId/season/:seasonNumber", h.TvShowHandler.Season)
		tvShowRoutes.Get("/:tvId", h.TvShowHandler.Details)
	}

	searchRoutes := router.Group("search")
	{
		searchRoutes.Get("/multi", h.SearchHandler.Multi)
		searchRoutes.Get("/trending", h.SearchHandler.Trending)
	}

	router.Get("/", HealthCheck)
	router.Get("/metrics", monitor.New())

	router.Get("/swagger/*", swagger.HandlerDefault)
}

func Start(addr string) error {
	return router.Listen(addr)
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	map[string]interface{}
//	@Router			/ [get]
func HealthCheck(c *fiber.Ctx) error {
	res := map[string]interface{}{
		"data": "Server is up and running",
	}

	return c.JSON(res)
}
