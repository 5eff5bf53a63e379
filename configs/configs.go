package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type ConfigStruct struct {
	Port                      string
	DbUrl                     string
	AccessTokenSecret         string
	AccessTokenExpireHour     int
	WaitForRedisConnectionSec int
	RedisUrl                  string
	RedisPassword             string
	TmdbBaseUrl               string
	TmdbBearerToken           string
	CorsAllowedOrigins        []string
	SentryDns                 string
	SentryRelease             string
	PrintErrors               bool
	DefaultMovieRuntimeMin    int
	DefaultEpisodeRuntimeMin  int
}

var configs = ConfigStruct{}

func GetConfigs() ConfigStruct {
	return configs
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	configs.Port = os.Getenv("PORT")
	configs.DbUrl = os.Getenv("POSTGRES_DATABASE_URL")
	configs.AccessTokenSecret = os.Getenv("ACCESS_TOKEN_SECRET")
	configs.AccessTokenExpireHour, _ = strconv.Atoi(os.Getenv("ACCESS_TOKEN_EXPIRE_HOUR"))
	if configs.AccessTokenExpireHour == 0 {
		configs.AccessTokenExpireHour = 24
	}
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.WaitForRedisConnectionSec, _ = strconv.Atoi(os.Getenv("WAIT_REDIS_CONNECTION_SEC"))
	configs.TmdbBaseUrl = os.Getenv("TMDB_BASE_URL")
	if configs.TmdbBaseUrl == "" {
		configs.TmdbBaseUrl = "https://api.themoviedb.org/3"
	}
	configs.TmdbBearerToken = os.Getenv("TMDB_BEARER_TOKEN")
	configs.CorsAllowedOrigins = strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), "---")
	for i := range configs.CorsAllowedOrigins {
		configs.CorsAllowedOrigins[i] = strings.TrimSpace(configs.CorsAllowedOrigins[i])
	}
	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"
	configs.DefaultMovieRuntimeMin, _ = strconv.Atoi(os.Getenv("DEFAULT_MOVIE_RUNTIME_MIN"))
	if configs.DefaultMovieRuntimeMin == 0 {
		configs.DefaultMovieRuntimeMin = 120
	}
	configs.DefaultEpisodeRuntimeMin, _ = strconv.Atoi(os.Getenv("DEFAULT_EPISODE_RUNTIME_MIN"))
	if configs.DefaultEpisodeRuntimeMin == 0 {
		configs.DefaultEpisodeRuntimeMin = 45
	}
}
