package model

import (
	"time"
)

type UserStatsRes struct {
	TotalWatched  int64    `json:"totalContenidosVistos"`
	TotalMovies   int64    `json:"totalPeliculas"`
	TotalSeries   int64    `json:"totalSeries"`
	AverageRating *float64 `json:"promedioCalificacion"`
	TotalReviews  int64    `json:"totalResenas"`
	TotalEpisodes int64    `json:"totalEpisodiosVistos"`
}

type DetailedStatsRes struct {
	UserStatsRes
	TotalRatings       int64              `json:"totalCalificaciones"`
	EstimatedMinutes   int64              `json:"minutosTotalesEstimados"`
	EstimatedHours     int64              `json:"horasTotalesEstimadas"`
	EstimatedDays      int64              `json:"diasTotalesEstimados"`
	RatingDistribution []RatingBucket     `json:"distribucionCalificaciones"`
	MonthlyActivity    []MonthlyActivity  `json:"actividadMensual"`
	RecentlyWatched    []StatsContentItem `json:"contenidosRecientes"`
	TopRated           []StatsContentItem `json:"mejoresCalificados"`
}

// RatingBucket counts the user's ratings whose integer-rounded score equals
// Score. All ten buckets are always present, zero-filled.
type RatingBucket struct {
	Score int   `json:"puntuacion"`
	Count int64 `json:"cantidad"`
}

// MonthlyActivity covers one calendar month of the trailing year; all twelve
// months appear even when empty.
type MonthlyActivity struct {
	Month  string `json:"mes"`
	Movies int64  `json:"peliculas"`
	Series int64  `json:"series"`
	Total  int64  `json:"total"`
}

type StatsContentItem struct {
	ContentId   int        `json:"contenidoId"`
	Title       *string    `json:"titulo"`
	ContentType string     `json:"tipoContenido"`
	WatchedAt   *time.Time `json:"fechaVisualizacion,omitempty"`
	Score       *float64   `json:"puntuacion,omitempty"`
}
