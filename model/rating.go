package model

import (
	"time"
)

// Rating holds at most one score per viewing record, upsert semantics.
// CreatedAt survives updates, only UpdatedAt moves.
type Rating struct {
	RatingId  int       `gorm:"column:rating_id;type:integer;autoIncrement;primaryKey;" json:"calificacionId"`
	ViewingId int       `gorm:"column:viewing_id;type:integer;not null;uniqueIndex:ratings_viewing_id_key;" json:"visualizacionId"`
	Score     float64   `gorm:"column:score;type:decimal(3,1);not null;" json:"puntuacion"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP;" json:"fechaCalificacion"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP;" json:"-"`
}

func (Rating) TableName() string {
	return "ratings"
}

//---------------------------------------
//---------------------------------------

type RatingRequest struct {
	ViewingId int     `json:"visualizacionId"`
	Score     float64 `json:"puntuacion"`
}

type RatingInfo struct {
	RatingId  int       `json:"calificacionId"`
	Score     float64   `json:"puntuacion"`
	CreatedAt time.Time `json:"fechaCalificacion"`
}

func (r *Rating) Info() *RatingInfo {
	return &RatingInfo{
		RatingId:  r.RatingId,
		Score:     r.Score,
		CreatedAt: r.CreatedAt,
	}
}

// ContentAverageRes is the public aggregate for one catalog item. Average is
// null when nobody rated the content, that is a valid result and not an error.
type ContentAverageRes struct {
	ContentId    int      `json:"contenidoId"`
	Average      *float64 `json:"promedio"`
	TotalRatings int64    `json:"totalCalificaciones"`
}
