package model

import (
	"time"
)

type Review struct {
	ReviewId    int       `gorm:"column:review_id;type:integer;autoIncrement;primaryKey;" json:"resenaId"`
	ViewingId   int       `gorm:"column:viewing_id;type:integer;not null;uniqueIndex:reviews_viewing_id_key;" json:"visualizacionId"`
	Text        string    `gorm:"column:text;type:text;" json:"texto"`
	HasSpoilers bool      `gorm:"column:has_spoilers;not null;default:false;" json:"contieneSpoilers"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP;" json:"fechaResena"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP;" json:"-"`

	Viewing *ViewingRecord `gorm:"foreignKey:ViewingId;references:ViewingId;" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}

//---------------------------------------
//---------------------------------------

type ReviewRequest struct {
	ViewingId   int    `json:"visualizacionId"`
	Text        string `json:"texto"`
	HasSpoilers bool   `json:"contieneSpoilers"`
}

type ReviewInfo struct {
	ReviewId    int       `json:"resenaId"`
	Text        string    `json:"texto"`
	HasSpoilers bool      `json:"contieneSpoilers"`
	CreatedAt   time.Time `json:"fechaResena"`
}

func (r *Review) Info() *ReviewInfo {
	return &ReviewInfo{
		ReviewId:    r.ReviewId,
		Text:        r.Text,
		HasSpoilers: r.HasSpoilers,
		CreatedAt:   r.CreatedAt,
	}
}

// PublicReviewRes joins a review with its author and content for the
// unauthenticated listings. The spoiler flag is always populated even when
// the text is masked so clients can render a warning badge.
type PublicReviewRes struct {
	ReviewId    int       `json:"resenaId"`
	Username    string    `json:"nombreUsuario"`
	ContentId   int       `json:"contenidoId"`
	Title       *string   `json:"tituloContenido"`
	ContentType string    `json:"tipoContenido"`
	Text        string    `json:"texto"`
	HasSpoilers bool      `json:"contieneSpoilers"`
	Score       *float64  `json:"puntuacion"`
	CreatedAt   time.Time `json:"fechaResena"`
}
