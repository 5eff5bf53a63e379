package model

import (
	"time"
)

// ViewingRecord is the central fact: a user claims to have watched a piece of
// content. At most one record per (user, content) pair, enforced by the
// unique index so concurrent registrations lose cleanly at the store.
type ViewingRecord struct {
	ViewingId int       `gorm:"column:viewing_id;type:integer;autoIncrement;primaryKey;" json:"visualizacionId"`
	UserId    int       `gorm:"column:user_id;type:integer;not null;uniqueIndex:viewing_records_user_content_key;" json:"-"`
	ContentId int       `gorm:"column:content_id;type:integer;not null;uniqueIndex:viewing_records_user_content_key;" json:"contenidoId"`
	TypeId    int       `gorm:"column:type_id;type:integer;not null;" json:"tipoId"`
	WatchedAt time.Time `gorm:"column:watched_at;not null;default:CURRENT_TIMESTAMP;" json:"fechaVisualizacion"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP;" json:"-"`

	User            *User            `gorm:"foreignKey:UserId;references:UserId;" json:"-"`
	Content         *CachedContent   `gorm:"foreignKey:ContentId;references:ContentId;" json:"-"`
	ContentType     *ContentType     `gorm:"foreignKey:TypeId;references:TypeId;" json:"-"`
	Rating          *Rating          `gorm:"foreignKey:ViewingId;references:ViewingId;" json:"-"`
	Review          *Review          `gorm:"foreignKey:ViewingId;references:ViewingId;" json:"-"`
	EpisodesWatched []EpisodeWatched `gorm:"foreignKey:ViewingId;references:ViewingId;" json:"-"`
}

func (ViewingRecord) TableName() string {
	return "viewing_records"
}

//---------------------------------------
//---------------------------------------

type RegisterViewingRequest struct {
	ContentId  int     `json:"contenidoId"`
	TypeId     int     `json:"tipoId"`
	Title      *string `json:"titulo"`
	RuntimeMin *int    `json:"duracionMinutos"`
}

type ViewingResponse struct {
	ViewingId       int                  `json:"visualizacionId"`
	ContentId       int                  `json:"contenidoId"`
	Title           *string              `json:"titulo"`
	ContentType     string               `json:"tipoContenido"`
	WatchedAt       time.Time            `json:"fechaVisualizacion"`
	Rating          *RatingInfo          `json:"calificacion"`
	Review          *ReviewInfo          `json:"resena"`
	EpisodesWatched []EpisodeWatchedInfo `json:"episodiosVistos"`
}

func (v *ViewingRecord) Response() *ViewingResponse {
	res := &ViewingResponse{
		ViewingId:       v.ViewingId,
		ContentId:       v.ContentId,
		WatchedAt:       v.WatchedAt,
		EpisodesWatched: make([]EpisodeWatchedInfo, 0, len(v.EpisodesWatched)),
	}
	if v.Content != nil {
		res.Title = v.Content.Title
	}
	if v.ContentType != nil {
		res.ContentType = v.ContentType.Name
	}
	if v.Rating != nil {
		res.Rating = v.Rating.Info()
	}
	if v.Review != nil {
		res.Review = v.Review.Info()
	}
	for i := range v.EpisodesWatched {
		res.EpisodesWatched = append(res.EpisodesWatched, *v.EpisodesWatched[i].Info())
	}
	return res
}
