package model

import (
	"time"
)

// EpisodeWatched marks one episode of a series viewing as seen. Unique per
// (viewing, season, episode) triple, duplicates are rejected rather than merged.
type EpisodeWatched struct {
	EpisodeId     int       `gorm:"column:episode_id;type:integer;autoIncrement;primaryKey;" json:"id"`
	ViewingId     int       `gorm:"column:viewing_id;type:integer;not null;uniqueIndex:episodes_watched_triple_key;" json:"visualizacionId"`
	SeasonTmdbId  int       `gorm:"column:season_tmdb_id;type:integer;not null;uniqueIndex:episodes_watched_triple_key;" json:"temporadaId"`
	EpisodeTmdbId int       `gorm:"column:episode_tmdb_id;type:integer;not null;uniqueIndex:episodes_watched_triple_key;" json:"episodioId"`
	WatchedAt     time.Time `gorm:"column:watched_at;not null;default:CURRENT_TIMESTAMP;" json:"fechaVisto"`

	Viewing *ViewingRecord `gorm:"foreignKey:ViewingId;references:ViewingId;" json:"-"`
}

func (EpisodeWatched) TableName() string {
	return "episodes_watched"
}

//---------------------------------------
//---------------------------------------

type EpisodeWatchedRequest struct {
	ViewingId     int `json:"visualizacionId"`
	SeasonTmdbId  int `json:"temporadaId"`
	EpisodeTmdbId int `json:"episodioId"`
}

// EpisodeBulkRes reports the outcome of a batch mark. Requests that fail
// ownership, content-type or duplicate checks land in Skipped; the batch
// never aborts on them.
type EpisodeBulkRes struct {
	Marked  []EpisodeWatchedInfo    `json:"marcados"`
	Skipped []EpisodeWatchedRequest `json:"omitidos"`
}

type EpisodeWatchedInfo struct {
	Id            int       `json:"id"`
	SeasonTmdbId  int       `json:"temporadaId"`
	EpisodeTmdbId int       `json:"episodioId"`
	WatchedAt     time.Time `json:"fechaVisto"`
}

func (e *EpisodeWatched) Info() *EpisodeWatchedInfo {
	return &EpisodeWatchedInfo{
		Id:            e.EpisodeId,
		SeasonTmdbId:  e.SeasonTmdbId,
		EpisodeTmdbId: e.EpisodeTmdbId,
		WatchedAt:     e.WatchedAt,
	}
}
