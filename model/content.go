package model

import (
	"time"
)

const (
	ContentTypeMovie  = 1
	ContentTypeSeries = 2
)

// ContentType is fixed reference data, seeded at startup: 1=Película, 2=Serie.
type ContentType struct {
	TypeId int    `gorm:"column:type_id;type:integer;primaryKey;" json:"tipoId"`
	Name   string `gorm:"column:name;type:varchar(20);not null;" json:"tipoNombre"`
}

func (ContentType) TableName() string {
	return "content_types"
}

// CachedContent is a local snapshot of a TMDB catalog item, created on the
// first viewing that references the id and never updated afterwards.
// RuntimeMin feeds the watch-time estimate of the statistics engine.
type CachedContent struct {
	ContentId  int       `gorm:"column:content_id;type:integer;primaryKey;" json:"contenidoId"`
	TypeId     int       `gorm:"column:type_id;type:integer;not null;" json:"tipoId"`
	Title      *string   `gorm:"column:title;type:varchar(255);" json:"titulo"`
	RuntimeMin *int      `gorm:"column:runtime_min;type:integer;" json:"-"`
	SyncedAt   time.Time `gorm:"column:synced_at;not null;default:CURRENT_TIMESTAMP;" json:"-"`

	ContentType *ContentType `gorm:"foreignKey:TypeId;references:TypeId;" json:"-"`
}

func (CachedContent) TableName() string {
	return "cached_contents"
}
