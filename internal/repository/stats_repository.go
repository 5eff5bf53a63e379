package repository

import (
	"movie_tracker/model"

	"gorm.io/gorm"
)

type IStatsRepository interface {
	GetUserViewingsWithRatings(userId int) ([]model.ViewingRecord, error)
	CountReviews(userId int) (int64, error)
	CountEpisodes(userId int) (int64, error)
}

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

//------------------------------------------
//------------------------------------------

// GetUserViewingsWithRatings loads the rows the aggregate engine works on:
// every viewing with its rating, cached content and type, newest first.
func (r *StatsRepository) GetUserViewingsWithRatings(userId int) ([]model.ViewingRecord, error) {
	var viewings []model.ViewingRecord
	err := r.db.
		Model(&model.ViewingRecord{}).
		Preload("Rating").
		Preload("Content").
		Preload("ContentType").
		Where("user_id = ?", userId).
		Order("watched_at DESC").
		Find(&viewings).
		Error
	return viewings, err
}

func (r *StatsRepository) CountReviews(userId int) (int64, error) {
	var count int64
	err := r.db.
		Model(&model.Review{}).
		Joins("JOIN viewing_records ON viewing_records.viewing_id = reviews.viewing_id").
		Where("viewing_records.user_id = ?", userId).
		Count(&count).
		Error
	return count, err
}

func (r *StatsRepository) CountEpisodes(userId int) (int64, error) {
	var count int64
	err := r.db.
		Model(&model.EpisodeWatched{}).
		Joins("JOIN viewing_records ON viewing_records.viewing_id = episodes_watched.viewing_id").
		Where("viewing_records.user_id = ?", userId).
		Count(&count).
		Error
	return count, err
}
