package repository

import (
	"movie_tracker/model"

	"gorm.io/gorm"
)

type IEpisodeRepository interface {
	Exists(viewingId int, seasonTmdbId int, episodeTmdbId int) (bool, error)
	Create(episode *model.EpisodeWatched) error
	ListByViewing(viewingId int) ([]model.EpisodeWatched, error)
	GetByIdForUser(episodeId int, userId int) (*model.EpisodeWatched, error)
	GetByComposite(viewingId int, seasonTmdbId int, episodeTmdbId int) (*model.EpisodeWatched, error)
	DeleteById(episodeId int) error
}

type EpisodeRepository struct {
	db *gorm.DB
}

func NewEpisodeRepository(db *gorm.DB) *EpisodeRepository {
	return &EpisodeRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *EpisodeRepository) Exists(viewingId int, seasonTmdbId int, episodeTmdbId int) (bool, error) {
	var count int64
	err := r.db.
		Model(&model.EpisodeWatched{}).
		Where("viewing_id = ? AND season_tmdb_id = ? AND episode_tmdb_id = ?",
			viewingId, seasonTmdbId, episodeTmdbId).
		Count(&count).
		Error
	return count > 0, err
}

func (r *EpisodeRepository) Create(episode *model.EpisodeWatched) error {
	return r.db.Create(episode).Error
}

func (r *EpisodeRepository) ListByViewing(viewingId int) ([]model.EpisodeWatched, error) {
	var episodes []model.EpisodeWatched
	err := r.db.
		Model(&model.EpisodeWatched{}).
		Where("viewing_id = ?", viewingId).
		Order("season_tmdb_id ASC, episode_tmdb_id ASC").
		Find(&episodes).
		Error
	return episodes, err
}

// GetByIdForUser joins through the parent viewing so only the owner can reach
// the row.
func (r *EpisodeRepository) GetByIdForUser(episodeId int, userId int) (*model.EpisodeWatched, error) {
	var episode model.EpisodeWatched
	err := r.db.
		Model(&model.EpisodeWatched{}).
		Joins("JOIN viewing_records ON viewing_records.viewing_id = episodes_watched.viewing_id").
		Where("episodes_watched.episode_id = ? AND viewing_records.user_id = ?", episodeId, userId).
		First(&episode).
		Error
	if err != nil {
		return nil, err
	}
	return &episode, nil
}

func (r *EpisodeRepository) GetByComposite(viewingId int, seasonTmdbId int, episodeTmdbId int) (*model.EpisodeWatched, error) {
	var episode model.EpisodeWatched
	err := r.db.
		Model(&model.EpisodeWatched{}).
		Where("viewing_id = ? AND season_tmdb_id = ? AND episode_tmdb_id = ?",
			viewingId, seasonTmdbId, episodeTmdbId).
		First(&episode).
		Error
	if err != nil {
		return nil, err
	}
	return &episode, nil
}

func (r *EpisodeRepository) DeleteById(episodeId int) error {
	res := r.db.Where("episode_id = ?", episodeId).Delete(&model.EpisodeWatched{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
