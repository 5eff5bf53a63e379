package repository

import (
	"movie_tracker/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IViewingRepository interface {
	EnsureContent(content *model.CachedContent) error
	GetContent(contentId int) (*model.CachedContent, error)
	CreateViewing(viewing *model.ViewingRecord) error
	GetUserViewings(userId int) ([]model.ViewingRecord, error)
	GetViewing(userId int, viewingId int) (*model.ViewingRecord, error)
	GetViewingBare(userId int, viewingId int) (*model.ViewingRecord, error)
	RemoveViewing(viewingId int) error
}

type ViewingRepository struct {
	db *gorm.DB
}

func NewViewingRepository(db *gorm.DB) *ViewingRepository {
	return &ViewingRepository{db: db}
}

//------------------------------------------
//------------------------------------------

// EnsureContent creates the cache row when it does not exist yet. First write
// wins: a later call with a different title for the same id is a no-op.
func (r *ViewingRepository) EnsureContent(content *model.CachedContent) error {
	return r.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(content).
		Error
}

func (r *ViewingRepository) GetContent(contentId int) (*model.CachedContent, error) {
	var content model.CachedContent
	err := r.db.
		Model(&model.CachedContent{}).
		Where("content_id = ?", contentId).
		First(&content).
		Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *ViewingRepository) CreateViewing(viewing *model.ViewingRecord) error {
	return r.db.Create(viewing).Error
}

func (r *ViewingRepository) GetUserViewings(userId int) ([]model.ViewingRecord, error) {
	var viewings []model.ViewingRecord
	err := r.db.
		Model(&model.ViewingRecord{}).
		Preload("Content").
		Preload("ContentType").
		Preload("Rating").
		Preload("Review").
		Preload("EpisodesWatched", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("season_tmdb_id ASC, episode_tmdb_id ASC")
		}).
		Where("user_id = ?", userId).
		Order("watched_at DESC").
		Find(&viewings).
		Error
	return viewings, err
}

// GetViewing joins against the owning user so a record owned by someone else
// is indistinguishable from a missing one.
func (r *ViewingRepository) GetViewing(userId int, viewingId int) (*model.ViewingRecord, error) {
	var viewing model.ViewingRecord
	err := r.db.
		Model(&model.ViewingRecord{}).
		Preload("Content").
		Preload("ContentType").
		Preload("Rating").
		Preload("Review").
		Preload("EpisodesWatched", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("season_tmdb_id ASC, episode_tmdb_id ASC")
		}).
		Where("viewing_id = ? AND user_id = ?", viewingId, userId).
		First(&viewing).
		Error
	if err != nil {
		return nil, err
	}
	return &viewing, nil
}

// GetViewingBare is the ownership check used before mutations, no preloads.
func (r *ViewingRepository) GetViewingBare(userId int, viewingId int) (*model.ViewingRecord, error) {
	var viewing model.ViewingRecord
	err := r.db.
		Model(&model.ViewingRecord{}).
		Where("viewing_id = ? AND user_id = ?", viewingId, userId).
		First(&viewing).
		Error
	if err != nil {
		return nil, err
	}
	return &viewing, nil
}

// RemoveViewing deletes the rating, review and episode rows together with the
// record in one transaction so no orphaned dependents survive.
func (r *ViewingRepository) RemoveViewing(viewingId int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("viewing_id = ?", viewingId).Delete(&model.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("viewing_id = ?", viewingId).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("viewing_id = ?", viewingId).Delete(&model.EpisodeWatched{}).Error; err != nil {
			return err
		}
		return tx.Where("viewing_id = ?", viewingId).Delete(&model.ViewingRecord{}).Error
	})
}
