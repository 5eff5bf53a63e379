package repository

import (
	"movie_tracker/model"
	"time"

	"gorm.io/gorm"
)

type IReviewRepository interface {
	GetByViewingId(viewingId int) (*model.Review, error)
	Create(review *model.Review) error
	UpdateText(reviewId int, text string, hasSpoilers bool, updatedAt time.Time) error
	Delete(viewingId int) error
	GetPublicByContent(contentId int) ([]model.Review, error)
	GetRecent(limit int) ([]model.Review, error)
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *ReviewRepository) GetByViewingId(viewingId int) (*model.Review, error) {
	var review model.Review
	err := r.db.
		Model(&model.Review{}).
		Where("viewing_id = ?", viewingId).
		First(&review).
		Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepository) UpdateText(reviewId int, text string, hasSpoilers bool, updatedAt time.Time) error {
	return r.db.
		Model(&model.Review{}).
		Where("review_id = ?", reviewId).
		UpdateColumns(map[string]interface{}{
			"text":         text,
			"has_spoilers": hasSpoilers,
			"updated_at":   updatedAt,
		}).
		Error
}

func (r *ReviewRepository) Delete(viewingId int) error {
	res := r.db.Where("viewing_id = ?", viewingId).Delete(&model.Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReviewRepository) GetPublicByContent(contentId int) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.
		Model(&model.Review{}).
		Joins("JOIN viewing_records ON viewing_records.viewing_id = reviews.viewing_id").
		Where("viewing_records.content_id = ?", contentId).
		Preload("Viewing").
		Preload("Viewing.User").
		Preload("Viewing.Content").
		Preload("Viewing.ContentType").
		Preload("Viewing.Rating").
		Order("reviews.created_at DESC").
		Find(&reviews).
		Error
	return reviews, err
}

func (r *ReviewRepository) GetRecent(limit int) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.
		Model(&model.Review{}).
		Preload("Viewing").
		Preload("Viewing.User").
		Preload("Viewing.Content").
		Preload("Viewing.ContentType").
		Preload("Viewing.Rating").
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).
		Error
	return reviews, err
}
