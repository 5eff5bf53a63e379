package repository

import (
	"movie_tracker/model"
	"time"

	"gorm.io/gorm"
)

type IRatingRepository interface {
	GetByViewingId(viewingId int) (*model.Rating, error)
	Create(rating *model.Rating) error
	UpdateScore(ratingId int, score float64, updatedAt time.Time) error
	Delete(viewingId int) error
	ContentAverage(contentId int) (*float64, int64, error)
}

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *RatingRepository) GetByViewingId(viewingId int) (*model.Rating, error) {
	var rating model.Rating
	err := r.db.
		Model(&model.Rating{}).
		Where("viewing_id = ?", viewingId).
		First(&rating).
		Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) Create(rating *model.Rating) error {
	return r.db.Create(rating).Error
}

func (r *RatingRepository) UpdateScore(ratingId int, score float64, updatedAt time.Time) error {
	return r.db.
		Model(&model.Rating{}).
		Where("rating_id = ?", ratingId).
		UpdateColumns(map[string]interface{}{
			"score":      score,
			"updated_at": updatedAt,
		}).
		Error
}

func (r *RatingRepository) Delete(viewingId int) error {
	res := r.db.Where("viewing_id = ?", viewingId).Delete(&model.Rating{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ContentAverage aggregates every rating whose parent viewing references the
// content. The average comes back nil on an empty set.
func (r *RatingRepository) ContentAverage(contentId int) (*float64, int64, error) {
	type aggRow struct {
		Average *float64
		Total   int64
	}
	var row aggRow

	err := r.db.
		Model(&model.Rating{}).
		Joins("JOIN viewing_records ON viewing_records.viewing_id = ratings.viewing_id").
		Where("viewing_records.content_id = ?", contentId).
		Select("AVG(ratings.score) AS average, COUNT(ratings.rating_id) AS total").
		Scan(&row).
		Error
	if err != nil {
		return nil, 0, err
	}

	return row.Average, row.Total, nil
}
