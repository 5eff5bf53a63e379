package service

import (
	"errors"
	"math"
	"movie_tracker/internal/repository"
	"movie_tracker/model"
	"movie_tracker/pkg/response"
	"time"

	"gorm.io/gorm"
)

type IRatingService interface {
	UpsertRating(userId int, req *model.RatingRequest) (*model.RatingInfo, error)
	GetRating(userId int, viewingId int) (*model.RatingInfo, error)
	DeleteRating(userId int, viewingId int) error
	AverageForContent(contentId int) (*model.ContentAverageRes, error)
}

type RatingService struct {
	ratingRepo  repository.IRatingRepository
	viewingRepo repository.IViewingRepository
}

func NewRatingService(ratingRepo repository.IRatingRepository, viewingRepo repository.IViewingRepository) *RatingService {
	return &RatingService{
		ratingRepo:  ratingRepo,
		viewingRepo: viewingRepo,
	}
}

//------------------------------------------
//------------------------------------------

// UpsertRating creates or replaces the score of the caller's viewing. On
// replace the original CreatedAt is kept, only the score and UpdatedAt move.
func (s *RatingService) UpsertRating(userId int, req *model.RatingRequest) (*model.RatingInfo, error) {
	if req.Score < 1 || req.Score > 10 {
		return nil, NewValidationError(response.InvalidScore)
	}
	score := math.Round(req.Score*10) / 10

	if _, err := s.viewingRepo.GetViewingBare(userId, req.ViewingId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now()
	existing, err := s.ratingRepo.GetByViewingId(req.ViewingId)
	if err == nil {
		if err := s.ratingRepo.UpdateScore(existing.RatingId, score, now); err != nil {
			return nil, err
		}
		existing.Score = score
		existing.UpdatedAt = now
		return existing.Info(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rating := &model.Rating{
		ViewingId: req.ViewingId,
		Score:     score,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.ratingRepo.Create(rating); err != nil {
		return nil, err
	}
	return rating.Info(), nil
}

func (s *RatingService) GetRating(userId int, viewingId int) (*model.RatingInfo, error) {
	if _, err := s.viewingRepo.GetViewingBare(userId, viewingId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rating, err := s.ratingRepo.GetByViewingId(viewingId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return rating.Info(), nil
}

func (s *RatingService) DeleteRating(userId int, viewingId int) error {
	if _, err := s.viewingRepo.GetViewingBare(userId, viewingId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	err := s.ratingRepo.Delete(viewingId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRatingNotFound
	}
	return err
}

// AverageForContent is public, no ownership involved. An unrated content
// returns a nil average with a zero count.
func (s *RatingService) AverageForContent(contentId int) (*model.ContentAverageRes, error) {
	average, total, err := s.ratingRepo.ContentAverage(contentId)
	if err != nil {
		return nil, err
	}

	if average != nil {
		rounded := math.Round(*average*10) / 10
		average = &rounded
	}

	return &model.ContentAverageRes{
		ContentId:    contentId,
		Average:      average,
		TotalRatings: total,
	}, nil
}
