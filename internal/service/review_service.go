package service

import (
	"errors"
	"movie_tracker/internal/repository"
	"movie_tracker/model"
	"movie_tracker/pkg/response"
	"strings"
	"time"

	"gorm.io/gorm"
)

// SpoilerPlaceholder replaces the body of a spoiler-flagged review on the
// public listings. The flag itself stays visible.
const SpoilerPlaceholder = "[Esta reseña contiene spoilers]"

type IReviewService interface {
	UpsertReview(userId int, req *model.ReviewRequest) (*model.ReviewInfo, error)
	GetReview(userId int, viewingId int) (*model.ReviewInfo, error)
	DeleteReview(userId int, viewingId int) error
	PublicByContent(contentId int, hideSpoilers bool) ([]model.PublicReviewRes, error)
	Recent(limit int, hideSpoilers bool) ([]model.PublicReviewRes, error)
}

type ReviewService struct {
	reviewRepo  repository.IReviewRepository
	viewingRepo repository.IViewingRepository
}

func NewReviewService(reviewRepo repository.IReviewRepository, viewingRepo repository.IViewingRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		viewingRepo: viewingRepo,
	}
}

//------------------------------------------
//------------------------------------------

// UpsertReview creates or replaces the text of the caller's review. CreatedAt
// is preserved on replace, same as ratings.
func (s *ReviewService) UpsertReview(userId int, req *model.ReviewRequest) (*model.ReviewInfo, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, NewValidationError(response.ReviewTextRequired)
	}

	if _, err := s.viewingRepo.GetViewingBare(userId, req.ViewingId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now()
	existing, err := s.reviewRepo.GetByViewingId(req.ViewingId)
	if err == nil {
		if err := s.reviewRepo.UpdateText(existing.ReviewId, text, req.HasSpoilers, now); err != nil {
			return nil, err
		}
		existing.Text = text
		existing.HasSpoilers = req.HasSpoilers
		existing.UpdatedAt = now
		return existing.Info(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &model.Review{
		ViewingId:   req.ViewingId,
		Text:        text,
		HasSpoilers: req.HasSpoilers,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review.Info(), nil
}

func (s *ReviewService) GetReview(userId int, viewingId int) (*model.ReviewInfo, error) {
	if _, err := s.viewingRepo.GetViewingBare(userId, viewingId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	review, err := s.reviewRepo.GetByViewingId(viewingId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review.Info(), nil
}

func (s *ReviewService) DeleteReview(userId int, viewingId int) error {
	if _, err := s.viewingRepo.GetViewingBare(userId, viewingId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	err := s.reviewRepo.Delete(viewingId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrReviewNotFound
	}
	return err
}

func (s *ReviewService) PublicByContent(contentId int, hideSpoilers bool) ([]model.PublicReviewRes, error) {
	reviews, err := s.reviewRepo.GetPublicByContent(contentId)
	if err != nil {
		return nil, err
	}
	return buildPublicReviews(reviews, hideSpoilers), nil
}

func (s *ReviewService) Recent(limit int, hideSpoilers bool) ([]model.PublicReviewRes, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	reviews, err := s.reviewRepo.GetRecent(limit)
	if err != nil {
		return nil, err
	}
	return buildPublicReviews(reviews, hideSpoilers), nil
}

//------------------------------------------
//------------------------------------------

func buildPublicReviews(reviews []model.Review, hideSpoilers bool) []model.PublicReviewRes {
	res := make([]model.PublicReviewRes, 0, len(reviews))
	for i := range reviews {
		r := &reviews[i]
		item := model.PublicReviewRes{
			ReviewId:    r.ReviewId,
			Text:        r.Text,
			HasSpoilers: r.HasSpoilers,
			CreatedAt:   r.CreatedAt,
		}
		if hideSpoilers && r.HasSpoilers {
			item.Text = SpoilerPlaceholder
		}
		if r.Viewing != nil {
			item.ContentId = r.Viewing.ContentId
			if r.Viewing.User != nil {
				item.Username = r.Viewing.User.Username
			}
			if r.Viewing.Content != nil {
				item.Title = r.Viewing.Content.Title
			}
			if r.Viewing.ContentType != nil {
				item.ContentType = r.Viewing.ContentType.Name
			}
			if r.Viewing.Rating != nil {
				score := r.Viewing.Rating.Score
				item.Score = &score
			}
		}
		res = append(res, item)
	}
	return res
}
