package service

import (
	"errors"
	"movie_tracker/db"
	"movie_tracker/internal/repository"
	"movie_tracker/model"
	"movie_tracker/pkg/response"
	"time"

	"gorm.io/gorm"
)

type IViewingService interface {
	RegisterViewing(userId int, req *model.RegisterViewingRequest) (*model.ViewingResponse, error)
	ListViewings(userId int) ([]model.ViewingResponse, error)
	GetViewing(userId int, viewingId int) (*model.ViewingResponse, error)
	RemoveViewing(userId int, viewingId int) error
}

type ViewingService struct {
	viewingRepo repository.IViewingRepository
}

func NewViewingService(viewingRepo repository.IViewingRepository) *ViewingService {
	return &ViewingService{
		viewingRepo: viewingRepo,
	}
}

//------------------------------------------
//------------------------------------------

func (s *ViewingService) RegisterViewing(userId int, req *model.RegisterViewingRequest) (*model.ViewingResponse, error) {
	if req.TypeId != model.ContentTypeMovie && req.TypeId != model.ContentTypeSeries {
		return nil, NewValidationError(response.InvalidContentType)
	}

	content := &model.CachedContent{
		ContentId:  req.ContentId,
		TypeId:     req.TypeId,
		Title:      req.Title,
		RuntimeMin: req.RuntimeMin,
		SyncedAt:   time.Now(),
	}
	if err := s.viewingRepo.EnsureContent(content); err != nil {
		return nil, err
	}
	// re-read: an earlier registration may own the cache row
	content, err := s.viewingRepo.GetContent(req.ContentId)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	viewing := &model.ViewingRecord{
		UserId:    userId,
		ContentId: req.ContentId,
		TypeId:    req.TypeId,
		WatchedAt: now,
		UpdatedAt: now,
	}
	if err := s.viewingRepo.CreateViewing(viewing); err != nil {
		if db.IsUniqueViolationError(err) {
			return nil, ErrDuplicateViewing
		}
		return nil, err
	}

	contentType := "Película"
	if req.TypeId == model.ContentTypeSeries {
		contentType = "Serie"
	}

	return &model.ViewingResponse{
		ViewingId:       viewing.ViewingId,
		ContentId:       viewing.ContentId,
		Title:           content.Title,
		ContentType:     contentType,
		WatchedAt:       viewing.WatchedAt,
		EpisodesWatched: []model.EpisodeWatchedInfo{},
	}, nil
}

func (s *ViewingService) ListViewings(userId int) ([]model.ViewingResponse, error) {
	viewings, err := s.viewingRepo.GetUserViewings(userId)
	if err != nil {
		return nil, err
	}

	res := make([]model.ViewingResponse, 0, len(viewings))
	for i := range viewings {
		res = append(res, *viewings[i].Response())
	}
	return res, nil
}

func (s *ViewingService) GetViewing(userId int, viewingId int) (*model.ViewingResponse, error) {
	viewing, err := s.viewingRepo.GetViewing(userId, viewingId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return viewing.Response(), nil
}

func (s *ViewingService) RemoveViewing(userId int, viewingId int) error {
	if _, err := s.viewingRepo.GetViewingBare(userId, viewingId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.viewingRepo.RemoveViewing(viewingId)
}
