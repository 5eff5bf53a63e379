package service

import (
	"errors"
	"movie_tracker/db"
	"movie_tracker/internal/repository"
	"movie_tracker/model"
	"time"

	"gorm.io/gorm"
)

type IEpisodeService interface {
	MarkWatched(userId int, req *model.EpisodeWatchedRequest) (*model.EpisodeWatchedInfo, error)
	MarkWatchedBulk(userId int, reqs []model.EpisodeWatchedRequest) (*model.EpisodeBulkRes, error)
	ListWatched(userId int, viewingId int) ([]model.EpisodeWatchedInfo, error)
	Unmark(userId int, episodeId int) error
	UnmarkByComposite(userId int, viewingId int, seasonTmdbId int, episodeTmdbId int) error
}

type EpisodeService struct {
	episodeRepo repository.IEpisodeRepository
	viewingRepo repository.IViewingRepository
}

func NewEpisodeService(episodeRepo repository.IEpisodeRepository, viewingRepo repository.IViewingRepository) *EpisodeService {
	return &EpisodeService{
		episodeRepo: episodeRepo,
		viewingRepo: viewingRepo,
	}
}

//------------------------------------------
//------------------------------------------

func (s *EpisodeService) MarkWatched(userId int, req *model.EpisodeWatchedRequest) (*model.EpisodeWatchedInfo, error) {
	viewing, err := s.ownedSeriesViewing(userId, req.ViewingId)
	if err != nil {
		return nil, err
	}

	seen, err := s.episodeRepo.Exists(viewing.ViewingId, req.SeasonTmdbId, req.EpisodeTmdbId)
	if err != nil {
		return nil, err
	}
	if seen {
		return nil, ErrAlreadyMarked
	}

	episode := &model.EpisodeWatched{
		ViewingId:     viewing.ViewingId,
		SeasonTmdbId:  req.SeasonTmdbId,
		EpisodeTmdbId: req.EpisodeTmdbId,
		WatchedAt:     time.Now(),
	}
	if err := s.episodeRepo.Create(episode); err != nil {
		// concurrent mark on the same triple loses at the unique index
		if db.IsUniqueViolationError(err) {
			return nil, ErrAlreadyMarked
		}
		return nil, err
	}
	return episode.Info(), nil
}

// MarkWatchedBulk applies every request of the batch independently, so a
// batch may span viewings. Requests failing the ownership, content-type or
// duplicate checks are skipped; the batch itself never aborts on them.
func (s *EpisodeService) MarkWatchedBulk(userId int, reqs []model.EpisodeWatchedRequest) (*model.EpisodeBulkRes, error) {
	res := &model.EpisodeBulkRes{
		Marked:  []model.EpisodeWatchedInfo{},
		Skipped: []model.EpisodeWatchedRequest{},
	}
	for i := range reqs {
		req := reqs[i]

		if _, err := s.ownedSeriesViewing(userId, req.ViewingId); err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrWrongContentType) {
				res.Skipped = append(res.Skipped, req)
				continue
			}
			return nil, err
		}

		episode := &model.EpisodeWatched{
			ViewingId:     req.ViewingId,
			SeasonTmdbId:  req.SeasonTmdbId,
			EpisodeTmdbId: req.EpisodeTmdbId,
			WatchedAt:     time.Now(),
		}
		if err := s.episodeRepo.Create(episode); err != nil {
			if db.IsUniqueViolationError(err) {
				res.Skipped = append(res.Skipped, req)
				continue
			}
			return nil, err
		}
		res.Marked = append(res.Marked, *episode.Info())
	}
	return res, nil
}

func (s *EpisodeService) ListWatched(userId int, viewingId int) ([]model.EpisodeWatchedInfo, error) {
	if _, err := s.viewingRepo.GetViewingBare(userId, viewingId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	episodes, err := s.episodeRepo.ListByViewing(viewingId)
	if err != nil {
		return nil, err
	}

	res := make([]model.EpisodeWatchedInfo, 0, len(episodes))
	for i := range episodes {
		res = append(res, *episodes[i].Info())
	}
	return res, nil
}

func (s *EpisodeService) Unmark(userId int, episodeId int) error {
	episode, err := s.episodeRepo.GetByIdForUser(episodeId, userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEpisodeNotFound
		}
		return err
	}
	return s.episodeRepo.DeleteById(episode.EpisodeId)
}

func (s *EpisodeService) UnmarkByComposite(userId int, viewingId int, seasonTmdbId int, episodeTmdbId int) error {
	if _, err := s.viewingRepo.GetViewingBare(userId, viewingId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	episode, err := s.episodeRepo.GetByComposite(viewingId, seasonTmdbId, episodeTmdbId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEpisodeNotFound
		}
		return err
	}
	return s.episodeRepo.DeleteById(episode.EpisodeId)
}

//------------------------------------------
//------------------------------------------

// ownedSeriesViewing loads the caller's viewing and rejects movie records,
// episode progress only exists for series.
func (s *EpisodeService) ownedSeriesViewing(userId int, viewingId int) (*model.ViewingRecord, error) {
	viewing, err := s.viewingRepo.GetViewingBare(userId, viewingId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if viewing.TypeId != model.ContentTypeSeries {
		return nil, ErrWrongContentType
	}
	return viewing, nil
}
