package service

import (
	"math"
	"movie_tracker/configs"
	"movie_tracker/internal/repository"
	"movie_tracker/model"
	"sort"
	"time"
)

type IStatsService interface {
	BasicStats(userId int) (*model.UserStatsRes, error)
	DetailedStats(userId int) (*model.DetailedStatsRes, error)
}

type StatsService struct {
	statsRepo repository.IStatsRepository
}

func NewStatsService(statsRepo repository.IStatsRepository) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
	}
}

//------------------------------------------
//------------------------------------------

func (s *StatsService) BasicStats(userId int) (*model.UserStatsRes, error) {
	viewings, err := s.statsRepo.GetUserViewingsWithRatings(userId)
	if err != nil {
		return nil, err
	}
	totalReviews, err := s.statsRepo.CountReviews(userId)
	if err != nil {
		return nil, err
	}
	totalEpisodes, err := s.statsRepo.CountEpisodes(userId)
	if err != nil {
		return nil, err
	}
	return buildBasicStats(viewings, totalReviews, totalEpisodes), nil
}

func (s *StatsService) DetailedStats(userId int) (*model.DetailedStatsRes, error) {
	viewings, err := s.statsRepo.GetUserViewingsWithRatings(userId)
	if err != nil {
		return nil, err
	}
	totalReviews, err := s.statsRepo.CountReviews(userId)
	if err != nil {
		return nil, err
	}
	totalEpisodes, err := s.statsRepo.CountEpisodes(userId)
	if err != nil {
		return nil, err
	}

	config := configs.GetConfigs()
	res := &model.DetailedStatsRes{
		UserStatsRes:       *buildBasicStats(viewings, totalReviews, totalEpisodes),
		RatingDistribution: buildRatingDistribution(viewings),
		MonthlyActivity:    buildMonthlyActivity(viewings, time.Now()),
		RecentlyWatched:    buildRecentlyWatched(viewings, 5),
		TopRated:           buildTopRated(viewings, 5),
	}

	for i := range viewings {
		if viewings[i].Rating != nil {
			res.TotalRatings++
		}
	}

	res.EstimatedMinutes = estimateMinutes(viewings, totalEpisodes,
		config.DefaultMovieRuntimeMin, config.DefaultEpisodeRuntimeMin)
	res.EstimatedHours = res.EstimatedMinutes / 60
	res.EstimatedDays = res.EstimatedHours / 24
	return res, nil
}

//------------------------------------------
//------------------------------------------

func buildBasicStats(viewings []model.ViewingRecord, totalReviews int64, totalEpisodes int64) *model.UserStatsRes {
	res := &model.UserStatsRes{
		TotalWatched:  int64(len(viewings)),
		TotalReviews:  totalReviews,
		TotalEpisodes: totalEpisodes,
	}

	var ratingSum float64
	var ratingCount int64
	for i := range viewings {
		switch viewings[i].TypeId {
		case model.ContentTypeMovie:
			res.TotalMovies++
		case model.ContentTypeSeries:
			res.TotalSeries++
		}
		if viewings[i].Rating != nil {
			ratingSum += viewings[i].Rating.Score
			ratingCount++
		}
	}
	if ratingCount > 0 {
		average := math.Round(ratingSum/float64(ratingCount)*10) / 10
		res.AverageRating = &average
	}
	return res
}

// estimateMinutes sums movie runtimes (the cached snapshot, or the configured
// default when none was ever supplied) plus a flat per-episode figure.
func estimateMinutes(viewings []model.ViewingRecord, totalEpisodes int64, movieDefault int, episodeDefault int) int64 {
	var minutes int64
	for i := range viewings {
		if viewings[i].TypeId != model.ContentTypeMovie {
			continue
		}
		runtime := movieDefault
		if viewings[i].Content != nil && viewings[i].Content.RuntimeMin != nil {
			runtime = *viewings[i].Content.RuntimeMin
		}
		minutes += int64(runtime)
	}
	minutes += totalEpisodes * int64(episodeDefault)
	return minutes
}

// buildRatingDistribution always returns all ten buckets, zero-filled. Scores
// land in the bucket of their rounded integer value.
func buildRatingDistribution(viewings []model.ViewingRecord) []model.RatingBucket {
	buckets := make([]model.RatingBucket, 10)
	for i := range buckets {
		buckets[i].Score = i + 1
	}
	for i := range viewings {
		if viewings[i].Rating == nil {
			continue
		}
		score := int(math.Round(viewings[i].Rating.Score))
		if score < 1 {
			score = 1
		}
		if score > 10 {
			score = 10
		}
		buckets[score-1].Count++
	}
	return buckets
}

// buildMonthlyActivity covers the trailing twelve calendar months up to and
// including now, oldest first, empty months included.
func buildMonthlyActivity(viewings []model.ViewingRecord, now time.Time) []model.MonthlyActivity {
	type key struct {
		year  int
		month time.Month
	}

	months := make([]model.MonthlyActivity, 0, 12)
	index := make(map[key]int, 12)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -11, 0)
	for i := 0; i < 12; i++ {
		month := start.AddDate(0, i, 0)
		index[key{month.Year(), month.Month()}] = i
		months = append(months, model.MonthlyActivity{Month: month.Format("2006-01")})
	}

	for i := range viewings {
		watched := viewings[i].WatchedAt
		pos, ok := index[key{watched.Year(), watched.Month()}]
		if !ok {
			continue
		}
		switch viewings[i].TypeId {
		case model.ContentTypeMovie:
			months[pos].Movies++
		case model.ContentTypeSeries:
			months[pos].Series++
		}
		months[pos].Total++
	}
	return months
}

func buildRecentlyWatched(viewings []model.ViewingRecord, limit int) []model.StatsContentItem {
	res := make([]model.StatsContentItem, 0, limit)
	for i := range viewings {
		if len(res) == limit {
			break
		}
		res = append(res, statsItem(&viewings[i], true))
	}
	return res
}

// buildTopRated picks the highest rated viewings; equal scores break by
// viewing id ascending so the listing is stable.
func buildTopRated(viewings []model.ViewingRecord, limit int) []model.StatsContentItem {
	rated := make([]*model.ViewingRecord, 0, len(viewings))
	for i := range viewings {
		if viewings[i].Rating != nil {
			rated = append(rated, &viewings[i])
		}
	}
	sort.Slice(rated, func(i, j int) bool {
		if rated[i].Rating.Score != rated[j].Rating.Score {
			return rated[i].Rating.Score > rated[j].Rating.Score
		}
		return rated[i].ViewingId < rated[j].ViewingId
	})

	res := make([]model.StatsContentItem, 0, limit)
	for _, viewing := range rated {
		if len(res) == limit {
			break
		}
		res = append(res, statsItem(viewing, false))
	}
	return res
}

func statsItem(viewing *model.ViewingRecord, withDate bool) model.StatsContentItem {
	item := model.StatsContentItem{
		ContentId: viewing.ContentId,
	}
	if viewing.Content != nil {
		item.Title = viewing.Content.Title
	}
	if viewing.ContentType != nil {
		item.ContentType = viewing.ContentType.Name
	}
	if withDate {
		watched := viewing.WatchedAt
		item.WatchedAt = &watched
	}
	if viewing.Rating != nil {
		score := viewing.Rating.Score
		item.Score = &score
	}
	return item
}
