package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/jinzhu/copier"
	"github.com/quizdesk/quizdesk/internal/apperror"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/model"
	"github.com/quizdesk/quizdesk/internal/repository"
	"github.com/quizdesk/quizdesk/internal/scoring"
	"github.com/rs/zerolog/log"
)

const (
	defaultPageSize = 20
	hardestLimit    = 5
	performerLimit  = 5
)

// ResultService backs the admin dashboard.
type ResultService interface {
	ListResults(ctx context.Context, q dto.ResultListQuery) (*dto.ResultPageDTO, error)
	DeleteResults(ctx context.Context, ids []uint) (int64, error)
	Summary(ctx context.Context) (*dto.TestingSummaryDTO, error)
	Analytics(ctx context.Context, testID string) (*dto.TestAnalyticsDTO, error)
}

type resultService struct {
	testRepo   repository.TestRepository
	resultRepo repository.ResultRepository
	answerRepo repository.AnswerRepository
}

func NewResultService(
	testRepo repository.TestRepository,
	resultRepo repository.ResultRepository,
	answerRepo repository.AnswerRepository,
) ResultService {
	return &resultService{testRepo: testRepo, resultRepo: resultRepo, answerRepo: answerRepo}
}

func (s *resultService) ListResults(ctx context.Context, q dto.ResultListQuery) (*dto.ResultPageDTO, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageSize
	}
	results, total, err := s.resultRepo.List(ctx, repository.ResultQuery{
		TestID: q.TestID,
		Search: q.Search,
		Sort:   q.Sort,
		Order:  q.Order,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		log.Error().Err(err).Str("testID", q.TestID).Msg("ListResults: query failed")
		return nil, fmt.Errorf("error fetching results: %w", err)
	}

	items := make([]dto.ResultListItemDTO, 0, len(results))
	if err := copier.Copy(&items, &results); err != nil {
		return nil, fmt.Errorf("error preparing results response: %w", err)
	}
	return &dto.ResultPageDTO{
		Items: items,
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
		Pages: int((total + int64(q.Limit) - 1) / int64(q.Limit)),
	}, nil
}

func (s *resultService) DeleteResults(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, apperror.Validation("no result ids given")
	}
	n, err := s.resultRepo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("deleting results: %w", err)
	}
	log.Info().Int64("deleted", n).Int("requested", len(ids)).Msg("Results deleted")
	return n, nil
}

func (s *resultService) Summary(ctx context.Context) (*dto.TestingSummaryDTO, error) {
	tests, err := s.testRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting tests: %w", err)
	}
	stats, err := s.resultRepo.Stats(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("aggregating results: %w", err)
	}
	pending, err := s.resultRepo.CountByStatus(ctx, model.ResultStatusPendingReview)
	if err != nil {
		return nil, fmt.Errorf("counting pending results: %w", err)
	}
	return &dto.TestingSummaryDTO{
		TotalTests:    tests,
		TotalAttempts: stats.TotalAttempts,
		PassedTests:   stats.PassedCount,
		AvgResult:     roundPercent(stats.AveragePercentage),
		NeedsReview:   pending,
	}, nil
}

func (s *resultService) Analytics(ctx context.Context, testID string) (*dto.TestAnalyticsDTO, error) {
	if _, err := s.testRepo.FindByID(ctx, testID); err != nil {
		return nil, notFoundOr(err, "test %s", testID)
	}
	stats, err := s.resultRepo.Stats(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("aggregating results of test %s: %w", testID, err)
	}
	difficulty, err := s.answerRepo.Difficulty(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("aggregating answers of test %s: %w", testID, err)
	}
	buckets, err := s.resultRepo.ScoreBuckets(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("bucketing results of test %s: %w", testID, err)
	}
	performers, err := s.resultRepo.Performers(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("ranking results of test %s: %w", testID, err)
	}

	out := &dto.TestAnalyticsDTO{
		TestID:            testID,
		TotalAttempts:     stats.TotalAttempts,
		AvgPercentage:     roundPercent(stats.AveragePercentage),
		HardestQuestions:  hardest(difficulty),
		ScoreDistribution: distribution(buckets),
	}
	if stats.TotalAttempts > 0 {
		out.PassRate = scoring.Percentage(int(stats.PassedCount), int(stats.TotalAttempts))
	}
	out.TopPerformers, out.Strugglers = rankPerformers(performers)
	return out, nil
}

func roundPercent(v float64) int {
	return min(max(int(math.Round(v)), 0), 100)
}

// hardest orders questions by success rate, lowest first.
func hardest(rows []repository.QuestionDifficulty) []dto.QuestionDifficultyDTO {
	out := make([]dto.QuestionDifficultyDTO, 0, len(rows))
	for _, r := range rows {
		var item dto.QuestionDifficultyDTO
		_ = copier.Copy(&item, &r)
		item.SuccessRate = scoring.Percentage(int(r.CorrectAnswers), int(r.TotalAnswers))
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SuccessRate != out[j].SuccessRate {
			return out[i].SuccessRate < out[j].SuccessRate
		}
		return out[i].TotalAnswers > out[j].TotalAnswers
	})
	if len(out) > hardestLimit {
		out = out[:hardestLimit]
	}
	return out
}

// distribution returns ten ranges, 0-9 through 90-100, with 100% folded
// into the last one.
func distribution(rows []repository.ScoreBucket) []dto.ScoreBucketDTO {
	out := make([]dto.ScoreBucketDTO, 10)
	for i := range out {
		hi := i*10 + 9
		if i == 9 {
			hi = 100
		}
		out[i] = dto.ScoreBucketDTO{Range: fmt.Sprintf("%d-%d", i*10, hi)}
	}
	for _, r := range rows {
		idx := r.Bucket / 10
		if idx > 9 {
			idx = 9
		}
		if idx < 0 {
			idx = 0
		}
		out[idx].Count += r.Count
	}
	return out
}

func rankPerformers(rows []repository.Performer) (top, bottom []dto.PerformerDTO) {
	all := make([]dto.PerformerDTO, 0, len(rows))
	_ = copier.Copy(&all, &rows)

	top = append(make([]dto.PerformerDTO, 0, len(all)), all...)
	sort.SliceStable(top, func(i, j int) bool { return top[i].MaxPercentage > top[j].MaxPercentage })
	bottom = append(make([]dto.PerformerDTO, 0, len(all)), all...)
	sort.SliceStable(bottom, func(i, j int) bool { return bottom[i].MinPercentage < bottom[j].MinPercentage })

	if len(top) > performerLimit {
		top = top[:performerLimit]
	}
	if len(bottom) > performerLimit {
		bottom = bottom[:performerLimit]
	}
	return top, bottom
}
