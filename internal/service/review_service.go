package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/quizdesk/quizdesk/internal/apperror"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/model"
	"github.com/quizdesk/quizdesk/internal/notifier"
	"github.com/quizdesk/quizdesk/internal/repository"
	"github.com/quizdesk/quizdesk/internal/scoring"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ReviewService lets a reviewer judge free-text answers.
type ReviewService interface {
	ListPending(ctx context.Context, resultID uint) ([]dto.PendingAnswerDTO, error)
	SubmitBatch(ctx context.Context, verdicts []dto.VerdictDTO) (*dto.ResultSummaryDTO, error)
}

type reviewService struct {
	db           *gorm.DB
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	resultRepo   repository.ResultRepository
	answerRepo   repository.AnswerRepository
	assistant    ReviewAssistant
	publisher    notifier.Publisher
}

func NewReviewService(
	db *gorm.DB,
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	resultRepo repository.ResultRepository,
	answerRepo repository.AnswerRepository,
	assistant ReviewAssistant,
	publisher notifier.Publisher,
) ReviewService {
	return &reviewService{
		db:           db,
		testRepo:     testRepo,
		questionRepo: questionRepo,
		resultRepo:   resultRepo,
		answerRepo:   answerRepo,
		assistant:    assistant,
		publisher:    publisher,
	}
}

func (s *reviewService) ListPending(ctx context.Context, resultID uint) ([]dto.PendingAnswerDTO, error) {
	if _, err := s.resultRepo.FindByID(ctx, resultID); err != nil {
		return nil, notFoundOr(err, "result %d", resultID)
	}
	answers, err := s.answerRepo.FindPendingByResultID(ctx, resultID)
	if err != nil {
		return nil, fmt.Errorf("loading pending answers of result %d: %w", resultID, err)
	}

	ids := make([]string, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a.QuestionID)
	}
	questions, err := s.questionRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("loading questions of result %d: %w", resultID, err)
	}
	texts := make(map[string]string, len(questions))
	for _, q := range questions {
		texts[q.ID] = q.Text
	}

	out := make([]dto.PendingAnswerDTO, 0, len(answers))
	for _, a := range answers {
		item := dto.PendingAnswerDTO{
			AnswerID:     a.ID,
			QuestionID:   a.QuestionID,
			QuestionText: texts[a.QuestionID],
			UserAnswer:   strings.Join(a.Values(), "\n"),
		}
		item.Suggestion = s.suggest(ctx, item)
		out = append(out, item)
	}
	return out, nil
}

func (s *reviewService) suggest(ctx context.Context, item dto.PendingAnswerDTO) *dto.ReviewSuggestionDTO {
	if s.assistant == nil || !s.assistant.Enabled() {
		return nil
	}
	suggestion, err := s.assistant.Suggest(ctx, item.QuestionText, item.UserAnswer)
	if err != nil {
		log.Warn().Err(err).Uint("answerID", item.AnswerID).Msg("Review suggestion unavailable")
		return nil
	}
	return suggestion
}

// SubmitBatch applies all verdicts and recomputes the result, or changes
// nothing. Every verdict must target a pending answer of the same result.
func (s *reviewService) SubmitBatch(ctx context.Context, verdicts []dto.VerdictDTO) (*dto.ResultSummaryDTO, error) {
	if len(verdicts) == 0 {
		return nil, apperror.Validation("verdict batch is empty")
	}
	ids := make([]uint, 0, len(verdicts))
	seen := make(map[uint]bool, len(verdicts))
	for _, v := range verdicts {
		if v.IsCorrect == nil {
			return nil, apperror.Validation("verdict for answer %d has no decision", v.AnswerID)
		}
		if seen[v.AnswerID] {
			return nil, apperror.Validation("answer %d appears twice in the batch", v.AnswerID)
		}
		seen[v.AnswerID] = true
		ids = append(ids, v.AnswerID)
	}

	var (
		result *model.Result
		test   *model.Test
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		answerRepo := s.answerRepo.WithTx(tx)
		resultRepo := s.resultRepo.WithTx(tx)

		resultID, err := s.targetResult(ctx, answerRepo, ids)
		if err != nil {
			return err
		}
		if result, err = resultRepo.FindByIDForUpdate(ctx, resultID); err != nil {
			return notFoundOr(err, "result %d", resultID)
		}

		// Re-read under the row lock so a concurrent reviewer's verdicts are visible.
		locked, err := answerRepo.FindByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("loading answers: %w", err)
		}
		for _, a := range locked {
			if a.ReviewStatus != string(scoring.ReviewPending) {
				return fmt.Errorf("answer %d: %w", a.ID, apperror.ErrAlreadyReviewed)
			}
		}
		for _, v := range verdicts {
			if err := answerRepo.ApplyVerdict(ctx, v.AnswerID, *v.IsCorrect); err != nil {
				return fmt.Errorf("applying verdict to answer %d: %w", v.AnswerID, err)
			}
		}

		if test, err = s.testRepo.WithTx(tx).FindByID(ctx, result.TestID); err != nil {
			return notFoundOr(err, "test %s", result.TestID)
		}
		return s.recompute(ctx, answerRepo, resultRepo, result, test)
	})
	if err != nil {
		log.Error().Err(err).Int("verdicts", len(verdicts)).Msg("SubmitBatch: review rolled back")
		return nil, err
	}

	log.Info().Uint("resultID", result.ID).Str("status", result.Status).Int("percentage", result.Percentage).Msg("Result reviewed")
	emit(s.publisher, notifier.EventResultReviewed, notifier.ResultReviewedPayload{
		ResultID: result.ID,
		FinalResultData: notifier.ReviewedResult{
			ID:         result.ID,
			TestID:     result.TestID,
			FIO:        result.FIO,
			Score:      result.Score,
			Total:      result.Total,
			Percentage: result.Percentage,
			Passed:     result.Passed,
			Status:     result.Status,
			Date:       result.Date,
		},
	})
	summary := summaryDTO(result, test)
	return &summary, nil
}

// targetResult checks that every id exists and that all belong to one result.
func (s *reviewService) targetResult(ctx context.Context, answerRepo repository.AnswerRepository, ids []uint) (uint, error) {
	answers, err := answerRepo.FindByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("loading answers: %w", err)
	}
	found := make(map[uint]model.Answer, len(answers))
	for _, a := range answers {
		found[a.ID] = a
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return 0, apperror.NotFound("answer %d", id)
		}
	}

	resultID := found[ids[0]].ResultID
	for _, id := range ids[1:] {
		if found[id].ResultID != resultID {
			return 0, fmt.Errorf("answers %d and %d: %w", ids[0], id, apperror.ErrMixedResults)
		}
	}
	return resultID, nil
}

// recompute rebuilds the aggregate from every answer of the result and marks
// it completed. Answers still awaiting review count as incorrect.
func (s *reviewService) recompute(
	ctx context.Context,
	answerRepo repository.AnswerRepository,
	resultRepo repository.ResultRepository,
	result *model.Result,
	test *model.Test,
) error {
	answers, err := answerRepo.FindByResultID(ctx, result.ID)
	if err != nil {
		return fmt.Errorf("loading answers of result %d: %w", result.ID, err)
	}
	verdicts := make([]scoring.Verdict, 0, len(answers))
	for _, a := range answers {
		verdicts = append(verdicts, scoring.Verdict{IsCorrect: a.IsCorrect, ReviewStatus: scoring.ReviewStatus(a.ReviewStatus)})
	}

	passing := model.DefaultPassingScore
	if test.Settings != nil {
		passing = test.Settings.PassingScore
	}
	summary := scoring.Recount(verdicts, passing)

	result.Score = summary.Score
	result.Total = summary.Total
	result.Percentage = summary.Percentage
	result.Passed = summary.Passed
	result.Status = model.ResultStatusCompleted
	if err := resultRepo.UpdateAggregate(ctx, result); err != nil {
		return fmt.Errorf("updating result %d: %w", result.ID, err)
	}
	return nil
}
