package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/quizdesk/quizdesk/config"
	"github.com/quizdesk/quizdesk/internal/apperror"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/model"
	"github.com/quizdesk/quizdesk/internal/notifier"
	"github.com/quizdesk/quizdesk/internal/repository"
	"github.com/quizdesk/quizdesk/internal/scoring"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmitCommand is one finished attempt. StartedAt comes from the attempt
// tracker, never from the client.
type SubmitCommand struct {
	TestID    string
	FIO       string
	Answers   []dto.UserAnswerDTO
	StartedAt time.Time
}

// TestSubmissionService scores and stores finished attempts.
type TestSubmissionService interface {
	SubmitResult(ctx context.Context, cmd SubmitCommand) (*dto.SubmissionResultDTO, error)
}

type testSubmissionService struct {
	db           *gorm.DB // Used for transactions within service methods
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	resultRepo   repository.ResultRepository
	protocols    ProtocolService
	publisher    notifier.Publisher
	grace        time.Duration
	now          func() time.Time
}

func NewTestSubmissionService(
	db *gorm.DB,
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	resultRepo repository.ResultRepository,
	protocols ProtocolService,
	publisher notifier.Publisher,
	cfg *config.Config,
) TestSubmissionService {
	grace := config.DefaultGracePeriod
	if cfg != nil && cfg.Submission.GracePeriod > 0 {
		grace = cfg.Submission.GracePeriod
	}
	return &testSubmissionService{
		db:           db,
		testRepo:     testRepo,
		questionRepo: questionRepo,
		resultRepo:   resultRepo,
		protocols:    protocols,
		publisher:    publisher,
		grace:        grace,
		now:          time.Now,
	}
}

// SubmitResult rejects late submissions entirely. Answers to questions that
// are not in the test's bank are skipped and do not count.
func (s *testSubmissionService) SubmitResult(ctx context.Context, cmd SubmitCommand) (*dto.SubmissionResultDTO, error) {
	fio := strings.TrimSpace(cmd.FIO)
	if fio == "" {
		return nil, apperror.Validation("fio must not be empty")
	}

	test, err := s.testRepo.FindByID(ctx, cmd.TestID)
	if err != nil {
		return nil, notFoundOr(err, "test %s", cmd.TestID)
	}
	if test.Settings == nil {
		return nil, apperror.NotFound("settings for test %s", cmd.TestID)
	}

	now := s.now()
	deadline := cmd.StartedAt.Add(test.Settings.TimeLimit() + s.grace)
	if now.After(deadline) {
		log.Info().Str("testID", cmd.TestID).Str("fio", fio).Dur("late", now.Sub(deadline)).Msg("SubmitResult: time limit exceeded")
		return nil, fmt.Errorf("test %s: %w", cmd.TestID, apperror.ErrTimeExpired)
	}

	answers, verdicts, err := s.evaluate(ctx, cmd)
	if err != nil {
		return nil, err
	}
	summary := scoring.Summarize(verdicts, test.Settings.PassingScore)

	result := model.Result{
		TestID:     test.ID,
		FIO:        fio,
		Score:      summary.Score,
		Total:      summary.Total,
		Percentage: summary.Percentage,
		Passed:     summary.Passed,
		Status:     model.ResultStatusCompleted,
		Date:       now,
		Answers:    answers,
	}
	if summary.PendingReview {
		result.Status = model.ResultStatusPendingReview
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.resultRepo.WithTx(tx).Create(ctx, &result); err != nil {
			return fmt.Errorf("failed to create result record: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("testID", test.ID).Msg("SubmitResult: transaction failed")
		return nil, err
	}

	log.Info().Uint("resultID", result.ID).Str("testID", test.ID).Str("status", result.Status).
		Int("score", result.Score).Int("total", result.Total).Msg("Result stored")
	emit(s.publisher, notifier.EventNewResult, notifier.NewResultPayload{
		TestID:   test.ID,
		TestName: test.Name,
		FIO:      result.FIO,
		ID:       result.ID,
	})

	if summary.PendingReview {
		return &dto.SubmissionResultDTO{Status: result.Status, ResultID: result.ID}, nil
	}

	resp := &dto.SubmissionResultDTO{Status: result.Status, ResultID: result.ID}
	protocol, err := s.protocols.BuildProtocol(ctx, result.ID)
	if err != nil {
		// The result is committed; answer with the summary alone.
		log.Error().Err(err).Uint("resultID", result.ID).Msg("SubmitResult: failed to build protocol")
		sum := summaryDTO(&result, test)
		resp.Summary = &sum
		return resp, nil
	}
	resp.Summary = &protocol.Summary
	resp.Protocol = protocol.Protocol
	return resp, nil
}

func (s *testSubmissionService) evaluate(ctx context.Context, cmd SubmitCommand) ([]model.Answer, []scoring.Verdict, error) {
	ids := make([]string, 0, len(cmd.Answers))
	for _, a := range cmd.Answers {
		ids = append(ids, a.QuestionID)
	}
	questions, err := s.questionRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("loading submitted questions: %w", err)
	}
	bank := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		if q.TestID == cmd.TestID {
			bank[q.ID] = q
		}
	}

	seen := make(map[string]bool, len(cmd.Answers))
	answers := make([]model.Answer, 0, len(cmd.Answers))
	verdicts := make([]scoring.Verdict, 0, len(cmd.Answers))
	for _, ua := range cmd.Answers {
		q, ok := bank[ua.QuestionID]
		if !ok {
			log.Warn().Str("questionID", ua.QuestionID).Str("testID", cmd.TestID).Msg("SubmitResult: answer for a question not part of this test, skipping")
			continue
		}
		if seen[ua.QuestionID] {
			log.Warn().Str("questionID", ua.QuestionID).Msg("SubmitResult: duplicate answer, keeping the first")
			continue
		}
		seen[ua.QuestionID] = true

		sq, ok := q.ToScoring()
		if !ok {
			log.Warn().Str("questionID", q.ID).Str("type", q.Type).Msg("SubmitResult: unknown question type, skipping")
			continue
		}
		v := scoring.Evaluate(sq, scoring.Submission{QuestionID: q.ID, Values: ua.AnswerIDs})
		verdicts = append(verdicts, v)
		answers = append(answers, model.Answer{
			QuestionID:   q.ID,
			UserAnswer:   model.EncodeStringList(ua.AnswerIDs),
			IsCorrect:    v.IsCorrect,
			ReviewStatus: string(v.ReviewStatus),
		})
	}
	return answers, verdicts, nil
}
