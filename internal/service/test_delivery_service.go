package service

import (
	"context"
	"fmt"
	"math/rand"
	"slices"

	"github.com/quizdesk/quizdesk/internal/apperror"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/model"
	"github.com/quizdesk/quizdesk/internal/repository"
	"github.com/quizdesk/quizdesk/internal/scoring"
	"github.com/rs/zerolog/log"
)

// TestDeliveryService picks the questions of one attempt.
type TestDeliveryService interface {
	PrepareTest(ctx context.Context, testID string) (*dto.DeliveredTestDTO, error)
}

type testDeliveryService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	shuffle      func(n int, swap func(i, j int))
}

func NewTestDeliveryService(testRepo repository.TestRepository, questionRepo repository.QuestionRepository) TestDeliveryService {
	return &testDeliveryService{
		testRepo:     testRepo,
		questionRepo: questionRepo,
		shuffle:      rand.Shuffle,
	}
}

// PrepareTest samples QuestionsPerTest questions without replacement, or all
// of them when the bank is smaller. Answer keys never leave this method.
func (s *testDeliveryService) PrepareTest(ctx context.Context, testID string) (*dto.DeliveredTestDTO, error) {
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		return nil, notFoundOr(err, "test %s", testID)
	}
	if test.Settings == nil {
		return nil, apperror.NotFound("settings for test %s", testID)
	}

	questions, err := s.questionRepo.FindByTestID(ctx, testID)
	if err != nil {
		log.Error().Err(err).Str("testID", testID).Msg("PrepareTest: failed to load questions")
		return nil, fmt.Errorf("loading questions of test %s: %w", testID, err)
	}

	selected := s.sample(questions, test.Settings.QuestionsPerTest)
	delivered := make([]dto.DeliveredQuestionDTO, 0, len(selected))
	for _, q := range selected {
		sq, ok := q.ToScoring()
		if !ok {
			log.Warn().Str("questionID", q.ID).Str("type", q.Type).Msg("PrepareTest: unknown question type, skipping")
			continue
		}
		delivered = append(delivered, s.deliver(sq))
	}

	log.Debug().Str("testID", testID).Int("bank", len(questions)).Int("delivered", len(delivered)).Msg("Test prepared")
	return &dto.DeliveredTestDTO{
		TestID:          test.ID,
		Name:            test.Name,
		Questions:       delivered,
		DurationMinutes: test.Settings.DurationMinutes,
	}, nil
}

func (s *testDeliveryService) sample(questions []model.Question, n int) []model.Question {
	pool := slices.Clone(questions)
	s.shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if n >= 0 && n < len(pool) {
		pool = pool[:n]
	}
	return pool
}

func (s *testDeliveryService) deliver(q scoring.Question) dto.DeliveredQuestionDTO {
	switch q := q.(type) {
	case scoring.ChoiceQuestion:
		out := dto.DeliveredQuestionDTO{ID: q.ID, Type: string(q.Type()), Text: q.Text}
		for _, o := range q.Options {
			out.Options = append(out.Options, dto.DeliveredOptionDTO{QuestionID: o.Ref.QuestionID, Key: o.Ref.Key, Text: o.Text})
		}
		return out
	case scoring.MatchQuestion:
		return dto.DeliveredQuestionDTO{
			ID:           q.ID,
			Type:         string(q.Type()),
			Text:         q.Text,
			MatchPrompts: slices.Clone(q.Prompts),
			AnswerPool:   s.answerPool(q.Answers),
		}
	case scoring.TextQuestion:
		return dto.DeliveredQuestionDTO{ID: q.ID, Type: string(q.Type()), Text: q.Text}
	default:
		return dto.DeliveredQuestionDTO{ID: q.QuestionID(), Type: string(q.Type())}
	}
}

// answerPool shuffles the match answers so that the stored order, which is
// the solution, is never what the client receives.
func (s *testDeliveryService) answerPool(answers []string) []string {
	pool := slices.Clone(answers)
	s.shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > 1 && slices.Equal(pool, answers) {
		pool = append(pool[1:], pool[0])
	}
	return pool
}
