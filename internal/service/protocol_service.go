package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/model"
	"github.com/quizdesk/quizdesk/internal/repository"
	"github.com/quizdesk/quizdesk/internal/scoring"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ManualReviewSentinel stands in for the correct answer of a text question.
const ManualReviewSentinel = "Requires manual review"

type ProtocolService interface {
	BuildProtocol(ctx context.Context, resultID uint) (*dto.ProtocolDTO, error)
	// FindLastPassedProtocol returns nil without error when the person has
	// not passed the test.
	FindLastPassedProtocol(ctx context.Context, testID, fio string) (*dto.ProtocolDTO, error)
}

type protocolService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	resultRepo   repository.ResultRepository
	answerRepo   repository.AnswerRepository
}

func NewProtocolService(
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	resultRepo repository.ResultRepository,
	answerRepo repository.AnswerRepository,
) ProtocolService {
	return &protocolService{
		testRepo:     testRepo,
		questionRepo: questionRepo,
		resultRepo:   resultRepo,
		answerRepo:   answerRepo,
	}
}

func (s *protocolService) BuildProtocol(ctx context.Context, resultID uint) (*dto.ProtocolDTO, error) {
	result, err := s.resultRepo.FindByID(ctx, resultID)
	if err != nil {
		return nil, notFoundOr(err, "result %d", resultID)
	}
	return s.build(ctx, result)
}

func (s *protocolService) FindLastPassedProtocol(ctx context.Context, testID, fio string) (*dto.ProtocolDTO, error) {
	result, err := s.resultRepo.FindLastPassed(ctx, testID, strings.TrimSpace(fio))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding last passed result of test %s: %w", testID, err)
	}
	return s.build(ctx, result)
}

func (s *protocolService) build(ctx context.Context, result *model.Result) (*dto.ProtocolDTO, error) {
	test, err := s.testRepo.FindByID(ctx, result.TestID)
	if err != nil {
		return nil, notFoundOr(err, "test %s", result.TestID)
	}

	answers, err := s.answerRepo.FindByResultID(ctx, result.ID)
	if err != nil {
		return nil, fmt.Errorf("loading answers of result %d: %w", result.ID, err)
	}
	ids := make([]string, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a.QuestionID)
	}
	questions, err := s.questionRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("loading questions of result %d: %w", result.ID, err)
	}
	byID := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	items := make([]dto.ProtocolItemDTO, 0, len(answers))
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			log.Debug().Uint("resultID", result.ID).Str("questionID", a.QuestionID).Msg("Protocol: question no longer exists, skipping answer")
			continue
		}
		sq, ok := q.ToScoring()
		if !ok {
			continue
		}
		items = append(items, protocolItem(sq, a))
	}

	summary := summaryDTO(result, test)
	return &dto.ProtocolDTO{Summary: summary, Protocol: items}, nil
}

func summaryDTO(result *model.Result, test *model.Test) dto.ResultSummaryDTO {
	out := dto.ResultSummaryDTO{
		ResultID:   result.ID,
		TestID:     result.TestID,
		FIO:        result.FIO,
		Score:      result.Score,
		Total:      result.Total,
		Percentage: result.Percentage,
		Passed:     result.Passed,
		Status:     result.Status,
		Date:       result.Date,
	}
	if test != nil {
		out.TestName = test.Name
		if test.Settings != nil {
			out.PassingScore = test.Settings.PassingScore
		}
	}
	return out
}

func protocolItem(q scoring.Question, a model.Answer) dto.ProtocolItemDTO {
	item := dto.ProtocolItemDTO{
		QuestionID:   a.QuestionID,
		Type:         string(q.Type()),
		IsCorrect:    a.IsCorrect,
		ReviewStatus: a.ReviewStatus,
	}
	values := a.Values()

	switch q := q.(type) {
	case scoring.ChoiceQuestion:
		item.QuestionText, item.Explanation = q.Text, q.Explain
		item.Chosen = optionTexts(q, values)
		item.Correct = optionTexts(q, q.CorrectKeys)
	case scoring.MatchQuestion:
		item.QuestionText, item.Explanation = q.Text, q.Explain
		n := len(q.Prompts)
		if n == 0 {
			n = len(q.Answers)
		}
		item.MatchPrompts = align(q.Prompts, n)
		item.Chosen = align(values, n)
		item.Correct = align(q.Answers, n)
	case scoring.TextQuestion:
		item.QuestionText, item.Explanation = q.Text, q.Explain
		text := strings.TrimSpace(strings.Join(values, "\n"))
		if text == "" {
			text = scoring.EmptySlot
		}
		item.Chosen = []string{text}
		item.Correct = []string{ManualReviewSentinel}
	}
	return item
}

// optionTexts resolves keys to option texts. Unknown keys are dropped; an
// empty outcome becomes the placeholder.
func optionTexts(q scoring.ChoiceQuestion, keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if text, ok := q.OptionText(k); ok {
			out = append(out, text)
		}
	}
	if len(out) == 0 {
		return []string{scoring.EmptySlot}
	}
	return out
}

// align pads or truncates values to n, filling blanks with the placeholder.
func align(values []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		if i < len(values) && strings.TrimSpace(values[i]) != "" {
			out[i] = values[i]
		} else {
			out[i] = scoring.EmptySlot
		}
	}
	return out
}
