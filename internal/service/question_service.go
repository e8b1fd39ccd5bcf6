package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/quizdesk/quizdesk/internal/apperror"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/model"
	"github.com/quizdesk/quizdesk/internal/repository"
	"github.com/quizdesk/quizdesk/internal/scoring"
	"github.com/rs/zerolog/log"
)

type QuestionService interface {
	CreateQuestion(ctx context.Context, testID string, req dto.CreateQuestionDTO) (*dto.QuestionAdminDTO, error)
	ListQuestions(ctx context.Context, testID string) ([]dto.QuestionAdminDTO, error)
	DeleteQuestion(ctx context.Context, id string) error
}

type questionService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
}

func NewQuestionService(testRepo repository.TestRepository, questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{testRepo: testRepo, questionRepo: questionRepo}
}

func (s *questionService) CreateQuestion(ctx context.Context, testID string, req dto.CreateQuestionDTO) (*dto.QuestionAdminDTO, error) {
	if _, err := s.testRepo.FindByID(ctx, testID); err != nil {
		return nil, notFoundOr(err, "test %s", testID)
	}
	if err := validateQuestion(req); err != nil {
		return nil, err
	}

	q := model.Question{
		ID:      uuid.NewString(),
		TestID:  testID,
		Type:    req.Type,
		Text:    strings.TrimSpace(req.Text),
		Explain: req.Explain,
	}
	switch req.Type {
	case model.QuestionTypeCheckbox:
		q.CorrectOptionKey = model.EncodeStringList(req.CorrectKeys)
		for i, o := range req.Options {
			q.Options = append(q.Options, model.Option{QuestionID: q.ID, Key: strings.TrimSpace(o.Key), Text: o.Text, Position: i})
		}
	case model.QuestionTypeMatch:
		q.MatchPrompts = model.EncodeStringList(req.MatchPrompts)
		q.MatchAnswers = model.EncodeStringList(req.MatchAnswers)
	}

	if err := s.questionRepo.Create(ctx, &q); err != nil {
		log.Error().Err(err).Str("testID", testID).Msg("CreateQuestion: failed to create question")
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	resp := questionAdminDTO(q)
	return &resp, nil
}

func (s *questionService) ListQuestions(ctx context.Context, testID string) ([]dto.QuestionAdminDTO, error) {
	if _, err := s.testRepo.FindByID(ctx, testID); err != nil {
		return nil, notFoundOr(err, "test %s", testID)
	}
	questions, err := s.questionRepo.FindByTestID(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("loading questions of test %s: %w", testID, err)
	}
	out := make([]dto.QuestionAdminDTO, 0, len(questions))
	for _, q := range questions {
		out = append(out, questionAdminDTO(q))
	}
	return out, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id string) error {
	n, err := s.questionRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting question %s: %w", id, err)
	}
	if n == 0 {
		return apperror.NotFound("question %s", id)
	}
	return nil
}

// validateQuestion enforces the per-type payload rules: a choice question
// has at least two options with unique keys and at least one correct key
// among them; a match question has at least two complete pairs.
func validateQuestion(req dto.CreateQuestionDTO) error {
	if strings.TrimSpace(req.Text) == "" {
		return apperror.Validation("question text must not be empty")
	}
	hasMatch := len(req.MatchPrompts) > 0 || len(req.MatchAnswers) > 0
	hasChoice := len(req.Options) > 0 || len(req.CorrectKeys) > 0

	switch req.Type {
	case model.QuestionTypeCheckbox:
		if hasMatch {
			return apperror.Validation("choice question must not have match pairs")
		}
		if len(req.Options) < 2 {
			return apperror.Validation("choice question needs at least 2 options, got %d", len(req.Options))
		}
		keys := make(map[string]bool, len(req.Options))
		for _, o := range req.Options {
			k := strings.TrimSpace(o.Key)
			if k == "" {
				return apperror.Validation("option key must not be empty")
			}
			if keys[k] {
				return apperror.Validation("duplicate option key %q", k)
			}
			keys[k] = true
		}
		if len(req.CorrectKeys) == 0 {
			return apperror.Validation("choice question needs at least 1 correct key")
		}
		for _, k := range req.CorrectKeys {
			if !keys[k] {
				return apperror.Validation("correct key %q is not an option", k)
			}
		}
	case model.QuestionTypeMatch:
		if hasChoice {
			return apperror.Validation("match question must not have options")
		}
		if len(req.MatchPrompts) != len(req.MatchAnswers) {
			return apperror.Validation("match question has %d prompts but %d answers", len(req.MatchPrompts), len(req.MatchAnswers))
		}
		if len(req.MatchPrompts) < 2 {
			return apperror.Validation("match question needs at least 2 pairs, got %d", len(req.MatchPrompts))
		}
		for i := range req.MatchPrompts {
			if strings.TrimSpace(req.MatchPrompts[i]) == "" || strings.TrimSpace(req.MatchAnswers[i]) == "" {
				return apperror.Validation("match pair %d is incomplete", i+1)
			}
			if strings.TrimSpace(req.MatchAnswers[i]) == scoring.EmptySlot {
				return apperror.Validation("match answer %d is the empty-slot marker", i+1)
			}
		}
	case model.QuestionTypeTextInput:
		if hasChoice || hasMatch {
			return apperror.Validation("text question must not have options or match pairs")
		}
	default:
		return apperror.Validation("unknown question type %q", req.Type)
	}
	return nil
}

func questionAdminDTO(q model.Question) dto.QuestionAdminDTO {
	out := dto.QuestionAdminDTO{
		ID:        q.ID,
		TestID:    q.TestID,
		Type:      q.Type,
		Text:      q.Text,
		Explain:   q.Explain,
		CreatedAt: q.CreatedAt,
	}
	_ = copier.Copy(&out.Options, &q.Options)
	switch q.Type {
	case model.QuestionTypeCheckbox:
		out.CorrectKeys = q.CorrectKeys()
	case model.QuestionTypeMatch:
		out.MatchPrompts = q.Prompts()
		out.MatchAnswers = q.Answers()
	}
	return out
}
