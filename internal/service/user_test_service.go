package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/quizdesk/quizdesk/internal/apperror"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

// UserTestService lists the tests a test-taker may start.
type UserTestService interface {
	// ListActive marks each test as passed or not when fio is non-empty.
	ListActive(ctx context.Context, fio string) ([]dto.PublicTestDTO, error)
	GetActive(ctx context.Context, testID string) (*dto.PublicTestDTO, error)
}

type userTestService struct {
	testRepo   repository.TestRepository
	resultRepo repository.ResultRepository
}

func NewUserTestService(testRepo repository.TestRepository, resultRepo repository.ResultRepository) UserTestService {
	return &userTestService{testRepo: testRepo, resultRepo: resultRepo}
}

func (s *userTestService) ListActive(ctx context.Context, fio string) ([]dto.PublicTestDTO, error) {
	tests, err := s.testRepo.FindActive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get active tests from repository")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}

	dtos := make([]dto.PublicTestDTO, 0, len(tests))
	if err := copier.Copy(&dtos, &tests); err != nil {
		return nil, fmt.Errorf("error preparing tests response: %w", err)
	}

	fio = strings.TrimSpace(fio)
	if fio == "" {
		return dtos, nil
	}
	for i := range dtos {
		passed, err := s.resultRepo.HasPassed(ctx, dtos[i].ID, fio)
		if err != nil {
			return nil, fmt.Errorf("checking passed status of test %s: %w", dtos[i].ID, err)
		}
		dtos[i].PassedStatus = &passed
	}
	return dtos, nil
}

// GetActive fails with NotFound for unknown, inactive or unconfigured tests.
func (s *userTestService) GetActive(ctx context.Context, testID string) (*dto.PublicTestDTO, error) {
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		return nil, notFoundOr(err, "test %s", testID)
	}
	if !test.IsActive {
		return nil, apperror.NotFound("active test %s", testID)
	}
	if test.Settings == nil {
		return nil, apperror.NotFound("settings for test %s", testID)
	}
	return &dto.PublicTestDTO{
		ID:               test.ID,
		Name:             test.Name,
		QuestionsPerTest: test.Settings.QuestionsPerTest,
		DurationMinutes:  test.Settings.DurationMinutes,
		PassingScore:     test.Settings.PassingScore,
		CreatedAt:        test.CreatedAt,
	}, nil
}
