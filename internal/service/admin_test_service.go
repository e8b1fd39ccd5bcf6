package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/quizdesk/quizdesk/internal/apperror"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/model"
	"github.com/quizdesk/quizdesk/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AdminTestService interface {
	CreateTest(ctx context.Context, req dto.CreateTestDTO) (*dto.TestAdminDTO, error)
	ListTests(ctx context.Context) ([]dto.TestAdminDTO, error)
	RenameTest(ctx context.Context, id, name string) error
	SetStatus(ctx context.Context, id string, active bool) error
	DeleteTest(ctx context.Context, id string) error
	GetSettings(ctx context.Context, id string) (*dto.TestSettingsDTO, error)
	SaveSettings(ctx context.Context, id string, req dto.TestSettingsDTO) (*dto.TestSettingsDTO, error)
}

type adminTestService struct {
	testRepo   repository.TestRepository
	resultRepo repository.ResultRepository
	db         *gorm.DB
}

func NewAdminTestService(testRepo repository.TestRepository, resultRepo repository.ResultRepository, db *gorm.DB) AdminTestService {
	return &adminTestService{testRepo: testRepo, resultRepo: resultRepo, db: db}
}

// CreateTest stores an inactive test with default settings.
func (s *adminTestService) CreateTest(ctx context.Context, req dto.CreateTestDTO) (*dto.TestAdminDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("test name must not be empty")
	}
	id := uuid.NewString()
	settings := model.DefaultSettings(id)
	test := model.Test{
		ID:          id,
		Name:        name,
		Description: req.Description,
		Settings:    &settings,
	}
	if err := s.testRepo.Create(ctx, &test); err != nil {
		log.Error().Err(err).Str("name", name).Msg("CreateTest: failed to create test")
		return nil, fmt.Errorf("failed to create test: %w", err)
	}
	log.Info().Str("testID", id).Str("name", name).Msg("Test created")

	resp := dto.TestAdminDTO{ID: test.ID, Name: test.Name, Description: test.Description, IsActive: test.IsActive, CreatedAt: test.CreatedAt}
	resp.Settings = settingsDTO(&settings)
	return &resp, nil
}

func (s *adminTestService) ListTests(ctx context.Context) ([]dto.TestAdminDTO, error) {
	rows, err := s.testRepo.FindAllWithStats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ListTests: failed to load tests")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}
	out := make([]dto.TestAdminDTO, 0, len(rows))
	for _, row := range rows {
		item := dto.TestAdminDTO{
			ID:             row.ID,
			Name:           row.Name,
			Description:    row.Description,
			IsActive:       row.IsActive,
			Settings:       settingsDTO(row.Settings),
			QuestionsCount: row.QuestionsCount,
			AttemptsCount:  row.AttemptsCount,
			AvgScore:       row.AvgScore,
			PassRate:       row.PassRate,
			CreatedAt:      row.CreatedAt,
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *adminTestService) RenameTest(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperror.Validation("test name must not be empty")
	}
	n, err := s.testRepo.UpdateName(ctx, id, name)
	if err != nil {
		return fmt.Errorf("renaming test %s: %w", id, err)
	}
	if n == 0 {
		return apperror.NotFound("test %s", id)
	}
	return nil
}

func (s *adminTestService) SetStatus(ctx context.Context, id string, active bool) error {
	n, err := s.testRepo.UpdateStatus(ctx, id, active)
	if err != nil {
		return fmt.Errorf("updating status of test %s: %w", id, err)
	}
	if n == 0 {
		return apperror.NotFound("test %s", id)
	}
	log.Info().Str("testID", id).Bool("active", active).Msg("Test status changed")
	return nil
}

// DeleteTest removes the test with its results in one transaction.
func (s *adminTestService) DeleteTest(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		removed, err := s.resultRepo.WithTx(tx).DeleteByTestID(ctx, id)
		if err != nil {
			return fmt.Errorf("deleting results of test %s: %w", id, err)
		}
		n, err := s.testRepo.WithTx(tx).Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("deleting test %s: %w", id, err)
		}
		if n == 0 {
			return apperror.NotFound("test %s", id)
		}
		log.Info().Str("testID", id).Int64("results", removed).Msg("Test deleted")
		return nil
	})
	return err
}

// GetSettings creates default settings for tests that have none.
func (s *adminTestService) GetSettings(ctx context.Context, id string) (*dto.TestSettingsDTO, error) {
	settings, err := s.testRepo.FindSettings(ctx, id)
	if err == nil {
		return settingsDTO(settings), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("loading settings of test %s: %w", id, err)
	}

	if _, err := s.testRepo.FindByID(ctx, id); err != nil {
		return nil, notFoundOr(err, "test %s", id)
	}
	defaults := model.DefaultSettings(id)
	if err := s.testRepo.SaveSettings(ctx, &defaults); err != nil {
		return nil, fmt.Errorf("creating default settings of test %s: %w", id, err)
	}
	return settingsDTO(&defaults), nil
}

func (s *adminTestService) SaveSettings(ctx context.Context, id string, req dto.TestSettingsDTO) (*dto.TestSettingsDTO, error) {
	if req.PassingScore < 1 || req.PassingScore > 100 {
		return nil, apperror.Validation("passing score must be between 1 and 100, got %d", req.PassingScore)
	}
	if req.QuestionsPerTest < 1 || req.DurationMinutes < 1 {
		return nil, apperror.Validation("questions per test and duration must be positive")
	}
	if _, err := s.testRepo.FindByID(ctx, id); err != nil {
		return nil, notFoundOr(err, "test %s", id)
	}

	var settings model.TestSettings
	if err := copier.Copy(&settings, &req); err != nil {
		return nil, fmt.Errorf("error preparing settings: %w", err)
	}
	settings.TestID = id
	if err := s.testRepo.SaveSettings(ctx, &settings); err != nil {
		return nil, fmt.Errorf("saving settings of test %s: %w", id, err)
	}
	return settingsDTO(&settings), nil
}

func settingsDTO(settings *model.TestSettings) *dto.TestSettingsDTO {
	if settings == nil {
		return nil
	}
	var out dto.TestSettingsDTO
	_ = copier.Copy(&out, settings)
	return &out
}
