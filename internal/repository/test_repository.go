package repository

import (
	"context"
	"time"

	"github.com/quizdesk/quizdesk/internal/model"
	"gorm.io/gorm"
)

// TestWithStats is a test row joined with its settings and aggregated
// attempt statistics.
type TestWithStats struct {
	model.Test
	QuestionsCount int64
	AttemptsCount  int64
	AvgScore       int
	PassRate       int
}

// ActiveTest is what the public listing needs about a published test.
type ActiveTest struct {
	ID               string
	Name             string
	QuestionsPerTest int
	PassingScore     int
	DurationMinutes  int
	CreatedAt        time.Time
}

type TestRepository interface {
	WithTx(tx *gorm.DB) TestRepository
	Create(ctx context.Context, test *model.Test) error
	FindByID(ctx context.Context, id string) (*model.Test, error)
	FindSettings(ctx context.Context, testID string) (*model.TestSettings, error)
	SaveSettings(ctx context.Context, settings *model.TestSettings) error
	FindAllWithStats(ctx context.Context) ([]TestWithStats, error)
	FindActive(ctx context.Context) ([]ActiveTest, error)
	UpdateName(ctx context.Context, id, name string) (int64, error)
	UpdateStatus(ctx context.Context, id string, active bool) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) WithTx(tx *gorm.DB) TestRepository {
	return &testRepository{db: tx}
}

func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	// Settings are created through the has-one association.
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *testRepository) FindByID(ctx context.Context, id string) (*model.Test, error) {
	var test model.Test
	if err := r.db.WithContext(ctx).Preload("Settings").First(&test, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindSettings(ctx context.Context, testID string) (*model.TestSettings, error) {
	var settings model.TestSettings
	if err := r.db.WithContext(ctx).First(&settings, "test_id = ?", testID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *testRepository) SaveSettings(ctx context.Context, settings *model.TestSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

func (r *testRepository) FindAllWithStats(ctx context.Context) ([]TestWithStats, error) {
	db := r.db.WithContext(ctx)

	var tests []model.Test
	if err := db.Preload("Settings").Order("created_at DESC").Find(&tests).Error; err != nil {
		return nil, err
	}

	var questionCounts []struct {
		TestID string
		Count  int64
	}
	if err := db.Model(&model.Question{}).
		Select("test_id, COUNT(id) AS count").
		Group("test_id").
		Scan(&questionCounts).Error; err != nil {
		return nil, err
	}

	var resultStats []struct {
		TestID      string
		Attempts    int64
		AvgScore    float64
		PassedCount int64
	}
	if err := db.Model(&model.Result{}).
		Select("test_id, COUNT(id) AS attempts, COALESCE(AVG(percentage), 0) AS avg_score, " +
			"COALESCE(SUM(CASE WHEN passed THEN 1 ELSE 0 END), 0) AS passed_count").
		Group("test_id").
		Scan(&resultStats).Error; err != nil {
		return nil, err
	}

	qByTest := make(map[string]int64, len(questionCounts))
	for _, qc := range questionCounts {
		qByTest[qc.TestID] = qc.Count
	}

	out := make([]TestWithStats, 0, len(tests))
	for _, t := range tests {
		row := TestWithStats{Test: t, QuestionsCount: qByTest[t.ID]}
		for _, rs := range resultStats {
			if rs.TestID != t.ID {
				continue
			}
			row.AttemptsCount = rs.Attempts
			row.AvgScore = roundInt(rs.AvgScore)
			if rs.Attempts > 0 {
				row.PassRate = roundInt(float64(rs.PassedCount) * 100 / float64(rs.Attempts))
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *testRepository) FindActive(ctx context.Context) ([]ActiveTest, error) {
	var tests []ActiveTest
	err := r.db.WithContext(ctx).Model(&model.Test{}).
		Select("tests.id, tests.name, tests.created_at, test_settings.questions_per_test, test_settings.passing_score, test_settings.duration_minutes").
		Joins("JOIN test_settings ON test_settings.test_id = tests.id").
		Where("tests.is_active = ?", true).
		Order("tests.created_at DESC").
		Scan(&tests).Error
	return tests, err
}

func (r *testRepository) UpdateName(ctx context.Context, id, name string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Test{}).Where("id = ?", id).Update("name", name)
	return res.RowsAffected, res.Error
}

func (r *testRepository) UpdateStatus(ctx context.Context, id string, active bool) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Test{}).Where("id = ?", id).Update("is_active", active)
	return res.RowsAffected, res.Error
}

// Delete removes the test. Questions, options and settings go through the
// foreign key cascade; results are removed by the caller.
func (r *testRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Test{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *testRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Test{}).Count(&n).Error
	return n, err
}
