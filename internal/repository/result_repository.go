package repository

import (
	"context"
	"strings"

	"github.com/quizdesk/quizdesk/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResultQuery filters and pages the admin result listing. Sort must be one
// of the keys of resultSortColumns; anything else falls back to date.
type ResultQuery struct {
	TestID string
	Search string
	Sort   string
	Order  string
	Page   int
	Limit  int
}

var resultSortColumns = map[string]string{
	"fio":        "fio",
	"score":      "score",
	"percentage": "percentage",
	"date":       "date",
	"status":     "status",
}

type ResultStats struct {
	TotalAttempts     int64
	AveragePercentage float64
	PassedCount       int64
}

type ScoreBucket struct {
	Bucket int
	Count  int64
}

type Performer struct {
	FIO           string `gorm:"column:fio"`
	MaxPercentage int
	MinPercentage int
}

type ResultRepository interface {
	WithTx(tx *gorm.DB) ResultRepository
	Create(ctx context.Context, result *model.Result) error
	FindByID(ctx context.Context, id uint) (*model.Result, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*model.Result, error)
	FindLastPassed(ctx context.Context, testID, fio string) (*model.Result, error)
	HasPassed(ctx context.Context, testID, fio string) (bool, error)
	UpdateAggregate(ctx context.Context, result *model.Result) error
	List(ctx context.Context, q ResultQuery) ([]model.Result, int64, error)
	DeleteByIDs(ctx context.Context, ids []uint) (int64, error)
	DeleteByTestID(ctx context.Context, testID string) (int64, error)
	Stats(ctx context.Context, testID string) (ResultStats, error)
	ScoreBuckets(ctx context.Context, testID string) ([]ScoreBucket, error)
	Performers(ctx context.Context, testID string) ([]Performer, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) WithTx(tx *gorm.DB) ResultRepository {
	return &resultRepository{db: tx}
}

// Create inserts the result and its answers in one statement batch.
// Call it inside a transaction to keep both or neither.
func (r *resultRepository) Create(ctx context.Context, result *model.Result) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *resultRepository) FindByID(ctx context.Context, id uint) (*model.Result, error) {
	var result model.Result
	if err := r.db.WithContext(ctx).First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// FindByIDForUpdate locks the row for the rest of the transaction. SQLite
// has no row locks; its single writer gives the same guarantee.
func (r *resultRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Result, error) {
	var result model.Result
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&result, id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindLastPassed(ctx context.Context, testID, fio string) (*model.Result, error) {
	var result model.Result
	err := r.db.WithContext(ctx).
		Where("test_id = ? AND fio = ? AND passed = ?", testID, fio, true).
		Order("date DESC").
		Order("id DESC").
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) HasPassed(ctx context.Context, testID, fio string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Result{}).
		Where("test_id = ? AND fio = ? AND passed = ?", testID, fio, true).
		Limit(1).
		Count(&n).Error
	return n > 0, err
}

func (r *resultRepository) UpdateAggregate(ctx context.Context, result *model.Result) error {
	return r.db.WithContext(ctx).Model(&model.Result{}).
		Where("id = ?", result.ID).
		Updates(map[string]interface{}{
			"score":      result.Score,
			"total":      result.Total,
			"percentage": result.Percentage,
			"passed":     result.Passed,
			"status":     result.Status,
		}).Error
}

func (r *resultRepository) List(ctx context.Context, q ResultQuery) ([]model.Result, int64, error) {
	base := r.db.WithContext(ctx).Model(&model.Result{}).Where("test_id = ?", q.TestID)
	if q.Search != "" {
		base = base.Where("fio LIKE ?", "%"+q.Search+"%")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := resultSortColumns[q.Sort]
	if !ok {
		column = "date"
	}
	desc := !strings.EqualFold(q.Order, "asc")

	var results []model.Result
	err := base.Session(&gorm.Session{}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order("id DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&results).Error
	return results, total, err
}

// DeleteByIDs removes results together with their answers.
func (r *resultRepository) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("result_id IN ?", ids).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&model.Result{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}

func (r *resultRepository) DeleteByTestID(ctx context.Context, testID string) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&model.Result{}).Select("id").Where("test_id = ?", testID)
		if err := tx.Where("result_id IN (?)", sub).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		res := tx.Where("test_id = ?", testID).Delete(&model.Result{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}

// Stats aggregates results of one test, or of all tests when testID is
// empty. Pending results count as attempts but not towards the average.
func (r *resultRepository) Stats(ctx context.Context, testID string) (ResultStats, error) {
	var stats ResultStats
	q := r.db.WithContext(ctx).Model(&model.Result{}).
		Select("COUNT(id) AS total_attempts, "+
			"COALESCE(AVG(CASE WHEN status = ? THEN percentage END), 0) AS average_percentage, "+
			"COALESCE(SUM(CASE WHEN passed THEN 1 ELSE 0 END), 0) AS passed_count", model.ResultStatusCompleted)
	if testID != "" {
		q = q.Where("test_id = ?", testID)
	}
	err := q.Scan(&stats).Error
	return stats, err
}

func (r *resultRepository) ScoreBuckets(ctx context.Context, testID string) ([]ScoreBucket, error) {
	var buckets []ScoreBucket
	err := r.db.WithContext(ctx).Model(&model.Result{}).
		Select("(percentage / 10) * 10 AS bucket, COUNT(id) AS count").
		Where("test_id = ? AND status = ?", testID, model.ResultStatusCompleted).
		Group("bucket").
		Order("bucket").
		Scan(&buckets).Error
	return buckets, err
}

func (r *resultRepository) Performers(ctx context.Context, testID string) ([]Performer, error) {
	var performers []Performer
	err := r.db.WithContext(ctx).Model(&model.Result{}).
		Select("fio, MAX(percentage) AS max_percentage, MIN(percentage) AS min_percentage").
		Where("test_id = ? AND status = ?", testID, model.ResultStatusCompleted).
		Group("fio").
		Order("fio").
		Scan(&performers).Error
	return performers, err
}

func (r *resultRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Result{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Count(&n).Error
	return n, err
}
