package repository

import (
	"context"

	"github.com/quizdesk/quizdesk/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	WithTx(tx *gorm.DB) QuestionRepository
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id string) (*model.Question, error)
	FindByTestID(ctx context.Context, testID string) ([]model.Question, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Question, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) WithTx(tx *gorm.DB) QuestionRepository {
	return &questionRepository{db: tx}
}

func orderedOptions(db *gorm.DB) *gorm.DB {
	return db.Order("options.position ASC")
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).Preload("Options", orderedOptions).First(&question, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByTestID(ctx context.Context, testID string) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).
		Preload("Options", orderedOptions).
		Where("test_id = ?", testID).
		Order("created_at ASC").
		Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Question, error) {
	if len(ids) == 0 {
		return []model.Question{}, nil
	}
	var questions []model.Question
	err := r.db.WithContext(ctx).
		Preload("Options", orderedOptions).
		Where("id IN ?", ids).
		Find(&questions).Error
	return questions, err
}

func (r *questionRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Question{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
