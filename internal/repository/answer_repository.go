package repository

import (
	"context"

	"github.com/quizdesk/quizdesk/internal/model"
	"github.com/quizdesk/quizdesk/internal/scoring"
	"gorm.io/gorm"
)

// QuestionDifficulty aggregates answers per question of a test.
type QuestionDifficulty struct {
	QuestionID     string
	Text           string
	TotalAnswers   int64
	CorrectAnswers int64
}

type AnswerRepository interface {
	WithTx(tx *gorm.DB) AnswerRepository
	FindByIDs(ctx context.Context, ids []uint) ([]model.Answer, error)
	FindByResultID(ctx context.Context, resultID uint) ([]model.Answer, error)
	FindPendingByResultID(ctx context.Context, resultID uint) ([]model.Answer, error)
	ApplyVerdict(ctx context.Context, id uint, isCorrect bool) error
	Difficulty(ctx context.Context, testID string) ([]QuestionDifficulty, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) WithTx(tx *gorm.DB) AnswerRepository {
	return &answerRepository{db: tx}
}

func (r *answerRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Answer, error) {
	if len(ids) == 0 {
		return []model.Answer{}, nil
	}
	var answers []model.Answer
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&answers).Error
	return answers, err
}

func (r *answerRepository) FindByResultID(ctx context.Context, resultID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.WithContext(ctx).Where("result_id = ?", resultID).Order("id ASC").Find(&answers).Error
	return answers, err
}

func (r *answerRepository) FindPendingByResultID(ctx context.Context, resultID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.WithContext(ctx).
		Where("result_id = ? AND review_status = ?", resultID, string(scoring.ReviewPending)).
		Order("id ASC").
		Find(&answers).Error
	return answers, err
}

func (r *answerRepository) ApplyVerdict(ctx context.Context, id uint, isCorrect bool) error {
	return r.db.WithContext(ctx).Model(&model.Answer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_correct":    isCorrect,
			"review_status": model.ReviewStatusFor(isCorrect),
		}).Error
}

func (r *answerRepository) Difficulty(ctx context.Context, testID string) ([]QuestionDifficulty, error) {
	var rows []QuestionDifficulty
	err := r.db.WithContext(ctx).Model(&model.Answer{}).
		Select("questions.id AS question_id, questions.text AS text, COUNT(answers.id) AS total_answers, "+
			"COALESCE(SUM(CASE WHEN answers.is_correct THEN 1 ELSE 0 END), 0) AS correct_answers").
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("questions.test_id = ?", testID).
		Group("questions.id, questions.text").
		Scan(&rows).Error
	return rows, err
}
