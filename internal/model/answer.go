package model

import (
	"github.com/quizdesk/quizdesk/internal/scoring"
)

type Answer struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	ResultID     uint   `json:"result_id" gorm:"not null;index"`
	QuestionID   string `json:"question_id" gorm:"type:varchar(36);not null;index"`
	UserAnswer   string `json:"user_answer" gorm:"type:text;not null"`
	IsCorrect    *bool  `json:"is_correct"`
	ReviewStatus string `json:"review_status" gorm:"not null;index;default:'auto'"`
}

// Values returns the submitted values stored in UserAnswer.
func (a Answer) Values() []string {
	return ParseStringList(a.UserAnswer, "user_answer", a.QuestionID)
}

func ReviewStatusFor(isCorrect bool) string {
	if isCorrect {
		return string(scoring.ReviewManualCorrect)
	}
	return string(scoring.ReviewManualIncorrect)
}
