package model

import (
	"time"
)

const (
	ResultStatusCompleted     = "completed"
	ResultStatusPendingReview = "pending_review"
)

// Result owns its answers: deleting a result deletes them too.
type Result struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	TestID     string    `json:"test_id" gorm:"type:varchar(36);not null;index"`
	FIO        string    `json:"fio" gorm:"column:fio;not null;index"`
	Score      int       `json:"score" gorm:"not null;default:0"`
	Total      int       `json:"total" gorm:"not null;default:0"`
	Percentage int       `json:"percentage" gorm:"not null;default:0"`
	Passed     bool      `json:"passed" gorm:"not null;default:false"`
	Status     string    `json:"status" gorm:"not null;index;default:'completed'"` // "completed", "pending_review"
	Date       time.Time `json:"date" gorm:"not null;index"`
	Answers    []Answer  `json:"answers,omitempty" gorm:"foreignKey:ResultID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
