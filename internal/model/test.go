package model

import (
	"time"
)

type Test struct {
	ID          string        `gorm:"primarykey;type:varchar(36)" json:"id"`
	Name        string        `json:"name" gorm:"not null"`
	Description string        `json:"description,omitempty" gorm:"type:text"`
	IsActive    bool          `json:"is_active" gorm:"not null;default:false"`
	Settings    *TestSettings `json:"settings,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Questions   []Question    `json:"questions,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// TestSettings drives delivery and scoring of a test. PassingScore is a
// percentage threshold, never a raw score.
type TestSettings struct {
	TestID           string    `gorm:"primarykey;type:varchar(36)" json:"test_id"`
	QuestionsPerTest int       `json:"questions_per_test" gorm:"not null"`
	DurationMinutes  int       `json:"duration_minutes" gorm:"not null"`
	PassingScore     int       `json:"passing_score" gorm:"not null"`
	UpdatedAt        time.Time `json:"updated_at"`
}

const (
	DefaultDurationMinutes  = 10
	DefaultQuestionsPerTest = 20
	DefaultPassingScore     = 70
)

func DefaultSettings(testID string) TestSettings {
	return TestSettings{
		TestID:           testID,
		QuestionsPerTest: DefaultQuestionsPerTest,
		DurationMinutes:  DefaultDurationMinutes,
		PassingScore:     DefaultPassingScore,
	}
}

// TimeLimit is the attempt budget without the grace period.
func (s TestSettings) TimeLimit() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
