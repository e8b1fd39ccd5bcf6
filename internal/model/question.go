package model

import (
	"time"

	"github.com/quizdesk/quizdesk/internal/scoring"
)

const (
	QuestionTypeCheckbox  = "checkbox"
	QuestionTypeMatch     = "match"
	QuestionTypeTextInput = "text_input"
)

// Question is the stored row. Answer keys and match pairs are JSON arrays
// kept as text; use the typed accessors rather than the raw columns.
type Question struct {
	ID               string    `gorm:"primarykey;type:varchar(36)" json:"id"`
	TestID           string    `json:"test_id" gorm:"type:varchar(36);not null;index"`
	Type             string    `json:"type" gorm:"not null"` // "checkbox", "match", "text_input"
	Text             string    `json:"text" gorm:"type:text;not null"`
	Explain          string    `json:"explain,omitempty" gorm:"type:text"`
	CorrectOptionKey string    `json:"-" gorm:"column:correct_option_key;type:text"`
	MatchPrompts     string    `json:"-" gorm:"type:text"`
	MatchAnswers     string    `json:"-" gorm:"type:text"`
	Options          []Option  `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Option is identified by the pair (QuestionID, Key).
type Option struct {
	ID         uint   `gorm:"primarykey" json:"-"`
	QuestionID string `json:"question_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_option_question_key"`
	Key        string `json:"key" gorm:"not null;uniqueIndex:idx_option_question_key"`
	Text       string `json:"text" gorm:"type:text;not null"`
	Position   int    `json:"position"`
}

func (q Question) CorrectKeys() []string {
	return ParseStringList(q.CorrectOptionKey, "correct_option_key", q.ID)
}

func (q Question) Prompts() []string {
	return ParseStringList(q.MatchPrompts, "match_prompts", q.ID)
}

func (q Question) Answers() []string {
	return ParseStringList(q.MatchAnswers, "match_answers", q.ID)
}

// ToScoring converts the row into the typed variant used by the evaluator.
// ok is false for an unknown type.
func (q Question) ToScoring() (sq scoring.Question, ok bool) {
	base := scoring.Base{ID: q.ID, Text: q.Text, Explain: q.Explain}
	switch q.Type {
	case QuestionTypeCheckbox:
		opts := make([]scoring.Option, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, scoring.Option{Ref: scoring.OptionRef{QuestionID: q.ID, Key: o.Key}, Text: o.Text})
		}
		return scoring.ChoiceQuestion{Base: base, Options: opts, CorrectKeys: q.CorrectKeys()}, true
	case QuestionTypeMatch:
		return scoring.MatchQuestion{Base: base, Prompts: q.Prompts(), Answers: q.Answers()}, true
	case QuestionTypeTextInput:
		return scoring.TextQuestion{Base: base}, true
	default:
		return nil, false
	}
}
