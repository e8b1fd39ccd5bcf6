package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/quizdesk/quizdesk/internal/model"
	"gorm.io/gorm"
)

// SeedTest stores an active test with the given settings values.
func SeedTest(t testing.TB, db *gorm.DB, name string, perTest, minutes, passing int) model.Test {
	t.Helper()
	id := uuid.NewString()
	test := model.Test{
		ID:       id,
		Name:     name,
		IsActive: true,
		Settings: &model.TestSettings{
			TestID:           id,
			QuestionsPerTest: perTest,
			DurationMinutes:  minutes,
			PassingScore:     passing,
		},
	}
	if err := db.Create(&test).Error; err != nil {
		t.Fatalf("seed test: %v", err)
	}
	return test
}

// SeedChoice stores a checkbox question; keys and texts are parallel.
func SeedChoice(t testing.TB, db *gorm.DB, testID, text string, keys, texts, correct []string) model.Question {
	t.Helper()
	q := model.Question{
		ID:               uuid.NewString(),
		TestID:           testID,
		Type:             model.QuestionTypeCheckbox,
		Text:             text,
		Explain:          "explanation for " + text,
		CorrectOptionKey: model.EncodeStringList(correct),
	}
	for i, k := range keys {
		q.Options = append(q.Options, model.Option{QuestionID: q.ID, Key: k, Text: texts[i], Position: i})
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("seed choice question: %v", err)
	}
	return q
}

func SeedMatch(t testing.TB, db *gorm.DB, testID, text string, prompts, answers []string) model.Question {
	t.Helper()
	q := model.Question{
		ID:           uuid.NewString(),
		TestID:       testID,
		Type:         model.QuestionTypeMatch,
		Text:         text,
		MatchPrompts: model.EncodeStringList(prompts),
		MatchAnswers: model.EncodeStringList(answers),
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("seed match question: %v", err)
	}
	return q
}

func SeedText(t testing.TB, db *gorm.DB, testID, text string) model.Question {
	t.Helper()
	q := model.Question{
		ID:     uuid.NewString(),
		TestID: testID,
		Type:   model.QuestionTypeTextInput,
		Text:   text,
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("seed text question: %v", err)
	}
	return q
}
