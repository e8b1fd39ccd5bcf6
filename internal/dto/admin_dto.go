package dto

import "time"

type CreateTestDTO struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

type RenameTestDTO struct {
	Name string `json:"name" binding:"required,max=255"`
}

type TestStatusDTO struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type TestSettingsDTO struct {
	QuestionsPerTest int `json:"questions_per_test" binding:"required,min=1"`
	DurationMinutes  int `json:"duration_minutes" binding:"required,min=1"`
	PassingScore     int `json:"passing_score" binding:"required,min=1,max=100"`
}

type TestAdminDTO struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	IsActive       bool             `json:"is_active"`
	Settings       *TestSettingsDTO `json:"settings,omitempty"`
	QuestionsCount int64            `json:"questions_count"`
	AttemptsCount  int64            `json:"attempts_count"`
	AvgScore       int              `json:"avg_score"`
	PassRate       int              `json:"pass_rate"`
	CreatedAt      time.Time        `json:"created_at"`
}

// --- Question authoring ---

type OptionInputDTO struct {
	Key  string `json:"key" binding:"required,max=32"`
	Text string `json:"text" binding:"required"`
}

// CreateQuestionDTO carries the payload of one question variant; fields of
// the other variants must be empty.
type CreateQuestionDTO struct {
	Type         string           `json:"type" binding:"required,oneof=checkbox match text_input"`
	Text         string           `json:"text" binding:"required"`
	Explain      string           `json:"explain"`
	Options      []OptionInputDTO `json:"options" binding:"omitempty,dive"`
	CorrectKeys  []string         `json:"correct_keys"`
	MatchPrompts []string         `json:"match_prompts"`
	MatchAnswers []string         `json:"match_answers"`
}

type OptionDTO struct {
	Key      string `json:"key"`
	Text     string `json:"text"`
	Position int    `json:"position"`
}

// QuestionAdminDTO includes the answer keys; never send it to test-takers.
type QuestionAdminDTO struct {
	ID           string      `json:"id"`
	TestID       string      `json:"test_id"`
	Type         string      `json:"type"`
	Text         string      `json:"text"`
	Explain      string      `json:"explain,omitempty"`
	Options      []OptionDTO `json:"options,omitempty"`
	CorrectKeys  []string    `json:"correct_keys,omitempty"`
	MatchPrompts []string    `json:"match_prompts,omitempty"`
	MatchAnswers []string    `json:"match_answers,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// --- Results, review and analytics ---

type ResultListItemDTO struct {
	ID         uint      `json:"id"`
	TestID     string    `json:"test_id"`
	FIO        string    `json:"fio"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Percentage int       `json:"percentage"`
	Passed     bool      `json:"passed"`
	Status     string    `json:"status"`
	Date       time.Time `json:"date"`
}

type ResultPageDTO struct {
	Items []ResultListItemDTO `json:"items"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
	Pages int                 `json:"pages"`
}

type ReviewSuggestionDTO struct {
	LikelyCorrect bool   `json:"likely_correct"`
	Reason        string `json:"reason"`
}

type PendingAnswerDTO struct {
	AnswerID     uint                 `json:"answer_id"`
	QuestionID   string               `json:"question_id"`
	QuestionText string               `json:"question_text"`
	UserAnswer   string               `json:"user_answer"`
	Suggestion   *ReviewSuggestionDTO `json:"suggestion,omitempty"`
}

type TestingSummaryDTO struct {
	TotalTests    int64 `json:"total_tests"`
	TotalAttempts int64 `json:"total_attempts"`
	PassedTests   int64 `json:"passed_tests"`
	AvgResult     int   `json:"avg_result"`
	NeedsReview   int64 `json:"needs_review"`
}

type QuestionDifficultyDTO struct {
	QuestionID     string `json:"question_id"`
	Text           string `json:"text"`
	TotalAnswers   int64  `json:"total_answers"`
	CorrectAnswers int64  `json:"correct_answers"`
	SuccessRate    int    `json:"success_rate"`
}

type ScoreBucketDTO struct {
	Range string `json:"range"` // "0-9", ..., "90-100"
	Count int64  `json:"count"`
}

type PerformerDTO struct {
	FIO           string `json:"fio"`
	MaxPercentage int    `json:"max_percentage"`
	MinPercentage int    `json:"min_percentage"`
}

type TestAnalyticsDTO struct {
	TestID            string                  `json:"test_id"`
	TotalAttempts     int64                   `json:"total_attempts"`
	AvgPercentage     int                     `json:"avg_percentage"`
	PassRate          int                     `json:"pass_rate"`
	HardestQuestions  []QuestionDifficultyDTO `json:"hardest_questions"`
	ScoreDistribution []ScoreBucketDTO        `json:"score_distribution"`
	TopPerformers     []PerformerDTO          `json:"top_performers"`
	Strugglers        []PerformerDTO          `json:"strugglers"`
}
