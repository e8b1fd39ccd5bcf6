package dto

import "time"

// --- DTOs for delivering a test to a test-taker ---

// DeliveredOptionDTO identifies a choice option by its question and key.
type DeliveredOptionDTO struct {
	QuestionID string `json:"question_id"`
	Key        string `json:"key"`
	Text       string `json:"text"`
}

// DeliveredQuestionDTO never carries correct keys or the ordered match answers.
type DeliveredQuestionDTO struct {
	ID           string               `json:"id"`
	Type         string               `json:"type"`
	Text         string               `json:"text"`
	Options      []DeliveredOptionDTO `json:"options,omitempty"`
	MatchPrompts []string             `json:"match_prompts,omitempty"`
	AnswerPool   []string             `json:"answer_pool,omitempty"` // shuffled candidates for match prompts
}

type DeliveredTestDTO struct {
	TestID          string                 `json:"test_id"`
	Name            string                 `json:"name"`
	Questions       []DeliveredQuestionDTO `json:"questions"`
	DurationMinutes int                    `json:"duration_minutes"`
	StartedAt       *time.Time             `json:"started_at,omitempty"`
}

// PublicTestDTO is used for listing tests available to users.
type PublicTestDTO struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	QuestionsPerTest int       `json:"questions_per_test"`
	DurationMinutes  int       `json:"duration_minutes"`
	PassingScore     int       `json:"passing_score"`
	PassedStatus     *bool     `json:"passed_status,omitempty"` // set only when a fio was given
	CreatedAt        time.Time `json:"created_at"`
}

type AttemptStartedDTO struct {
	TestID          string    `json:"test_id"`
	StartedAt       time.Time `json:"started_at"`
	DurationMinutes int       `json:"duration_minutes"`
}

// --- DTOs for submitting a test ---

// UserAnswerDTO holds option keys for choice questions, the ordered answers
// for match questions, or a single free-text element for text questions.
type UserAnswerDTO struct {
	QuestionID string   `json:"question_id" binding:"required"`
	AnswerIDs  []string `json:"answer_ids"`
}

type SubmitTestDTO struct {
	FIO     string          `json:"fio" binding:"required,max=255"`
	Answers []UserAnswerDTO `json:"answers" binding:"dive"`
}

type ResultSummaryDTO struct {
	ResultID     uint      `json:"result_id"`
	TestID       string    `json:"test_id"`
	TestName     string    `json:"test_name"`
	FIO          string    `json:"fio"`
	Score        int       `json:"score"`
	Total        int       `json:"total"`
	Percentage   int       `json:"percentage"`
	Passed       bool      `json:"passed"`
	PassingScore int       `json:"passing_score"`
	Status       string    `json:"status"`
	Date         time.Time `json:"date"`
}

// ProtocolItemDTO renders one answer of a result. For match questions
// MatchPrompts, Chosen and Correct are aligned by index.
type ProtocolItemDTO struct {
	QuestionID   string   `json:"question_id"`
	QuestionText string   `json:"question_text"`
	Explanation  string   `json:"explanation,omitempty"`
	Type         string   `json:"type"`
	IsCorrect    *bool    `json:"is_correct"`
	ReviewStatus string   `json:"review_status"`
	Chosen       []string `json:"chosen"`
	Correct      []string `json:"correct"`
	MatchPrompts []string `json:"match_prompts,omitempty"`
}

type ProtocolDTO struct {
	Summary  ResultSummaryDTO  `json:"summary"`
	Protocol []ProtocolItemDTO `json:"protocol"`
}

// SubmissionResultDTO hides the score while review is pending.
type SubmissionResultDTO struct {
	Status   string            `json:"status"`
	ResultID uint              `json:"result_id"`
	Summary  *ResultSummaryDTO `json:"summary,omitempty"`
	Protocol []ProtocolItemDTO `json:"protocol,omitempty"`
}
