package notifier

import "time"

// NewResultPayload announces a stored result.
type NewResultPayload struct {
	TestID   string `json:"testId"`
	TestName string `json:"testName"`
	FIO      string `json:"fio"`
	ID       uint   `json:"id"`
}

// ResultReviewedPayload carries the updated row of a reviewed result.
type ResultReviewedPayload struct {
	ResultID        uint           `json:"resultId"`
	FinalResultData ReviewedResult `json:"finalResultData"`
}

// ReviewedResult mirrors every column of the results table.
type ReviewedResult struct {
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
