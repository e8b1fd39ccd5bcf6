package dto

// ResultListQuery is bound from the query string of the admin result list.
type ResultListQuery struct {
	TestID string `form:"test_id" binding:"required"`
	Search string `form:"search"`
	Sort   string `form:"sort"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

type DeleteResultsDTO struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

type VerdictDTO struct {
	AnswerID  uint  `json:"answer_id" binding:"required"`
	IsCorrect *bool `json:"is_correct" binding:"required"`
}

type ReviewBatchDTO struct {
	Verdicts []VerdictDTO `json:"verdicts" binding:"required,min=1,dive"`
}
