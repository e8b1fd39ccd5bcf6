package dto

// ErrorResponse is returned for every failed request. Code is set when the
// client has to act on the error, e.g. "restart_required".
type ErrorResponse struct {
	Message string   `json:"message"`
	Code    string   `json:"code,omitempty"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}
