package dto

import model "github.com/Ijadele/task-management/internal/models"

// Pagination is the listing metadata block.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// TaskList is the envelope of GET /tasks.
type TaskList struct {
	Data       []model.Task `json:"data"`
	Pagination Pagination   `json:"pagination"`
}
