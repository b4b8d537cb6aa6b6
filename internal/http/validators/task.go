package validators

import (
	"time"

	"github.com/Ijadele/task-management/internal/constants"
	dto "github.com/Ijadele/task-management/internal/data_models"
	apperrors "github.com/Ijadele/task-management/internal/errors"
)

var dueDateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDueDate accepts RFC 3339 timestamps and plain dates.
func ParseDueDate(raw string) (*time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, apperrors.ErrInvalidDueDate
}

// ValidateCreateTaskRequest gates task creation: a missing title or a
// malformed field stops the operation before anything reaches the store.
// Returns the parsed due date when one was supplied.
func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) (*time.Time, error) {
	if r.Title == "" {
		return nil, apperrors.ErrTitleRequired
	}

	if r.Priority != "" && !constants.Priority(r.Priority).Valid() {
		return nil, apperrors.ErrInvalidPriority
	}

	if r.DueDate == "" {
		return nil, nil
	}
	return ParseDueDate(r.DueDate)
}

// ValidateUpdateTaskRequest applies the same field rules to the subset of
// fields present in an update.
func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) (*time.Time, error) {
	if r.Title != nil && *r.Title == "" {
		return nil, apperrors.ErrTitleRequired
	}

	if r.Priority != nil && !constants.Priority(*r.Priority).Valid() {
		return nil, apperrors.ErrInvalidPriority
	}

	if r.DueDate == nil || *r.DueDate == "" {
		return nil, nil
	}
	return ParseDueDate(*r.DueDate)
}
