package access

import (
	"time"

	"github.com/Ijadele/task-management/internal/constants"
)

// ListQuery carries the raw query-string parameters of a task listing.
// Values stay strings here; parsing decisions belong to BuildTaskFilter
// and Paginate.
type ListQuery struct {
	Page      string
	Limit     string
	Category  string
	Completed string
	Priority  string
	Q         string
	Overdue   string
	All       string
	Sort      string
}

// TaskFilter is the composed set of conditions a listing sends to the task
// store. All set clauses are conjoined; Search expands to a case-insensitive
// substring match over title OR description.
type TaskFilter struct {
	OwnerID   string
	Category  *string
	Completed *bool
	Priority  *string
	Search    string
	DueBefore *time.Time
}

// BuildTaskFilter composes the store filter for a task listing. Non-admin
// callers are always scoped to their own tasks; an admin asking for all=true
// sees everything. overdue=true is applied last so it overrides a supplied
// completed value and pins dueDate < now.
func BuildTaskFilter(callerID string, role constants.Role, query ListQuery, now time.Time) TaskFilter {
	var f TaskFilter

	if !(query.All == "true" && role == constants.RoleAdmin) {
		f.OwnerID = callerID
	}
	if query.Category != "" {
		category := query.Category
		f.Category = &category
	}
	if query.Completed != "" {
		completed := query.Completed == "true"
		f.Completed = &completed
	}
	if query.Priority != "" {
		priority := query.Priority
		f.Priority = &priority
	}
	if query.Q != "" {
		f.Search = query.Q
	}
	if query.Overdue == "true" {
		completed := false
		f.Completed = &completed
		f.DueBefore = &now
	}

	return f
}
