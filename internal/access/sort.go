package access

import "strings"

// DefaultSort orders listings newest first.
const DefaultSort = "-createdAt"

// sortColumns maps caller-facing sort fields to store columns. Fields
// outside this map are silently ignored rather than passed to SQL.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"dueDate":   "due_date",
	"title":     "title",
	"category":  "category",
	"priority":  "priority",
	"completed": "completed",
}

// Sort normalizes a caller-supplied sort spec ("field" ascending,
// "-field" descending) into an ORDER BY clause. An empty spec uses the
// default ordering; an unknown field is a no-op sort.
func Sort(spec string) string {
	if spec == "" {
		spec = DefaultSort
	}

	desc := strings.HasPrefix(spec, "-")
	field := strings.TrimPrefix(spec, "-")

	column, ok := sortColumns[field]
	if !ok {
		return ""
	}
	if desc {
		return column + " desc"
	}
	return column + " asc"
}
