// Package dto holds the request and response shapes of the HTTP surface.
package dto

import "encoding/json"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateTaskRequest carries the typed task fields plus any extra body
// attributes the client sent. Unknown keys land in Extra instead of being
// dropped; protected names are filtered out again before persisting.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"`
	Completed   *bool  `json:"completed"`

	Extra map[string]any `json:"-"`
}

var createTaskKnownKeys = []string{
	"title", "description", "category", "dueDate", "priority", "completed",
}

func (r *CreateTaskRequest) UnmarshalJSON(data []byte) error {
	type plain CreateTaskRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}
	r.Extra = extraKeys(data, createTaskKnownKeys)
	return nil
}

// UpdateTaskRequest uses pointers so an absent field is distinguishable
// from an explicit zero value; only present fields are applied.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	DueDate     *string `json:"dueDate"`
	Priority    *string `json:"priority"`
	Completed   *bool   `json:"completed"`

	Extra map[string]any `json:"-"`
}

func (r *UpdateTaskRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateTaskRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}
	r.Extra = extraKeys(data, createTaskKnownKeys)
	return nil
}

func extraKeys(data []byte, known []string) map[string]any {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	for _, key := range known {
		delete(raw, key)
	}
	if len(raw) == 0 {
		return nil
	}
	return raw
}
