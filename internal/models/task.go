package model

import (
	"time"

	"github.com/Ijadele/task-management/internal/constants"
)

type Task struct {
	ID          string             `gorm:"primaryKey;size:36" json:"id"`
	Title       string             `gorm:"not null" json:"title"`
	Description string             `json:"description"`
	Category    string             `gorm:"index" json:"category,omitempty"`
	DueDate     *time.Time         `gorm:"index" json:"due_date,omitempty"`
	Completed   bool               `gorm:"index;not null;default:false" json:"completed"`
	Priority    constants.Priority `gorm:"type:varchar(16);index;not null;default:medium" json:"priority"`
	OwnerID     string             `gorm:"size:36;index;not null" json:"owner"`
	Extra       map[string]any     `gorm:"serializer:json" json:"extra,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// protectedTaskFields are the attribute names that may never be set through
// the open Extra map; they are either typed columns or identity fields.
var protectedTaskFields = map[string]struct{}{
	"id":          {},
	"title":       {},
	"description": {},
	"category":    {},
	"dueDate":     {},
	"due_date":    {},
	"completed":   {},
	"priority":    {},
	"owner":       {},
	"owner_id":    {},
	"createdAt":   {},
	"created_at":  {},
	"updatedAt":   {},
	"updated_at":  {},
}

// MergeExtra copies the given attributes into the task's Extra map, skipping
// protected field names so the open map cannot shadow typed columns.
func (t *Task) MergeExtra(attrs map[string]any) {
	for k, v := range attrs {
		if _, protected := protectedTaskFields[k]; protected {
			continue
		}
		if t.Extra == nil {
			t.Extra = make(map[string]any)
		}
		t.Extra[k] = v
	}
}
