package model

import (
	"time"

	"github.com/Ijadele/task-management/internal/constants"
)

type User struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      constants.Role `gorm:"type:varchar(16);not null;default:user" json:"role"`
	Tasks     []Task         `gorm:"foreignKey:OwnerID" json:"todos,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
