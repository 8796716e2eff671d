package model

import (
	"time"

	"taskvault.com/taskvault/internal/constants"
)

type Task struct {
	ID          string                 `gorm:"primaryKey;size:36" json:"id"`
	Title       string                 `gorm:"not null" json:"title"`
	Description string                 `json:"description"`
	Status      constants.TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`
	Priority    constants.TaskPriority `gorm:"type:varchar(10);not null" json:"priority"`
	CreatedBy   string                 `gorm:"size:36;not null;index" json:"created_by"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
