package model

import "time"

// Task belongs to a TaskList; its owner is the owner of that list.
type Task struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	DueDate     *Date     `gorm:"type:date" json:"due_date"`
	IsCompleted bool      `gorm:"not null;default:false" json:"is_completed"`
	ListID      string    `gorm:"size:36;not null;index" json:"list_id"`
	List        *TaskList `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE;" json:"list,omitempty"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}
