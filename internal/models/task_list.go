package model

import "time"

// TaskList is a named group of tasks owned by exactly one user.
type TaskList struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	UserID      string    `gorm:"size:36;not null;index" json:"user_id"`
	User        *User     `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Tasks       []Task    `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE;" json:"tasks,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (TaskList) TableName() string {
	return "lists"
}
