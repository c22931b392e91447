package models

import (
	"time"
)

type Bike struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	UserID       string    `json:"user_id" gorm:"not null;index;size:191"`
	Name         string    `json:"name" gorm:"not null;size:255"`
	Brand        string    `json:"brand" gorm:"not null;size:100"`
	Model        string    `json:"model" gorm:"not null;size:100"`
	Registration *string   `json:"registration,omitempty" gorm:"size:50"`
	ImageURL     *string   `json:"image_url,omitempty" gorm:"size:500"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}
