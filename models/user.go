package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Bikes    []Bike    `json:"bikes,omitempty" gorm:"foreignKey:UserID"`
	Expenses []Expense `json:"expenses,omitempty" gorm:"foreignKey:UserID"`
}
