package models

import (
	"time"
)

type Document struct {
	ID           string  `json:"id" gorm:"primaryKey;size:191"`
	UserID       string  `json:"user_id" gorm:"not null;index;size:191"`
	BikeID       string  `json:"bike_id" gorm:"not null;index;size:191"`
	DocumentType string  `json:"document_type" gorm:"not null;size:50"`
	CustomName   *string `json:"custom_name,omitempty" gorm:"size:255"`
	FileURL      string  `json:"file_url" gorm:"not null;size:500"`
	// PublicID is the object store identifier needed to delete the blob.
	PublicID  string    `json:"public_id" gorm:"not null;size:255"`
	FileName  string    `json:"file_name" gorm:"not null;size:255"`
	FileSize  int64     `json:"file_size" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
	Bike Bike `json:"-" gorm:"foreignKey:BikeID"`
}
