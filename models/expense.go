package models

import (
	"time"
)

type Expense struct {
	ID     string  `json:"id" gorm:"primaryKey;size:191"`
	UserID string  `json:"user_id" gorm:"not null;index;size:191"`
	BikeID string  `json:"bike_id" gorm:"not null;index;size:191"`
	Type   string  `json:"type" gorm:"not null;size:50"`
	Amount float64 `json:"amount" gorm:"not null"`
	// Date is the expense date in ISO-8601 form, kept as a string so
	// lexicographic ordering matches chronological ordering.
	Date     string  `json:"date" gorm:"not null;size:30"`
	Odometer *int    `json:"odometer,omitempty"`
	Notes    *string `json:"notes,omitempty" gorm:"size:1000"`

	// Fuel-specific fields, only set for Fuel expenses
	Litres        *float64 `json:"litres,omitempty"`
	IsFullTank    *bool    `json:"is_full_tank,omitempty"`
	PricePerLitre *float64 `json:"price_per_litre,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
	Bike Bike `json:"-" gorm:"foreignKey:BikeID"`
}

// DashboardStats is the aggregate view served by /dashboard/stats.
type DashboardStats struct {
	TotalExpenses     float64            `json:"total_expenses"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
	RecentExpenses    []Expense          `json:"recent_expenses"`
	TotalBikes        int64              `json:"total_bikes"`
}
