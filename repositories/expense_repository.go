package repositories

import (
	"strings"

	"gorm.io/gorm"

	"mtorq-api/models"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// ExpenseFilter narrows an owner's expense listing. Zero-value fields are
// ignored; set fields combine with AND.
type ExpenseFilter struct {
	BikeID string
	Type   string
	Search string
}

// ListExpenses returns the owner's expenses matching the filter, newest
// date first.
func (r *ExpenseRepository) ListExpenses(userID string, filter ExpenseFilter) ([]models.Expense, error) {
	query := r.db.Where("user_id = ?", userID)

	if filter.BikeID != "" {
		query = query.Where("bike_id = ?", filter.BikeID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(notes) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	expenses := []models.Expense{}
	err := query.Order("date DESC").Find(&expenses).Error
	return expenses, err
}

// GetExpense retrieves one expense scoped to its owner. A foreign-owned id
// comes back as gorm.ErrRecordNotFound, same as a missing one.
func (r *ExpenseRepository) GetExpense(userID, expenseID string) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.First(&expense, "id = ? AND user_id = ?", expenseID, userID).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) CreateExpense(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

func (r *ExpenseRepository) UpdateExpense(expense *models.Expense, updates map[string]interface{}) error {
	return r.db.Model(expense).Updates(updates).Error
}

// DeleteExpense removes an owner's expense; reports whether anything was
// deleted so the caller can distinguish 404.
func (r *ExpenseRepository) DeleteExpense(userID, expenseID string) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", expenseID, userID).Delete(&models.Expense{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DashboardStats aggregates the owner's full expense set in one pass.
// Working sets are per-user and small, so this is recomputed on every call.
func (r *ExpenseRepository) DashboardStats(userID string) (*models.DashboardStats, error) {
	expenses := []models.Expense{}
	if err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		CategoryBreakdown: make(map[string]float64),
		RecentExpenses:    []models.Expense{},
	}

	for _, expense := range expenses {
		stats.TotalExpenses += expense.Amount
		stats.CategoryBreakdown[expense.Type] += expense.Amount
	}

	// Already sorted newest first
	if len(expenses) > 5 {
		stats.RecentExpenses = expenses[:5]
	} else {
		stats.RecentExpenses = expenses
	}

	if err := r.db.Model(&models.Bike{}).Where("user_id = ?", userID).Count(&stats.TotalBikes).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
