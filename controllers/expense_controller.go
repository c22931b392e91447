package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mtorq-api/models"
	"mtorq-api/repositories"
)

type ExpenseController struct {
	db          *gorm.DB
	expenseRepo *repositories.ExpenseRepository
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{
		db:          db,
		expenseRepo: repositories.NewExpenseRepository(db),
	}
}

type CreateExpenseRequest struct {
	BikeID   string  `json:"bike_id" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Date     string  `json:"date" binding:"required"`
	Odometer *int    `json:"odometer"`
	Notes    *string `json:"notes"`

	// Fuel-specific fields
	Litres        *float64 `json:"litres"`
	IsFullTank    *bool    `json:"is_full_tank"`
	PricePerLitre *float64 `json:"price_per_litre"`
}

type UpdateExpenseRequest struct {
	BikeID        *string  `json:"bike_id"`
	Type          *string  `json:"type"`
	Amount        *float64 `json:"amount"`
	Date          *string  `json:"date"`
	Odometer      *int     `json:"odometer"`
	Notes         *string  `json:"notes"`
	Litres        *float64 `json:"litres"`
	IsFullTank    *bool    `json:"is_full_tank"`
	PricePerLitre *float64 `json:"price_per_litre"`
}

func (ec *ExpenseController) GetExpenses(c *gin.Context) {
	userID := c.GetString("user_id")

	filter := repositories.ExpenseFilter{
		BikeID: c.Query("bike_id"),
		Type:   c.Query("type"),
		Search: c.Query("search"),
	}

	expenses, err := ec.expenseRepo.ListExpenses(userID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}

	c.JSON(http.StatusOK, expenses)
}

func (ec *ExpenseController) GetExpense(c *gin.Context) {
	userID := c.GetString("user_id")
	expenseID := c.Param("id")

	expense, err := ec.expenseRepo.GetExpense(userID, expenseID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}

	c.JSON(http.StatusOK, expense)
}

func (ec *ExpenseController) CreateExpense(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidExpenseType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense type"})
		return
	}

	// The referenced bike must belong to the caller; anything else is
	// indistinguishable from a missing bike.
	var bike models.Bike
	if err := ec.db.First(&bike, "id = ? AND user_id = ?", req.BikeID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bike not found"})
		return
	}

	expense := models.Expense{
		ID:            uuid.New().String(),
		UserID:        userID,
		BikeID:        req.BikeID,
		Type:          req.Type,
		Amount:        req.Amount,
		Date:          req.Date,
		Odometer:      req.Odometer,
		Notes:         req.Notes,
		Litres:        req.Litres,
		IsFullTank:    req.IsFullTank,
		PricePerLitre: req.PricePerLitre,
	}

	if err := ec.expenseRepo.CreateExpense(&expense); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

func (ec *ExpenseController) UpdateExpense(c *gin.Context) {
	userID := c.GetString("user_id")
	expenseID := c.Param("id")

	expense, err := ec.expenseRepo.GetExpense(userID, expenseID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.BikeID != nil {
		// Re-point only to a bike the caller owns
		var bike models.Bike
		if err := ec.db.First(&bike, "id = ? AND user_id = ?", *req.BikeID, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bike not found"})
			return
		}
		updates["bike_id"] = *req.BikeID
	}
	if req.Type != nil {
		if !models.IsValidExpenseType(*req.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense type"})
			return
		}
		updates["type"] = *req.Type
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Odometer != nil {
		updates["odometer"] = *req.Odometer
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Litres != nil {
		updates["litres"] = *req.Litres
	}
	if req.IsFullTank != nil {
		updates["is_full_tank"] = *req.IsFullTank
	}
	if req.PricePerLitre != nil {
		updates["price_per_litre"] = *req.PricePerLitre
	}

	if len(updates) > 0 {
		if err := ec.expenseRepo.UpdateExpense(expense, updates); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense"})
			return
		}
	}

	c.JSON(http.StatusOK, expense)
}

func (ec *ExpenseController) DeleteExpense(c *gin.Context) {
	userID := c.GetString("user_id")
	expenseID := c.Param("id")

	deleted, err := ec.expenseRepo.DeleteExpense(userID, expenseID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
