package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mtorq-api/repositories"
)

type DashboardController struct {
	expenseRepo *repositories.ExpenseRepository
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{
		expenseRepo: repositories.NewExpenseRepository(db),
	}
}

func (dc *DashboardController) GetStats(c *gin.Context) {
	userID := c.GetString("user_id")

	stats, err := dc.expenseRepo.DashboardStats(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
