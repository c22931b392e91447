package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mtorq-api/models"
)

type BikeController struct {
	db *gorm.DB
}

func NewBikeController(db *gorm.DB) *BikeController {
	return &BikeController{db: db}
}

type CreateBikeRequest struct {
	Name         string `json:"name" binding:"required"`
	Brand        string `json:"brand" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Registration string `json:"registration"`
	ImageURL     string `json:"image_url"`
}

type UpdateBikeRequest struct {
	Name         *string `json:"name"`
	Brand        *string `json:"brand"`
	Model        *string `json:"model"`
	Registration *string `json:"registration"`
	ImageURL     *string `json:"image_url"`
}

func (bc *BikeController) GetBikes(c *gin.Context) {
	userID := c.GetString("user_id")

	var bikes []models.Bike
	if err := bc.db.Where("user_id = ?", userID).Find(&bikes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bikes"})
		return
	}

	c.JSON(http.StatusOK, bikes)
}

func (bc *BikeController) GetBike(c *gin.Context) {
	userID := c.GetString("user_id")
	bikeID := c.Param("id")

	var bike models.Bike
	if err := bc.db.First(&bike, "id = ? AND user_id = ?", bikeID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bike not found"})
		return
	}

	c.JSON(http.StatusOK, bike)
}

func (bc *BikeController) CreateBike(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bike := models.Bike{
		ID:     uuid.New().String(),
		UserID: userID,
		Name:   req.Name,
		Brand:  req.Brand,
		Model:  req.Model,
	}

	// Optional fields stay NULL unless provided
	if req.Registration != "" {
		bike.Registration = &req.Registration
	}
	if req.ImageURL != "" {
		bike.ImageURL = &req.ImageURL
	}

	if err := bc.db.Create(&bike).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bike"})
		return
	}

	c.JSON(http.StatusCreated, bike)
}

func (bc *BikeController) UpdateBike(c *gin.Context) {
	userID := c.GetString("user_id")
	bikeID := c.Param("id")

	var bike models.Bike
	if err := bc.db.First(&bike, "id = ? AND user_id = ?", bikeID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bike not found"})
		return
	}

	var req UpdateBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Partial patch: nil means untouched; an explicit empty string on the
	// optional fields means clear to NULL, not store "".
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.Registration != nil {
		if *req.Registration == "" {
			updates["registration"] = nil
		} else {
			updates["registration"] = *req.Registration
		}
	}
	if req.ImageURL != nil {
		if *req.ImageURL == "" {
			updates["image_url"] = nil
		} else {
			updates["image_url"] = *req.ImageURL
		}
	}

	if len(updates) > 0 {
		if err := bc.db.Model(&bike).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bike"})
			return
		}
	}

	// Re-read so cleared fields come back as absent
	if err := bc.db.First(&bike, "id = ?", bikeID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bike"})
		return
	}

	c.JSON(http.StatusOK, bike)
}

func (bc *BikeController) DeleteBike(c *gin.Context) {
	userID := c.GetString("user_id")
	bikeID := c.Param("id")

	var bike models.Bike
	if err := bc.db.First(&bike, "id = ? AND user_id = ?", bikeID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bike not found"})
		return
	}

	if err := bc.db.Delete(&bike).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bike"})
		return
	}

	// Cascade: the bike was already owner-verified, so expenses go
	// unconditionally by bike id.
	if err := bc.db.Where("bike_id = ?", bikeID).Delete(&models.Expense{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bike expenses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bike deleted successfully"})
}
