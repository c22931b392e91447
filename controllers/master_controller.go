package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mtorq-api/models"
)

// MasterController serves the static lookup lists. No state, no database.
type MasterController struct{}

func NewMasterController() *MasterController {
	return &MasterController{}
}

func (mc *MasterController) GetBrands(c *gin.Context) {
	c.JSON(http.StatusOK, models.BikeBrands)
}

func (mc *MasterController) GetModels(c *gin.Context) {
	c.JSON(http.StatusOK, models.BikeModels())
}

func (mc *MasterController) GetBrandsWithModels(c *gin.Context) {
	c.JSON(http.StatusOK, models.BikeBrandModels)
}

func (mc *MasterController) GetExpenseTypes(c *gin.Context) {
	c.JSON(http.StatusOK, models.ExpenseTypes)
}

func (mc *MasterController) GetDocumentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, models.DocumentTypes)
}
