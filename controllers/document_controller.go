package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mtorq-api/models"
	"mtorq-api/services"
	"mtorq-api/utils"
)

type DocumentController struct {
	db      *gorm.DB
	storage services.ObjectStorage
}

func NewDocumentController(db *gorm.DB, storage services.ObjectStorage) *DocumentController {
	return &DocumentController{
		db:      db,
		storage: storage,
	}
}

// SaveDocumentRequest records metadata for a file that was already
// uploaded to the object store client-side.
type SaveDocumentRequest struct {
	BikeID       string `json:"bike_id" binding:"required"`
	DocumentType string `json:"document_type" binding:"required"`
	CustomName   string `json:"custom_name"`
	FileURL      string `json:"file_url" binding:"required"`
	PublicID     string `json:"public_id" binding:"required"`
	FileName     string `json:"file_name" binding:"required"`
	FileSize     int64  `json:"file_size" binding:"required"`
}

func (dc *DocumentController) SaveDocument(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SaveDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidDocumentType(req.DocumentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document type"})
		return
	}
	if !utils.IsValidDocumentFileName(req.FileName) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed"})
		return
	}
	if !utils.IsValidFileURL(req.FileURL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file URL"})
		return
	}
	if !utils.IsValidDocumentFileSize(req.FileSize) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds maximum limit of 10MB"})
		return
	}

	// Documents hang off a bike the caller owns
	var bike models.Bike
	if err := dc.db.First(&bike, "id = ? AND user_id = ?", req.BikeID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bike not found"})
		return
	}

	document := models.Document{
		ID:           uuid.New().String(),
		UserID:       userID,
		BikeID:       req.BikeID,
		DocumentType: req.DocumentType,
		FileURL:      req.FileURL,
		PublicID:     req.PublicID,
		FileName:     req.FileName,
		FileSize:     req.FileSize,
	}

	// A custom display name only makes sense for the catch-all type
	if req.DocumentType == "Other" && req.CustomName != "" {
		document.CustomName = &req.CustomName
	}

	if err := dc.db.Create(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document"})
		return
	}

	c.JSON(http.StatusCreated, document)
}

func (dc *DocumentController) GetDocuments(c *gin.Context) {
	userID := c.GetString("user_id")

	query := dc.db.Where("user_id = ?", userID)

	// Accept the bike scope either as a query param or a path param
	bikeID := c.Query("bike_id")
	if bikeID == "" {
		bikeID = c.Param("bike_id")
	}
	if bikeID != "" {
		query = query.Where("bike_id = ?", bikeID)
	}

	documents := []models.Document{}
	if err := query.Order("created_at DESC").Find(&documents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, documents)
}

func (dc *DocumentController) GetDocument(c *gin.Context) {
	userID := c.GetString("user_id")
	documentID := c.Param("id")

	var document models.Document
	if err := dc.db.First(&document, "id = ? AND user_id = ?", documentID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	c.JSON(http.StatusOK, document)
}

func (dc *DocumentController) GetDownloadURL(c *gin.Context) {
	userID := c.GetString("user_id")
	documentID := c.Param("id")

	var document models.Document
	if err := dc.db.First(&document, "id = ? AND user_id = ?", documentID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"download_url": dc.storage.DownloadURL(document.FileURL)})
}

func (dc *DocumentController) DeleteDocument(c *gin.Context) {
	userID := c.GetString("user_id")
	documentID := c.Param("id")

	var document models.Document
	if err := dc.db.First(&document, "id = ? AND user_id = ?", documentID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	// Metadata only; removing the blob itself is the object store's concern
	if err := dc.db.Delete(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
