package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mtorq-api/config"
	"mtorq-api/middleware"
	"mtorq-api/models"
	"mtorq-api/services"
)

const testJWTSecret = "test-secret-key"

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect to test database")

	// Auto migrate the schema
	err = db.AutoMigrate(&models.User{}, &models.Bike{}, &models.Expense{}, &models.Document{})
	require.NoError(t, err)

	return db
}

// setupTestRouter wires the full route surface against the given database.
func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	emailService := services.NewEmailService(&config.Config{
		SMTPHost:  "localhost",
		SMTPPort:  2525,
		FromEmail: "noreply@test.local",
		FromName:  "mTorq Test",
	})

	authController := NewAuthController(db, testJWTSecret, emailService)
	bikeController := NewBikeController(db)
	expenseController := NewExpenseController(db)
	dashboardController := NewDashboardController(db)
	documentController := NewDocumentController(db, services.NewCloudinaryStorage())
	masterController := NewMasterController()

	r := gin.New()

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
	}

	master := api.Group("/master")
	{
		master.GET("/brands", masterController.GetBrands)
		master.GET("/models", masterController.GetModels)
		master.GET("/brands-models", masterController.GetBrandsWithModels)
		master.GET("/expense-types", masterController.GetExpenseTypes)
		master.GET("/document-types", masterController.GetDocumentTypes)
	}

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(db, testJWTSecret))
	{
		protected.PUT("/auth/update-name", authController.UpdateName)
		protected.PUT("/auth/update-password", authController.UpdatePassword)

		bikes := protected.Group("/bikes")
		{
			bikes.GET("", bikeController.GetBikes)
			bikes.POST("", bikeController.CreateBike)
			bikes.GET("/:id", bikeController.GetBike)
			bikes.PUT("/:id", bikeController.UpdateBike)
			bikes.DELETE("/:id", bikeController.DeleteBike)
		}

		expenses := protected.Group("/expenses")
		{
			expenses.GET("", expenseController.GetExpenses)
			expenses.POST("", expenseController.CreateExpense)
			expenses.GET("/:id", expenseController.GetExpense)
			expenses.PUT("/:id", expenseController.UpdateExpense)
			expenses.DELETE("/:id", expenseController.DeleteExpense)
		}

		protected.GET("/dashboard/stats", dashboardController.GetStats)

		documents := protected.Group("/documents")
		{
			documents.GET("", documentController.GetDocuments)
			documents.POST("", documentController.SaveDocument)
			documents.GET("/bike/:bike_id", documentController.GetDocuments)
			documents.GET("/:id", documentController.GetDocument)
			documents.GET("/:id/download", documentController.GetDownloadURL)
			documents.DELETE("/:id", documentController.DeleteDocument)
		}
	}

	return r
}

// createTestUser inserts a user with password "password123".
func createTestUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{
		ID:       uuid.New().String(),
		Email:    email,
		Password: string(hashed),
		Name:     "Test User",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestBike(t *testing.T, db *gorm.DB, userID, name string) models.Bike {
	t.Helper()

	bike := models.Bike{
		ID:     uuid.New().String(),
		UserID: userID,
		Name:   name,
		Brand:  "Yamaha",
		Model:  "R3",
	}
	require.NoError(t, db.Create(&bike).Error)
	return bike
}

// tokenFor signs a short-lived token the auth middleware accepts.
func tokenFor(t *testing.T, userID string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func performRequest(r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
