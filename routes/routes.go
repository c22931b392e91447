package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mtorq-api/config"
	"mtorq-api/controllers"
	"mtorq-api/middleware"
	"mtorq-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	bikeController := controllers.NewBikeController(db)
	expenseController := controllers.NewExpenseController(db)
	dashboardController := controllers.NewDashboardController(db)
	documentController := controllers.NewDocumentController(db, services.NewCloudinaryStorage())
	masterController := controllers.NewMasterController()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API prefix
	api := r.Group("/api")

	// Auth routes (public, rate limited against brute force)
	auth := api.Group("/auth")
	auth.Use(middleware.RateLimit(30, 10))
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
	}

	// Master data routes (public)
	master := api.Group("/master")
	{
		master.GET("/brands", masterController.GetBrands)
		master.GET("/models", masterController.GetModels)
		master.GET("/brands-models", masterController.GetBrandsWithModels)
		master.GET("/expense-types", masterController.GetExpenseTypes)
		master.GET("/document-types", masterController.GetDocumentTypes)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(db, cfg.JWTSecret))
	{
		// Profile routes
		authProtected := protected.Group("/auth")
		{
			authProtected.PUT("/update-name", authController.UpdateName)
			authProtected.PUT("/update-password", authController.UpdatePassword)
		}

		// Bike routes
		bikes := protected.Group("/bikes")
		{
			bikes.GET("", bikeController.GetBikes)
			bikes.POST("", bikeController.CreateBike)
			bikes.GET("/:id", bikeController.GetBike)
			bikes.PUT("/:id", bikeController.UpdateBike)
			bikes.DELETE("/:id", bikeController.DeleteBike)
		}

		// Expense routes
		expenses := protected.Group("/expenses")
		{
			expenses.GET("", expenseController.GetExpenses)
			expenses.POST("", expenseController.CreateExpense)
			expenses.GET("/:id", expenseController.GetExpense)
			expenses.PUT("/:id", expenseController.UpdateExpense)
			expenses.DELETE("/:id", expenseController.DeleteExpense)
		}

		// Dashboard routes
		dashboard := protected.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardController.GetStats)
		}

		// Document routes
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
}
