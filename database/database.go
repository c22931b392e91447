package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mtorq-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Surface duplicate-key violations as gorm.ErrDuplicatedKey so the
		// unique email constraint is the source of truth for signup conflicts.
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Auto migrate all models
	err := db.AutoMigrate(
		&models.User{},
		&models.Bike{},
		&models.Expense{},
		&models.Document{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Add custom indexes for better performance
	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Composite indexes matching the hot owner-scoped queries

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_expenses_user_date ON expenses(user_id, date DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for expenses: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_expenses_user_bike ON expenses(user_id, bike_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for expenses bike scope: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_documents_user_bike ON documents(user_id, bike_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for documents: %v\n", err)
	}

	return nil
}

// SeedData can be used to populate the database with initial data for development/testing
func SeedData(db *gorm.DB) error {
	// Check if we already have users
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	testUsers := []models.User{
		{
			ID:       "user-1",
			Email:    "john@example.com",
			Password: "$2a$10$dummy", // This should be properly hashed in real scenarios
			Name:     "John Doe",
		},
	}

	for _, user := range testUsers {
		if err := db.Create(&user).Error; err != nil {
			fmt.Printf("Warning: Could not create test user %s: %v\n", user.Email, err)
		}
	}

	registration := "KA-01-AB-1234"
	testBikes := []models.Bike{
		{
			ID:           "bike-1",
			UserID:       "user-1",
			Name:         "Daily Commuter",
			Brand:        "Royal Enfield",
			Model:        "Classic 350",
			Registration: &registration,
		},
	}

	for _, bike := range testBikes {
		if err := db.Create(&bike).Error; err != nil {
			fmt.Printf("Warning: Could not create test bike %s: %v\n", bike.Name, err)
		}
	}

	fmt.Println("Database seeded with test data")
	return nil
}
