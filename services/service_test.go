package services

import (
	"testing"

	"github.com/lol2506/calorie-tracker/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Food{}, &models.Meal{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, goal int) *models.User {
	t.Helper()
	user := models.User{Email: email, Password: "hashed", DailyCalorieGoal: goal}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestFood(t *testing.T, db *gorm.DB, food models.Food) *models.Food {
	t.Helper()
	require.NoError(t, db.Create(&food).Error)
	return &food
}

func rotiFood() models.Food {
	return models.Food{
		Name:                "Roti / Chapati",
		CaloriesPerUnit:     71,
		ProteinG:            3.0,
		CarbsG:              15.0,
		FatsG:               0.4,
		UnitType:            "piece",
		UnitSizeDescription: "1 medium roti (30g)",
	}
}

func dalTadkaFood() models.Food {
	return models.Food{
		Name:                "Dal Tadka",
		CaloriesPerUnit:     120,
		ProteinG:            6.0,
		CarbsG:              18.0,
		FatsG:               2.5,
		UnitType:            "katori",
		UnitSizeDescription: "1 small katori (150ml)",
	}
}
