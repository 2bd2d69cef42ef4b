package services

import (
	"testing"
	"time"

	"github.com/lol2506/calorie-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStatsService(db *gorm.DB) (*StatsService, *MealService) {
	mealSvc := NewMealService(db, NewFoodService(db))
	return NewStatsService(mealSvc, NewUserService(db)), mealSvc
}

func TestDailyStatsEmptyDay(t *testing.T) {
	db := newTestDB(t)
	statsSvc, _ := newStatsService(db)
	user := createTestUser(t, db, "a@example.com", 2000)

	stats, err := statsSvc.DailyStats(user.ID, time.Now().UTC())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalCalories)
	assert.Zero(t, stats.TotalProtein)
	assert.Zero(t, stats.TotalCarbs)
	assert.Zero(t, stats.TotalFats)
	assert.Equal(t, 2000, stats.DailyGoal)
	assert.InDelta(t, 2000.0, stats.RemainingCalories, 1e-9)

	require.Len(t, stats.MealsByType, 4)
	for _, mealType := range ValidMealTypes {
		group, ok := stats.MealsByType[mealType]
		require.True(t, ok, "group %q must be present", mealType)
		assert.Empty(t, group)
	}
}

func TestDailyStatsAggregation(t *testing.T) {
	db := newTestDB(t)
	statsSvc, mealSvc := newStatsService(db)
	user := createTestUser(t, db, "a@example.com", 2000)
	roti := createTestFood(t, db, rotiFood())
	dal := createTestFood(t, db, dalTadkaFood())

	_, err := mealSvc.AddMeal(user.ID, roti.ID, "breakfast", 2)
	require.NoError(t, err)
	_, err = mealSvc.AddMeal(user.ID, dal.ID, "lunch", 1)
	require.NoError(t, err)

	stats, err := statsSvc.DailyStats(user.ID, time.Now().UTC())
	require.NoError(t, err)

	assert.InDelta(t, 262.00, stats.TotalCalories, 1e-9)
	assert.InDelta(t, 12.00, stats.TotalProtein, 1e-9)  // 2*3.0 + 6.0
	assert.InDelta(t, 48.00, stats.TotalCarbs, 1e-9)    // 2*15.0 + 18.0
	assert.InDelta(t, 3.30, stats.TotalFats, 1e-9)      // 2*0.4 + 2.5
	assert.Equal(t, 2000, stats.DailyGoal)
	assert.InDelta(t, 1738.00, stats.RemainingCalories, 1e-9)

	require.Len(t, stats.MealsByType["breakfast"], 1)
	breakfast := stats.MealsByType["breakfast"][0]
	assert.Equal(t, "Roti / Chapati", breakfast.FoodName)
	assert.InDelta(t, 2.0, breakfast.Quantity, 1e-9)
	assert.Equal(t, "piece", breakfast.Unit)
	assert.InDelta(t, 142.00, breakfast.Calories, 1e-9)

	require.Len(t, stats.MealsByType["lunch"], 1)
	lunch := stats.MealsByType["lunch"][0]
	assert.Equal(t, "Dal Tadka", lunch.FoodName)
	assert.InDelta(t, 120.00, lunch.Calories, 1e-9)

	assert.Empty(t, stats.MealsByType["dinner"])
	assert.Empty(t, stats.MealsByType["snacks"])
}

func TestDailyStatsGoalCanGoNegative(t *testing.T) {
	db := newTestDB(t)
	statsSvc, mealSvc := newStatsService(db)
	user := createTestUser(t, db, "a@example.com", 100)
	dal := createTestFood(t, db, dalTadkaFood())

	_, err := mealSvc.AddMeal(user.ID, dal.ID, "dinner", 2)
	require.NoError(t, err)

	stats, err := statsSvc.DailyStats(user.ID, time.Now().UTC())
	require.NoError(t, err)
	assert.InDelta(t, -140.00, stats.RemainingCalories, 1e-9)
}

func TestDailyStatsRoundsOnceAtOutput(t *testing.T) {
	db := newTestDB(t)
	statsSvc, mealSvc := newStatsService(db)
	user := createTestUser(t, db, "a@example.com", 2000)
	food := createTestFood(t, db, models.Food{
		Name:                "Fractional Snack",
		CaloriesPerUnit:     33.335,
		UnitType:            "piece",
		UnitSizeDescription: "1 piece",
	})

	for i := 0; i < 3; i++ {
		_, err := mealSvc.AddMeal(user.ID, food.ID, "snacks", 1)
		require.NoError(t, err)
	}

	stats, err := statsSvc.DailyStats(user.ID, time.Now().UTC())
	require.NoError(t, err)

	// 3 × 33.335 = 100.005 accumulates at full precision and rounds once
	assert.InDelta(t, 100.01, stats.TotalCalories, 1e-9)
	assert.InDelta(t, 1900.00, stats.RemainingCalories, 1e-9)
}

func TestDailyStatsIdempotent(t *testing.T) {
	db := newTestDB(t)
	statsSvc, mealSvc := newStatsService(db)
	user := createTestUser(t, db, "a@example.com", 2000)
	roti := createTestFood(t, db, rotiFood())

	_, err := mealSvc.AddMeal(user.ID, roti.ID, "breakfast", 1)
	require.NoError(t, err)

	first, err := statsSvc.DailyStats(user.ID, time.Now().UTC())
	require.NoError(t, err)
	second, err := statsSvc.DailyStats(user.ID, time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDailyStatsUnknownUser(t *testing.T) {
	db := newTestDB(t)
	statsSvc, _ := newStatsService(db)

	_, err := statsSvc.DailyStats(42, time.Now().UTC())
	require.ErrorIs(t, err, ErrUserNotFound)
}
