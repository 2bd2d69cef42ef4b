package services

import (
	"strings"
	"time"

	"github.com/lol2506/calorie-tracker/models"

	"gorm.io/gorm"
)

type MealService struct {
	db      *gorm.DB
	foodSvc *FoodService
}

func NewMealService(db *gorm.DB, foodSvc *FoodService) *MealService {
	return &MealService{db: db, foodSvc: foodSvc}
}

// MealDetail is a meal joined with its food and the computed line calories,
// so the caller never needs a second catalog fetch.
type MealDetail struct {
	ID            uint        `json:"id"`
	Food          models.Food `json:"food"`
	MealType      string      `json:"meal_type"`
	Quantity      float64     `json:"quantity"`
	LoggedAt      time.Time   `json:"logged_at"`
	TotalCalories float64     `json:"total_calories"`
}

// AddMeal logs one serving record for the user. The food must exist and the
// meal type must case-insensitively match one of ValidMealTypes; nothing is
// persisted when either check fails. Quantity is taken as-is.
func (s *MealService) AddMeal(userID, foodID uint, mealType string, quantity float64) (*MealDetail, error) {
	food, err := s.foodSvc.GetFood(foodID)
	if err != nil {
		return nil, err
	}

	normalized := strings.ToLower(mealType)
	if !isValidMealType(normalized) {
		return nil, ErrInvalidMealType
	}

	meal := models.Meal{
		UserID:   userID,
		FoodID:   food.ID,
		MealType: normalized,
		Quantity: quantity,
		LoggedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}

	return &MealDetail{
		ID:            meal.ID,
		Food:          *food,
		MealType:      meal.MealType,
		Quantity:      meal.Quantity,
		LoggedAt:      meal.LoggedAt,
		TotalCalories: food.CaloriesPerUnit * meal.Quantity,
	}, nil
}

// ListMealsForDay returns the user's meals for the given UTC calendar day in
// insertion order, with food detail and computed calories per line.
func (s *MealService) ListMealsForDay(userID uint, day time.Time) ([]MealDetail, error) {
	meals, err := s.mealsForDay(userID, day)
	if err != nil {
		return nil, err
	}

	out := make([]MealDetail, 0, len(meals))
	for _, m := range meals {
		out = append(out, MealDetail{
			ID:            m.ID,
			Food:          m.Food,
			MealType:      m.MealType,
			Quantity:      m.Quantity,
			LoggedAt:      m.LoggedAt,
			TotalCalories: m.Food.CaloriesPerUnit * m.Quantity,
		})
	}
	return out, nil
}

// DeleteMeal removes a meal only when it belongs to the caller. A meal owned
// by another user reports the same ErrMealNotFound as a missing one.
func (s *MealService) DeleteMeal(userID, mealID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", mealID, userID).Delete(&models.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

// mealsForDay is the shared read path for the list endpoint and the daily
// aggregator; both must see the same rows in the same order.
func (s *MealService) mealsForDay(userID uint, day time.Time) ([]models.Meal, error) {
	start, end := DayWindow(day)
	var meals []models.Meal
	err := s.db.
		Preload("Food").
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Order("id asc").
		Find(&meals).Error
	return meals, err
}

// DayWindow returns the [start, end) bounds of the UTC calendar day
// containing t. "Today" is always the UTC day, not the user-local one.
func DayWindow(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
