package services

import (
	"math"
	"time"
)

type StatsService struct {
	mealSvc *MealService
	userSvc *UserService
}

func NewStatsService(mealSvc *MealService, userSvc *UserService) *StatsService {
	return &StatsService{mealSvc: mealSvc, userSvc: userSvc}
}

// MealLine is one meal's contribution inside a meal-type group.
type MealLine struct {
	ID       uint    `json:"id"`
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
}

type DailyStats struct {
	TotalCalories     float64               `json:"total_calories"`
	TotalProtein      float64               `json:"total_protein"`
	TotalCarbs        float64               `json:"total_carbs"`
	TotalFats         float64               `json:"total_fats"`
	DailyGoal         int                   `json:"daily_goal"`
	RemainingCalories float64               `json:"remaining_calories"`
	MealsByType       map[string][]MealLine `json:"meals_by_type"`
}

// DailyStats aggregates the user's meals for the given UTC day: running
// totals over the ledger in insertion order, a breakdown into the four fixed
// meal-type groups (always all four, empty or not), and the remaining budget
// against the user's daily goal. Totals accumulate at full precision and are
// rounded to 2 decimals once, at the output boundary.
func (s *StatsService) DailyStats(userID uint, day time.Time) (*DailyStats, error) {
	user, err := s.userSvc.GetUser(userID)
	if err != nil {
		return nil, err
	}

	meals, err := s.mealSvc.mealsForDay(userID, day)
	if err != nil {
		return nil, err
	}

	var totalCalories, totalProtein, totalCarbs, totalFats float64
	byType := make(map[string][]MealLine, len(ValidMealTypes))
	for _, t := range ValidMealTypes {
		byType[t] = []MealLine{}
	}

	for _, m := range meals {
		totalCalories += m.Food.CaloriesPerUnit * m.Quantity
		totalProtein += m.Food.ProteinG * m.Quantity
		totalCarbs += m.Food.CarbsG * m.Quantity
		totalFats += m.Food.FatsG * m.Quantity

		byType[m.MealType] = append(byType[m.MealType], MealLine{
			ID:       m.ID,
			FoodName: m.Food.Name,
			Quantity: m.Quantity,
			Unit:     m.Food.UnitType,
			Calories: round2(m.Food.CaloriesPerUnit * m.Quantity),
		})
	}

	remaining := float64(user.DailyCalorieGoal) - totalCalories

	return &DailyStats{
		TotalCalories:     round2(totalCalories),
		TotalProtein:      round2(totalProtein),
		TotalCarbs:        round2(totalCarbs),
		TotalFats:         round2(totalFats),
		DailyGoal:         user.DailyCalorieGoal,
		RemainingCalories: round2(remaining),
		MealsByType:       byType,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
