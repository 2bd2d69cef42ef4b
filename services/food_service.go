package services

import (
	"errors"

	"github.com/lol2506/calorie-tracker/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

func (s *FoodService) GetFood(foodID uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return &food, nil
}

// Search returns the whole catalog, or a case-insensitive substring match on
// name when a query is given.
func (s *FoodService) Search(query string) ([]models.Food, error) {
	var foods []models.Food
	q := s.db.Order("id asc")
	if query != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%")
	}
	err := q.Find(&foods).Error
	return foods, err
}
