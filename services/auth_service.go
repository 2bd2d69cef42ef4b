package services

import (
	"errors"

	"github.com/lol2506/calorie-tracker/models"
	"github.com/lol2506/calorie-tracker/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates a user with a bcrypt-hashed password. A non-positive goal
// falls back to the 2000 kcal default.
func (s *AuthService) Register(email, password string, dailyCalorieGoal int) (*models.User, error) {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	if dailyCalorieGoal <= 0 {
		dailyCalorieGoal = 2000
	}

	user := models.User{
		Email:            email,
		Password:         hashed,
		DailyCalorieGoal: dailyCalorieGoal,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
