package services

import (
	"errors"
	"fmt"
	"strings"
)

// ValidMealTypes is the fixed set of meal categories, stored lowercase.
var ValidMealTypes = []string{"breakfast", "lunch", "dinner", "snacks"}

var (
	ErrFoodNotFound       = errors.New("Food not found")
	ErrMealNotFound       = errors.New("Meal not found or unauthorized")
	ErrUserNotFound       = errors.New("User not found")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Incorrect email or password")
	ErrInvalidMealType    = fmt.Errorf("Meal type must be one of: %s", strings.Join(ValidMealTypes, ", "))
)

func isValidMealType(mealType string) bool {
	for _, t := range ValidMealTypes {
		if t == mealType {
			return true
		}
	}
	return false
}
