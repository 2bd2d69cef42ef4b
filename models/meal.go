package models

import "time"

// Meal is one logged serving of a catalog food. Rows are created and deleted,
// never updated in place; quantity corrections go through delete + recreate.
type Meal struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	UserID   uint    `gorm:"index;not null" json:"user_id"`
	FoodID   uint    `gorm:"not null" json:"food_id"`
	Food     Food    `gorm:"foreignKey:FoodID" json:"-"`
	MealType string  `gorm:"size:16;not null" json:"meal_type"` // breakfast | lunch | dinner | snacks
	Quantity float64 `gorm:"not null" json:"quantity"`          // number of servings

	// Stamped in UTC at creation; day bucketing uses the UTC calendar day.
	LoggedAt time.Time `gorm:"index" json:"logged_at"`
}
