package models

import "time"

type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Email            string    `gorm:"uniqueIndex;not null" json:"email"`
	Password         string    `gorm:"not null" json:"-"`
	DailyCalorieGoal int       `gorm:"default:2000" json:"daily_calorie_goal"`
	CreatedAt        time.Time `json:"created_at"`

	// Deleting a user removes all of their logged meals.
	Meals []Meal `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
