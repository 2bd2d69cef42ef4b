package models

// Food is a catalog entry with per-unit nutrition. Created only by seeding,
// never mutated by end users.
type Food struct {
	ID                  uint    `gorm:"primaryKey" json:"id"`
	Name                string  `gorm:"index;not null" json:"name"`
	CaloriesPerUnit     float64 `gorm:"not null" json:"calories_per_unit"`
	ProteinG            float64 `gorm:"default:0" json:"protein_g"`
	CarbsG              float64 `gorm:"default:0" json:"carbs_g"`
	FatsG               float64 `gorm:"default:0" json:"fats_g"`
	UnitType            string  `gorm:"not null" json:"unit_type"` // katori | piece | cup | tablespoon | 100g
	UnitSizeDescription string  `gorm:"not null" json:"unit_size_description"`
}
