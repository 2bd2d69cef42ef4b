package seed

import (
	"errors"
	"log"

	"github.com/lol2506/calorie-tracker/models"

	"gorm.io/gorm"
)

// indianFoods is the fixed catalog of Indian foods, with nutrition per
// unit_type serving.
var indianFoods = []models.Food{
	{Name: "Roti / Chapati", CaloriesPerUnit: 71, ProteinG: 3.0, CarbsG: 15.0, FatsG: 0.4, UnitType: "piece", UnitSizeDescription: "1 medium roti (30g)"},
	{Name: "Paratha (plain)", CaloriesPerUnit: 126, ProteinG: 3.0, CarbsG: 18.0, FatsG: 5.0, UnitType: "piece", UnitSizeDescription: "1 medium paratha (40g)"},
	{Name: "Aloo Paratha", CaloriesPerUnit: 210, ProteinG: 4.5, CarbsG: 27.0, FatsG: 9.0, UnitType: "piece", UnitSizeDescription: "1 stuffed paratha (100g)"},
	{Name: "Naan", CaloriesPerUnit: 262, ProteinG: 8.0, CarbsG: 45.0, FatsG: 5.0, UnitType: "piece", UnitSizeDescription: "1 naan (90g)"},
	{Name: "Steamed Rice", CaloriesPerUnit: 130, ProteinG: 2.7, CarbsG: 28.0, FatsG: 0.3, UnitType: "katori", UnitSizeDescription: "1 medium katori (100g)"},
	{Name: "Jeera Rice", CaloriesPerUnit: 180, ProteinG: 3.5, CarbsG: 32.0, FatsG: 4.0, UnitType: "katori", UnitSizeDescription: "1 medium katori (120g)"},
	{Name: "Biryani (Veg)", CaloriesPerUnit: 280, ProteinG: 6.0, CarbsG: 45.0, FatsG: 8.0, UnitType: "katori", UnitSizeDescription: "1 medium katori (200g)"},
	{Name: "Biryani (Chicken)", CaloriesPerUnit: 350, ProteinG: 20.0, CarbsG: 42.0, FatsG: 10.0, UnitType: "katori", UnitSizeDescription: "1 medium katori (200g)"},
	{Name: "Dal Tadka", CaloriesPerUnit: 120, ProteinG: 6.0, CarbsG: 18.0, FatsG: 2.5, UnitType: "katori", UnitSizeDescription: "1 small katori (150ml)"},
	{Name: "Dal Makhani", CaloriesPerUnit: 180, ProteinG: 7.0, CarbsG: 20.0, FatsG: 8.0, UnitType: "katori", UnitSizeDescription: "1 small katori (150ml)"},
	{Name: "Sambhar", CaloriesPerUnit: 100, ProteinG: 5.0, CarbsG: 15.0, FatsG: 2.0, UnitType: "katori", UnitSizeDescription: "1 small katori (150ml)"},
	{Name: "Paneer Butter Masala", CaloriesPerUnit: 265, ProteinG: 12.0, CarbsG: 10.0, FatsG: 20.0, UnitType: "katori", UnitSizeDescription: "1 medium katori (150g)"},
	{Name: "Palak Paneer", CaloriesPerUnit: 210, ProteinG: 11.0, CarbsG: 8.0, FatsG: 15.0, UnitType: "katori", UnitSizeDescription: "1 medium katori (150g)"},
	{Name: "Paneer Tikka", CaloriesPerUnit: 180, ProteinG: 14.0, CarbsG: 6.0, FatsG: 12.0, UnitType: "piece", UnitSizeDescription: "4-5 pieces (100g)"},
	{Name: "Shahi Paneer", CaloriesPerUnit: 280, ProteinG: 10.0, CarbsG: 12.0, FatsG: 22.0, UnitType: "katori", UnitSizeDescription: "1 medium katori (150g)"},
	{Name: "Aloo Gobi", CaloriesPerUnit: 150, ProteinG: 3.0, CarbsG: 22.0, FatsG: 6.0, UnitType: "katori", UnitSizeDescription: "1 medium katori (150g)"},
	{Name: "Bhindi Masala", CaloriesPerUnit: 110, ProteinG: 2.5, CarbsG: 12.0, FatsG: 6.0, UnitType: "katori", UnitSizeDescription: "1 medium katori (100g)"},
	{Name: "Baingan Bharta", CaloriesPerUnit: 130, ProteinG: 2.0, CarbsG: 15.0, FatsG: 7.0, UnitType: "katori", UnitSizeDescription: "1 medium katori (150g)"},
	{Name: "Mix Veg Curry", CaloriesPerUnit: 140, ProteinG: 4.0, CarbsG: 18.0, FatsG: 6.0, UnitType: "katori", UnitSizeDescription: "1 medium katori (150g)"},
	{Name: "Chana Masala / Chole", CaloriesPerUnit: 160, ProteinG: 8.0, CarbsG: 24.0, FatsG: 4.0, UnitType: "katori", UnitSizeDescription: "1 medium katori (150g)"},
	{Name: "Rajma Masala", CaloriesPerUnit: 155, ProteinG: 9.0, CarbsG: 23.0, FatsG: 3.5, UnitType: "katori", UnitSizeDescription: "1 medium katori (150g)"},
	{Name: "Chicken Curry", CaloriesPerUnit: 220, ProteinG: 25.0, CarbsG: 8.0, FatsG: 10.0, UnitType: "katori", UnitSizeDescription: "1 medium katori (150g)"},
	{Name: "Butter Chicken", CaloriesPerUnit: 290, ProteinG: 23.0, CarbsG: 10.0, FatsG: 18.0, UnitType: "katori", UnitSizeDescription: "1 medium katori (150g)"},
	{Name: "Fish Curry", CaloriesPerUnit: 180, ProteinG: 20.0, CarbsG: 6.0, FatsG: 9.0, UnitType: "katori", UnitSizeDescription: "1 medium katori (150g)"},
	{Name: "Mutton Curry", CaloriesPerUnit: 310, ProteinG: 22.0, CarbsG: 8.0, FatsG: 22.0, UnitType: "katori", UnitSizeDescription: "1 medium katori (150g)"},
	{Name: "Raita (Cucumber)", CaloriesPerUnit: 60, ProteinG: 2.5, CarbsG: 6.0, FatsG: 3.0, UnitType: "katori", UnitSizeDescription: "1 small katori (100g)"},
	{Name: "Papad (roasted)", CaloriesPerUnit: 40, ProteinG: 1.5, CarbsG: 6.0, FatsG: 1.2, UnitType: "piece", UnitSizeDescription: "1 papad (10g)"},
	{Name: "Pickle (Achar)", CaloriesPerUnit: 25, ProteinG: 0.5, CarbsG: 3.0, FatsG: 1.5, UnitType: "tablespoon", UnitSizeDescription: "1 tablespoon (15g)"},
	{Name: "Samosa", CaloriesPerUnit: 262, ProteinG: 5.0, CarbsG: 32.0, FatsG: 13.0, UnitType: "piece", UnitSizeDescription: "1 medium samosa (100g)"},
	{Name: "Pakora / Bhajiya", CaloriesPerUnit: 180, ProteinG: 4.0, CarbsG: 18.0, FatsG: 10.0, UnitType: "piece", UnitSizeDescription: "5-6 pieces (100g)"},
	{Name: "Vada Pav", CaloriesPerUnit: 290, ProteinG: 7.0, CarbsG: 40.0, FatsG: 12.0, UnitType: "piece", UnitSizeDescription: "1 vada pav (120g)"},
	{Name: "Dhokla", CaloriesPerUnit: 160, ProteinG: 5.0, CarbsG: 28.0, FatsG: 3.0, UnitType: "piece", UnitSizeDescription: "2 pieces (100g)"},
	{Name: "Kachori", CaloriesPerUnit: 230, ProteinG: 5.0, CarbsG: 28.0, FatsG: 11.0, UnitType: "piece", UnitSizeDescription: "1 kachori (80g)"},
	{Name: "Dosa (plain)", CaloriesPerUnit: 168, ProteinG: 4.0, CarbsG: 28.0, FatsG: 4.0, UnitType: "piece", UnitSizeDescription: "1 medium dosa (100g)"},
	{Name: "Masala Dosa", CaloriesPerUnit: 240, ProteinG: 6.0, CarbsG: 38.0, FatsG: 7.0, UnitType: "piece", UnitSizeDescription: "1 dosa with filling (150g)"},
	{Name: "Idli", CaloriesPerUnit: 39, ProteinG: 2.0, CarbsG: 8.0, FatsG: 0.1, UnitType: "piece", UnitSizeDescription: "1 idli (30g)"},
	{Name: "Uttapam", CaloriesPerUnit: 190, ProteinG: 5.0, CarbsG: 32.0, FatsG: 4.0, UnitType: "piece", UnitSizeDescription: "1 uttapam (120g)"},
	{Name: "Poha", CaloriesPerUnit: 180, ProteinG: 3.0, CarbsG: 32.0, FatsG: 5.0, UnitType: "katori", UnitSizeDescription: "1 medium katori (150g)"},
	{Name: "Upma", CaloriesPerUnit: 200, ProteinG: 4.0, CarbsG: 35.0, FatsG: 5.0, UnitType: "katori", UnitSizeDescription: "1 medium katori (150g)"},
	{Name: "Gulab Jamun", CaloriesPerUnit: 175, ProteinG: 3.0, CarbsG: 28.0, FatsG: 6.0, UnitType: "piece", UnitSizeDescription: "1 gulab jamun (50g)"},
	{Name: "Jalebi", CaloriesPerUnit: 150, ProteinG: 1.0, CarbsG: 32.0, FatsG: 3.0, UnitType: "piece", UnitSizeDescription: "2-3 pieces (50g)"},
	{Name: "Rasgulla", CaloriesPerUnit: 106, ProteinG: 4.0, CarbsG: 21.0, FatsG: 1.0, UnitType: "piece", UnitSizeDescription: "1 rasgulla (50g)"},
	{Name: "Ladoo (Besan)", CaloriesPerUnit: 185, ProteinG: 4.0, CarbsG: 24.0, FatsG: 8.0, UnitType: "piece", UnitSizeDescription: "1 ladoo (40g)"},
	{Name: "Halwa (Gajar/Carrot)", CaloriesPerUnit: 220, ProteinG: 3.0, CarbsG: 35.0, FatsG: 8.0, UnitType: "katori", UnitSizeDescription: "1 small katori (100g)"},
	{Name: "Kheer", CaloriesPerUnit: 140, ProteinG: 4.0, CarbsG: 24.0, FatsG: 3.5, UnitType: "katori", UnitSizeDescription: "1 small katori (100ml)"},
	{Name: "Barfi", CaloriesPerUnit: 150, ProteinG: 3.5, CarbsG: 22.0, FatsG: 5.5, UnitType: "piece", UnitSizeDescription: "1 piece (40g)"},
	{Name: "Sandesh", CaloriesPerUnit: 120, ProteinG: 5.0, CarbsG: 18.0, FatsG: 3.0, UnitType: "piece", UnitSizeDescription: "1 piece (50g)"},
	{Name: "Lassi (Sweet)", CaloriesPerUnit: 150, ProteinG: 6.0, CarbsG: 24.0, FatsG: 3.0, UnitType: "cup", UnitSizeDescription: "1 glass (200ml)"},
	{Name: "Lassi (Salted)", CaloriesPerUnit: 90, ProteinG: 6.0, CarbsG: 10.0, FatsG: 3.0, UnitType: "cup", UnitSizeDescription: "1 glass (200ml)"},
	{Name: "Chai (with milk & sugar)", CaloriesPerUnit: 70, ProteinG: 2.0, CarbsG: 12.0, FatsG: 1.5, UnitType: "cup", UnitSizeDescription: "1 cup (150ml)"},
	{Name: "Buttermilk (Chaas)", CaloriesPerUnit: 40, ProteinG: 2.0, CarbsG: 5.0, FatsG: 1.0, UnitType: "cup", UnitSizeDescription: "1 glass (200ml)"},
}

// Foods populates the food catalog. It is idempotent: entries whose name
// already exists are skipped, so it is safe to run on every startup.
func Foods(db *gorm.DB) error {
	added := 0
	for _, f := range indianFoods {
		var existing models.Food
		err := db.Where("name = ?", f.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&f).Error; err != nil {
			return err
		}
		added++
	}
	if added > 0 {
		log.Printf("Seeded %d foods into the catalog", added)
	}
	return nil
}
