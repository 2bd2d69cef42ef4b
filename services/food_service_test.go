package services

import (
	"testing"

	"github.com/lol2506/calorie-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFoods(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodService(db)
	createTestFood(t, db, rotiFood())
	createTestFood(t, db, dalTadkaFood())
	createTestFood(t, db, models.Food{
		Name: "Palak Paneer", CaloriesPerUnit: 210, UnitType: "katori",
		UnitSizeDescription: "1 medium katori (150g)",
	})
	createTestFood(t, db, models.Food{
		Name: "Paneer Tikka", CaloriesPerUnit: 180, UnitType: "piece",
		UnitSizeDescription: "4-5 pieces (100g)",
	})

	all, err := svc.Search("")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	// case-insensitive substring match on name
	matches, err := svc.Search("PANEER")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Palak Paneer", matches[0].Name)
	assert.Equal(t, "Paneer Tikka", matches[1].Name)

	none, err := svc.Search("pizza")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetFood(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodService(db)
	food := createTestFood(t, db, rotiFood())

	got, err := svc.GetFood(food.ID)
	require.NoError(t, err)
	assert.Equal(t, food.Name, got.Name)
	assert.InDelta(t, 71.0, got.CaloriesPerUnit, 1e-9)

	_, err = svc.GetFood(9999)
	require.ErrorIs(t, err, ErrFoodNotFound)
}
