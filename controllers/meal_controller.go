package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/lol2506/calorie-tracker/middlewares"
	"github.com/lol2506/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	mealSvc  *services.MealService
	statsSvc *services.StatsService
}

func NewMealController(mealSvc *services.MealService, statsSvc *services.StatsService) *MealController {
	return &MealController{mealSvc: mealSvc, statsSvc: statsSvc}
}

type CreateMealInput struct {
	FoodID   uint    `json:"food_id" binding:"required"`
	MealType string  `json:"meal_type" binding:"required"`
	Quantity float64 `json:"quantity"`
}

// POST /meals
func (ctl *MealController) Create(c *gin.Context) {
	var input CreateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := ctl.mealSvc.AddMeal(middlewares.CurrentUserID(c), input.FoodID, input.MealType, input.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFoodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidMealType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// GET /meals/today
func (ctl *MealController) ListToday(c *gin.Context) {
	meals, err := ctl.mealSvc.ListMealsForDay(middlewares.CurrentUserID(c), time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// GET /meals/stats/today
func (ctl *MealController) StatsToday(c *gin.Context) {
	stats, err := ctl.statsSvc.DailyStats(middlewares.CurrentUserID(c), time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// DELETE /meals/:id
func (ctl *MealController) Delete(c *gin.Context) {
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := ctl.mealSvc.DeleteMeal(middlewares.CurrentUserID(c), uint(mealID)); err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
