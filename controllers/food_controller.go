package controllers

import (
	"net/http"

	"github.com/lol2506/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	foodSvc *services.FoodService
}

func NewFoodController(foodSvc *services.FoodService) *FoodController {
	return &FoodController{foodSvc: foodSvc}
}

// GET /foods?search=paneer
func (ctl *FoodController) List(c *gin.Context) {
	foods, err := ctl.foodSvc.Search(c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}
