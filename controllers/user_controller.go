package controllers

import (
	"errors"
	"net/http"

	"github.com/lol2506/calorie-tracker/middlewares"
	"github.com/lol2506/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userSvc *services.UserService
}

func NewUserController(userSvc *services.UserService) *UserController {
	return &UserController{userSvc: userSvc}
}

// GET /users/me
func (ctl *UserController) Me(c *gin.Context) {
	user, err := ctl.userSvc.GetUser(middlewares.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

type UpdateGoalInput struct {
	DailyCalorieGoal int `json:"daily_calorie_goal" binding:"required,gt=0"`
}

// PUT /users/me/goal
func (ctl *UserController) UpdateGoal(c *gin.Context) {
	var input UpdateGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.userSvc.UpdateDailyGoal(middlewares.CurrentUserID(c), input.DailyCalorieGoal)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
