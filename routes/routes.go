package routes

import (
	"net/http"
	"strings"

	"github.com/lol2506/calorie-tracker/config"
	"github.com/lol2506/calorie-tracker/controllers"
	"github.com/lol2506/calorie-tracker/middlewares"
	"github.com/lol2506/calorie-tracker/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	foodSvc := services.NewFoodService(db)
	userSvc := services.NewUserService(db)
	authSvc := services.NewAuthService(db)
	mealSvc := services.NewMealService(db, foodSvc)
	statsSvc := services.NewStatsService(mealSvc, userSvc)

	authCtl := controllers.NewAuthController(authSvc, cfg.JWTSecret)
	userCtl := controllers.NewUserController(userSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	mealCtl := controllers.NewMealController(mealSvc, statsSvc)

	r := gin.Default()
	r.Use(corsMiddleware(cfg.CORSOrigins))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Calorie Tracker API", "status": "running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/signup", authCtl.Signup)
		auth.POST("/login", authCtl.Login)
	}

	users := r.Group("/users")
	users.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		users.GET("/me", userCtl.Me)
		users.PUT("/me/goal", userCtl.UpdateGoal)
	}

	foods := r.Group("/foods")
	foods.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		foods.GET("", foodCtl.List)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		meals.POST("", mealCtl.Create)
		meals.GET("/today", mealCtl.ListToday)
		meals.GET("/stats/today", mealCtl.StatsToday)
		meals.DELETE("/:id", mealCtl.Delete)
	}

	return r
}

func corsMiddleware(origins string) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	if origins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = strings.Split(origins, ",")
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	return cors.New(corsCfg)
}
