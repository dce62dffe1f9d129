package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rashikfit/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger logrus.FieldLogger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(handler.RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", handler.Register)
			auth.POST("/login", handler.Login)
			auth.POST("/google", handler.GoogleSignIn)
		}

		user := v1.Group("", handler.RequireUser(handler.services.Auth))

		calculator := user.Group("/calculator")
		{
			calculator.GET("", handler.GetCalculator)
			calculator.POST("", handler.RunCalculator)
			calculator.DELETE("", handler.ClearCalculator)
			calculator.GET("/carb-cycle", handler.CarbCycle)
		}

		foods := user.Group("/foods")
		{
			foods.GET("", handler.ListFoods)
			foods.POST("", handler.AddFood)
			foods.GET("/ingredients", handler.ListIngredients)
			foods.POST("/import", handler.ImportFood)
			foods.DELETE("/:id", handler.DeleteFood)
		}

		recipes := user.Group("/recipes")
		{
			recipes.GET("", handler.ListRecipes)
			recipes.POST("", handler.CreateRecipe)
			recipes.GET("/:id", handler.GetRecipe)
			recipes.PUT("/:id", handler.UpdateRecipe)
			recipes.DELETE("/:id", handler.DeleteRecipe)
		}

		plan := user.Group("/plan")
		{
			plan.GET("", handler.GetPlan)
			plan.PUT("/meals", handler.SetMealCount)
			plan.PUT("/slots/:slotId/recipe", handler.AssignSlotRecipe)
			plan.PUT("/slots/:slotId/servings", handler.SetSlotServings)
			plan.POST("/adjust", handler.AdjustPlan)
			plan.POST("/refresh", handler.RefreshPlan)
		}

		progress := user.Group("/progress")
		{
			progress.GET("", handler.ListProgress)
			progress.POST("", handler.AddProgress)
			progress.DELETE("/:id", handler.DeleteProgress)
		}
	}

	return router
}
