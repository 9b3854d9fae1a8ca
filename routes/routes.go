package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to the Meal Tracker"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// Public user routes
	users := api.Group("/users")
	{
		users.POST("/register", controllers.Register)
		users.POST("/login", controllers.Login)
	}

	// Protected ingredient routes
	ingredients := api.Group("/ingredients")
	ingredients.Use(middlewares.AuthMiddleware())
	{
		ingredients.POST("", controllers.CreateIngredient)
		ingredients.GET("", controllers.ListIngredients)
		ingredients.GET("/search", controllers.SearchIngredients)
	}

	// Protected meal routes
	meals := api.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("", controllers.CreateMeal)
		meals.GET("", controllers.ListMeals)
		meals.GET("/last", controllers.GetLastMeal)
		meals.GET("/:id/detailed", controllers.GetDetailedMeal)
	}

	return r
}
