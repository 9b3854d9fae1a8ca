package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/config"
	"backend/repositories"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func newMealService() *services.MealService {
	return services.NewMealService(
		repositories.NewMealRepository(config.DB),
		repositories.NewIngredientRepository(config.DB),
	)
}

func CreateMeal(c *gin.Context) {
	var body services.CreateMealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		var invalid *services.InvalidReferenceError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": invalid.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.MustGet("userID").(uint)

	meal, err := newMealService().CreateMeal(userID, body)
	if err != nil {
		var refErr *services.ReferenceNotFoundError
		var invalid *services.InvalidReferenceError
		switch {
		case errors.As(err, &refErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": refErr.Error()})
		case errors.As(err, &invalid):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": invalid.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, meal)
}

func GetLastMeal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	meal, err := newMealService().LastMeal(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no meals found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, meal)
}

// GET /meals?page=1&page_size=10
func ListMeals(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be an integer >= 1"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page_size must be between 1 and 100"})
		return
	}

	meals, err := newMealService().ListMeals(userID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, meals)
}

func GetDetailedMeal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	mealID := c.Param("id")

	detailed, err := newMealService().DetailedMeal(mealID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, detailed)
}
