package controllers

import (
	"errors"
	"net/http"
	"strings"

	"backend/config"
	"backend/repositories"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func newIngredientService() *services.IngredientService {
	return services.NewIngredientService(repositories.NewIngredientRepository(config.DB))
}

func CreateIngredient(c *gin.Context) {
	var payload services.IngredientPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ing, err := newIngredientService().CreateIngredient(payload)
	if err != nil {
		if errors.Is(err, repositories.ErrIngredientExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, ing)
}

func ListIngredients(c *gin.Context) {
	ingredients, err := newIngredientService().ListIngredients()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// GET /ingredients/search?q=chicken
func SearchIngredients(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	ingredients, err := newIngredientService().SearchIngredients(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ingredients)
}
