package services

import (
	"errors"

	"backend/models"
	"backend/repositories"
	"backend/utils"

	"github.com/sirupsen/logrus"
)

type IngredientService struct {
	ingredients repositories.IngredientRepository
}

func NewIngredientService(ingredients repositories.IngredientRepository) *IngredientService {
	return &IngredientService{ingredients: ingredients}
}

// IngredientPayload is the request body for a new ingredient, either at
// top-level creation or inline inside a meal submission.
type IngredientPayload struct {
	Name              string             `json:"name" binding:"required"`
	Description       string             `json:"description"`
	ReferenceQuantity float64            `json:"reference_quantity"`
	ReferenceUnit     string             `json:"reference_unit"`
	Nutrients         models.NutrientMap `json:"nutrients"`
}

func (p *IngredientPayload) toModel() *models.Ingredient {
	nutrients := p.Nutrients
	if nutrients == nil {
		nutrients = models.NutrientMap{}
	}
	return &models.Ingredient{
		Name:              p.Name,
		Description:       p.Description,
		ReferenceQuantity: p.ReferenceQuantity,
		ReferenceUnit:     p.ReferenceUnit,
		Nutrients:         nutrients,
	}
}

func (s *IngredientService) CreateIngredient(payload IngredientPayload) (*models.Ingredient, error) {
	ing := payload.toModel()
	if err := s.ingredients.Create(ing); err != nil {
		if errors.Is(err, repositories.ErrIngredientExists) {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"op":   "create_ingredient",
			"name": payload.Name,
		}).WithError(err).Error("storage failure")
		return nil, &StorageError{Op: "create ingredient", Err: err}
	}
	utils.IngredientsCreated.Inc()
	return ing, nil
}

func (s *IngredientService) ListIngredients() ([]models.Ingredient, error) {
	ingredients, err := s.ingredients.FindAll()
	if err != nil {
		logrus.WithField("op", "list_ingredients").WithError(err).Error("storage failure")
		return nil, &StorageError{Op: "list ingredients", Err: err}
	}
	return ingredients, nil
}

func (s *IngredientService) SearchIngredients(query string) ([]models.Ingredient, error) {
	ingredients, err := s.ingredients.Search(query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"op":    "search_ingredients",
			"query": query,
		}).WithError(err).Error("storage failure")
		return nil, &StorageError{Op: "search ingredients", Err: err}
	}
	return ingredients, nil
}
