package services

import (
	"encoding/json"
	"errors"
	"time"

	"backend/models"
	"backend/repositories"
	"backend/utils"

	"github.com/sirupsen/logrus"
)

type MealService struct {
	meals       repositories.MealRepository
	ingredients repositories.IngredientRepository
}

func NewMealService(meals repositories.MealRepository, ingredients repositories.IngredientRepository) *MealService {
	return &MealService{meals: meals, ingredients: ingredients}
}

// MealIngredientRef is either the id of an existing ingredient or a
// full payload for a first-time ingredient. Exactly one side is set;
// the variant is decided here, at decode time.
type MealIngredientRef struct {
	ExistingID string
	New        *IngredientPayload
}

func (r *MealIngredientRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		if id == "" {
			return &InvalidReferenceError{Reason: "ingredient id must not be empty"}
		}
		r.ExistingID = id
		return nil
	}

	var payload IngredientPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return &InvalidReferenceError{Reason: "ingredient must be an id string or an ingredient object"}
	}
	if payload.Name == "" {
		return &InvalidReferenceError{Reason: "inline ingredient requires a name"}
	}
	r.New = &payload
	return nil
}

type MealIngredientRequest struct {
	Ingredient MealIngredientRef `json:"ingredient"`
	Quantity   float64           `json:"quantity"`
}

type CreateMealRequest struct {
	Name        string                  `json:"name" binding:"required"`
	Description string                  `json:"description"`
	Ingredients []MealIngredientRequest `json:"ingredients" binding:"required"`
	Timestamp   *time.Time              `json:"timestamp"`
}

type PaginatedMeals struct {
	Meals    []models.Meal `json:"meals"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

type DetailedNutrient struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type DetailedIngredient struct {
	Name              string                      `json:"name"`
	Quantity          float64                     `json:"quantity"`
	ReferenceQuantity float64                     `json:"reference_quantity"`
	ReferenceUnit     string                      `json:"reference_unit"`
	Nutrients         map[string]DetailedNutrient `json:"nutrients"`
}

type DetailedMeal struct {
	ID          string               `json:"id"`
	UserID      uint                 `json:"user_id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Ingredients []DetailedIngredient `json:"ingredients"`
	Timestamp   time.Time            `json:"timestamp"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// CreateMeal resolves every ingredient reference, then persists the
// meal with its normalized (ingredient_id, quantity) rows. One bad
// reference aborts the whole submission.
func (s *MealService) CreateMeal(userID uint, req CreateMealRequest) (*models.Meal, error) {
	rows, err := s.resolveIngredients(req.Ingredients)
	if err != nil {
		return nil, err
	}

	ts := time.Now().UTC()
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}

	meal := &models.Meal{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Ingredients: rows,
		Timestamp:   ts,
	}
	if err := s.meals.Create(meal); err != nil {
		logrus.WithFields(logrus.Fields{
			"op":      "create_meal",
			"user_id": userID,
		}).WithError(err).Error("storage failure")
		return nil, &StorageError{Op: "create meal", Err: err}
	}

	utils.MealsCreated.Inc()
	return meal, nil
}

// resolveIngredients turns references into persisted ingredient ids,
// preserving submission order. All by-id references are validated
// before any inline ingredient is inserted, so an unknown id never
// leaves partial writes behind.
func (s *MealService) resolveIngredients(refs []MealIngredientRequest) ([]models.MealIngredient, error) {
	for _, ref := range refs {
		id := ref.Ingredient.ExistingID
		if id == "" {
			continue
		}
		if _, err := s.ingredients.FindByID(id); err != nil {
			if errors.Is(err, repositories.ErrIngredientNotFound) {
				return nil, &ReferenceNotFoundError{ID: id}
			}
			logrus.WithFields(logrus.Fields{
				"op":            "resolve_ingredients",
				"ingredient_id": id,
			}).WithError(err).Error("storage failure")
			return nil, &StorageError{Op: "resolve ingredient reference", Err: err}
		}
	}

	rows := make([]models.MealIngredient, 0, len(refs))
	for i, ref := range refs {
		var resolvedID string
		switch {
		case ref.Ingredient.ExistingID != "":
			resolvedID = ref.Ingredient.ExistingID
		case ref.Ingredient.New != nil:
			id, err := s.resolveInline(ref.Ingredient.New)
			if err != nil {
				return nil, err
			}
			resolvedID = id
		default:
			return nil, &InvalidReferenceError{Reason: "ingredient reference is empty"}
		}
		rows = append(rows, models.MealIngredient{
			IngredientID: resolvedID,
			Quantity:     ref.Quantity,
			Position:     i,
		})
	}
	return rows, nil
}

// resolveInline dedups by exact name: an existing record wins and the
// submitted payload's other fields are discarded. A lost insert race is
// converted back into reuse with a single re-fetch.
func (s *MealService) resolveInline(payload *IngredientPayload) (string, error) {
	existing, err := s.ingredients.FindByName(payload.Name)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, repositories.ErrIngredientNotFound) {
		logrus.WithFields(logrus.Fields{
			"op":   "resolve_inline_ingredient",
			"name": payload.Name,
		}).WithError(err).Error("storage failure")
		return "", &StorageError{Op: "resolve inline ingredient", Err: err}
	}

	ing := payload.toModel()
	err = s.ingredients.Create(ing)
	if err == nil {
		utils.IngredientsCreated.Inc()
		return ing.ID, nil
	}
	if !errors.Is(err, repositories.ErrIngredientExists) {
		logrus.WithFields(logrus.Fields{
			"op":   "resolve_inline_ingredient",
			"name": payload.Name,
		}).WithError(err).Error("storage failure")
		return "", &StorageError{Op: "create inline ingredient", Err: err}
	}

	// A concurrent request inserted the same name first; its record is
	// authoritative. One retry only.
	existing, err = s.ingredients.FindByName(payload.Name)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"op":   "resolve_inline_ingredient",
			"name": payload.Name,
		}).WithError(err).Error("storage failure after duplicate-name conflict")
		return "", &StorageError{Op: "re-fetch ingredient after conflict", Err: err}
	}
	return existing.ID, nil
}

func (s *MealService) LastMeal(userID uint) (*models.Meal, error) {
	meal, err := s.meals.LastByUser(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrMealNotFound) {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"op":      "last_meal",
			"user_id": userID,
		}).WithError(err).Error("storage failure")
		return nil, &StorageError{Op: "fetch last meal", Err: err}
	}
	return meal, nil
}

func (s *MealService) ListMeals(userID uint, page, pageSize int) (*PaginatedMeals, error) {
	meals, total, err := s.meals.ListByUserPaginated(userID, page, pageSize)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"op":      "list_meals",
			"user_id": userID,
			"page":    page,
		}).WithError(err).Error("storage failure")
		return nil, &StorageError{Op: "list meals", Err: err}
	}
	if meals == nil {
		meals = []models.Meal{}
	}
	return &PaginatedMeals{Meals: meals, Total: total, Page: page, PageSize: pageSize}, nil
}

// DetailedMeal expands a meal's ingredient rows into per-nutrient
// values with units attached. Nutrient values are the stored
// per-reference-quantity amounts; reference_quantity/reference_unit are
// included so a client can scale them against the eaten quantity.
// Expansion is best-effort: a row whose ingredient no longer exists is
// dropped, not fatal.
func (s *MealService) DetailedMeal(mealID string, userID uint) (*DetailedMeal, error) {
	meal, err := s.meals.GetByIDAndUser(mealID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrMealNotFound) {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"op":      "detailed_meal",
			"meal_id": mealID,
			"user_id": userID,
		}).WithError(err).Error("storage failure")
		return nil, &StorageError{Op: "fetch meal", Err: err}
	}

	detailed := make([]DetailedIngredient, 0, len(meal.Ingredients))
	for _, row := range meal.Ingredients {
		ing, err := s.ingredients.FindByID(row.IngredientID)
		if err != nil {
			if errors.Is(err, repositories.ErrIngredientNotFound) {
				logrus.WithFields(logrus.Fields{
					"meal_id":       mealID,
					"ingredient_id": row.IngredientID,
				}).Warn("meal references missing ingredient, dropping from detail view")
				continue
			}
			logrus.WithFields(logrus.Fields{
				"op":            "detailed_meal",
				"ingredient_id": row.IngredientID,
			}).WithError(err).Error("storage failure")
			return nil, &StorageError{Op: "expand meal ingredient", Err: err}
		}

		nutrients := make(map[string]DetailedNutrient, len(ing.Nutrients))
		for name, value := range ing.Nutrients {
			nutrients[name] = DetailedNutrient{
				Value: value,
				Unit:  models.NutrientUnit(name),
			}
		}
		detailed = append(detailed, DetailedIngredient{
			Name:              ing.Name,
			Quantity:          row.Quantity,
			ReferenceQuantity: ing.ReferenceQuantity,
			ReferenceUnit:     ing.ReferenceUnit,
			Nutrients:         nutrients,
		})
	}

	return &DetailedMeal{
		ID:          meal.ID,
		UserID:      meal.UserID,
		Name:        meal.Name,
		Description: meal.Description,
		Ingredients: detailed,
		Timestamp:   meal.Timestamp,
		UpdatedAt:   meal.UpdatedAt,
	}, nil
}
