package repositories

import (
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type MealRepository interface {
	Create(meal *models.Meal) error
	LastByUser(userID uint) (*models.Meal, error)
	ListByUserPaginated(userID uint, page, pageSize int) ([]models.Meal, int64, error)
	GetByIDAndUser(id string, userID uint) (*models.Meal, error)
}

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func orderedIngredients(db *gorm.DB) *gorm.DB {
	return db.Order("meal_ingredients.position")
}

// Create inserts the meal and its ingredient rows in one GORM create,
// which runs inside a single transaction.
func (r *mealRepository) Create(meal *models.Meal) error {
	return r.db.Create(meal).Error
}

func (r *mealRepository) LastByUser(userID uint) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.
		Preload("Ingredients", orderedIngredients).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) ListByUserPaginated(userID uint, page, pageSize int) ([]models.Meal, int64, error) {
	var total int64
	if err := r.db.
		Model(&models.Meal{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var meals []models.Meal
	err := r.db.
		Preload("Ingredients", orderedIngredients).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&meals).Error
	return meals, total, err
}

func (r *mealRepository) GetByIDAndUser(id string, userID uint) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.
		Preload("Ingredients", orderedIngredients).
		Where("id = ? AND user_id = ?", id, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}
