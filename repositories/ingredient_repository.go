package repositories

import (
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type IngredientRepository interface {
	Create(ing *models.Ingredient) error
	FindAll() ([]models.Ingredient, error)
	FindByID(id string) (*models.Ingredient, error)
	FindByName(name string) (*models.Ingredient, error)
	Search(query string) ([]models.Ingredient, error)
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ing *models.Ingredient) error {
	if err := r.db.Create(ing).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrIngredientExists
		}
		return err
	}
	return nil
}

func (r *ingredientRepository) FindAll() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := r.db.Order("name").Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) FindByID(id string) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := r.db.First(&ing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return &ing, nil
}

// FindByName matches the exact, case-sensitive name; the dedup policy
// keys on it.
func (r *ingredientRepository) FindByName(name string) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := r.db.First(&ing, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return &ing, nil
}

func (r *ingredientRepository) Search(query string) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := r.db.
		Where("name ILIKE ?", "%"+query+"%").
		Order("name").
		Find(&ingredients).Error
	return ingredients, err
}
