package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One Meal per user action (breakfast, lunch, …)
type Meal struct {
	ID          string           `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID      uint             `gorm:"not null;index:idx_meals_user_timestamp,priority:1" json:"user_id"`
	Name        string           `gorm:"not null" json:"name"`
	Description string           `json:"description,omitempty"`
	Ingredients []MealIngredient `json:"ingredients"`
	Timestamp   time.Time        `gorm:"index:idx_meals_user_timestamp,priority:2" json:"timestamp"`
	CreatedAt   time.Time        `json:"-"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// MealIngredient is one (ingredient, quantity) row of a meal.
// Position keeps the submission order on read.
type MealIngredient struct {
	ID           uint    `gorm:"primaryKey" json:"-"`
	MealID       string  `gorm:"type:varchar(36);index;not null" json:"-"`
	IngredientID string  `gorm:"type:varchar(36);not null" json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	Position     int     `gorm:"not null" json:"-"`
}

func (m *Meal) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
