package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NutrientMap stores nutrient amounts per reference quantity as a jsonb column.
type NutrientMap map[string]float64

func (m NutrientMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *NutrientMap) Scan(value interface{}) error {
	if value == nil {
		*m = NutrientMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return errors.New("unsupported source type for NutrientMap")
}

// An Ingredient records nutrient amounts for a reference quantity,
// e.g. per 100 g. Names are unique; two submissions with the same
// name refer to the same record.
type Ingredient struct {
	ID                string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name              string      `gorm:"uniqueIndex;not null" json:"name"`
	Description       string      `json:"description,omitempty"`
	ReferenceQuantity float64     `json:"reference_quantity"`
	ReferenceUnit     string      `json:"reference_unit"`
	Nutrients         NutrientMap `gorm:"type:jsonb" json:"nutrients"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

func (i *Ingredient) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
