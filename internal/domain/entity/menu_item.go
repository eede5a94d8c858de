package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItem represents a dish on the menu. Bills copy its name and price at
// creation time and never reference it afterwards.
type MenuItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Price     int64     `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (m MenuItem) MarshalJSON() ([]byte, error) {
	type Alias MenuItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(m),
		Price: float64(m.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new menu item
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}
