package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Settings is the single-row restaurant profile printed on every receipt.
// It is seeded from configuration on first start and edited through the
// settings API.
type Settings struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Tagline1  string    `gorm:"size:100" json:"tagline1"`
	Tagline2  string    `gorm:"size:100" json:"tagline2"`
	Footer    string    `gorm:"size:100" json:"footer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *Settings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Settings model
func (Settings) TableName() string {
	return "settings"
}
