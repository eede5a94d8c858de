package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill is an immutable record of a completed sale. Bills are never updated
// after creation; the only mutation the store permits is whole-record
// deletion, which does not reclaim the bill number.
type Bill struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillNumber    int64     `gorm:"uniqueIndex;not null" json:"billNumber"`
	CustomerPhone string    `gorm:"size:20" json:"customerPhone"`
	Total         int64     `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	Date          time.Time `gorm:"index;not null" json:"date"`
	CreatedAt     time.Time `json:"created_at"`

	Items []BillItem `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"items"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (b Bill) MarshalJSON() ([]byte, error) {
	type Alias Bill
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(b),
		Total: float64(b.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// BillItem is a snapshot of a menu item's name and price at sale time plus
// the sold quantity. It deliberately carries no menu item reference so menu
// edits never change historical bills.
type BillItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillID   uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Position int       `gorm:"not null" json:"-"` // insertion order within the bill
	Name     string    `gorm:"size:100;not null" json:"name"`
	Quantity int       `gorm:"not null" json:"quantity"`
	Price    int64     `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (bi BillItem) MarshalJSON() ([]byte, error) {
	type Alias BillItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(bi),
		Price: float64(bi.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill item
func (bi *BillItem) BeforeCreate(tx *gorm.DB) error {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}

// LineTotal returns price * quantity in paise.
func (bi *BillItem) LineTotal() int64 {
	return bi.Price * int64(bi.Quantity)
}

// BillNumberCounter is the name of the counter row that owns the bill
// number sequence.
const BillNumberCounter = "bill_number"

// Counter is a named database-owned sequence. Incrementing the row and
// reading the new value happens in one statement, which serializes
// concurrent bill creations across server instances.
type Counter struct {
	Name  string `gorm:"size:50;primary_key"`
	Value int64  `gorm:"not null"`
}

// TableName returns the table name for the Counter model
func (Counter) TableName() string {
	return "counters"
}
