package entity

import (
	"time"
)

// IdempotencyKey caches the response of a completed request so retries of
// the same bill creation replay the original result instead of issuing a
// second bill number.
type IdempotencyKey struct {
	ID           uint      `gorm:"primary_key" json:"id"`
	Key          string    `gorm:"size:255;uniqueIndex;not null" json:"key"`
	Endpoint     string    `gorm:"size:255" json:"endpoint"`
	ResponseCode int       `json:"response_code"`
	ResponseBody string    `gorm:"type:text" json:"response_body"`
	ExpiresAt    time.Time `gorm:"index" json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsExpired reports whether the cached response is past its TTL
func (k *IdempotencyKey) IsExpired() bool {
	return time.Now().After(k.ExpiresAt)
}

// TableName returns the table name for the IdempotencyKey model
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}
