package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/omsai/pos-backend/internal/domain/entity"
)

// BillRepository defines the interface for bill data operations.
//
// Create assigns the bill number and the creation date: the number comes
// from the store-owned counter and is issued in the same transaction as the
// insert, so two concurrent creations can never share a number. Deleting a
// bill removes it entirely and never reclaims its number.
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	// List returns all bills most recent first (date descending).
	List(ctx context.Context) ([]entity.Bill, error)
	// Delete returns gorm.ErrRecordNotFound when no bill has the given id.
	Delete(ctx context.Context, id uuid.UUID) error
	MaxBillNumber(ctx context.Context) (int64, error)
}
