package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/omsai/pos-backend/internal/domain/entity"
	"github.com/omsai/pos-backend/internal/domain/repository"
	"github.com/omsai/pos-backend/pkg/apperror"
	"gorm.io/gorm"
)

// BillService handles the bill lifecycle: creation with sequential
// numbering, retrieval, history listing and deletion. Bills are immutable
// once created.
type BillService struct {
	billRepo repository.BillRepository
}

// NewBillService creates a new bill service
func NewBillService(billRepo repository.BillRepository) *BillService {
	return &BillService{billRepo: billRepo}
}

// BillItemInput is one cart line as submitted by the client. Price is in
// rupees.
type BillItemInput struct {
	Name     string
	Quantity int
	Price    float64
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	CustomerPhone string
	Total         float64 // rupees, as displayed to the customer
	Items         []BillItemInput
}

// CreateBill validates the cart, computes the total from the items and
// persists the bill. Number assignment happens inside the repository's
// creation transaction, so a rejected payload never consumes a bill number.
func (s *BillService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("A bill must contain at least one item")
	}

	var total int64
	items := make([]entity.BillItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Name == "" {
			return nil, apperror.NewBadRequestError("Item name is required")
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be greater than zero")
		}
		if item.Price < 0 {
			return nil, apperror.NewBadRequestError("Item price cannot be negative")
		}

		pricePaise := toPaise(item.Price)
		total += pricePaise * int64(item.Quantity)
		items = append(items, entity.BillItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    pricePaise,
		})
	}

	// Clients send the total they displayed; a disagreement with the item
	// sum means the payload is stale or tampered with.
	if input.Total != 0 && toPaise(input.Total) != total {
		return nil, apperror.NewBadRequestError("Submitted total does not match the item sum")
	}

	bill := &entity.Bill{
		CustomerPhone: input.CustomerPhone,
		Total:         total,
		Items:         items,
	}
	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// GetBill retrieves a bill by ID
func (s *BillService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills returns the bill history, most recent first
func (s *BillService) ListBills(ctx context.Context) ([]entity.Bill, error) {
	return s.billRepo.List(ctx)
}

// DeleteBill permanently removes a bill. Its bill number is not reused.
func (s *BillService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	err := s.billRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewNotFoundError("Bill")
	}
	return err
}

// toPaise converts a rupee amount to integer paise.
func toPaise(rupees float64) int64 {
	return int64(math.Round(rupees * 100))
}
