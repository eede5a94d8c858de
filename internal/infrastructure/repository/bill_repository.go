package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/omsai/pos-backend/internal/domain/entity"
	domainRepo "github.com/omsai/pos-backend/internal/domain/repository"
	"github.com/omsai/pos-backend/pkg/apperror"
	"gorm.io/gorm"
)

// maxNumberRetries bounds how often a creation retries after a bill number
// collision before the conflict is surfaced to the caller.
const maxNumberRetries = 3

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

// Create stamps the creation date, draws the next bill number from the
// counter row and inserts the bill, all in one transaction. The counter
// UPDATE holds a row lock until commit, so concurrent creations serialize
// on it and each observes a distinct value. If the counter has fallen
// behind existing data (restored dump, manual insert) the unique index on
// bill_number rejects the insert; the counter is resynced and the creation
// retried. A failed creation may leave a gap in the sequence, never a
// duplicate.
func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	for attempt := 0; attempt < maxNumberRetries; attempt++ {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var next int64
			res := tx.Raw(
				"UPDATE counters SET value = value + 1 WHERE name = ? RETURNING value",
				entity.BillNumberCounter,
			).Scan(&next)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errors.New("bill number counter row is missing")
			}

			bill.BillNumber = next
			bill.Date = time.Now()
			for i := range bill.Items {
				bill.Items[i].Position = i
			}
			return tx.Create(bill).Error
		})
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return err
		}

		if err := r.syncCounter(ctx); err != nil {
			return err
		}
		resetIDs(bill)
	}
	return apperror.NewConflictError("could not assign a unique bill number")
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items", orderByPosition).
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) List(ctx context.Context) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items", orderByPosition).
		Order("date DESC").
		Find(&bills).Error
	return bills, err
}

func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&entity.Bill{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *billRepository) MaxBillNumber(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(MAX(bill_number), 0) FROM bills").
		Scan(&max).Error
	return max, err
}

// syncCounter lifts the counter to the highest stored bill number so the
// next draw cannot collide again.
func (r *billRepository) syncCounter(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec(
		"UPDATE counters SET value = GREATEST(value, (SELECT COALESCE(MAX(bill_number), 0) FROM bills)) WHERE name = ?",
		entity.BillNumberCounter,
	).Error
}

// resetIDs clears ids assigned by BeforeCreate in a rolled-back attempt so
// the retry inserts fresh rows.
func resetIDs(bill *entity.Bill) {
	bill.ID = uuid.Nil
	for i := range bill.Items {
		bill.Items[i].ID = uuid.Nil
		bill.Items[i].BillID = uuid.Nil
	}
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
