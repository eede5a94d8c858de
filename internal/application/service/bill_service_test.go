package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/omsai/pos-backend/internal/domain/entity"
	"github.com/omsai/pos-backend/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeBillRepo mimics the store contract: numbers are issued atomically at
// creation time and never reused after deletion.
type fakeBillRepo struct {
	mu    sync.Mutex
	next  int64
	bills map[uuid.UUID]*entity.Bill
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[uuid.UUID]*entity.Bill)}
}

func (r *fakeBillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	bill.ID = uuid.New()
	bill.BillNumber = r.next
	bill.Date = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(r.next) * time.Minute)
	r.bills[bill.ID] = bill
	return nil
}

func (r *fakeBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bill, ok := r.bills[id]
	if !ok {
		return nil, nil
	}
	return bill, nil
}

func (r *fakeBillRepo) List(ctx context.Context) ([]entity.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bills := make([]entity.Bill, 0, len(r.bills))
	for _, b := range r.bills {
		bills = append(bills, *b)
	}
	sort.Slice(bills, func(i, j int) bool {
		return bills[i].Date.After(bills[j].Date)
	})
	return bills, nil
}

func (r *fakeBillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bills[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.bills, id)
	return nil
}

func (r *fakeBillRepo) MaxBillNumber(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var max int64
	for _, b := range r.bills {
		if b.BillNumber > max {
			max = b.BillNumber
		}
	}
	return max, nil
}

func validBillInput() *CreateBillInput {
	return &CreateBillInput{
		CustomerPhone: "9822012345",
		Items: []BillItemInput{
			{Name: "Paneer Tikka", Quantity: 2, Price: 150},
			{Name: "Butter Naan", Quantity: 3, Price: 20},
		},
	}
}

func TestCreateBillComputesTotalFromItems(t *testing.T) {
	svc := NewBillService(newFakeBillRepo())

	bill, err := svc.CreateBill(context.Background(), validBillInput())
	require.NoError(t, err)

	assert.Equal(t, int64(36000), bill.Total)
	assert.Equal(t, int64(1), bill.BillNumber)
	require.Len(t, bill.Items, 2)
	assert.Equal(t, int64(15000), bill.Items[0].Price)
	assert.Equal(t, int64(2000), bill.Items[1].Price)
}

func TestCreateBillAssignsSequentialNumbers(t *testing.T) {
	svc := NewBillService(newFakeBillRepo())

	for want := int64(1); want <= 5; want++ {
		bill, err := svc.CreateBill(context.Background(), validBillInput())
		require.NoError(t, err)
		assert.Equal(t, want, bill.BillNumber)
	}
}

func TestCreateBillRejectsEmptyCart(t *testing.T) {
	repo := newFakeBillRepo()
	svc := NewBillService(repo)

	_, err := svc.CreateBill(context.Background(), &CreateBillInput{})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	// The rejected request must not have consumed a bill number.
	bill, err := svc.CreateBill(context.Background(), validBillInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), bill.BillNumber)
}

func TestCreateBillValidatesItems(t *testing.T) {
	svc := NewBillService(newFakeBillRepo())

	tests := []struct {
		name string
		item BillItemInput
	}{
		{"empty name", BillItemInput{Name: "", Quantity: 1, Price: 10}},
		{"zero quantity", BillItemInput{Name: "Chai", Quantity: 0, Price: 10}},
		{"negative quantity", BillItemInput{Name: "Chai", Quantity: -1, Price: 10}},
		{"negative price", BillItemInput{Name: "Chai", Quantity: 1, Price: -10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBill(context.Background(), &CreateBillInput{
				Items: []BillItemInput{tt.item},
			})
			require.Error(t, err)
			assert.Equal(t, 400, apperror.GetAppError(err).Code)
		})
	}
}

func TestCreateBillTotalCheck(t *testing.T) {
	svc := NewBillService(newFakeBillRepo())

	input := validBillInput()
	input.Total = 250
	_, err := svc.CreateBill(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, "Submitted total does not match the item sum", apperror.GetAppError(err).Message)

	input = validBillInput()
	input.Total = 360
	_, err = svc.CreateBill(context.Background(), input)
	assert.NoError(t, err)
}

func TestCreateBillConcurrentNumbersAreUnique(t *testing.T) {
	svc := NewBillService(newFakeBillRepo())

	const n = 25
	numbers := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bill, err := svc.CreateBill(context.Background(), validBillInput())
			if assert.NoError(t, err) {
				numbers <- bill.BillNumber
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[int64]bool)
	for num := range numbers {
		seen[num] = true
	}
	require.Len(t, seen, n)
	for want := int64(1); want <= n; want++ {
		assert.True(t, seen[want], "missing bill number %d", want)
	}
}

func TestGetBillNotFound(t *testing.T) {
	svc := NewBillService(newFakeBillRepo())

	_, err := svc.GetBill(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestDeleteBill(t *testing.T) {
	svc := NewBillService(newFakeBillRepo())

	bill, err := svc.CreateBill(context.Background(), validBillInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBill(context.Background(), bill.ID))

	// Deleting again reports not found.
	err = svc.DeleteBill(context.Background(), bill.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestDeletedNumberIsNotReused(t *testing.T) {
	svc := NewBillService(newFakeBillRepo())

	first, err := svc.CreateBill(context.Background(), validBillInput())
	require.NoError(t, err)
	require.NoError(t, svc.DeleteBill(context.Background(), first.ID))

	second, err := svc.CreateBill(context.Background(), validBillInput())
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.BillNumber)
}

func TestListBillsMostRecentFirst(t *testing.T) {
	svc := NewBillService(newFakeBillRepo())

	for i := 0; i < 3; i++ {
		_, err := svc.CreateBill(context.Background(), validBillInput())
		require.NoError(t, err)
	}

	bills, err := svc.ListBills(context.Background())
	require.NoError(t, err)
	require.Len(t, bills, 3)
	assert.Equal(t, int64(3), bills[0].BillNumber)
	assert.Equal(t, int64(2), bills[1].BillNumber)
	assert.Equal(t, int64(1), bills[2].BillNumber)
}
