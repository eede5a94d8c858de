package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/omsai/pos-backend/internal/domain/entity"
	"github.com/omsai/pos-backend/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	settings *entity.Settings
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	return r.settings, nil
}

func (r *fakeSettingsRepo) Create(ctx context.Context, settings *entity.Settings) error {
	r.settings = settings
	return nil
}

func (r *fakeSettingsRepo) Update(ctx context.Context, settings *entity.Settings) error {
	r.settings = settings
	return nil
}

// capturePrinter records what was sent so tests can inspect the stream.
type capturePrinter struct {
	printed [][]byte
	err     error
}

func (p *capturePrinter) Print(data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.printed = append(p.printed, data)
	return nil
}

func (p *capturePrinter) IsConnected() bool { return true }

func newReceiptFixture(t *testing.T) (*ReceiptService, *BillService, *capturePrinter) {
	t.Helper()
	billRepo := newFakeBillRepo()
	settingsRepo := &fakeSettingsRepo{settings: &entity.Settings{
		Name:     "OM SAI FAMILY RESTAURANT",
		Tagline1: "Veg & Non-Veg | Free Wi-Fi",
		Tagline2: "Bypass Road, Samudrapur",
		Footer:   "Thank you, visit again!",
	}}
	cp := &capturePrinter{}
	return NewReceiptService(billRepo, settingsRepo, cp, "usb", 48),
		NewBillService(billRepo), cp
}

func TestBillPDF(t *testing.T) {
	svc, bills, _ := newReceiptFixture(t)

	bill, err := bills.CreateBill(context.Background(), validBillInput())
	require.NoError(t, err)

	pdf, err := svc.BillPDF(context.Background(), bill.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(pdf[:5]))
}

func TestBillPDFNotFound(t *testing.T) {
	svc, _, _ := newReceiptFixture(t)

	pdf, err := svc.BillPDF(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Nil(t, pdf)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestPrintBill(t *testing.T) {
	svc, bills, cp := newReceiptFixture(t)

	bill, err := bills.CreateBill(context.Background(), validBillInput())
	require.NoError(t, err)

	require.NoError(t, svc.PrintBill(context.Background(), bill.ID))
	require.Len(t, cp.printed, 1)
	assert.Contains(t, string(cp.printed[0]), "TOTAL: Rs. 360.00")
	assert.Contains(t, string(cp.printed[0]), "OM SAI FAMILY RESTAURANT")
}

func TestPrintBillPrinterFailure(t *testing.T) {
	svc, bills, cp := newReceiptFixture(t)
	cp.err = errors.New("device unplugged")

	bill, err := bills.CreateBill(context.Background(), validBillInput())
	require.NoError(t, err)

	err = svc.PrintBill(context.Background(), bill.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device unplugged")
}

func TestStatus(t *testing.T) {
	svc, _, _ := newReceiptFixture(t)

	status := svc.Status()
	assert.True(t, status.Configured)
	assert.True(t, status.Connected)
	assert.Equal(t, "usb", status.Type)
}

func TestTestPrint(t *testing.T) {
	svc, _, cp := newReceiptFixture(t)

	require.NoError(t, svc.TestPrint(context.Background()))
	require.Len(t, cp.printed, 1)
	assert.Contains(t, string(cp.printed[0]), "Test Item 1")
}
