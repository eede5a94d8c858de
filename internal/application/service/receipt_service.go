package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/omsai/pos-backend/internal/domain/entity"
	"github.com/omsai/pos-backend/internal/domain/repository"
	"github.com/omsai/pos-backend/pkg/apperror"
	"github.com/omsai/pos-backend/pkg/printer"
	"github.com/omsai/pos-backend/pkg/receipt"
)

// ReceiptService composes receipts from stored bills and renders them as
// PDF for the browser or ESC/POS for the thermal printer.
type ReceiptService struct {
	billRepo     repository.BillRepository
	settingsRepo repository.SettingsRepository
	printer      printer.Printer
	printerType  string
	printerWidth int
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	billRepo repository.BillRepository,
	settingsRepo repository.SettingsRepository,
	p printer.Printer,
	printerType string,
	printerWidth int,
) *ReceiptService {
	return &ReceiptService{
		billRepo:     billRepo,
		settingsRepo: settingsRepo,
		printer:      p,
		printerType:  printerType,
		printerWidth: printerWidth,
	}
}

// BillPDF renders the receipt for a bill as a PDF document. The bill lookup
// happens before any rendering, so a missing bill produces no output bytes.
func (s *ReceiptService) BillPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	rcpt, err := s.compose(ctx, bill)
	if err != nil {
		return nil, err
	}
	return receipt.RenderPDF(rcpt.Layout(), bill.Date)
}

// PrintBill sends a bill's receipt to the configured thermal printer.
func (s *ReceiptService) PrintBill(ctx context.Context, id uuid.UUID) error {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bill == nil {
		return apperror.NewNotFoundError("Bill")
	}

	rcpt, err := s.compose(ctx, bill)
	if err != nil {
		return err
	}

	data := receipt.RenderESCPOS(rcpt.Layout(), s.printerWidth)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (bill %s): %v", id, err)
		return fmt.Errorf("failed to print receipt: %w", err)
	}
	return nil
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// Status returns printer connection status.
func (s *ReceiptService) Status() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a sample receipt to the printer.
func (s *ReceiptService) TestPrint(ctx context.Context) error {
	header, footer, err := s.profile(ctx)
	if err != nil {
		return err
	}

	sample := &receipt.Receipt{
		Header: header,
		BillNo: 0,
		Phone:  "0000000000",
		Date:   time.Now(),
		Items: []receipt.Item{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 1000},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 500},
		},
		Total:  2000,
		Footer: footer,
	}

	data := receipt.RenderESCPOS(sample.Layout(), s.printerWidth)
	if err := s.printer.Print(data); err != nil {
		return fmt.Errorf("test print failed: %w", err)
	}
	return nil
}

// compose builds the renderer-facing receipt value from a stored bill and
// the restaurant profile.
func (s *ReceiptService) compose(ctx context.Context, bill *entity.Bill) (*receipt.Receipt, error) {
	header, footer, err := s.profile(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]receipt.Item, 0, len(bill.Items))
	for _, item := range bill.Items {
		items = append(items, receipt.Item{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		})
	}

	return &receipt.Receipt{
		Header: header,
		BillNo: bill.BillNumber,
		Phone:  bill.CustomerPhone,
		Date:   bill.Date,
		Items:  items,
		Total:  bill.Total,
		Footer: footer,
	}, nil
}

func (s *ReceiptService) profile(ctx context.Context) (receipt.Header, string, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return receipt.Header{}, "", err
	}
	if settings == nil {
		return receipt.Header{Name: "RESTAURANT"}, "Thank you, visit again!", nil
	}
	return receipt.Header{
		Name:     settings.Name,
		Tagline1: settings.Tagline1,
		Tagline2: settings.Tagline2,
	}, settings.Footer, nil
}
