package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/omsai/pos-backend/internal/application/service"
	"github.com/omsai/pos-backend/internal/presentation/http/dto/response"
)

// PrinterHandler handles thermal printer endpoints
type PrinterHandler struct {
	receiptService *service.ReceiptService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(receiptService *service.ReceiptService) *PrinterHandler {
	return &PrinterHandler{receiptService: receiptService}
}

// Status handles GET /api/v1/printer/status
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.receiptService.Status())
}

// TestPrint handles POST /api/v1/printer/test
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	if err := h.receiptService.TestPrint(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Test receipt sent to printer", nil)
}

// PrintBill handles POST /api/v1/bills/:id/print
func (h *PrinterHandler) PrintBill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	if err := h.receiptService.PrintBill(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt sent to printer", nil)
}
