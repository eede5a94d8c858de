package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/omsai/pos-backend/internal/application/service"
	"github.com/omsai/pos-backend/internal/presentation/http/dto/request"
	"github.com/omsai/pos-backend/pkg/apperror"
)

// BillHandler handles the legacy bill routes used by the counter frontend
type BillHandler struct {
	billService    *service.BillService
	receiptService *service.ReceiptService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService, receiptService *service.ReceiptService) *BillHandler {
	return &BillHandler{
		billService:    billService,
		receiptService: receiptService,
	}
}

// Create handles POST /generate-bill
func (h *BillHandler) Create(c *gin.Context) {
	var req request.GenerateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		legacyError(c, apperror.NewBadRequestError("Invalid request body"))
		return
	}

	items := make([]service.BillItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.BillItemInput{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		CustomerPhone: req.CustomerPhone,
		Total:         req.Total,
		Items:         items,
	})
	if err != nil {
		legacyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "billId": bill.ID})
}

// List handles GET /bills, most recent first
func (h *BillHandler) List(c *gin.Context) {
	bills, err := h.billService.ListBills(c.Request.Context())
	if err != nil {
		legacyError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

// Delete handles DELETE /bills/:id
func (h *BillHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		legacyError(c, apperror.NewBadRequestError("Invalid bill ID"))
		return
	}

	if err := h.billService.DeleteBill(c.Request.Context(), id); err != nil {
		legacyError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PrintPDF handles GET /print-bill/:id. The bill is resolved before any
// response bytes are written, so a missing bill yields a clean plain-text
// 404 rather than a truncated document.
func (h *BillHandler) PrintPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid bill ID")
		return
	}

	pdf, err := h.receiptService.BillPDF(c.Request.Context(), id)
	if err != nil {
		appErr := apperror.GetAppError(err)
		if appErr.Code == http.StatusNotFound {
			c.String(http.StatusNotFound, "Bill not found")
			return
		}
		c.String(appErr.Code, appErr.Message)
		return
	}

	c.Data(http.StatusOK, "application/pdf", pdf)
}
