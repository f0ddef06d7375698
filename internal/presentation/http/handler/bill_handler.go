package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/primeretail/billing-api/internal/application/service"
	"github.com/primeretail/billing-api/internal/presentation/http/dto/request"
	"github.com/primeretail/billing-api/internal/presentation/http/dto/response"
)

// BillHandler handles bill ledger and invoice HTTP requests
type BillHandler struct {
	billingService *service.BillingService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billingService *service.BillingService) *BillHandler {
	return &BillHandler{billingService: billingService}
}

// List handles listing all issued bills
func (h *BillHandler) List(c *gin.Context) {
	bills, err := h.billingService.ListBills(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bills retrieved successfully", bills)
}

// Generate handles invoice generation. On success the response body is the
// PDF itself with a filename derived from the assigned bill id.
func (h *BillHandler) Generate(c *gin.Context) {
	var req request.GenerateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lines := make([]service.OrderLineInput, len(req.Items))
	for i, item := range req.Items {
		lines[i] = service.OrderLineInput{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			LineTotal: item.Total,
		}
	}

	result, err := h.billingService.GenerateBill(c.Request.Context(), &service.GenerateBillInput{
		CustomerName:  req.Customer.Name,
		CustomerPhone: req.Customer.Phone,
		CustomerEmail: req.Customer.Email,
		Lines:         lines,
		Total:         req.Total,
		PaymentStatus: req.PaymentStatus,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("Bill-%d.pdf", result.Bill.BillID)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

// Delete handles removing a bill from the ledger by id
func (h *BillHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.billingService.DeleteBill(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill "+id+" deleted successfully", nil)
}

// GetShop handles returning the configured shop profile
func (h *BillHandler) GetShop(c *gin.Context) {
	response.OK(c, "Shop profile retrieved successfully", h.billingService.Shop())
}
