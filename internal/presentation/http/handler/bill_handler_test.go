package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/primeretail/billing-api/internal/application/service"
	"github.com/primeretail/billing-api/internal/domain/entity"
	"github.com/primeretail/billing-api/internal/infrastructure/repository"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	billRepo, err := repository.NewCSVBillRepository(filepath.Join(dir, "bills.csv"))
	if err != nil {
		t.Fatalf("open bill repository: %v", err)
	}
	itemRepo, err := repository.NewCSVItemRepository(filepath.Join(dir, "inventory.csv"), repository.DefaultCatalog())
	if err != nil {
		t.Fatalf("open item repository: %v", err)
	}

	shop := entity.ShopProfile{
		Name:           "Prime Retail Store",
		Owner:          "John Doe",
		Address:        "123 Business Street, Commerce City",
		Phone:          "+1 (555) 123-4567",
		Email:          "contact@primeretail.com",
		GST:            "GST123456789",
		CurrencySymbol: "Rs.",
	}
	billHandler := NewBillHandler(service.NewBillingService(billRepo, shop))
	inventoryHandler := NewInventoryHandler(service.NewInventoryService(itemRepo))

	router := gin.New()
	api := router.Group("/api")
	api.GET("/shop", billHandler.GetShop)
	api.GET("/bills", billHandler.List)
	api.DELETE("/bills/:id", billHandler.Delete)
	api.POST("/generate-bill", billHandler.Generate)
	inventory := api.Group("/inventory")
	inventory.GET("", inventoryHandler.List)
	inventory.POST("", inventoryHandler.Create)
	inventory.POST("/import", inventoryHandler.Import)
	inventory.PUT("/:id", inventoryHandler.Update)
	inventory.DELETE("/:id", inventoryHandler.Delete)
	return router
}

func generateBillBody() []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"customer": map[string]string{
			"name":  "Alice",
			"phone": "555-0100",
			"email": "alice@example.com",
		},
		"items": []map[string]interface{}{
			{"name": "Laptop", "price": 899.99, "quantity": 1},
		},
		"payment_status": "Paid",
		"notes":          "first order",
	})
	return body
}

func TestGenerateBillEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-bill", bytes.NewReader(generateBillBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type: got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="Bill-1.pdf"` {
		t.Errorf("content disposition: got %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF document")
	}
}

func TestGenerateBillEndpointValidation(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"customer":`},
		{"blank customer name", `{"customer":{"name":""},"items":[],"payment_status":"Paid"}`},
		{"bad payment status", `{"customer":{"name":"Alice"},"items":[],"payment_status":"later"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/generate-bill", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want 400", w.Code)
			}
			var resp map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("parse response: %v", err)
			}
			if success, _ := resp["success"].(bool); success {
				t.Error("success: got true, want false")
			}
		})
	}
}

func TestListBillsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-bill", bytes.NewReader(generateBillBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("seed bill: status %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/bills", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			BillID        int     `json:"bill_id"`
			Date          string  `json:"date"`
			CustomerName  string  `json:"customer_name"`
			Total         float64 `json:"total"`
			PaymentStatus string  `json:"payment_status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if !resp.Success || len(resp.Data) != 1 {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
	got := resp.Data[0]
	if got.BillID != 1 || got.CustomerName != "Alice" || got.Total != 899.99 {
		t.Errorf("bill row: %+v", got)
	}
	if got.Date == "" {
		t.Error("date missing from bill row")
	}
	if got.PaymentStatus != "Paid" {
		t.Errorf("payment status: got %q", got.PaymentStatus)
	}
}

func TestDeleteBillEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-bill", bytes.NewReader(generateBillBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("seed bill: status %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/bills/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: got %d, body %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/bills/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("delete missing: got %d, want 404", w.Code)
	}
}

func TestGetShopEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/shop", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Name  string `json:"name"`
			Owner string `json:"owner"`
			GST   string `json:"gst"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if !resp.Success || resp.Data.Name != "Prime Retail Store" || resp.Data.Owner != "John Doe" {
		t.Errorf("shop profile: %s", w.Body.String())
	}
}
