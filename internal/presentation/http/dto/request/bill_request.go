package request

// CustomerRequest is the buyer block of an invoice request.
type CustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// BillItemRequest is one cart line of an invoice request. Total is optional;
// the service recomputes it and rejects mismatches.
type BillItemRequest struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"`
	Total    *float64 `json:"total"`
}

// GenerateBillRequest represents an invoice generation request. Semantic
// validation happens in the service so failures carry field-level detail.
type GenerateBillRequest struct {
	Customer      CustomerRequest   `json:"customer"`
	Items         []BillItemRequest `json:"items"`
	Total         *float64          `json:"total"`
	PaymentStatus string            `json:"payment_status"`
	Notes         string            `json:"notes"`
}
