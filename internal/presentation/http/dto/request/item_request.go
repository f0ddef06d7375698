package request

// CreateItemRequest represents a catalog item creation request
type CreateItemRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=255"`
	Price float64 `json:"price" binding:"min=0"`
}

// UpdateItemRequest represents a catalog item update request
type UpdateItemRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=255"`
	Price float64 `json:"price" binding:"min=0"`
}

// SaveSignatureRequest carries a base64-encoded signature image.
type SaveSignatureRequest struct {
	Signature string `json:"signature" binding:"required"`
}
