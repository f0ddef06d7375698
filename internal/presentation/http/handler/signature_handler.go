package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/primeretail/billing-api/internal/presentation/http/dto/request"
	"github.com/primeretail/billing-api/internal/presentation/http/dto/response"
	"github.com/primeretail/billing-api/pkg/signature"
)

// SignatureHandler handles signature capture uploads
type SignatureHandler struct {
	store *signature.Store
}

// NewSignatureHandler creates a new signature handler
func NewSignatureHandler(store *signature.Store) *SignatureHandler {
	return &SignatureHandler{store: store}
}

// Save handles storing a base64-encoded signature image
func (h *SignatureHandler) Save(c *gin.Context) {
	var req request.SaveSignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	filename, err := h.store.Save(req.Signature)
	if err != nil {
		response.BadRequest(c, "Could not save signature: "+err.Error())
		return
	}
	response.OK(c, "Signature saved successfully", gin.H{"filename": filename})
}
