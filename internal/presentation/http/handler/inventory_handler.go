package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/primeretail/billing-api/internal/application/service"
	"github.com/primeretail/billing-api/internal/presentation/http/dto/request"
	"github.com/primeretail/billing-api/internal/presentation/http/dto/response"
)

// InventoryHandler handles catalog HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// List handles listing all catalog items
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.inventoryService.ListItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Items retrieved successfully", items)
}

// Create handles adding a catalog item
func (h *InventoryHandler) Create(c *gin.Context) {
	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), &service.ItemInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Item created successfully", item)
}

// Update handles replacing a catalog item's name and price
func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), id, &service.ItemInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item updated successfully", item)
}

// Delete handles removing a catalog item
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.inventoryService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item deleted successfully", nil)
}

// Import handles bulk-importing catalog items from an uploaded CSV file
func (h *InventoryHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "CSV file is required")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Could not read uploaded file")
		return
	}
	defer f.Close()

	result, err := h.inventoryService.ImportItems(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, strconv.Itoa(result.Imported)+" items imported successfully", result)
}
