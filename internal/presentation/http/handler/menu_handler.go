package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/omsai/pos-backend/internal/application/service"
	"github.com/omsai/pos-backend/internal/presentation/http/dto/request"
	"github.com/omsai/pos-backend/pkg/apperror"
)

// MenuHandler handles the legacy menu routes
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List handles GET /menu
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menuService.ListItems(c.Request.Context())
	if err != nil {
		legacyError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create handles POST /add-menu-item
func (h *MenuHandler) Create(c *gin.Context) {
	var req request.AddMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		legacyError(c, apperror.NewBadRequestError("Invalid request body"))
		return
	}

	item, err := h.menuService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		legacyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": item.ID})
}

// Delete handles DELETE /menu/:id
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		legacyError(c, apperror.NewBadRequestError("Invalid menu item ID"))
		return
	}

	if err := h.menuService.DeleteItem(c.Request.Context(), id); err != nil {
		legacyError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
