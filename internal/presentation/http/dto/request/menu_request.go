package request

// AddMenuItemRequest is the payload of POST /add-menu-item. Price is in
// rupees.
type AddMenuItemRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}
