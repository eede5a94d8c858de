package request

// LineItemRequest is one cart line in a bill creation payload. Price is in
// rupees.
type LineItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required"`
	Price    float64 `json:"price"`
}

// GenerateBillRequest is the payload of POST /generate-bill. Total is the
// amount the client displayed; the server recomputes it from the items.
type GenerateBillRequest struct {
	CustomerPhone string            `json:"customerPhone"`
	Items         []LineItemRequest `json:"items" binding:"required"`
	Total         float64           `json:"total"`
}
