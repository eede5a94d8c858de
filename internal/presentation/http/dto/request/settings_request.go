package request

// UpdateSettingsRequest is the payload of PUT /api/v1/settings
type UpdateSettingsRequest struct {
	Name     string `json:"name" binding:"required"`
	Tagline1 string `json:"tagline1"`
	Tagline2 string `json:"tagline2"`
	Footer   string `json:"footer"`
}
