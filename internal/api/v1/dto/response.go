package dto

import "backoffice/internal/model"

// Envelope is the uniform response body: {success, data} on success and
// {success:false, error} on failure.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CategoryUsageResponse is the one response that carries its payload outside "data".
type CategoryUsageResponse struct {
	Success        bool                  `json:"success"`
	UsedCategories []model.CategoryUsage `json:"usedCategories"`
}
