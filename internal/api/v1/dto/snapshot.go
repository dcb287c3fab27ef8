package dto

import "time"

// SnapshotIDParam validates the snapshot path parameter.
type SnapshotIDParam struct {
	ID string `validate:"required,uuid"`
}

// SnapshotResponseDTO describes a snapshot and, once completed, where to download it.
type SnapshotResponseDTO struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	RequestedBy string     `json:"requested_by"`
	Error       *string    `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DownloadURL string     `json:"download_url,omitempty"`
}
