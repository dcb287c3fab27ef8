package model

import "time"

// Snapshot statuses.
const (
	SnapshotQueued    = "queued"
	SnapshotCompleted = "completed"
	SnapshotFailed    = "failed"
)

// Snapshot is a stored export of the full dashboard.
type Snapshot struct {
	ID          string     `db:"id" json:"id"`
	Status      string     `db:"status" json:"status"`
	RequestedBy string     `db:"requested_by" json:"requested_by"`
	StorageKey  string     `db:"storage_key" json:"storage_key"`
	Error       *string    `db:"error" json:"error,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
}

// SnapshotJob is the queue payload asking the orchestrator to build a snapshot.
type SnapshotJob struct {
	SnapshotID string `json:"snapshot_id"`
}

// SnapshotEvent is published once a snapshot reaches a terminal status.
type SnapshotEvent struct {
	SnapshotID string `json:"snapshot_id"`
	Status     string `json:"status"`
	StorageKey string `json:"storage_key"`
}
