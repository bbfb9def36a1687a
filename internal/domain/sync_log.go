package domain

import "time"

type SyncStatus string

const (
	SyncStatusRunning SyncStatus = "running"
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusError   SyncStatus = "error"
)

const SyncTypeAccounts = "accounts"

type SyncLog struct {
	ID            string     `json:"id"`
	ClientID      string     `json:"client_id"`
	SyncType      string     `json:"sync_type"`
	Status        SyncStatus `json:"status"`
	RecordsSynced int        `json:"records_synced"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}
