package models

import "time"

// SyncAction describes what a sync-log row records.
type SyncAction string

const (
	ActionCreate    SyncAction = "CREATE"
	ActionUpdate    SyncAction = "UPDATE"
	ActionSyncBatch SyncAction = "SYNC_BATCH"
)

// SyncOutcome is the result of a logged sync operation.
type SyncOutcome string

const (
	OutcomeSuccess SyncOutcome = "SUCCESS"
	OutcomeError   SyncOutcome = "ERROR"
)

// SyncLog records each synchronization run against the remote platform.
// Rows are append-only; the core never updates or deletes them.
type SyncLog struct {
	ID         int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	EntityKind string      `gorm:"column:entity_kind;type:varchar(32);not null;index" json:"entity_kind"`
	EntityID   *string     `gorm:"column:entity_id;type:varchar(64)" json:"entity_id,omitempty"`
	Action     SyncAction  `gorm:"type:varchar(32);not null" json:"action"`
	Outcome    SyncOutcome `gorm:"type:varchar(16);not null;index" json:"outcome"`
	Message    string      `gorm:"type:text" json:"message"`
	Detail     JSONB       `gorm:"type:jsonb" json:"detail"`
	CreatedAt  time.Time   `gorm:"index" json:"created_at"`
}

func (SyncLog) TableName() string { return "sync_logs" }
